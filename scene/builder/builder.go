// Package builder assembles the named demo scenes.
package builder

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/achilleasa/go-mctrace/scene"
	"github.com/achilleasa/go-mctrace/types"
)

var ErrUnknownScene = errors.New("builder: unknown scene")

// Options shared by all scene builders.
type Options struct {
	AspectRatio float64

	// Shutter interval.
	Time0, Time1 float64

	// Seed for randomly placed scene content.
	Seed int64

	// Split strategy for the top level BVH.
	Split scene.SplitStrategy

	// Path or URL of the earth texture used by some scenes.
	EarthTexture string
}

// Fill in defaults for unset fields.
func (o Options) withDefaults() Options {
	if o.AspectRatio <= 0 {
		o.AspectRatio = 1
	}
	if o.Time0 == 0 && o.Time1 == 0 {
		o.Time1 = 1
	}
	if o.EarthTexture == "" {
		o.EarthTexture = "assets/earthmap.jpeg"
	}
	return o
}

// A Builder constructs a scene.
type Builder func(opts Options) (*scene.Scene, error)

// Registered scene metadata.
type Entry struct {
	Name        string
	Description string
	HasLights   bool
	build       Builder
}

var registry = map[string]Entry{}

func register(name, description string, hasLights bool, b Builder) {
	registry[name] = Entry{Name: name, Description: description, HasLights: hasLights, build: b}
}

// The scene used when none is selected.
const DefaultScene = "random_world"

// List registered scenes sorted by name.
func List() []Entry {
	out := make([]Entry, 0, len(registry))
	for _, e := range registry {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Build the named scene. Names ending in .obj or .zip are loaded as scene
// files.
func Build(name string, opts Options) (*scene.Scene, error) {
	if IsSceneFile(name) {
		return FromFile(name, opts)
	}

	entry, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScene, name)
	}
	sc, err := entry.build(opts.withDefaults())
	if err != nil {
		return nil, fmt.Errorf("builder: could not build scene %q: %w", name, err)
	}
	return sc, nil
}

// Wrap objects in a BVH and assemble the scene.
func assemble(opts Options, cfg scene.CameraConfig, background types.Color, objects []scene.Hittable, lights scene.Hittable) (*scene.Scene, error) {
	cfg.AspectRatio = opts.AspectRatio
	cfg.Time0, cfg.Time1 = opts.Time0, opts.Time1

	rng := rand.New(rand.NewSource(opts.Seed))
	world, err := scene.BuildBvh(objects, opts.Time0, opts.Time1, rng, opts.Split)
	if err != nil {
		return nil, err
	}
	return scene.NewScene(scene.NewCamera(cfg), world, lights, background)
}

func init() {
	register("random_world", "random spheres with motion blur", false, randomWorld)
	register("random_world_original", "random static spheres", false, randomWorldOriginal)
	register("random_world_checkered", "random spheres on a checkered ground", false, randomWorldCheckered)
	register("random_world_earth", "random spheres including image mapped globes", false, randomWorldEarth)
	register("noise", "perlin noise spheres", false, noiseScene)
	register("turbulence", "perlin turbulence spheres", false, turbulenceScene)
	register("marble", "perlin marble spheres", false, marbleScene)
	register("earth", "a single image mapped globe", false, earthScene)
	register("simple_light", "marble spheres lit by a rect light", true, simpleLight)
	register("cornell_box", "cornell box with two rotated blocks", true, cornellBox)
	register("cornell_box_sphere", "cornell box with a glass sphere", true, cornellBoxSphere)
	register("cornell_smoke", "cornell box with smoke blocks", true, cornellSmoke)
	register("rotate_test", "boxes rotated about each axis", true, rotateTest)
	register("next_week_final", "the final scene of the second book", true, nextWeekFinal)
}
