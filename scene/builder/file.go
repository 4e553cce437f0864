package builder

import (
	"fmt"
	"math/rand"

	"github.com/achilleasa/go-mctrace/scene"
	"github.com/achilleasa/go-mctrace/scene/reader"
	"github.com/achilleasa/go-mctrace/types"
)

// Returns true if name refers to a scene file or URL instead of a registered
// scene.
func IsSceneFile(name string) bool {
	return reader.IsSupported(name)
}

// Load a wavefront or compiled scene. Scenes with emissive materials get a
// black background and sample their emissive faces as lights. All others are
// lit by the sky.
func FromFile(pathToScene string, opts Options) (*scene.Scene, error) {
	opts = opts.withDefaults()

	parsed, err := reader.ReadScene(pathToScene)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	objects, emissive, err := parsed.Hittables(opts.Time0, opts.Time1, rng, opts.Split)
	if err != nil {
		return nil, fmt.Errorf("builder: could not build scene %q: %w", pathToScene, err)
	}

	background := skyBlue
	var lights scene.Hittable
	if len(emissive) != 0 {
		background = types.Black
		lights = scene.NewHittableList(emissive...)
	}

	return assemble(opts, parsed.CameraConfig(), background, objects, lights)
}
