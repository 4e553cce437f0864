package scene

import (
	"fmt"

	"github.com/achilleasa/go-mctrace/types"
)

// A Scene is the read-only input of the renderer: a camera, the world
// geometry, the subset of it that should be sampled as lights and the
// color returned by rays escaping the world.
type Scene struct {
	Camera     *Camera
	World      Hittable
	Lights     Hittable
	Background types.Color
}

// Create a scene. A nil light set is replaced by an empty list.
func NewScene(camera *Camera, world, lights Hittable, background types.Color) (*Scene, error) {
	if camera == nil {
		return nil, ErrNoCamera
	}
	if world == nil {
		return nil, ErrNoWorld
	}
	if lights == nil {
		lights = NewHittableList()
	}
	return &Scene{Camera: camera, World: world, Lights: lights, Background: background}, nil
}

// Returns true if the scene registers at least one light for sampling.
func (s *Scene) HasLights() bool {
	if list, ok := s.Lights.(*HittableList); ok {
		return list.Len() > 0
	}
	return s.Lights != nil
}

// Scene statistics.
type Stats struct {
	Bounds    types.AABB
	HasBounds bool
	Bvh       *BvhStats
	Lights    int
}

func (s *Scene) Stats() Stats {
	var stats Stats
	stats.Bounds, stats.HasBounds = s.World.BoundingBox(s.Camera.Config.Time0, s.Camera.Config.Time1)
	if bvh, ok := s.World.(*BvhNode); ok {
		bvhStats := bvh.Stats()
		stats.Bvh = &bvhStats
	}
	switch l := s.Lights.(type) {
	case *HittableList:
		stats.Lights = l.Len()
	default:
		stats.Lights = 1
	}
	return stats
}

func (s Stats) String() string {
	out := fmt.Sprintf("lights: %d", s.Lights)
	if s.HasBounds {
		out += fmt.Sprintf(", bounds: %v - %v", s.Bounds.Min, s.Bounds.Max)
	}
	if s.Bvh != nil {
		out += fmt.Sprintf(", bvh nodes: %d, leafs: %d, depth: %d", s.Bvh.Nodes, s.Bvh.Leafs, s.Bvh.MaxDepth)
	}
	return out
}
