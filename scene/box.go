package scene

import (
	"math/rand"

	"github.com/achilleasa/go-mctrace/types"
)

// An axis-aligned box built from six rects.
type Box struct {
	notALight
	Min, Max types.Vec3
	sides    *HittableList
}

func NewBox(p0, p1 types.Vec3, mat Material) *Box {
	min, max := types.MinVec3(p0, p1), types.MaxVec3(p0, p1)
	sides := NewHittableList(
		NewXYRect(min[0], max[0], min[1], max[1], max[2], mat),
		NewXYRect(min[0], max[0], min[1], max[1], min[2], mat),
		NewXZRect(min[0], max[0], min[2], max[2], max[1], mat),
		NewXZRect(min[0], max[0], min[2], max[2], min[1], mat),
		NewYZRect(min[1], max[1], min[2], max[2], max[0], mat),
		NewYZRect(min[1], max[1], min[2], max[2], min[0], mat),
	)
	return &Box{Min: min, Max: max, sides: sides}
}

func (b *Box) Hit(r types.Ray, tMin, tMax float64, rng *rand.Rand) (HitRecord, bool) {
	return b.sides.Hit(r, tMin, tMax, rng)
}

func (b *Box) BoundingBox(time0, time1 float64) (types.AABB, bool) {
	return b.sides.BoundingBox(time0, time1)
}

func (*Box) hittable() {}
