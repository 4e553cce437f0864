package scene

import (
	"math/rand"

	"github.com/achilleasa/go-mctrace/types"
)

// A HitRecord describes a ray-surface intersection. Normal always points
// against the incoming ray; FrontFace reports whether the ray arrived from
// the outward side of the surface.
type HitRecord struct {
	Point     types.Vec3
	Normal    types.Vec3
	T         float64
	U, V      float64
	FrontFace bool
	Material  Material
}

// Orient the record normal against the ray given the outward surface normal.
func (rec *HitRecord) SetFaceNormal(r types.Ray, outward types.Vec3) {
	rec.FrontFace = r.Direction.Dot(outward) < 0
	if rec.FrontFace {
		rec.Normal = outward
	} else {
		rec.Normal = outward.Neg()
	}
}

// Recover the outward surface normal from an oriented record.
func (rec *HitRecord) OutwardNormal() types.Vec3 {
	if rec.FrontFace {
		return rec.Normal
	}
	return rec.Normal.Neg()
}

// Hittable is implemented by every node of the scene graph. The set of
// implementations is closed to this package. All implementations are
// immutable after construction and safe for concurrent use.
type Hittable interface {
	// Find the closest intersection with t in (tMin, tMax).
	Hit(r types.Ray, tMin, tMax float64, rng *rand.Rand) (HitRecord, bool)

	// Get the box enclosing the shape over the [time0, time1] shutter
	// interval. Returns false if the shape is unbounded.
	BoundingBox(time0, time1 float64) (types.AABB, bool)

	// Get the solid-angle density of sampling dir from origin towards
	// the shape. Shapes that cannot be sampled return 0.
	PdfValue(origin, dir types.Vec3, rng *rand.Rand) float64

	// Draw a direction from origin towards the shape.
	Random(origin types.Vec3, rng *rand.Rand) types.Vec3

	hittable()
}

// Default light sampling hooks for shapes that are never used as lights.
type notALight struct{}

func (notALight) PdfValue(_, _ types.Vec3, _ *rand.Rand) float64 {
	return 0
}

func (notALight) Random(_ types.Vec3, _ *rand.Rand) types.Vec3 {
	return types.XYZ(1, 0, 0)
}

// HittableList is an unordered collection searched linearly.
type HittableList struct {
	Objects []Hittable
}

// Create a list containing objects.
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Append objects to the list.
func (l *HittableList) Add(objects ...Hittable) {
	l.Objects = append(l.Objects, objects...)
}

func (l *HittableList) Len() int {
	return len(l.Objects)
}

func (l *HittableList) Hit(r types.Ray, tMin, tMax float64, rng *rand.Rand) (HitRecord, bool) {
	var (
		closest HitRecord
		hitAny  bool
	)
	for _, obj := range l.Objects {
		if rec, ok := obj.Hit(r, tMin, tMax, rng); ok {
			hitAny = true
			tMax = rec.T
			closest = rec
		}
	}
	return closest, hitAny
}

func (l *HittableList) BoundingBox(time0, time1 float64) (types.AABB, bool) {
	if len(l.Objects) == 0 {
		return types.AABB{}, false
	}

	var out types.AABB
	for i, obj := range l.Objects {
		box, ok := obj.BoundingBox(time0, time1)
		if !ok {
			return types.AABB{}, false
		}
		if i == 0 {
			out = box
		} else {
			out = types.SurroundingBox(out, box)
		}
	}
	return out, true
}

// Average of the member densities.
func (l *HittableList) PdfValue(origin, dir types.Vec3, rng *rand.Rand) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.Objects))
	var sum float64
	for _, obj := range l.Objects {
		sum += weight * obj.PdfValue(origin, dir, rng)
	}
	return sum
}

// Sample a uniformly chosen member.
func (l *HittableList) Random(origin types.Vec3, rng *rand.Rand) types.Vec3 {
	if len(l.Objects) == 0 {
		return types.XYZ(1, 0, 0)
	}
	return l.Objects[rng.Intn(len(l.Objects))].Random(origin, rng)
}

func (*HittableList) hittable() {}
