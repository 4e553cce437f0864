package scene

import (
	"math"
	"math/rand"

	"github.com/achilleasa/go-mctrace/types"
)

// Translate moves its child by a fixed offset.
type Translate struct {
	Object Hittable
	Offset types.Vec3
}

func NewTranslate(obj Hittable, offset types.Vec3) *Translate {
	return &Translate{Object: obj, Offset: offset}
}

func (tr *Translate) Hit(r types.Ray, tMin, tMax float64, rng *rand.Rand) (HitRecord, bool) {
	moved := types.NewRay(r.Origin.Sub(tr.Offset), r.Direction, r.Time)
	rec, ok := tr.Object.Hit(moved, tMin, tMax, rng)
	if !ok {
		return rec, false
	}

	rec.Point = rec.Point.Add(tr.Offset)
	rec.SetFaceNormal(moved, rec.OutwardNormal())
	return rec, true
}

func (tr *Translate) BoundingBox(time0, time1 float64) (types.AABB, bool) {
	box, ok := tr.Object.BoundingBox(time0, time1)
	if !ok {
		return box, false
	}
	return box.Translate(tr.Offset), true
}

func (tr *Translate) PdfValue(origin, dir types.Vec3, rng *rand.Rand) float64 {
	return tr.Object.PdfValue(origin.Sub(tr.Offset), dir, rng)
}

func (tr *Translate) Random(origin types.Vec3, rng *rand.Rand) types.Vec3 {
	return tr.Object.Random(origin.Sub(tr.Offset), rng)
}

func (*Translate) hittable() {}

// Rotate turns its child about one of the coordinate axes.
type Rotate struct {
	Object Hittable
	Axis   types.Axis
	Angle  float64

	sinTheta, cosTheta float64
	box                types.AABB
	hasBox             bool
}

// Rotate obj by angle degrees about the x axis.
func NewRotateX(obj Hittable, angle float64) *Rotate {
	return newRotate(obj, types.AxisX, angle)
}

// Rotate obj by angle degrees about the y axis.
func NewRotateY(obj Hittable, angle float64) *Rotate {
	return newRotate(obj, types.AxisY, angle)
}

// Rotate obj by angle degrees about the z axis.
func NewRotateZ(obj Hittable, angle float64) *Rotate {
	return newRotate(obj, types.AxisZ, angle)
}

func newRotate(obj Hittable, axis types.Axis, angle float64) *Rotate {
	radians := types.DegToRad(angle)
	rot := &Rotate{
		Object:   obj,
		Axis:     axis,
		Angle:    angle,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// The box over the canonical [0, 1] shutter interval is cached; other
	// intervals are computed on demand.
	rot.box, rot.hasBox = rot.rotatedBox(0, 1)
	return rot
}

// Get the enclosing box of the 8 rotated corners of the child box over the
// given interval.
func (rot *Rotate) rotatedBox(time0, time1 float64) (types.AABB, bool) {
	childBox, ok := rot.Object.BoundingBox(time0, time1)
	if !ok {
		return types.AABB{}, false
	}

	var box types.AABB
	for i, c := range childBox.Corners() {
		p := rot.toWorld(c)
		if i == 0 {
			box = types.AABB{Min: p, Max: p}
			continue
		}
		box = types.SurroundingBox(box, types.AABB{Min: p, Max: p})
	}
	return box, true
}

// Indices of the two axes spanning the rotation plane, ordered so that a
// positive angle rotates u towards v.
func (rot *Rotate) plane() (u, v types.Axis) {
	switch rot.Axis {
	case types.AxisX:
		return types.AxisY, types.AxisZ
	case types.AxisY:
		return types.AxisZ, types.AxisX
	default:
		return types.AxisX, types.AxisY
	}
}

func (rot *Rotate) rotate(p types.Vec3, sin float64) types.Vec3 {
	u, v := rot.plane()
	out := p
	out[u] = rot.cosTheta*p[u] - sin*p[v]
	out[v] = sin*p[u] + rot.cosTheta*p[v]
	return out
}

func (rot *Rotate) toWorld(p types.Vec3) types.Vec3 {
	return rot.rotate(p, rot.sinTheta)
}

func (rot *Rotate) toObject(p types.Vec3) types.Vec3 {
	return rot.rotate(p, -rot.sinTheta)
}

func (rot *Rotate) Hit(r types.Ray, tMin, tMax float64, rng *rand.Rand) (HitRecord, bool) {
	rotated := types.NewRay(rot.toObject(r.Origin), rot.toObject(r.Direction), r.Time)
	rec, ok := rot.Object.Hit(rotated, tMin, tMax, rng)
	if !ok {
		return rec, false
	}

	// Orientation is resolved against the object space ray before the
	// normal is rotated back to world space.
	rec.SetFaceNormal(rotated, rec.OutwardNormal())
	rec.Point = rot.toWorld(rec.Point)
	rec.Normal = rot.toWorld(rec.Normal)
	return rec, true
}

func (rot *Rotate) BoundingBox(time0, time1 float64) (types.AABB, bool) {
	if time0 == 0 && time1 == 1 {
		return rot.box, rot.hasBox
	}
	return rot.rotatedBox(time0, time1)
}

func (rot *Rotate) PdfValue(origin, dir types.Vec3, rng *rand.Rand) float64 {
	return rot.Object.PdfValue(rot.toObject(origin), rot.toObject(dir), rng)
}

func (rot *Rotate) Random(origin types.Vec3, rng *rand.Rand) types.Vec3 {
	return rot.toWorld(rot.Object.Random(rot.toObject(origin), rng))
}

func (*Rotate) hittable() {}

// FlipFace inverts the front face classification of its child.
type FlipFace struct {
	Object Hittable
}

func NewFlipFace(obj Hittable) *FlipFace {
	return &FlipFace{Object: obj}
}

func (f *FlipFace) Hit(r types.Ray, tMin, tMax float64, rng *rand.Rand) (HitRecord, bool) {
	rec, ok := f.Object.Hit(r, tMin, tMax, rng)
	if !ok {
		return rec, false
	}
	rec.FrontFace = !rec.FrontFace
	return rec, true
}

func (f *FlipFace) BoundingBox(time0, time1 float64) (types.AABB, bool) {
	return f.Object.BoundingBox(time0, time1)
}

func (f *FlipFace) PdfValue(origin, dir types.Vec3, rng *rand.Rand) float64 {
	return f.Object.PdfValue(origin, dir, rng)
}

func (f *FlipFace) Random(origin types.Vec3, rng *rand.Rand) types.Vec3 {
	return f.Object.Random(origin, rng)
}

func (*FlipFace) hittable() {}
