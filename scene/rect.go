package scene

import (
	"math"
	"math/rand"

	"github.com/achilleasa/go-mctrace/types"
)

// Thickness added to the flat axis of a rect bounding box.
const rectPadding = 0.0002

// Rect is an axis-aligned rectangle lying on the plane k along its normal
// axis and spanning [A0, A1] x [B0, B1] along the two remaining axes.
type Rect struct {
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material Material

	aAxis, bAxis, kAxis types.Axis
}

// Rectangle on the z=k plane spanning [x0, x1] x [y0, y1].
func NewXYRect(x0, x1, y0, y1, k float64, mat Material) *Rect {
	return &Rect{A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: mat, aAxis: types.AxisX, bAxis: types.AxisY, kAxis: types.AxisZ}
}

// Rectangle on the y=k plane spanning [x0, x1] x [z0, z1].
func NewXZRect(x0, x1, z0, z1, k float64, mat Material) *Rect {
	return &Rect{A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: mat, aAxis: types.AxisX, bAxis: types.AxisZ, kAxis: types.AxisY}
}

// Rectangle on the x=k plane spanning [y0, y1] x [z0, z1].
func NewYZRect(y0, y1, z0, z1, k float64, mat Material) *Rect {
	return &Rect{A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: mat, aAxis: types.AxisY, bAxis: types.AxisZ, kAxis: types.AxisX}
}

// Get the outward normal; it points along the positive normal axis.
func (rc *Rect) Normal() types.Vec3 {
	var n types.Vec3
	n[rc.kAxis] = 1
	return n
}

func (rc *Rect) Area() float64 {
	return (rc.A1 - rc.A0) * (rc.B1 - rc.B0)
}

func (rc *Rect) point(a, b float64) types.Vec3 {
	var p types.Vec3
	p[rc.aAxis] = a
	p[rc.bAxis] = b
	p[rc.kAxis] = rc.K
	return p
}

func (rc *Rect) Hit(r types.Ray, tMin, tMax float64, _ *rand.Rand) (HitRecord, bool) {
	t := (rc.K - r.Origin[rc.kAxis]) / r.Direction[rc.kAxis]
	if !(t > tMin && t < tMax) {
		return HitRecord{}, false
	}

	a := r.Origin[rc.aAxis] + t*r.Direction[rc.aAxis]
	b := r.Origin[rc.bAxis] + t*r.Direction[rc.bAxis]
	if !(a >= rc.A0 && a <= rc.A1 && b >= rc.B0 && b <= rc.B1) {
		return HitRecord{}, false
	}

	rec := HitRecord{
		T:        t,
		U:        (a - rc.A0) / (rc.A1 - rc.A0),
		V:        (b - rc.B0) / (rc.B1 - rc.B0),
		Point:    r.At(t),
		Material: rc.Material,
	}
	rec.SetFaceNormal(r, rc.Normal())
	return rec, true
}

func (rc *Rect) BoundingBox(_, _ float64) (types.AABB, bool) {
	return types.NewAABB(rc.point(rc.A0, rc.B0), rc.point(rc.A1, rc.B1)).Pad(rectPadding), true
}

// Area light density: distance² / (|cos θ| · area).
func (rc *Rect) PdfValue(origin, dir types.Vec3, rng *rand.Rand) float64 {
	rec, ok := rc.Hit(types.NewRay(origin, dir, 0), pdfProbeEpsilon, math.Inf(1), rng)
	if !ok {
		return 0
	}

	distSq := rec.T * rec.T * dir.LenSq()
	cosine := math.Abs(dir.Dot(rc.Normal()) / dir.Len())
	return distSq / (cosine * rc.Area())
}

// Direction from origin to a uniformly sampled point on the rect.
func (rc *Rect) Random(origin types.Vec3, rng *rand.Rand) types.Vec3 {
	p := rc.point(types.RandomRange(rng, rc.A0, rc.A1), types.RandomRange(rng, rc.B0, rc.B1))
	return p.Sub(origin)
}

func (*Rect) hittable() {}
