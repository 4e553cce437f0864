package scene

import (
	"math"
	"math/rand"

	"github.com/achilleasa/go-mctrace/types"
)

// Epsilon used when probing a shape for light sampling densities.
const pdfProbeEpsilon = 0.001

// A static sphere.
type Sphere struct {
	Center   types.Vec3
	Radius   float64
	Material Material
}

func NewSphere(center types.Vec3, radius float64, mat Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

func (s *Sphere) Hit(r types.Ray, tMin, tMax float64, _ *rand.Rand) (HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, r, tMin, tMax)
}

func (s *Sphere) BoundingBox(_, _ float64) (types.AABB, bool) {
	return sphereBox(s.Center, s.Radius), true
}

// Density of uniformly sampling the cone subtended by the sphere.
func (s *Sphere) PdfValue(origin, dir types.Vec3, rng *rand.Rand) float64 {
	if _, ok := s.Hit(types.NewRay(origin, dir, 0), pdfProbeEpsilon, math.Inf(1), rng); !ok {
		return 0
	}
	return 1.0 / sphereSolidAngle(s.Center, s.Radius, origin)
}

func (s *Sphere) Random(origin types.Vec3, rng *rand.Rand) types.Vec3 {
	return randomToSphere(s.Center, s.Radius, origin, rng)
}

func (*Sphere) hittable() {}

// A sphere whose center moves linearly from Center0 at Time0 to Center1 at Time1.
type MovingSphere struct {
	Center0, Center1 types.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         Material
}

func NewMovingSphere(center0, center1 types.Vec3, time0, time1, radius float64, mat Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: mat,
	}
}

// Get the sphere center at the given time.
func (s *MovingSphere) Center(time float64) types.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	frac := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Sub(s.Center0).Mul(frac))
}

func (s *MovingSphere) Hit(r types.Ray, tMin, tMax float64, _ *rand.Rand) (HitRecord, bool) {
	return hitSphere(s.Center(r.Time), s.Radius, s.Material, r, tMin, tMax)
}

func (s *MovingSphere) BoundingBox(time0, time1 float64) (types.AABB, bool) {
	return types.SurroundingBox(
		sphereBox(s.Center(time0), s.Radius),
		sphereBox(s.Center(time1), s.Radius),
	), true
}

// Light sampling uses the position at Time0.
func (s *MovingSphere) PdfValue(origin, dir types.Vec3, rng *rand.Rand) float64 {
	r := types.NewRay(origin, dir, s.Time0)
	if _, ok := s.Hit(r, pdfProbeEpsilon, math.Inf(1), rng); !ok {
		return 0
	}
	return 1.0 / sphereSolidAngle(s.Center0, s.Radius, origin)
}

func (s *MovingSphere) Random(origin types.Vec3, rng *rand.Rand) types.Vec3 {
	return randomToSphere(s.Center0, s.Radius, origin, rng)
}

func (*MovingSphere) hittable() {}

func hitSphere(center types.Vec3, radius float64, mat Material, r types.Ray, tMin, tMax float64) (HitRecord, bool) {
	oc := r.Origin.Sub(center)
	a := r.Direction.LenSq()
	halfB := oc.Dot(r.Direction)
	c := oc.LenSq() - radius*radius

	disc := halfB*halfB - a*c
	if disc < 0 {
		return HitRecord{}, false
	}
	sqrtd := math.Sqrt(disc)

	root := (-halfB - sqrtd) / a
	if !(root > tMin && root < tMax) {
		root = (-halfB + sqrtd) / a
		if !(root > tMin && root < tMax) {
			return HitRecord{}, false
		}
	}

	rec := HitRecord{T: root, Material: mat}
	rec.Point = r.At(root)
	outward := rec.Point.Sub(center).Div(radius)
	rec.SetFaceNormal(r, outward)
	rec.U, rec.V = sphereUV(outward)
	return rec, true
}

// Map a point on the unit sphere to (u, v) in [0,1]². u wraps around the y
// axis starting at -x; v runs from the south to the north pole.
func sphereUV(p types.Vec3) (u, v float64) {
	theta := math.Acos(types.Clamp(-p[1], -1, 1))
	phi := math.Atan2(-p[2], p[0]) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

func sphereBox(center types.Vec3, radius float64) types.AABB {
	r := types.XYZ(radius, radius, radius)
	return types.NewAABB(center.Sub(r), center.Add(r))
}

func sphereSolidAngle(center types.Vec3, radius float64, origin types.Vec3) float64 {
	distSq := center.Sub(origin).LenSq()
	cosThetaMax := math.Sqrt(math.Max(0, 1-radius*radius/distSq))
	return 2 * math.Pi * (1 - cosThetaMax)
}

func randomToSphere(center types.Vec3, radius float64, origin types.Vec3, rng *rand.Rand) types.Vec3 {
	dir := center.Sub(origin)
	uvw := types.NewONB(dir)
	return uvw.Local(types.RandomToSphere(rng, radius, dir.LenSq()))
}
