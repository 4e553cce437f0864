package types

import (
	"math"
	"math/rand"
)

// All sampling helpers draw from an explicit generator so renders are
// reproducible for a fixed seed.

// Uniform value in [min, max).
func RandomRange(rng *rand.Rand, min, max float64) float64 {
	return min + (max-min)*rng.Float64()
}

// Vector with uniform components in [min, max).
func RandomVec3(rng *rand.Rand, min, max float64) Vec3 {
	return Vec3{RandomRange(rng, min, max), RandomRange(rng, min, max), RandomRange(rng, min, max)}
}

// Color with uniform channels in [min, max).
func RandomColor(rng *rand.Rand, min, max float64) Color {
	return Color(RandomVec3(rng, min, max))
}

// Rejection-sample a point inside the unit sphere.
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := RandomVec3(rng, -1, 1)
		if p.LenSq() < 1 {
			return p
		}
	}
}

// Uniform direction on the unit sphere.
func RandomUnitVector(rng *rand.Rand) Vec3 {
	return RandomInUnitSphere(rng).Normalize()
}

// Rejection-sample a point inside the unit disk on the z=0 plane.
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{RandomRange(rng, -1, 1), RandomRange(rng, -1, 1), 0}
		if p.LenSq() < 1 {
			return p
		}
	}
}

// Cosine-weighted direction about +z.
func RandomCosineDirection(rng *rand.Rand) Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()
	z := math.Sqrt(1 - r2)
	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	return Vec3{x, y, z}
}

// Direction about +z uniformly distributed over the cone subtended by a
// sphere of the given radius at squared distance distSq.
func RandomToSphere(rng *rand.Rand, radius, distSq float64) Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()
	z := 1 + r2*(math.Sqrt(math.Max(0, 1-radius*radius/distSq))-1)
	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(1-z*z)
	y := math.Sin(phi) * math.Sqrt(1-z*z)
	return Vec3{x, y, z}
}
