package scene

import (
	"math"
	"math/rand"

	"github.com/achilleasa/go-mctrace/scene/texture"
	"github.com/achilleasa/go-mctrace/types"
)

// Offset used when searching for the exit crossing of a medium boundary.
const mediumExitEpsilon = 0.0001

// ConstantMedium is a volume of uniform density bounded by a convex shape.
// Rays scatter at an exponentially distributed free-flight distance inside
// the boundary, so its Hit is stochastic.
type ConstantMedium struct {
	notALight
	Boundary      Hittable
	Density       float64
	PhaseFunction Material

	negInvDensity float64
}

// Create a medium whose isotropic phase function takes its color from tex.
func NewConstantMedium(boundary Hittable, density float64, tex texture.Texture) *ConstantMedium {
	return NewConstantMediumWithPhase(boundary, density, NewIsotropic(tex))
}

// Create a medium with an explicit phase function material. A medium whose
// density is not positive never scatters.
func NewConstantMediumWithPhase(boundary Hittable, density float64, phase Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: phase,
		negInvDensity: -1.0 / density,
	}
}

func (m *ConstantMedium) Hit(r types.Ray, tMin, tMax float64, rng *rand.Rand) (HitRecord, bool) {
	if !(m.Density > 0) {
		return HitRecord{}, false
	}

	rec1, ok := m.Boundary.Hit(r, math.Inf(-1), math.Inf(1), rng)
	if !ok {
		return HitRecord{}, false
	}
	rec2, ok := m.Boundary.Hit(r, rec1.T+mediumExitEpsilon, math.Inf(1), rng)
	if !ok {
		return HitRecord{}, false
	}

	t1, t2 := math.Max(rec1.T, tMin), math.Min(rec2.T, tMax)
	if t1 >= t2 {
		return HitRecord{}, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLen := r.Direction.Len()
	insideDist := (t2 - t1) * rayLen
	// 1-U keeps the argument of the log in (0, 1].
	hitDist := m.negInvDensity * math.Log(1-rng.Float64())
	if !(hitDist <= insideDist) {
		return HitRecord{}, false
	}

	t := t1 + hitDist/rayLen
	return HitRecord{
		T:         t,
		Point:     r.At(t),
		Normal:    types.XYZ(1, 0, 0),
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

func (m *ConstantMedium) BoundingBox(time0, time1 float64) (types.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}

func (*ConstantMedium) hittable() {}
