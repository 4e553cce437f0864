package scene

import (
	"math"
	"math/rand"

	"github.com/achilleasa/go-mctrace/types"
)

// Pdf is a sampling density over directions. Implementations can both draw
// a direction and report the density of an arbitrary one.
type Pdf interface {
	Value(dir types.Vec3, rng *rand.Rand) float64
	Generate(rng *rand.Rand) types.Vec3

	pdf()
}

// CosinePdf is the cosine-weighted hemisphere about a normal.
type CosinePdf struct {
	uvw types.ONB
}

func NewCosinePdf(normal types.Vec3) *CosinePdf {
	return &CosinePdf{uvw: types.NewONB(normal)}
}

func (p *CosinePdf) Value(dir types.Vec3, _ *rand.Rand) float64 {
	cosine := dir.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

func (p *CosinePdf) Generate(rng *rand.Rand) types.Vec3 {
	return p.uvw.Local(types.RandomCosineDirection(rng))
}

func (*CosinePdf) pdf() {}

// HittablePdf samples directions from Origin towards a target shape.
type HittablePdf struct {
	Origin types.Vec3
	Target Hittable
}

func NewHittablePdf(target Hittable, origin types.Vec3) *HittablePdf {
	return &HittablePdf{Origin: origin, Target: target}
}

func (p *HittablePdf) Value(dir types.Vec3, rng *rand.Rand) float64 {
	return p.Target.PdfValue(p.Origin, dir, rng)
}

func (p *HittablePdf) Generate(rng *rand.Rand) types.Vec3 {
	return p.Target.Random(p.Origin, rng)
}

func (*HittablePdf) pdf() {}

// MixturePdf is an equal-weight combination of two densities.
type MixturePdf struct {
	P0, P1 Pdf
}

func NewMixturePdf(p0, p1 Pdf) *MixturePdf {
	return &MixturePdf{P0: p0, P1: p1}
}

func (p *MixturePdf) Value(dir types.Vec3, rng *rand.Rand) float64 {
	return 0.5*p.P0.Value(dir, rng) + 0.5*p.P1.Value(dir, rng)
}

func (p *MixturePdf) Generate(rng *rand.Rand) types.Vec3 {
	if rng.Float64() < 0.5 {
		return p.P0.Generate(rng)
	}
	return p.P1.Generate(rng)
}

func (*MixturePdf) pdf() {}
