package scene

import (
	"math"
	"math/rand"

	"github.com/achilleasa/go-mctrace/scene/texture"
	"github.com/achilleasa/go-mctrace/types"
)

// The result of a material scatter event. A nil Pdf marks a specular scatter
// whose direction was not drawn from a density.
type ScatterRecord struct {
	Ray         types.Ray
	Attenuation types.Color
	Pdf         Pdf
}

// Material describes how a surface scatters and emits light. Materials are
// shared between primitives and never modified after construction.
type Material interface {
	Scatter(rayIn types.Ray, rec *HitRecord, rng *rand.Rand) (ScatterRecord, bool)

	// Density of scattering rayIn into scattered.
	ScatteringPdf(rayIn types.Ray, rec *HitRecord, scattered types.Ray) float64

	Emitted(rayIn types.Ray, rec *HitRecord, u, v float64, p types.Vec3) types.Color

	material()
}

// Default behavior: absorb everything and emit nothing.
type baseMaterial struct{}

func (baseMaterial) Scatter(_ types.Ray, _ *HitRecord, _ *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

func (baseMaterial) ScatteringPdf(_ types.Ray, _ *HitRecord, _ types.Ray) float64 {
	return 1
}

func (baseMaterial) Emitted(_ types.Ray, _ *HitRecord, _, _ float64, _ types.Vec3) types.Color {
	return types.Black
}

func (baseMaterial) material() {}

// Lambertian is an ideal diffuse reflector.
type Lambertian struct {
	baseMaterial
	Albedo texture.Texture
}

func NewLambertian(albedo texture.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

func NewLambertianColor(r, g, b float64) *Lambertian {
	return NewLambertian(texture.NewSolidColor(r, g, b))
}

func (m *Lambertian) Scatter(rayIn types.Ray, rec *HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	pdf := NewCosinePdf(rec.Normal)
	return ScatterRecord{
		Ray:         types.NewRay(rec.Point, pdf.Generate(rng), rayIn.Time),
		Attenuation: m.Albedo.Value(rec.U, rec.V, rec.Point),
		Pdf:         pdf,
	}, true
}

func (m *Lambertian) ScatteringPdf(_ types.Ray, rec *HitRecord, scattered types.Ray) float64 {
	cosine := rec.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}

// Metal reflects specularly with a fuzzy lobe.
type Metal struct {
	baseMaterial
	Albedo texture.Texture
	Fuzz   float64
}

// Fuzz is clamped to at most 1.
func NewMetal(albedo texture.Texture, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: math.Min(fuzz, 1)}
}

func NewMetalColor(r, g, b, fuzz float64) *Metal {
	return NewMetal(texture.NewSolidColor(r, g, b), fuzz)
}

func (m *Metal) Scatter(rayIn types.Ray, rec *HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(rec.Normal)
	dir := reflected.Add(types.RandomInUnitSphere(rng).Mul(m.Fuzz))
	if dir.Dot(rec.Normal) <= 0 {
		return ScatterRecord{}, false
	}
	return ScatterRecord{
		Ray:         types.NewRay(rec.Point, dir, rayIn.Time),
		Attenuation: m.Albedo.Value(rec.U, rec.V, rec.Point),
	}, true
}

// Dielectric refracts when possible and otherwise reflects.
type Dielectric struct {
	baseMaterial
	IOR float64
}

func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{IOR: ior}
}

func (m *Dielectric) Scatter(rayIn types.Ray, rec *HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	ratio := m.IOR
	if rec.FrontFace {
		ratio = 1.0 / m.IOR
	}

	unitDir := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDir.Neg().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var dir types.Vec3
	if ratio*sinTheta > 1.0 || schlick(cosTheta, ratio) > rng.Float64() {
		dir = unitDir.Reflect(rec.Normal)
	} else {
		dir = unitDir.Refract(rec.Normal, ratio)
	}

	return ScatterRecord{
		Ray:         types.NewRay(rec.Point, dir, rayIn.Time),
		Attenuation: types.White,
	}, true
}

// Schlick's approximation of the Fresnel reflectance.
func schlick(cosine, ratio float64) float64 {
	r0 := (1 - ratio) / (1 + ratio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// Isotropic is the phase function of a participating medium.
type Isotropic struct {
	baseMaterial
	Albedo texture.Texture
}

func NewIsotropic(albedo texture.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

func (m *Isotropic) Scatter(rayIn types.Ray, rec *HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{
		Ray:         types.NewRay(rec.Point, types.RandomInUnitSphere(rng), rayIn.Time),
		Attenuation: m.Albedo.Value(rec.U, rec.V, rec.Point),
	}, true
}

func (m *Isotropic) ScatteringPdf(_ types.Ray, _ *HitRecord, _ types.Ray) float64 {
	return 1.0 / (4 * math.Pi)
}

// DiffuseLight is a one-sided emitter that never scatters.
type DiffuseLight struct {
	baseMaterial
	Emit texture.Texture
}

func NewDiffuseLight(emit texture.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

func NewDiffuseLightColor(r, g, b float64) *DiffuseLight {
	return NewDiffuseLight(texture.NewSolidColor(r, g, b))
}

func (m *DiffuseLight) Emitted(_ types.Ray, rec *HitRecord, u, v float64, p types.Vec3) types.Color {
	if !rec.FrontFace {
		return types.Black
	}
	return m.Emit.Value(u, v, p)
}
