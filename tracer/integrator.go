package tracer

import (
	"math"
	"math/rand"

	"github.com/achilleasa/go-mctrace/scene"
	"github.com/achilleasa/go-mctrace/types"
)

// Minimum hit distance. Rays spawned at a surface would otherwise
// re-intersect it due to floating point error.
const hitEpsilon = 1e-4

// Integrator estimates the radiance carried along camera rays through a
// scene. It holds no mutable state so a single instance may be shared by
// all tracers.
type Integrator struct {
	Scene    *scene.Scene
	MaxDepth int
}

// Create a new integrator for the given scene.
func NewIntegrator(sc *scene.Scene, maxDepth int) *Integrator {
	return &Integrator{Scene: sc, MaxDepth: maxDepth}
}

// Trace a single ray and return its radiance estimate. The result may be
// non-finite; callers that accumulate samples should use Sample.
func (in *Integrator) Trace(r types.Ray, depth int, rng *rand.Rand) types.Color {
	if depth <= 0 {
		return types.Black
	}

	rec, ok := in.Scene.World.Hit(r, hitEpsilon, math.Inf(1), rng)
	if !ok {
		return in.Scene.Background
	}

	emitted := rec.Material.Emitted(r, &rec, rec.U, rec.V, rec.Point)
	srec, ok := rec.Material.Scatter(r, &rec, rng)
	if !ok {
		return emitted
	}

	// Specular
	if srec.Pdf == nil {
		return emitted.Add(srec.Attenuation.MulColor(in.Trace(srec.Ray, depth-1, rng)))
	}

	samplingPdf := srec.Pdf
	if in.Scene.HasLights() {
		samplingPdf = scene.NewMixturePdf(scene.NewHittablePdf(in.Scene.Lights, rec.Point), srec.Pdf)
	}

	scattered := types.NewRay(rec.Point, samplingPdf.Generate(rng), r.Time)
	pdfValue := samplingPdf.Value(scattered.Direction, rng)
	if !(pdfValue > 0) || math.IsInf(pdfValue, 0) {
		return emitted
	}

	weight := rec.Material.ScatteringPdf(r, &rec, scattered) / pdfValue
	contrib := srec.Attenuation.MulColor(in.Trace(scattered, depth-1, rng)).Mul(weight)
	if !contrib.IsFinite() {
		return emitted
	}
	return emitted.Add(contrib)
}

// Trace one jittered camera ray through pixel (x, y) of a frameW x frameH
// frame. Row 0 is the top of the image. Non-finite estimates are replaced
// by zero so a single bad sample cannot poison a pixel.
func (in *Integrator) Sample(x, y, frameW, frameH int, rng *rand.Rand) types.Color {
	s := (float64(x) + rng.Float64()) / math.Max(1, float64(frameW-1))
	t := (float64(frameH-y-1) + rng.Float64()) / math.Max(1, float64(frameH-1))
	r := in.Scene.Camera.Ray(s, t, rng)
	return in.Trace(r, in.MaxDepth, rng).Sanitize()
}
