package scene

import (
	"math"
	"math/rand"

	"github.com/achilleasa/go-mctrace/types"
)

// Camera configuration.
type CameraConfig struct {
	LookFrom types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	// Vertical field of view in degrees.
	VFov        float64
	AspectRatio float64

	// Lens aperture and focus distance for defocus blur. A zero aperture
	// yields a pinhole camera.
	Aperture  float64
	FocusDist float64

	// Shutter open and close times.
	Time0, Time1 float64
}

// A thin lens camera with a time-sampled shutter.
type Camera struct {
	Config CameraConfig

	origin          types.Vec3
	lowerLeftCorner types.Vec3
	horizontal      types.Vec3
	vertical        types.Vec3
	u, v, w         types.Vec3
	lensRadius      float64
}

func NewCamera(cfg CameraConfig) *Camera {
	if cfg.Up == (types.Vec3{}) {
		cfg.Up = types.XYZ(0, 1, 0)
	}
	if cfg.FocusDist == 0 {
		cfg.FocusDist = 1
	}
	if cfg.AspectRatio == 0 {
		cfg.AspectRatio = 1
	}

	h := math.Tan(types.DegToRad(cfg.VFov) / 2)
	viewportH := 2.0 * h
	viewportW := cfg.AspectRatio * viewportH

	c := &Camera{Config: cfg, origin: cfg.LookFrom, lensRadius: cfg.Aperture / 2}
	c.w = cfg.LookFrom.Sub(cfg.LookAt).Normalize()
	c.u = cfg.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	c.horizontal = c.u.Mul(cfg.FocusDist * viewportW)
	c.vertical = c.v.Mul(cfg.FocusDist * viewportH)
	c.lowerLeftCorner = c.origin.
		Sub(c.horizontal.Mul(0.5)).
		Sub(c.vertical.Mul(0.5)).
		Sub(c.w.Mul(cfg.FocusDist))
	return c
}

// Generate a ray through viewport coordinates (s, t) in [0,1]², with
// (0, 0) at the bottom-left corner.
func (c *Camera) Ray(s, t float64, rng *rand.Rand) types.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := types.RandomInUnitDisk(rng).Mul(c.lensRadius)
		origin = origin.Add(c.u.Mul(rd[0])).Add(c.v.Mul(rd[1]))
	}

	dir := c.lowerLeftCorner.
		Add(c.horizontal.Mul(s)).
		Add(c.vertical.Mul(t)).
		Sub(origin)

	time := c.Config.Time0
	if c.Config.Time1 > c.Config.Time0 {
		time = types.RandomRange(rng, c.Config.Time0, c.Config.Time1)
	}
	return types.NewRay(origin, dir, time)
}
