package types

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Color holds linear radiance values. It is isomorphic to Vec3 but kept
// as a separate type so points and colors cannot be mixed by accident.
type Color f64.Vec3

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// Define a color.
func RGB(r, g, b float64) Color {
	return Color{r, g, b}
}

func (c Color) Add(c2 Color) Color {
	return Color{c[0] + c2[0], c[1] + c2[1], c[2] + c2[2]}
}

func (c Color) Mul(s float64) Color {
	return Color{c[0] * s, c[1] * s, c[2] * s}
}

func (c Color) Div(s float64) Color {
	return c.Mul(1.0 / s)
}

// Component-wise product, used for attenuation.
func (c Color) MulColor(c2 Color) Color {
	return Color{c[0] * c2[0], c[1] * c2[1], c[2] * c2[2]}
}

// Returns true if no channel is NaN or infinite.
func (c Color) IsFinite() bool {
	return Vec3(c).IsFinite()
}

// Replace any NaN or infinite channel with 0.
func (c Color) Sanitize() Color {
	for i, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			c[i] = 0
		}
	}
	return c
}
