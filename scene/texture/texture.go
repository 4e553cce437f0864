// Package texture provides the color sources consumed by materials.
package texture

import (
	"math"

	"github.com/achilleasa/go-mctrace/types"
)

// A Texture maps surface coordinates and a hit point to a color. Values must
// be pure functions of their inputs so textures can be shared by all tracers.
type Texture interface {
	Value(u, v float64, p types.Vec3) types.Color
}

// A constant color.
type SolidColor struct {
	Color types.Color
}

func NewSolidColor(r, g, b float64) *SolidColor {
	return &SolidColor{Color: types.RGB(r, g, b)}
}

func (t *SolidColor) Value(_, _ float64, _ types.Vec3) types.Color {
	return t.Color
}

// A 3D checker pattern alternating between two textures.
type Checker struct {
	Odd  Texture
	Even Texture
}

func NewChecker(odd, even types.Color) *Checker {
	return &Checker{
		Odd:  &SolidColor{odd},
		Even: &SolidColor{even},
	}
}

func (t *Checker) Value(u, v float64, p types.Vec3) types.Color {
	sines := math.Sin(10*p[0]) * math.Sin(10*p[1]) * math.Sin(10*p[2])
	if sines < 0 {
		return t.Odd.Value(u, v, p)
	}
	return t.Even.Value(u, v, p)
}
