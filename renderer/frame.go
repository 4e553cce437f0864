package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/achilleasa/go-mctrace/types"
)

// Largest channel value before scaling to 8 bits.
const maxChannel = 0.999

// A rendered frame. Pixels hold the sum of all samples for each pixel in
// row-major order starting at the top-left corner.
type Frame struct {
	W, H    uint32
	Pixels  []types.Color
	Samples uint32
}

// Allocate an empty frame.
func NewFrame(w, h, samples uint32) *Frame {
	return &Frame{
		W:       w,
		H:       h,
		Pixels:  make([]types.Color, int(w)*int(h)),
		Samples: samples,
	}
}

// Map a summed channel value to 8 bits: average, gamma 2 and clamp.
func (f *Frame) channel(sum float64) uint8 {
	v := math.Sqrt(sum / float64(f.Samples))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v = math.Max(0, math.Min(maxChannel, v))
	return uint8(256 * v)
}

// Get the 8-bit color of the pixel at (x, y).
func (f *Frame) RGB8(x, y uint32) (r, g, b uint8) {
	c := f.Pixels[y*f.W+x]
	return f.channel(c[0]), f.channel(c[1]), f.channel(c[2])
}

// Write frame as a plain-text (P3) PPM image.
func (f *Frame) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.W, f.H); err != nil {
		return err
	}
	for y := uint32(0); y < f.H; y++ {
		for x := uint32(0); x < f.W; x++ {
			r, g, b := f.RGB8(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Convert frame to an RGBA image.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(f.W), int(f.H)))
	for y := uint32(0); y < f.H; y++ {
		for x := uint32(0); x < f.W; x++ {
			r, g, b := f.RGB8(x, y)
			img.SetRGBA(int(x), int(y), color.RGBA{r, g, b, 255})
		}
	}
	return img
}

// Write frame as a PNG image.
func (f *Frame) WritePNG(w io.Writer) error {
	return png.Encode(w, f.Image())
}
