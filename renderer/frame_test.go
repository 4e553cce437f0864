package renderer

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/achilleasa/go-mctrace/types"
)

func TestFrameChannelMapping(t *testing.T) {
	f := NewFrame(1, 1, 4)

	type spec struct {
		sum float64
		exp uint8
	}
	specs := []spec{
		{0, 0},
		{1, 128},   // sqrt(0.25) = 0.5
		{4, 255},   // clamped to 0.999
		{400, 255}, // clamped to 0.999
		{-1, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for index, s := range specs {
		if got := f.channel(s.sum); got != s.exp {
			t.Fatalf("[spec %d] expected %d; got %d", index, s.exp, got)
		}
	}
}

func TestWritePPM(t *testing.T) {
	f := NewFrame(2, 2, 1)
	f.Pixels[0] = types.RGB(1, 0, 0)
	f.Pixels[1] = types.RGB(0, 0.25, 0)
	f.Pixels[2] = types.RGB(math.NaN(), 0, 1)
	f.Pixels[3] = types.RGB(0.25, 0.25, 0.25)

	var buf bytes.Buffer
	if err := f.WritePPM(&buf); err != nil {
		t.Fatal(err)
	}

	exp := "P3\n2 2\n255\n255 0 0\n0 128 0\n0 0 255\n128 128 128\n"
	if got := buf.String(); got != exp {
		t.Fatalf("expected PPM output:\n%s\ngot:\n%s", exp, got)
	}
}

func TestWritePNG(t *testing.T) {
	f := NewFrame(3, 2, 1)
	f.Pixels[4] = types.RGB(0.25, 1, 0)

	var buf bytes.Buffer
	if err := f.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("expected 3x2 image; got %v", b)
	}
	r, g, b, _ := img.At(1, 1).RGBA()
	if r>>8 != 128 || g>>8 != 255 || b>>8 != 0 {
		t.Fatalf("expected pixel (128, 255, 0); got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
}
