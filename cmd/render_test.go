package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/achilleasa/go-mctrace/renderer"
	"github.com/achilleasa/go-mctrace/types"
)

func TestWriteFrameFormats(t *testing.T) {
	frame := renderer.NewFrame(2, 1, 1)
	frame.Pixels[0] = types.RGB(1, 1, 1)

	type spec struct {
		file      string
		expPrefix []byte
	}
	specs := []spec{
		{"frame.ppm", []byte("P3\n2 1\n255\n")},
		{"frame.PNG", []byte("\x89PNG")},
		{"frame", []byte("P3\n")},
	}

	dir := t.TempDir()
	for index, s := range specs {
		imgFile := filepath.Join(dir, s.file)
		if err := writeFrame(frame, imgFile); err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", index, err)
		}
		data, err := os.ReadFile(imgFile)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, s.expPrefix) {
			t.Fatalf("[spec %d] expected file to start with %q; got %q", index, s.expPrefix, data[:len(s.expPrefix)])
		}
	}
}
