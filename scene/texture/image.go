package texture

import (
	"github.com/achilleasa/go-mctrace/asset/texture"
	"github.com/achilleasa/go-mctrace/log"
	"github.com/achilleasa/go-mctrace/types"
)

var logger = log.New("texture")

const maxChannel = 255.0

// An image mapped over (u, v) using nearest texel lookup.
type Image struct {
	tex *texture.Texture
}

// The texture used when an image cannot be loaded.
func placeholder() *texture.Texture {
	return &texture.Texture{Width: 1, Height: 1, Data: []byte{0, 1, 1}}
}

// Load an image texture from a file path or http(s) URL. Load failures are
// logged and replaced by a 1x1 placeholder so rendering can proceed.
func NewImage(pathToImage string) *Image {
	tex, err := texture.Load(pathToImage)
	if err != nil {
		logger.Warningf("using placeholder for image texture %q: %v", pathToImage, err)
		tex = placeholder()
	}
	return &Image{tex: tex}
}

// Wrap an already decoded texture.
func NewImageFromTexture(tex *texture.Texture) *Image {
	if tex == nil || tex.Width == 0 || tex.Height == 0 {
		tex = placeholder()
	}
	return &Image{tex: tex}
}

func (t *Image) Value(u, v float64, _ types.Vec3) types.Color {
	u = types.Clamp(u, 0, 1)
	// Image rows run top to bottom.
	v = 1 - types.Clamp(v, 0, 1)

	i := uint32(u * float64(t.tex.Width))
	j := uint32(v * float64(t.tex.Height))
	if i >= t.tex.Width {
		i = t.tex.Width - 1
	}
	if j >= t.tex.Height {
		j = t.tex.Height - 1
	}

	r, g, b := t.tex.Texel(i, j)
	return types.RGB(float64(r)/maxChannel, float64(g)/maxChannel, float64(b)/maxChannel)
}
