package texture

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/achilleasa/go-mctrace/asset"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// A decoded texture image stored as tightly packed 8-bit RGB triplets in
// row-major order starting from the top-left pixel.
type Texture struct {
	Width  uint32
	Height uint32

	Data []byte
}

// Decode a texture from a Resource. Any format registered with the image
// package (png, jpeg, gif, bmp, tiff and webp) is supported.
func New(res *asset.Resource) (*Texture, error) {
	img, format, err := image.Decode(res)
	if err != nil {
		return nil, fmt.Errorf("texture: could not decode %s: %w", res.Path(), err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("texture: %s image %s has no pixels", format, res.Path())
	}

	tex := &Texture{
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
		Data:   make([]byte, 0, 3*bounds.Dx()*bounds.Dy()),
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			tex.Data = append(tex.Data, c.R, c.G, c.B)
		}
	}

	return tex, nil
}

// Load a texture from a local path or http(s) URL.
func Load(pathToTexture string) (*Texture, error) {
	res, err := asset.NewResource(pathToTexture, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return New(res)
}

// Get the RGB bytes of the texel at (i, j).
func (t *Texture) Texel(i, j uint32) (r, g, b byte) {
	offset := 3 * (j*t.Width + i)
	return t.Data[offset], t.Data[offset+1], t.Data[offset+2]
}
