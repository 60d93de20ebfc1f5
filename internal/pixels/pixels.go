// Package pixels decodes image files into tightly packed RGB bytes for texture upload.
package pixels

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"

	// extra decoders registered with image.Decode
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// RGB is a decoded image: Width*Height*3 bytes, rows top to bottom, no padding.
type RGB struct {
	Width  int
	Height int
	Data   []byte
}

// Load decodes the image at path at its own size. Any format registered with the image package is accepted.
func Load(path string) (RGB, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return RGB{}, fmt.Errorf("pixels: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts img to packed straight (non-premultiplied) RGB, dropping alpha. No scaling is done.
func FromImage(img image.Image) RGB {
	rgba := clone.AsRGBA(img)
	b := rgba.Bounds()
	w, h := b.Dx(), b.Dy()
	out := RGB{Width: w, Height: h, Data: make([]byte, 0, w*h*3)}
	for y := 0; y < h; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4]
			out.Data = append(out.Data, unpremultiply(p[0], p[3]), unpremultiply(p[1], p[3]), unpremultiply(p[2], p[3]))
		}
	}
	return out
}

// unpremultiply undoes image.RGBA's alpha premultiplication for one 8-bit channel.
func unpremultiply(c, a uint8) uint8 {
	switch a {
	case 0:
		return 0
	case 0xff:
		return c
	}
	return uint8(min(0xff, (uint32(c)*0xff+uint32(a)/2)/uint32(a)))
}
