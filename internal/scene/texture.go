package scene

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"pyramid-show/internal/pixels"
)

// LoadTexture decodes path to RGB at its own size and uploads it once, with nearest filtering and
// repeat wrapping. Must be called after the window (GL context) exists.
func LoadTexture(path string) (rl.Texture2D, error) {
	rgb, err := pixels.Load(path)
	if err != nil {
		return rl.Texture2D{}, fmt.Errorf("scene: texture %s: %w", path, err)
	}
	img := rl.NewImage(rgb.Data, int32(rgb.Width), int32(rgb.Height), 1, rl.UncompressedR8g8b8)
	tex := rl.LoadTextureFromImage(img)
	if !rl.IsTextureValid(tex) {
		return rl.Texture2D{}, fmt.Errorf("scene: texture %s: upload failed", path)
	}
	rl.SetTextureFilter(tex, rl.FilterPoint)
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	return tex, nil
}
