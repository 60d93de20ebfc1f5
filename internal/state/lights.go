package state

import "github.com/go-gl/mathgl/mgl32"

// Palette is the six fixed colours the positional light can be switched to.
var Palette = map[string]mgl32.Vec3{
	"red":    {1, 0, 0},
	"green":  {0, 1, 0},
	"blue":   {0, 0, 1},
	"yellow": {1, 1, 0},
	"purple": {0.6, 0, 1},
	"white":  {1, 1, 1},
}

// Lights is one fixed directional light and one positional light whose colour and position change at runtime.
// Field names match config.Lighting so it can be copied straight from the config.
type Lights struct {
	Enabled          bool
	Ambient          mgl32.Vec3
	DirectionalDir   mgl32.Vec3
	DirectionalColor mgl32.Vec3
	PointPosition    mgl32.Vec3
	PointColor       mgl32.Vec3
	// Version increases on every change so renderers can upload uniforms on demand.
	Version uint64
}

// SetColor switches the positional light to a palette colour. Unknown names are ignored.
func (l *Lights) SetColor(name string) bool {
	c, ok := Palette[name]
	if !ok || c == l.PointColor {
		return false
	}
	l.PointColor = c
	l.Version++
	return true
}

// Nudge moves the positional light by (dx, dy) in x/y.
func (l *Lights) Nudge(dx, dy float32) {
	l.PointPosition = l.PointPosition.Add(mgl32.Vec3{dx, dy, 0})
	l.Version++
}
