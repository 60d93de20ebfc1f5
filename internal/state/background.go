package state

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"pyramid-show/internal/config"
)

// Background ping-pongs the clear colour between Dark and Target. Each Step moves every channel
// a fixed fraction of the remaining distance toward the current goal; the direction flips once every
// channel has crossed its threshold (Up while rising, Down while falling), so it never settles.
type Background struct {
	Color  mgl32.Vec3
	Dark   mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
	Down   mgl32.Vec3
	Rate   float32
	Rising bool
}

// NewBackground starts at the dark colour, rising.
func NewBackground(cfg config.Background) Background {
	return Background{
		Color:  cfg.Dark,
		Dark:   cfg.Dark,
		Target: cfg.Target,
		Up:     cfg.UpThreshold,
		Down:   cfg.DownThreshold,
		Rate:   cfg.Step,
		Rising: true,
	}
}

// Step advances one frame and reports whether the direction flipped.
func (b *Background) Step() bool {
	goal := b.Dark
	if b.Rising {
		goal = b.Target
	}
	crossed := true
	for i := 0; i < 3; i++ {
		c := b.Color[i] + (goal[i]-b.Color[i])*b.Rate
		c = math32.Max(0, math32.Min(1, c))
		b.Color[i] = c
		if b.Rising && c < b.Up[i] || !b.Rising && c > b.Down[i] {
			crossed = false
		}
	}
	if crossed {
		b.Rising = !b.Rising
	}
	return crossed
}

// RGBA returns the current colour as 8-bit channels with full alpha.
func (b *Background) RGBA() (r, g, bl, a uint8) {
	to8 := func(v float32) uint8 { return uint8(math32.Round(v * 255)) }
	return to8(b.Color[0]), to8(b.Color[1]), to8(b.Color[2]), 255
}
