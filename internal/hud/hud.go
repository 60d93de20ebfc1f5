package hud

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"pyramid-show/internal/state"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// text is rebuilt every updateInterval frames to limit allocations.
	updateInterval = 15
)

// HUD draws a small text overlay in the top-left corner: FPS, depth, fill mode and the positional light.
type HUD struct {
	frameCount uint32
	lines      []string
}

// New returns an empty HUD; text is built on the first Draw.
func New() *HUD {
	return &HUD{}
}

// Draw renders the overlay. Call after the 3D scene, before EndDrawing.
func (h *HUD) Draw(st *state.State) {
	if h.frameCount%updateInterval == 0 || h.lines == nil {
		h.lines = Lines(st, rl.GetFPS())
	}
	h.frameCount++

	y := int32(padding)
	for _, line := range h.lines {
		rl.DrawText(line, padding, y, fontSize, rl.RayWhite)
		y += lineHeight
	}
}

// Lines formats the overlay text for st.
func Lines(st *state.State, fps int32) []string {
	mode := "wireframe"
	if st.Fractal.Filled {
		mode = "filled"
	}
	p, c := st.Lights.PointPosition, st.Lights.PointColor
	return []string{
		fmt.Sprintf("FPS: %d", fps),
		fmt.Sprintf("Depth: %d (%d-%d)", st.Fractal.Depth, st.Fractal.MinDepth, st.Fractal.MaxDepth),
		fmt.Sprintf("Mode: %s", mode),
		fmt.Sprintf("Light: (%.1f, %.1f, %.1f) rgb(%.1f, %.1f, %.1f)", p[0], p[1], p[2], c[0], c[1], c[2]),
	}
}
