package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"pyramid-show/internal/input"
)

// keyMap is ordered so events within one frame are dispatched deterministically.
var keyMap = []struct {
	raylib int32
	key    input.Key
}{
	{rl.KeyLeft, input.KeyArrowLeft},
	{rl.KeyRight, input.KeyArrowRight},
	{rl.KeyUp, input.KeyArrowUp},
	{rl.KeyDown, input.KeyArrowDown},
	{rl.KeyKp4, input.KeyKp4},
	{rl.KeyKp6, input.KeyKp6},
	{rl.KeyKp8, input.KeyKp8},
	{rl.KeyKp2, input.KeyKp2},
	{rl.KeyV, input.KeyV},
	{rl.KeyC, input.KeyC},
	{rl.KeyW, input.KeyW},
	{rl.KeyS, input.KeyS},
	{rl.KeyR, input.KeyR},
	{rl.KeyG, input.KeyG},
	{rl.KeyB, input.KeyB},
	{rl.KeyY, input.KeyY},
	{rl.KeyP, input.KeyP},
	{rl.KeyN, input.KeyN},
	{rl.KeyH, input.KeyH},
	{rl.KeyHome, input.KeyHome},
	{rl.KeyEscape, input.KeyEscape},
}

// Poll collects this frame's input as events: window close, key presses (including auto-repeat),
// wheel scroll and pointer motion. Must be called once per frame after EndDrawing has polled the OS.
func Poll(buf []input.Event) []input.Event {
	buf = buf[:0]
	if rl.WindowShouldClose() {
		return append(buf, input.Quit{})
	}
	for _, m := range keyMap {
		if rl.IsKeyPressed(m.raylib) || rl.IsKeyPressedRepeat(m.raylib) {
			buf = append(buf, input.KeyDown{Key: m.key})
		}
	}
	if w := rl.GetMouseWheelMove(); w != 0 {
		buf = append(buf, input.Wheel{Delta: w})
	}
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		buf = append(buf, input.MouseMotion{Dx: d.X, Dy: d.Y, Left: rl.IsMouseButtonDown(rl.MouseButtonLeft)})
	}
	return buf
}
