package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Open creates the fixed-size, double-buffered window and GL context. Escape is not an exit key;
// quitting is decided by the input controller.
func Open(width, height int32, title string) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, title)
	rl.SetExitKey(rl.KeyNull)
}

// Close releases the window and GL context.
func Close() {
	rl.CloseWindow()
}
