package input

// Key identifies a keyboard key independently of the windowing library.
type Key int

const (
	KeyNone Key = iota
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyKp4
	KeyKp6
	KeyKp8
	KeyKp2
	KeyV
	KeyC
	KeyW
	KeyS
	KeyR
	KeyG
	KeyB
	KeyY
	KeyP
	KeyN
	KeyH
	KeyHome
	KeyEscape
)

// Event is one input event delivered to the Controller. Exactly one of the concrete types below.
type Event interface {
	event()
}

// KeyDown is a key press or an auto-repeat of a held key.
type KeyDown struct {
	Key Key
}

// Wheel is a scroll of Delta notches; positive is away from the user.
type Wheel struct {
	Delta float32
}

// MouseMotion is a pointer move of (Dx, Dy) pixels since the previous motion event.
// Left reports whether the left button was held during the move.
type MouseMotion struct {
	Dx, Dy float32
	Left   bool
}

// Quit asks the frame loop to stop.
type Quit struct{}

func (KeyDown) event()     {}
func (Wheel) event()       {}
func (MouseMotion) event() {}
func (Quit) event()        {}
