package input

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"pyramid-show/internal/config"
	"pyramid-show/internal/state"
)

// Transition names the state change an event caused.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionRotate
	TransitionZoom
	TransitionOrbit
	TransitionFill
	TransitionDepth
	TransitionLightColor
	TransitionLightMove
	TransitionResetCamera
	TransitionHUD
	TransitionQuit
)

var transitionNames = [...]string{
	TransitionNone:        "none",
	TransitionRotate:      "rotate",
	TransitionZoom:        "zoom",
	TransitionOrbit:       "orbit",
	TransitionFill:        "fill",
	TransitionDepth:       "depth",
	TransitionLightColor:  "light-color",
	TransitionLightMove:   "light-move",
	TransitionResetCamera: "reset-camera",
	TransitionHUD:         "hud",
	TransitionQuit:        "quit",
}

func (t Transition) String() string {
	if t < 0 || int(t) >= len(transitionNames) {
		return "unknown"
	}
	return transitionNames[t]
}

// rotation axes per key, applied RotateStep degrees per press.
var rotateAxes = map[Key]mgl32.Vec3{
	KeyArrowLeft:  {0, 1, 0},
	KeyArrowRight: {0, -1, 0},
	KeyArrowUp:    {-1, 0, 0},
	KeyArrowDown:  {1, 0, 0},
	KeyKp4:        {0, 1, 0},
	KeyKp6:        {0, -1, 0},
	KeyKp8:        {-1, 0, 0},
	KeyKp2:        {1, 0, 0},
}

var paletteKeys = map[Key]string{
	KeyR: "red",
	KeyG: "green",
	KeyB: "blue",
	KeyY: "yellow",
	KeyP: "purple",
	KeyN: "white",
}

// Controller maps events to state mutations. It holds only the key-binding options;
// all mutable data lives in the State passed to Apply.
type Controller struct {
	arrowsMoveLight bool
	escapeQuits     bool
	// ShowHUD is toggled by the H key; the frame loop reads it.
	ShowHUD bool
}

// NewController builds a controller for the configured arrow-key variant.
func NewController(c config.Controls, showHUD bool) *Controller {
	return &Controller{
		arrowsMoveLight: c.Arrows == config.ArrowsLight,
		escapeQuits:     c.EscapeQuits,
		ShowHUD:         showHUD,
	}
}

// Apply mutates s for one event and returns what changed.
func (c *Controller) Apply(s *state.State, ev Event) Transition {
	switch e := ev.(type) {
	case Quit:
		s.Running = false
		return TransitionQuit
	case KeyDown:
		return c.key(s, e.Key)
	case Wheel:
		// one zoom step per notch; a frame can carry several
		switch {
		case e.Delta > 0:
			s.Camera.Scale(math32.Pow(s.ZoomIn, e.Delta))
		case e.Delta < 0:
			s.Camera.Scale(math32.Pow(s.ZoomOut, -e.Delta))
		default:
			return TransitionNone
		}
		return TransitionZoom
	case MouseMotion:
		if !e.Left {
			return TransitionNone
		}
		if !s.Camera.Orbit(e.Dx, e.Dy) {
			return TransitionNone
		}
		return TransitionOrbit
	}
	return TransitionNone
}

func (c *Controller) key(s *state.State, k Key) Transition {
	if c.arrowsMoveLight {
		step := s.NudgeStep
		switch k {
		case KeyArrowLeft:
			s.Lights.Nudge(-step, 0)
			return TransitionLightMove
		case KeyArrowRight:
			s.Lights.Nudge(step, 0)
			return TransitionLightMove
		case KeyArrowUp:
			s.Lights.Nudge(0, step)
			return TransitionLightMove
		case KeyArrowDown:
			s.Lights.Nudge(0, -step)
			return TransitionLightMove
		}
	}
	if axis, ok := rotateAxes[k]; ok {
		s.Camera.Rotate(s.RotateStep, axis)
		return TransitionRotate
	}
	if name, ok := paletteKeys[k]; ok {
		if s.Lights.SetColor(name) {
			return TransitionLightColor
		}
		return TransitionNone
	}
	switch k {
	case KeyV, KeyC:
		s.Fractal.Filled = !s.Fractal.Filled
		return TransitionFill
	case KeyW:
		if s.Fractal.SetDepth(s.Fractal.Depth + 1) {
			return TransitionDepth
		}
	case KeyS:
		if s.Fractal.SetDepth(s.Fractal.Depth - 1) {
			return TransitionDepth
		}
	case KeyHome:
		s.Camera.Reset()
		return TransitionResetCamera
	case KeyH:
		c.ShowHUD = !c.ShowHUD
		return TransitionHUD
	case KeyEscape:
		if c.escapeQuits {
			s.Running = false
			return TransitionQuit
		}
	}
	return TransitionNone
}
