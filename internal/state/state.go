package state

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"

	"pyramid-show/internal/config"
)

// Fractal holds the user-adjustable pyramid parameters. Depth stays within [MinDepth, MaxDepth].
type Fractal struct {
	Depth    int
	MinDepth int
	MaxDepth int
	Length   float32
	Filled   bool
}

// SetDepth stores d clamped to [MinDepth, MaxDepth] and reports whether the depth changed.
func (f *Fractal) SetDepth(d int) bool {
	d = max(f.MinDepth, min(f.MaxDepth, d))
	if d == f.Depth {
		return false
	}
	f.Depth = d
	return true
}

// State is everything the frame loop reads and the input controller writes. It is owned by one goroutine.
type State struct {
	Camera     Camera
	Fractal    Fractal
	Lights     Lights
	Background Background
	// Steps copied from config so the controller does not need the config.
	RotateStep   float32
	ZoomIn       float32
	ZoomOut      float32
	IdleRotation float32
	NudgeStep    float32
	Running      bool
}

// New builds the initial state from cfg: camera pulled back by cfg.Camera.Distance, fractal and lights as configured,
// background starting at the dark colour and rising.
func New(cfg config.Config) (*State, error) {
	s := &State{
		Camera:       NewCamera(cfg.Camera.Distance),
		Background:   NewBackground(cfg.Background),
		RotateStep:   cfg.Camera.RotateStep,
		ZoomIn:       cfg.Camera.ZoomIn,
		ZoomOut:      cfg.Camera.ZoomOut,
		IdleRotation: cfg.Camera.IdleRotation,
		NudgeStep:    cfg.Lighting.NudgeStep,
		Running:      true,
	}
	if err := copier.Copy(&s.Fractal, &cfg.Fractal); err != nil {
		return nil, fmt.Errorf("state: fractal: %w", err)
	}
	s.Fractal.Depth = max(s.Fractal.MinDepth, min(s.Fractal.MaxDepth, s.Fractal.Depth))
	if err := copier.Copy(&s.Lights, &cfg.Lighting); err != nil {
		return nil, fmt.Errorf("state: lights: %w", err)
	}
	return s, nil
}

// Idle applies the small constant per-frame rotation about +Y.
func (s *State) Idle() {
	s.Camera.Rotate(s.IdleRotation, mgl32.Vec3{0, 1, 0})
}
