package graphics

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"pyramid-show/internal/hud"
	"pyramid-show/internal/input"
	"pyramid-show/internal/scene"
	"pyramid-show/internal/state"
)

// Loop is the per-frame driver: poll input, dispatch to the controller, animate, draw, present, wait.
type Loop struct {
	Log        zerolog.Logger
	State      *state.State
	Controller *input.Controller
	Scene      *scene.Scene
	HUD        *hud.HUD
	FrameDelay time.Duration
}

// Run blocks until a quit event. The caller owns the window and releases it afterwards.
func (l *Loop) Run() {
	var events []input.Event
	for l.State.Running {
		events = Poll(events)
		for _, ev := range events {
			l.dispatch(ev)
		}
		if !l.State.Running {
			break
		}

		if l.State.Background.Step() {
			l.Log.Debug().Bool("rising", l.State.Background.Rising).Msg("background direction flipped")
		}

		r, g, b, a := l.State.Background.RGBA()
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(r, g, b, a))
		l.Scene.Draw(l.State)
		l.State.Idle()
		if l.Controller.ShowHUD && l.HUD != nil {
			l.HUD.Draw(l.State)
		}
		rl.EndDrawing()

		if l.FrameDelay > 0 {
			rl.WaitTime(l.FrameDelay.Seconds())
		}
	}
	l.Log.Info().Msg("quit")
}

func (l *Loop) dispatch(ev input.Event) {
	tr := l.Controller.Apply(l.State, ev)
	if tr == input.TransitionNone {
		return
	}
	e := l.Log.Debug().Stringer("transition", tr)
	switch tr {
	case input.TransitionDepth:
		e = e.Int("depth", l.State.Fractal.Depth)
	case input.TransitionFill:
		e = e.Bool("filled", l.State.Fractal.Filled)
	case input.TransitionLightColor:
		e = e.Floats32("color", l.State.Lights.PointColor[:])
	case input.TransitionLightMove:
		e = e.Floats32("position", l.State.Lights.PointPosition[:])
	}
	e.Msg("input")
}
