package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no -config flag is given, relative to the working directory.
const DefaultPath = "pyramid.yaml"

// ErrInvalid is wrapped by every validation failure returned from Validate.
var ErrInvalid = errors.New("invalid config")

// Arrow key variants: arrows either rotate the camera or nudge the positional light.
const (
	ArrowsCamera = "camera"
	ArrowsLight  = "light"
)

// Window is the fixed-size, double-buffered output window.
type Window struct {
	Width        int32  `yaml:"width"`
	Height       int32  `yaml:"height"`
	Title        string `yaml:"title"`
	FrameDelayMs int    `yaml:"frame_delay_ms"`
	HUD          bool   `yaml:"hud"`
}

// Camera holds projection parameters and the per-event transform steps.
type Camera struct {
	Fovy         float32 `yaml:"fovy"`
	Near         float32 `yaml:"near"`
	Far          float32 `yaml:"far"`
	Distance     float32 `yaml:"distance"`
	RotateStep   float32 `yaml:"rotate_step"`   // degrees per key press
	ZoomIn       float32 `yaml:"zoom_in"`       // scale per wheel notch up
	ZoomOut      float32 `yaml:"zoom_out"`      // scale per wheel notch down
	IdleRotation float32 `yaml:"idle_rotation"` // degrees about +Y per frame
}

// Fractal is the initial fractal configuration; Depth is clamped to [MinDepth, MaxDepth].
type Fractal struct {
	Depth    int     `yaml:"depth"`
	MinDepth int     `yaml:"min_depth"`
	MaxDepth int     `yaml:"max_depth"`
	Length   float32 `yaml:"length"`
	Filled   bool    `yaml:"filled"`
}

// Ground is the textured quad drawn beneath the pyramid.
type Ground struct {
	Texture string  `yaml:"texture"`
	Size    float32 `yaml:"size"`
	Y       float32 `yaml:"y"`
}

// Lighting configures the directional and positional lights.
type Lighting struct {
	Enabled          bool       `yaml:"enabled"`
	Ambient          [3]float32 `yaml:"ambient"`
	DirectionalDir   [3]float32 `yaml:"directional_dir"`
	DirectionalColor [3]float32 `yaml:"directional_color"`
	PointPosition    [3]float32 `yaml:"point_position"`
	PointColor       [3]float32 `yaml:"point_color"`
	NudgeStep        float32    `yaml:"nudge_step"`
}

// Background is the ping-pong clear colour animation.
type Background struct {
	Dark          [3]float32 `yaml:"dark"`
	Target        [3]float32 `yaml:"target"`
	Step          float32    `yaml:"step"`
	UpThreshold   [3]float32 `yaml:"up_threshold"`
	DownThreshold [3]float32 `yaml:"down_threshold"`
}

// Controls selects the arrow-key variant and whether Escape quits.
type Controls struct {
	Arrows      string `yaml:"arrows"`
	EscapeQuits bool   `yaml:"escape_quits"`
}

// Log configures the zerolog logger. File is optional; empty means console only.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// Config is the whole application configuration, loaded from YAML over Default().
type Config struct {
	Window     Window     `yaml:"window"`
	Camera     Camera     `yaml:"camera"`
	Fractal    Fractal    `yaml:"fractal"`
	Ground     Ground     `yaml:"ground"`
	Lighting   Lighting   `yaml:"lighting"`
	Background Background `yaml:"background"`
	Controls   Controls   `yaml:"controls"`
	Log        Log        `yaml:"log"`
}

// Default returns the stock PiramidShow configuration: 1200x800 window, depth 3 wireframe,
// grass ground texture and a dark-to-slate background pulse.
func Default() Config {
	return Config{
		Window: Window{
			Width:        1200,
			Height:       800,
			Title:        "PiramidShow",
			FrameDelayMs: 10,
		},
		Camera: Camera{
			Fovy:         45,
			Near:         0.1,
			Far:          50,
			Distance:     10,
			RotateStep:   1,
			ZoomIn:       1.05,
			ZoomOut:      0.95,
			IdleRotation: 0.1,
		},
		Fractal: Fractal{
			Depth:    3,
			MinDepth: 1,
			MaxDepth: 6,
			Length:   2,
		},
		Ground: Ground{
			Texture: "grass.jpg",
			Size:    70,
			Y:       -2,
		},
		Lighting: Lighting{
			Enabled:          true,
			Ambient:          [3]float32{0.25, 0.25, 0.25},
			DirectionalDir:   [3]float32{-1, 0, 0},
			DirectionalColor: [3]float32{1, 1, 1},
			PointPosition:    [3]float32{0, 3, 3},
			PointColor:       [3]float32{1, 1, 1},
			NudgeStep:        0.5,
		},
		Background: Background{
			Dark:          [3]float32{0, 0, 0},
			Target:        [3]float32{0.5, 0.48, 0.6},
			Step:          0.02,
			UpThreshold:   [3]float32{0.46, 0.46, 0.46},
			DownThreshold: [3]float32{0.01, 0.01, 0.01},
		},
		Controls: Controls{
			Arrows:      ArrowsCamera,
			EscapeQuits: true,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads path as YAML on top of Default(). A missing file is not an error: the defaults are returned.
// The result is validated.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Save writes c as YAML to path, creating the parent directory if needed.
func Save(path string, c Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	data, err := Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal encodes c as YAML.
func Marshal(c Config) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return data, nil
}

// Validate reports every problem found in c, joined, each wrapping ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FrameDelayMs < 0 {
		bad("window.frame_delay_ms %d < 0", c.Window.FrameDelayMs)
	}
	if c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180 {
		bad("camera.fovy %v outside (0,180)", c.Camera.Fovy)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		bad("camera near/far %v/%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.ZoomIn <= 0 || c.Camera.ZoomOut <= 0 {
		bad("camera zoom factors must be positive")
	}
	if c.Fractal.MinDepth < 1 || c.Fractal.MaxDepth < c.Fractal.MinDepth {
		bad("fractal depth bounds [%d,%d]", c.Fractal.MinDepth, c.Fractal.MaxDepth)
	}
	if c.Fractal.Length <= 0 {
		bad("fractal.length %v <= 0", c.Fractal.Length)
	}
	if c.Ground.Texture == "" {
		bad("ground.texture is empty")
	}
	if c.Background.Step <= 0 || c.Background.Step > 1 {
		bad("background.step %v outside (0,1]", c.Background.Step)
	}
	bg := c.Background
	for i := 0; i < 3; i++ {
		if !(bg.Dark[i] < bg.DownThreshold[i] && bg.DownThreshold[i] < bg.UpThreshold[i] && bg.UpThreshold[i] < bg.Target[i]) {
			bad("background channel %d: want dark < down < up < target, got %v < %v < %v < %v",
				i, bg.Dark[i], bg.DownThreshold[i], bg.UpThreshold[i], bg.Target[i])
		}
		if bg.Dark[i] < 0 || bg.Target[i] > 1 {
			bad("background channel %d outside [0,1]", i)
		}
	}
	switch c.Controls.Arrows {
	case ArrowsCamera, ArrowsLight:
	default:
		bad("controls.arrows %q (want %q or %q)", c.Controls.Arrows, ArrowsCamera, ArrowsLight)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil || c.Log.Level == "" {
		bad("log.level %q", c.Log.Level)
	}
	return errors.Join(errs...)
}
