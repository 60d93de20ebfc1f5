package main

import (
	"flag"
	"fmt"
	"time"

	"pyramid-show/internal/commands"
	"pyramid-show/internal/config"
	"pyramid-show/internal/graphics"
	"pyramid-show/internal/hud"
	"pyramid-show/internal/input"
	"pyramid-show/internal/lighting"
	"pyramid-show/internal/logger"
	"pyramid-show/internal/scene"
	"pyramid-show/internal/state"
)

// overrides are command-line values layered over the config file. Only flags that were set apply.
type overrides struct {
	path     string
	depth    int
	filled   bool
	texture  string
	hud      bool
	logLevel string
}

func (o *overrides) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&o.path, "config", config.DefaultPath, "YAML config file (missing file = defaults)")
	fs.IntVar(&o.depth, "depth", 0, "initial fractal depth, clamped to the configured bounds")
	fs.BoolVar(&o.filled, "filled", false, "start with filled faces instead of wireframe")
	fs.StringVar(&o.texture, "texture", "", "ground texture image")
	fs.BoolVar(&o.hud, "hud", false, "show the HUD overlay")
	fs.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")
	return fs
}

// load reads the config file and applies the flags that were explicitly set.
func (o *overrides) load(fs *flag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(o.path)
	if err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "depth":
			cfg.Fractal.Depth = o.depth
		case "filled":
			cfg.Fractal.Filled = o.filled
		case "texture":
			cfg.Ground.Texture = o.texture
		case "hud":
			cfg.Window.HUD = o.hud
		case "log-level":
			cfg.Log.Level = o.logLevel
		}
	})
	return cfg, cfg.Validate()
}

func registerRun(reg *commands.Registry) {
	o := &overrides{}
	fs := o.flags("run")
	reg.Register("run", "open the viewer", fs, func() error {
		cfg, err := o.load(fs)
		if err != nil {
			return err
		}
		return run(cfg)
	})
}

func registerConfig(reg *commands.Registry) {
	o := &overrides{}
	fs := o.flags("config")
	var write string
	fs.StringVar(&write, "write", "", "write the effective config to this file instead of printing it")
	reg.Register("config", "print the effective config", fs, func() error {
		cfg, err := o.load(fs)
		if err != nil {
			return err
		}
		if write != "" {
			return config.Save(write, cfg)
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	})
}

// run opens the window and blocks in the frame loop until quit. Startup failures (texture, shader)
// are returned; nothing inside the loop fails recoverably.
func run(cfg config.Config) error {
	log, closer, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closer.Close()

	st, err := state.New(cfg)
	if err != nil {
		return err
	}

	graphics.Open(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	defer graphics.Close()

	tex, err := scene.LoadTexture(cfg.Ground.Texture)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Ground.Texture).Msg("ground texture")
		return err
	}
	ground := scene.Ground{Texture: tex, Size: cfg.Ground.Size, Y: cfg.Ground.Y}
	defer ground.Unload()

	var lights *lighting.Controller
	if cfg.Lighting.Enabled {
		lights, err = lighting.New()
		if err != nil {
			return err
		}
		defer lights.Unload()
		lights.Apply(&st.Lights)
	}

	log.Info().
		Int32("width", cfg.Window.Width).
		Int32("height", cfg.Window.Height).
		Int("depth", st.Fractal.Depth).
		Bool("filled", st.Fractal.Filled).
		Str("arrows", cfg.Controls.Arrows).
		Msg("starting")

	loop := graphics.Loop{
		Log:        log,
		State:      st,
		Controller: input.NewController(cfg.Controls, cfg.Window.HUD),
		Scene: &scene.Scene{
			View: scene.View{
				Fovy:   cfg.Camera.Fovy,
				Aspect: float32(cfg.Window.Width) / float32(cfg.Window.Height),
				Near:   cfg.Camera.Near,
				Far:    cfg.Camera.Far,
			},
			Ground: ground,
			Lights: lights,
		},
		HUD:        hud.New(),
		FrameDelay: time.Duration(cfg.Window.FrameDelayMs) * time.Millisecond,
	}
	loop.Run()
	return nil
}
