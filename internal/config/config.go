package config

import (
	"errors"
	"fmt"
	"os"

	"fpsctl/internal/locomotion"
	"fpsctl/internal/logger"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Controller locomotion.Settings `yaml:"controller"`
	Physics    PhysicsConfig       `yaml:"physics"`
	Window     WindowConfig        `yaml:"window"`
	Logging    logger.Config       `yaml:"logging"`
	Audio      AudioConfig         `yaml:"audio"`
}

type PhysicsConfig struct {
	FixedStep   float32 `yaml:"fixed_step"`   // seconds
	MaxSubsteps int     `yaml:"max_substeps"` // per rendered frame
	Iterations  int     `yaml:"iterations"`   // push-out passes
}

type WindowConfig struct {
	Width     int32   `yaml:"width"`
	Height    int32   `yaml:"height"`
	Title     string  `yaml:"title"`
	TargetFPS int32   `yaml:"target_fps"`
	FOV       float32 `yaml:"fov"`
	VSync     bool    `yaml:"vsync"`
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

func Default() *Config {
	return &Config{
		Controller: locomotion.DefaultSettings(),
		Physics: PhysicsConfig{
			FixedStep:   0.02,
			MaxSubsteps: 5,
			Iterations:  3,
		},
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "fpsctl",
			TargetFPS: 144,
			FOV:       70,
		},
		Logging: logger.Config{Level: "info", Format: "console"},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.3,
			SampleRate: 44100,
		},
	}
}

// Load overlays the file onto Default and validates the result. Keys missing
// from the file keep their default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Controller.Validate(); err != nil {
		return fmt.Errorf("config: controller: %w", err)
	}
	switch {
	case c.Physics.FixedStep <= 0 || c.Physics.FixedStep > 0.1:
		return fmt.Errorf("%w: physics.fixed_step %g outside (0, 0.1]", ErrInvalid, c.Physics.FixedStep)
	case c.Physics.MaxSubsteps < 1:
		return fmt.Errorf("%w: physics.max_substeps %d < 1", ErrInvalid, c.Physics.MaxSubsteps)
	case c.Physics.Iterations < 1:
		return fmt.Errorf("%w: physics.iterations %d < 1", ErrInvalid, c.Physics.Iterations)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.FOV <= 0 || c.Window.FOV >= 180:
		return fmt.Errorf("%w: window.fov %g outside (0, 180)", ErrInvalid, c.Window.FOV)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume %g outside [0, 1]", ErrInvalid, c.Audio.Volume)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sample_rate %d", ErrInvalid, c.Audio.SampleRate)
	}
	switch c.Logging.Format {
	case "", "console", "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}
