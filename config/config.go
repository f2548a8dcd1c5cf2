// Package config loads match geometry, physics tuning and session settings
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/physics"
)

// ErrInvalid marks a configuration that breaks a geometry or tuning constraint
var ErrInvalid = errors.New("invalid config")

// ErrFormat is returned for a config file extension with no decoder
var ErrFormat = errors.New("unsupported config format")

type Court struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

type Paddle struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
	Offset float64 `toml:"offset" yaml:"offset"`
}

type Ball struct {
	Radius      float64 `toml:"radius" yaml:"radius"`
	SpeedMin    float64 `toml:"speed_min" yaml:"speed_min"`
	SpeedMax    float64 `toml:"speed_max" yaml:"speed_max"`
	AngleMaxDeg float64 `toml:"angle_max_deg" yaml:"angle_max_deg"`
	SpinFactor  float64 `toml:"spin_factor" yaml:"spin_factor"`
}

type AI struct {
	Smoothing float64 `toml:"smoothing" yaml:"smoothing"`
}

type Session struct {
	FrameIntervalMs int     `toml:"frame_interval_ms" yaml:"frame_interval_ms"`
	KeyStep         float64 `toml:"key_step" yaml:"key_step"`
	Mute            bool    `toml:"mute" yaml:"mute"`
	Seed            uint64  `toml:"seed" yaml:"seed"` // 0 seeds from the clock
	Debug           bool    `toml:"debug" yaml:"debug"`
	LogDir          string  `toml:"log_dir" yaml:"log_dir"`
}

// Config is the full set of tunables for one run
type Config struct {
	Court   Court   `toml:"court" yaml:"court"`
	Paddle  Paddle  `toml:"paddle" yaml:"paddle"`
	Ball    Ball    `toml:"ball" yaml:"ball"`
	AI      AI      `toml:"ai" yaml:"ai"`
	Session Session `toml:"session" yaml:"session"`
}

// Default returns the reference configuration
func Default() *Config {
	return &Config{
		Court: Court{Width: constant.CourtWidth, Height: constant.CourtHeight},
		Paddle: Paddle{
			Width:  constant.PaddleWidth,
			Height: constant.PaddleHeight,
			Offset: constant.PaddleOffset,
		},
		Ball: Ball{
			Radius:      constant.BallRadius,
			SpeedMin:    constant.LaunchSpeedMin,
			SpeedMax:    constant.LaunchSpeedMax,
			AngleMaxDeg: constant.LaunchAngleMaxDeg,
			SpinFactor:  constant.SpinFactor,
		},
		AI: AI{Smoothing: constant.AISmoothing},
		Session: Session{
			FrameIntervalMs: int(constant.FrameUpdateInterval / time.Millisecond),
			KeyStep:         constant.KeyStep,
			LogDir:          constant.LogDir,
		},
	}
}

// Load builds a config from defaults, the optional file at path, then environment overrides
// envFile names a dotenv file; a missing file is not an error
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}

	lookup, err := envLookup(envFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), c); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrFormat, path)
	}
	return nil
}

// Validate checks the invariants the simulation relies on
func (c *Config) Validate() error {
	switch {
	case c.Court.Width <= 0 || c.Court.Height <= 0:
		return fmt.Errorf("%w: court must be positive, got %gx%g", ErrInvalid, c.Court.Width, c.Court.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must be positive, got %gx%g", ErrInvalid, c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Height > c.Court.Height:
		return fmt.Errorf("%w: paddle height %g exceeds court height %g", ErrInvalid, c.Paddle.Height, c.Court.Height)
	case c.Paddle.Offset < 0 || 2*(c.Paddle.Offset+c.Paddle.Width) >= c.Court.Width:
		return fmt.Errorf("%w: paddles do not fit court width %g", ErrInvalid, c.Court.Width)
	case c.Ball.Radius <= 0 || 2*c.Ball.Radius >= c.Court.Height:
		return fmt.Errorf("%w: ball radius %g", ErrInvalid, c.Ball.Radius)
	case c.Ball.SpeedMin <= 0 || c.Ball.SpeedMax < c.Ball.SpeedMin:
		return fmt.Errorf("%w: launch speed range [%g, %g]", ErrInvalid, c.Ball.SpeedMin, c.Ball.SpeedMax)
	case c.Ball.AngleMaxDeg < 0 || c.Ball.AngleMaxDeg >= 90:
		return fmt.Errorf("%w: launch angle %g", ErrInvalid, c.Ball.AngleMaxDeg)
	case c.AI.Smoothing <= 0 || c.AI.Smoothing > 1:
		return fmt.Errorf("%w: ai smoothing %g not in (0, 1]", ErrInvalid, c.AI.Smoothing)
	case c.Session.FrameIntervalMs <= 0:
		return fmt.Errorf("%w: frame interval %dms", ErrInvalid, c.Session.FrameIntervalMs)
	case c.Session.KeyStep <= 0:
		return fmt.Errorf("%w: key step %g", ErrInvalid, c.Session.KeyStep)
	}
	return nil
}

// FrameInterval returns the tick period
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Session.FrameIntervalMs) * time.Millisecond
}

// MatchParams converts the config to engine parameters
func (c *Config) MatchParams() engine.Params {
	return engine.Params{
		Court:        core.Court{Width: c.Court.Width, Height: c.Court.Height},
		PaddleWidth:  c.Paddle.Width,
		PaddleHeight: c.Paddle.Height,
		PaddleOffset: c.Paddle.Offset,
		BallRadius:   c.Ball.Radius,
		Tuning: physics.Tuning{
			SpinFactor:        c.Ball.SpinFactor,
			Smoothing:         c.AI.Smoothing,
			LaunchSpeedMin:    c.Ball.SpeedMin,
			LaunchSpeedMax:    c.Ball.SpeedMax,
			LaunchAngleMaxDeg: c.Ball.AngleMaxDeg,
		},
	}
}
