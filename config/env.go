package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every override key
const EnvPrefix = "VIPONG_"

type lookupFunc func(key string) (string, bool)

// envLookup resolves process environment first, then the dotenv file
func envLookup(envFile string) (lookupFunc, error) {
	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		default:
			fileVars = vars
		}
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}, nil
}

func (c *Config) applyEnv(lookup lookupFunc) error {
	floats := map[string]*float64{
		"COURT_WIDTH":    &c.Court.Width,
		"COURT_HEIGHT":   &c.Court.Height,
		"PADDLE_WIDTH":   &c.Paddle.Width,
		"PADDLE_HEIGHT":  &c.Paddle.Height,
		"PADDLE_OFFSET":  &c.Paddle.Offset,
		"BALL_RADIUS":    &c.Ball.Radius,
		"BALL_SPEED_MIN": &c.Ball.SpeedMin,
		"BALL_SPEED_MAX": &c.Ball.SpeedMax,
		"BALL_ANGLE_MAX": &c.Ball.AngleMaxDeg,
		"SPIN_FACTOR":    &c.Ball.SpinFactor,
		"AI_SMOOTHING":   &c.AI.Smoothing,
		"KEY_STEP":       &c.Session.KeyStep,
	}
	for key, dst := range floats {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = f
	}

	bools := map[string]*bool{
		"MUTE":  &c.Session.Mute,
		"DEBUG": &c.Session.Debug,
	}
	for key, dst := range bools {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = b
	}

	if v, ok := lookup(EnvPrefix + "FRAME_INTERVAL_MS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sFRAME_INTERVAL_MS: %w", EnvPrefix, err)
		}
		c.Session.FrameIntervalMs = n
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Session.Seed = n
	}
	if v, ok := lookup(EnvPrefix + "LOG_DIR"); ok {
		c.Session.LogDir = v
	}
	return nil
}
