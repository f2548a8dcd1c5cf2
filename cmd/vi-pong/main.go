package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/logging"
	"github.com/lixenwraith/vi-pong/vmath"
)

var (
	configFlag = flag.String("config", "", "Config file (.toml, .yaml)")
	envFlag    = flag.String("env", ".env", "Dotenv file with VIPONG_* overrides")
	debugFlag  = flag.Bool("debug", false, "Write logs to the log directory")
	seedFlag   = flag.Uint64("seed", 0, "Random seed for ball launches, 0 seeds from the clock")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		// Printed after the terminal is restored
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *debugFlag {
		cfg.Session.Debug = true
	}
	if *muteFlag {
		cfg.Session.Mute = true
	}
	if *seedFlag != 0 {
		cfg.Session.Seed = *seedFlag
	}

	logger, closeLog, err := logging.Setup(cfg.Session.LogDir, cfg.Session.Debug)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closeLog()

	seed := cfg.Session.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer core.Recover()
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	// Audio is optional, the game runs silent without a device
	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
	} else {
		defer sound.Cleanup()
	}
	if cfg.Session.Mute {
		sound.ToggleMute()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := NewGame(screen, cfg, clockwork.NewRealClock(), vmath.NewFastRand(seed), sound, logger)
	logger.Info("session configured",
		zap.String("match_id", game.ID().String()),
		zap.Uint64("seed", seed),
		zap.Duration("frame_interval", cfg.FrameInterval()),
	)

	if err := game.Run(ctx); err != nil {
		logger.Error("game stopped", zap.Error(err))
		return err
	}
	return nil
}
