package main

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/render/renderers"
)

// Game wires one match to a terminal screen
// The poller goroutine owns the input machine, the scheduler goroutine owns the match tick and the renderer
type Game struct {
	id     uuid.UUID
	screen tcell.Screen
	logger *zap.Logger

	match        *engine.Match
	scheduler    *engine.ClockScheduler
	orchestrator *render.RenderOrchestrator
	machine      *input.Machine
	sound        *audio.SoundManager

	resized atomic.Bool
}

// NewGame builds a game on an initialized screen
func NewGame(screen tcell.Screen, cfg *config.Config, clock clockwork.Clock, rng physics.Rand, sound *audio.SoundManager, logger *zap.Logger) *Game {
	id := uuid.New()
	params := cfg.MatchParams()
	w, h := screen.Size()

	g := &Game{
		id:           id,
		screen:       screen,
		logger:       logger.With(zap.String("match_id", id.String())),
		match:        engine.NewMatch(params, rng),
		orchestrator: render.NewRenderOrchestrator(screen, params.Court),
		machine:      input.NewMachine(params.Court, w, h, constant.ScoreBarRows, cfg.Session.KeyStep),
		sound:        sound,
	}
	g.scheduler = engine.NewClockScheduler(clock, cfg.FrameInterval(), g.logger)
	renderers.RegisterAll(g.orchestrator)
	return g
}

// ID returns the match identifier used in logs
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Run blocks until the player quits, ctx is cancelled or a goroutine fails
// Quit and cancellation are a clean exit
func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g.logger.Info("match started")

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer core.Recover()
		defer cancel()
		return g.pollInput(ctx)
	})

	eg.Go(func() error {
		defer core.Recover()
		// Wake the poller blocked in PollEvent so it observes cancellation
		defer func() { _ = g.screen.PostEvent(tcell.NewEventInterrupt(nil)) }()
		return g.scheduler.Run(ctx, g.frame)
	})

	err := eg.Wait()

	score := g.match.Score()
	g.logger.Info("match ended",
		zap.Uint64("frames", g.scheduler.FrameCount()),
		zap.Int("score_player", score.Player),
		zap.Int("score_ai", score.AI),
	)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (g *Game) pollInput(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		ev := g.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return nil
		}

		intent := g.machine.Process(ev)
		switch intent.Type {
		case input.IntentQuit:
			g.logger.Debug("quit requested")
			return nil
		case input.IntentTogglePause:
			paused := g.scheduler.TogglePause()
			g.logger.Debug("pause toggled", zap.Bool("paused", paused))
		case input.IntentToggleMute:
			muted := g.sound.ToggleMute()
			g.logger.Debug("mute toggled", zap.Bool("muted", muted))
		case input.IntentResize:
			g.resized.Store(true)
		case input.IntentPointer:
			g.match.SetPointerY(intent.PointerY)
		}
	}
}

// frame runs on the scheduler goroutine only
func (g *Game) frame(f engine.Frame) error {
	if g.resized.Swap(false) {
		g.orchestrator.Resize()
	}

	var snap core.Snapshot
	if f.Paused {
		snap = g.match.Snapshot()
	} else {
		snap = g.match.Step()
		g.sound.PlayEvents(snap.Events)
		g.logPoint(snap)
	}

	g.orchestrator.RenderFrame(snap, render.Status{
		Paused: f.Paused,
		Muted:  g.sound.IsMuted(),
	})
	return nil
}

func (g *Game) logPoint(snap core.Snapshot) {
	side := snap.Events.ScoredSide()
	if side == core.SideNone {
		return
	}
	g.logger.Info("point",
		zap.Uint64("tick", snap.Tick),
		zap.Stringer("side", side),
		zap.Int("score_player", snap.Score.Player),
		zap.Int("score_ai", snap.Score.AI),
		zap.Uint64("checksum", snap.Checksum()),
	)
}
