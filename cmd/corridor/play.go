package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/corridor/audio"
	"github.com/lixenwraith/corridor/core"
	"github.com/lixenwraith/corridor/engine"
	"github.com/lixenwraith/corridor/input"
	"github.com/lixenwraith/corridor/logging"
	"github.com/lixenwraith/corridor/render"
	"github.com/lixenwraith/corridor/telemetry"
)

// inputPollInterval drives key-hold expiry between terminal events
const inputPollInterval = 30 * time.Millisecond

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	core.Go(func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashRestore(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.EnableMouse()
	screen.HideCursor()

	world, _ := newWorld(cfg, logger)
	world.AddListener(logging.NewEventLogger(logger))

	player := audio.NewCuePlayer(audioConfig(cfg), logger)
	if err := player.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	}
	defer player.Close()
	world.AddListener(player)

	var recorder *telemetry.Recorder
	if cfg.Telemetry.Enabled {
		recorder, err = telemetry.NewRecorder(nil)
		if err != nil {
			return err
		}
		world.AddListener(recorder)
	}

	world.InitSession()

	renderer := render.NewTerminalRenderer(screen, world.Layout)
	frames := make(chan engine.Snapshot, 1)

	scheduler := engine.NewClockScheduler(world, cfg.TickInterval())
	scheduler.OnTick(func(w *engine.World) {
		if recorder != nil {
			recorder.RecordTick()
		}
		snap := w.Snapshot()
		// Single producer: after dropping a stale frame the send cannot block
		select {
		case <-frames:
		default:
		}
		frames <- snap
	})

	schedErr := make(chan error, 1)
	core.Go(func() {
		schedErr <- scheduler.Run(ctx)
	})

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	machine := input.NewMachine()
	machine.SetHoldWindow(cfg.Input.HoldWindow)
	poll := time.NewTicker(inputPollInterval)
	defer poll.Stop()

	logger.Info().Dur("tick", cfg.TickInterval()).Msg("play started")

	for {
		select {
		case <-ctx.Done():
			err := <-schedErr
			logger.Info().
				Uint64("ticks", scheduler.TickCount()).
				Uint64("dropped_intents", scheduler.DroppedIntents()).
				Uint64("cues_played", player.Played()).
				Msg("play stopped")
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err

		case ev := <-events:
			in := machine.Process(ev, time.Now())
			if in == nil {
				continue
			}
			switch in.Type {
			case input.IntentQuit:
				cancel()
			case input.IntentResize:
				renderer.Resize()
				screen.Sync()
			default:
				input.Submit(scheduler, *in)
			}

		case <-poll.C:
			if in := machine.Expire(time.Now()); in != nil {
				input.Submit(scheduler, *in)
			}

		case snap := <-frames:
			renderer.RenderFrame(snap)
		}
	}
}
