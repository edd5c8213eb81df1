package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomz197/asteroids-solo/internal/config"
	"github.com/tomz197/asteroids-solo/internal/draw"
	"github.com/tomz197/asteroids-solo/internal/game"
	"github.com/tomz197/asteroids-solo/internal/input"
	"github.com/tomz197/asteroids-solo/internal/logging"
	"github.com/tomz197/asteroids-solo/internal/loop"
	"github.com/tomz197/asteroids-solo/internal/world"
)

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "seed", seed, "fps", cfg.Display.FPS)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	display, err := draw.OpenTerminal(os.Stdin, os.Stdout, cfg.Display.Width, cfg.Display.Height)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	g := game.New(cfg, world.NewRand(seed), logger)
	driver := loop.New(g, input.NewTerminal(os.Stdin), display, loop.Options{
		FPS:      cfg.Display.FPS,
		MaxDelta: cfg.Display.MaxDelta,
		Logger:   logger,
	})

	err = driver.Run(ctx)
	logger.Info("finished", "score", g.Score(), "frames", driver.Stats().Frames, "fps", driver.Stats().AverageFPS())
	if err != nil {
		logger.Error("game stopped", "err", err)
		return err
	}
	return nil
}
