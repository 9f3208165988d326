package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iamasit07/lineup/internal/config"
	"github.com/iamasit07/lineup/internal/random"
	"github.com/iamasit07/lineup/internal/service/bot"
	"github.com/iamasit07/lineup/internal/transport/console"
	"github.com/iamasit07/lineup/pkg/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "lineup:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	loadedDotEnv := config.LoadDotEnv()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return errors.Wrap(err, "build logger")
	}
	defer log.Sync()
	if !loadedDotEnv {
		log.Debug("no .env file found")
	}

	src, seed, err := random.Source(cfg.Seed)
	if err != nil {
		return errors.Wrap(err, "seed random source")
	}
	log.Debug("random source ready", zap.Int64("seed", seed))

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Warn("save backend unavailable, saving disabled",
			zap.String("backend", cfg.SaveBackend), zap.Error(err))
		store, closeStore = nil, func() error { return nil }
	}
	defer closeStore()

	exit := func(code int) {
		closeStore()
		log.Sync()
		os.Exit(code)
	}

	app := console.NewApp(
		console.New(os.Stdin, os.Stdout),
		store,
		bot.NewRandomPolicy(src),
		console.Settings{Slot: cfg.SaveSlot, DefaultRows: cfg.DefaultRows, DefaultCols: cfg.DefaultCols},
		exit,
		log,
	)
	if err := app.Run(ctx); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
