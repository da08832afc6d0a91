package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/sound-orbit/internal/config"
	"github.com/iburimskiy/sound-orbit/internal/engine"
	"github.com/iburimskiy/sound-orbit/internal/game"
	"github.com/iburimskiy/sound-orbit/internal/session"
)

func main() {
	file := flag.String("file", "", `play and visualise an audio file instead of the microphone ("?" opens a file dialog)`)
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(*file, logger); err != nil {
		slog.Error("game loop", "error", err)
		os.Exit(1)
	}
}

func run(file string, logger *slog.Logger) error {
	acquirer := game.MicAcquirer(logger)
	if file != "" {
		acquirer = game.FileAcquirer(file, logger)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess := session.New(acquirer, logger)
	defer func() {
		if err := sess.Close(); err != nil {
			logger.Error("closing audio input", "error", err)
		}
	}()

	seed := time.Now().UnixNano()
	logger.Debug("particle layout", "seed", seed)
	g := game.New(ctx, sess, engine.NewSeededState(seed), logger)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Sound Orbit - Enter: start, Space: pause, S: save, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
