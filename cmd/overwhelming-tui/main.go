// Command overwhelming-tui plays the game in a text terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"overwhelming/config"
	"overwhelming/game"
	"overwhelming/terminal"
)

func main() {
	cfg := game.DefaultConfig()
	flag.Int64Var(&cfg.Seed, "seed", 0, "Random seed (0 picks one from the clock)")
	flag.StringVar(&cfg.EnemyTablePath, "enemies", "", "Enemy table YAML (default: built-in table)")
	flag.StringVar(&cfg.AssetRoot, "assets", cfg.AssetRoot, "Directory holding audio files")
	flag.StringVar(&cfg.ProfileDir, "profile", "", "Capture CPU profiles into this directory when lagging")
	flag.IntVar(&cfg.TPS, "tps", cfg.TPS, "Simulation ticks per second")
	mute := flag.Bool("mute", false, "Do not open the audio device")
	logPath := flag.String("log", "", "Write logs to this file (default: discard)")
	flag.Parse()

	// The screen owns stdout, so logs go to a file or nowhere
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if err := run(cfg, *mute); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg game.Config, mute bool) error {
	settings, err := config.Open()
	if err != nil {
		log.Printf("Warning: %v (settings will not be saved)", err)
	}

	var audio terminal.Backend = terminal.Silent{}
	if !mute {
		a, err := terminal.NewAudio(cfg.AssetRoot, settings)
		if err != nil {
			log.Printf("[Audio] %v, continuing without sound", err)
		} else {
			audio = a
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.EnableMouse()

	app, err := terminal.NewApp(screen, cfg, settings, audio)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("[Terminal] running at %d ticks per second", cfg.TPS)
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
