package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"overwhelming/config"
	"overwhelming/desktop"
	"overwhelming/game"
)

func main() {
	cfg := game.DefaultConfig()
	flag.Int64Var(&cfg.Seed, "seed", 0, "Random seed (0 picks one from the clock)")
	flag.StringVar(&cfg.EnemyTablePath, "enemies", "", "Enemy table YAML (default: built-in table)")
	flag.StringVar(&cfg.AssetRoot, "assets", cfg.AssetRoot, "Directory holding textures and audio")
	flag.StringVar(&cfg.ProfileDir, "profile", "", "Capture CPU profiles into this directory when lagging")
	flag.IntVar(&cfg.TPS, "tps", cfg.TPS, "Simulation ticks per second")
	fullscreen := flag.Bool("fullscreen", false, "Start fullscreen and remember the choice")
	flag.Parse()

	settings, err := config.Open()
	if err != nil {
		log.Printf("Warning: %v (settings will not be saved)", err)
	}
	if *fullscreen {
		settings.SetFullscreen(true)
		if err := settings.Save(); err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	app, err := desktop.NewApp(cfg, settings)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Overwhelming")
	ebiten.SetWindowResizable(true)
	ebiten.SetFullscreen(settings.Settings().Fullscreen)
	ebiten.SetTPS(cfg.TPS)
	if icon, err := desktop.NewAssets(cfg.AssetRoot).Source(game.TexIcon); err == nil {
		ebiten.SetWindowIcon([]image.Image{icon})
	}

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
