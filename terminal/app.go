package terminal

import (
	"context"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"overwhelming/config"
	"overwhelming/game"
)

// Backend is the audio the terminal frontend drives. Audio implements it
// with the speaker; Silent implements it without one.
type Backend interface {
	game.AudioPlayer
	ApplySettings()
	Close()
}

// Silent is a Backend that plays nothing
type Silent struct {
	game.NopAudio
}

func (Silent) ApplySettings() {}

func (Silent) Close() {}

// App runs a game on a tcell screen with its own frame driver
type App struct {
	screen   tcell.Screen
	game     *game.Game
	driver   *game.FrameDriver
	input    *Input
	audio    Backend
	settings *config.Store
}

// NewApp wires the terminal frontend around a new game. The screen must
// already be initialized.
func NewApp(screen tcell.Screen, cfg game.Config, settings *config.Store, audio Backend) (*App, error) {
	a := &App{
		screen:   screen,
		audio:    audio,
		settings: settings,
	}
	a.input = NewInput(PollEvents(screen), a.resize)

	g, err := game.NewGame(cfg, game.Deps{
		Assets:    NewAssets(),
		Audio:     audio,
		Input:     a.input,
		OnOptions: a.toggleAudio,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	a.game = g
	a.resize(screen.Size())

	a.driver = game.NewFrameDriver(g, NewRenderer(screen))
	if cfg.ProfileDir != "" {
		p, err := game.NewProfiler(cfg.ProfileDir)
		if err != nil {
			return nil, err
		}
		a.driver.SetProfiler(p)
	}
	return a, nil
}

// Game returns the wrapped game
func (a *App) Game() *game.Game { return a.game }

// Run drives the game until it quits or ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	defer a.audio.Close()
	err := a.driver.Run(ctx)
	if n := a.driver.Overruns(); n > 0 {
		log.Printf("[Terminal] %d ticks overran their budget", n)
	}
	return err
}

func (a *App) resize(cols, rows int) {
	a.game.Resize(cols, rows)
	a.screen.Sync()
}

func (a *App) toggleAudio() {
	enabled := a.settings.ToggleAudio()
	a.audio.ApplySettings()
	if enabled && a.game.Mode() == game.ModePlaying {
		a.audio.PlayMusic(game.MusicBackground, game.LoopForever)
	}
	log.Printf("[Game] audio enabled: %v", enabled)
}
