package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"overwhelming/config"
	"overwhelming/game"
)

// Sustained low TPS triggers a profile capture
const (
	lowTPSRatio       = 0.9
	lowTPSTicksToLog  = 120
	lowTPSWarmupTicks = 240
)

// App adapts a game.Game to ebiten's Game interface
type App struct {
	game     *game.Game
	renderer *Renderer
	input    *Input
	audio    *Audio
	settings *config.Store
	profiler *game.Profiler
	face     text.Face

	tps         int
	lowTPSTicks int
}

// NewApp wires the ebiten frontend around a new game
func NewApp(cfg game.Config, settings *config.Store) (*App, error) {
	a := &App{
		renderer: &Renderer{},
		input:    NewInput(),
		audio:    NewAudio(cfg.AssetRoot, settings, cfg.TPS),
		settings: settings,
		face:     text.NewGoXFace(basicfont.Face7x13),
		tps:      cfg.TPS,
	}

	g, err := game.NewGame(cfg, game.Deps{
		Assets:    NewAssets(cfg.AssetRoot),
		Audio:     a.audio,
		Input:     a.input,
		OnOptions: a.toggleAudio,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	a.game = g

	if cfg.ProfileDir != "" {
		p, err := game.NewProfiler(cfg.ProfileDir)
		if err != nil {
			return nil, err
		}
		a.profiler = p
	}
	return a, nil
}

// Game returns the wrapped game
func (a *App) Game() *game.Game { return a.game }

func (a *App) Update() error {
	err := a.game.Update()
	a.audio.Update()
	if errors.Is(err, game.ErrQuit) {
		return ebiten.Termination
	}
	if err != nil {
		return err
	}
	a.watchTPS()
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.SetTarget(screen)
	a.game.Draw(a.renderer)

	if a.game.Debug().ShowStats {
		op := &text.DrawOptions{}
		op.GeoM.Translate(10, 10)
		op.ColorScale.ScaleWithColor(color.White)
		msg := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
		text.Draw(screen, msg, a.face, op)
	}
}

// Layout keeps the screen at window size and rescales the camera to it
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.game.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (a *App) toggleAudio() {
	enabled := a.settings.ToggleAudio()
	a.audio.ApplySettings()
	if enabled && a.game.Mode() == game.ModePlaying {
		a.audio.PlayMusic(game.MusicBackground, game.LoopForever)
	}
	log.Printf("[Game] audio enabled: %v", enabled)
}

// watchTPS logs and profiles when ebiten cannot keep up with the tick rate
func (a *App) watchTPS() {
	if a.game.Ticks() < lowTPSWarmupTicks {
		return
	}
	if ebiten.ActualTPS() >= float64(a.tps)*lowTPSRatio {
		a.lowTPSTicks = 0
		return
	}

	a.lowTPSTicks++
	if a.lowTPSTicks != lowTPSTicksToLog {
		return
	}

	s := a.game.Stats()
	log.Printf("[Game] lagging... TPS %.1f, %d enemies, %d particles", ebiten.ActualTPS(), s.Enemies, s.Particles)
	if a.profiler == nil {
		return
	}
	if err := a.profiler.CaptureProfile(fmt.Sprintf("tps%.0f", ebiten.ActualTPS())); err != nil {
		log.Printf("[Game] profile not captured: %v", err)
	}
}
