package game

import (
	"errors"
	"fmt"
	"log"
)

// ErrQuit is returned by Update when the user asks to leave the game
var ErrQuit = errors.New("quit requested")

// Deps are the collaborators a Game talks to
type Deps struct {
	Assets AssetStore
	Audio  AudioPlayer
	Input  InputSource

	// Catalog overrides the enemy table named in Config. It is validated
	// like a loaded table.
	Catalog *EnemyCatalog

	// OnOptions is called when "options" is confirmed in the menu
	OnOptions func()
}

// Game represents the main game state
type Game struct {
	config  Config
	rng     *Rand
	camera  *Camera
	input   InputSource
	audio   AudioPlayer
	catalog *EnemyCatalog
	sprites *sprites
	font    *FontRenderer

	background *Background

	mode        Mode
	menu        *Menu
	playing     *Playing
	deathScreen *DeathScreen

	// ticks counts every Update regardless of mode
	ticks int64

	debug     DebugState
	onOptions func()
}

// NewGame creates a new game instance in the menu
func NewGame(config Config, deps Deps) (*Game, error) {
	if deps.Assets == nil || deps.Input == nil {
		return nil, fmt.Errorf("game requires an asset store and an input source")
	}
	if deps.Audio == nil {
		deps.Audio = NopAudio{}
	}

	var catalog *EnemyCatalog
	switch {
	case deps.Catalog != nil:
		c, err := NewEnemyCatalog(deps.Catalog.Types)
		if err != nil {
			return nil, err
		}
		catalog = c
	case config.EnemyTablePath != "":
		c, err := LoadEnemyCatalog(config.EnemyTablePath)
		if err != nil {
			return nil, err
		}
		catalog = c
	default:
		catalog = DefaultEnemyCatalog()
	}

	seed := config.ResolveSeed()
	rng := NewRand(seed)
	sprites := loadSprites(deps.Assets, catalog)

	g := &Game{
		config:      config,
		rng:         rng,
		camera:      NewCamera(rng),
		input:       deps.Input,
		audio:       deps.Audio,
		catalog:     catalog,
		sprites:     sprites,
		font:        NewFontRenderer(deps.Assets, DefaultGlyphs),
		background:  NewBackground(sprites.background),
		mode:        ModeMenu,
		menu:        NewMenu(),
		deathScreen: &DeathScreen{},
		onOptions:   deps.OnOptions,
	}
	g.playing = newPlaying(g)

	log.Printf("[Game] created with seed %d and %d enemy types", seed, len(catalog.Types))
	return g, nil
}

// Update advances the game by one tick
func (g *Game) Update() error {
	g.input.Poll()
	if g.input.JustPressed(KeyQuit) {
		return ErrQuit
	}
	if g.input.JustPressed(KeyDebugStats) {
		g.debug.ShowStats = !g.debug.ShowStats
	}

	g.camera.Update()
	g.ticks++

	return g.handler().update(g)
}

// Draw renders the active mode
func (g *Game) Draw(r Renderer) {
	r.Clear()
	g.handler().draw(g, r)
	g.drawDebug(r)
	r.Present()
}

// Resize rescales the camera for a new window size
func (g *Game) Resize(w, h int) {
	g.camera.Scale(w, h, g.config.ScreenWidth, g.config.ScreenHeight)
}

func (g *Game) handler() modeHandler {
	switch g.mode {
	case ModePlaying:
		return g.playing
	case ModeDeathScreen:
		return g.deathScreen
	default:
		return g.menu
	}
}

func (g *Game) setMode(m Mode) {
	if g.mode == m {
		return
	}
	log.Printf("[Game] %s -> %s", g.mode, m)
	g.mode = m
}

func (g *Game) startPlaying() {
	g.audio.PlayMusic(MusicBackground, LoopForever)
	g.setMode(ModePlaying)
}

func (g *Game) openOptions() {
	if g.onOptions != nil {
		g.onOptions()
	}
}

func (g *Game) tick() *Tick {
	return &Tick{PlayerRect: g.playing.world.Player.Bounds(), Rand: g.rng}
}

func (g *Game) menuAttackFrames() []Texture {
	if regular := g.catalog.Regular(); len(regular) > 0 {
		return g.sprites.enemies[regular[0].Name].attack
	}
	return nil
}

// Mode returns the active mode
func (g *Game) Mode() Mode { return g.mode }

// Camera returns the game's camera
func (g *Game) Camera() *Camera { return g.camera }

// Menu returns the menu state
func (g *Game) Menu() *Menu { return g.menu }

// Playing returns the simulation state
func (g *Game) Playing() *Playing { return g.playing }

// Ticks returns the number of updates run so far
func (g *Game) Ticks() int64 { return g.ticks }

// Debug returns the debug flags
func (g *Game) Debug() *DebugState { return &g.debug }

// Stats returns the live population counts
func (g *Game) Stats() Stats {
	s := g.playing.world.Stats()
	s.Mode = g.mode
	s.Wave = g.playing.waves.Wave
	if g.mode == ModeMenu {
		s.Attacks = len(g.menu.attacks)
	}
	return s
}
