package game

import (
	"fmt"
	"log"
	"math"
)

// Particle distributions
var (
	thrusterAngle   = IntRange{Min: 115, Max: 235}
	thrusterTexture = IntRange{Min: 0, Max: 2} // the green texture is reserved for enemies
	thrusterSize    = IntRange{Min: 10, Max: 20}
	thrusterMult    = IntRange{Min: 100, Max: 200}

	trailAngle = IntRange{Min: 160, Max: 200}
	trailSize  = IntRange{Min: 10, Max: 20}
	trailMult  = IntRange{Min: 500, Max: 700}
)

const (
	thrusterPerTick = 3
	thrusterOffsetY = 10

	trailInterval  = 2
	trailGravity   = 0.1
	trailLoseAlpha = 2

	// FadeMaxAlpha is the death overlay opacity at which the session ends
	FadeMaxAlpha = 255

	musicFadeOutMs = 300
)

// Playing is the running simulation
type Playing struct {
	world     *World
	waves     *WaveScheduler
	banner    *WaveBanner
	collision *CollisionSystem

	dying          bool
	fadeAlpha      int
	deathExplosion *Explosion
}

func newPlaying(g *Game) *Playing {
	world := NewWorld(NewPlayer(g.sprites.player, g.sprites.heart))
	return &Playing{
		world:     world,
		waves:     NewWaveScheduler(g.catalog, g.rng),
		banner:    NewWaveBanner(),
		collision: NewCollisionSystem(world, g.camera, g.sprites.explosion),
	}
}

// World returns the live populations
func (p *Playing) World() *World { return p.world }

// Waves returns the wave scheduler
func (p *Playing) Waves() *WaveScheduler { return p.waves }

// Banner returns the wave banner
func (p *Playing) Banner() *WaveBanner { return p.banner }

// Dying reports whether the death sequence is running
func (p *Playing) Dying() bool { return p.dying }

// FadeAlpha returns the death overlay opacity
func (p *Playing) FadeAlpha() int { return p.fadeAlpha }

func (p *Playing) update(g *Game) error {
	if !p.dying && !p.world.Player.Alive() {
		p.beginDeath(g)
	}
	if p.dying {
		p.updateDeath(g)
		return nil
	}

	w := p.world
	player := w.Player
	t := g.tick()

	if g.input.JustPressed(KeyDebugSpawn) {
		if kind, ok := g.catalog.Lookup("compass"); ok {
			p.spawnEnemy(g, kind, 300, 350)
		}
	}
	if g.input.JustPressed(KeyDebugWaveSound) {
		g.audio.PlaySound(SoundNextWave)
	}

	if player.Alive() {
		player.Steer(g.input)
		if g.ticks%PlayerFireInterval == 0 {
			g.audio.PlaySound(SoundPlayerShot)
			w.Missiles = append(w.Missiles, player.Volley(g.sprites.missile)...)
		}
	}

	order, cleared := p.waves.Update(len(w.Enemies))
	if order != nil {
		p.spawnEnemy(g, order.Kind, order.X, order.Y)
	}
	if cleared {
		p.banner.Start()
		g.audio.PlaySound(SoundNextWave)
	}

	if player.Alive() {
		p.emitThruster(g)
	}
	g.background.Scroll()

	p.collision.ResolveMissiles(t)
	w.Particles = advance(w.Particles, t)
	p.updateEnemies(g, t)
	p.collision.ResolveAttacks(t)
	w.Explosions = advance(w.Explosions, t)
	p.banner.Update()

	if player.Alive() {
		player.Update(t)
	} else {
		p.beginDeath(g)
	}
	return nil
}

func (p *Playing) updateEnemies(g *Game, t *Tick) {
	w := p.world
	survivors := make([]*Enemy, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		if e.ReadyToFire() {
			w.Attacks = append(w.Attacks, e.Fire()...)
		}
		if e.Update(t) {
			survivors = append(survivors, e)
		} else {
			p.collision.HandleEnemyDeath(e)
		}

		if g.ticks%trailInterval == 0 && e.Kind.Particles {
			p.emitTrail(g, e)
		}
	}
	w.Enemies = survivors
}

func (p *Playing) spawnEnemy(g *Game, kind *EnemyType, x, y float64) {
	es := g.sprites.enemies[kind.Name]
	p.world.Enemies = append(p.world.Enemies, NewEnemy(kind, x, y, es.body, es.attack))
}

func (p *Playing) emitThruster(g *Game) {
	player := p.world.Player
	hit := player.Bounds()
	y := float64(thrusterOffsetY + hit.Y + hit.H/2)
	for i := 0; i < thrusterPerTick; i++ {
		rad := radians(float64(g.rng.Pick(thrusterAngle)))
		tex := g.sprites.particles[g.rng.Pick(thrusterTexture)]
		size := g.rng.Pick(thrusterSize)
		mult := float64(g.rng.Pick(thrusterMult)) * 0.01
		p.world.Particles = append(p.world.Particles,
			NewParticle(tex, float64(player.X), y, -math.Sin(rad)*mult, -math.Cos(rad)*mult, size))
	}
}

func (p *Playing) emitTrail(g *Game, e *Enemy) {
	rad := radians(float64(g.rng.Pick(trailAngle)))
	size := g.rng.Pick(trailSize)
	mult := float64(g.rng.Pick(trailMult)) * 0.01
	pt := NewParticle(g.sprites.particles[greenParticle], e.X, e.Y, math.Sin(rad)*mult, math.Cos(rad)*mult, size)
	pt.Gravity = trailGravity
	pt.LoseAlpha = trailLoseAlpha
	p.world.Particles = append(p.world.Particles, pt)
}

// beginDeath freezes the simulation and starts the fade out
func (p *Playing) beginDeath(g *Game) {
	p.dying = true
	p.fadeAlpha = 0
	p.deathExplosion = p.world.Player.DeathExplosion(g.sprites.explosion)
	log.Printf("[Game] player died on wave %d", p.waves.Wave)
}

// updateDeath only advances the fade and the looping death explosion
func (p *Playing) updateDeath(g *Game) {
	if !p.deathExplosion.Update(nil) {
		p.deathExplosion = p.world.Player.DeathExplosion(g.sprites.explosion)
	}

	p.fadeAlpha++
	if p.fadeAlpha < FadeMaxAlpha {
		return
	}

	p.reset(g)
	g.audio.FadeOutMusic(musicFadeOutMs)
	g.setMode(ModeDeathScreen)
}

// reset clears every population and counter and replaces the player
func (p *Playing) reset(g *Game) {
	p.world.Clear()
	p.world.Player = NewPlayer(g.sprites.player, g.sprites.heart)
	p.waves.Reset()
	p.banner.Start()
	p.dying = false
	p.fadeAlpha = 0
	p.deathExplosion = nil
}

func (p *Playing) draw(g *Game, r Renderer) {
	cam := g.camera
	s := g.sprites
	w := p.world

	g.background.Draw(cam, r)
	drawAll(w.Missiles, cam, r)
	drawAll(w.Particles, cam, r)

	for _, pt := range w.Particles {
		cam.Draw(r, s.glow, pt.GlowRect(), DrawOptions{Alpha: uint8(pt.Alpha)})
	}
	for _, glow := range w.AttackGlows {
		cam.Draw(r, s.glow, glow, Opaque())
	}

	drawAll(w.Attacks, cam, r)
	drawAll(w.Enemies, cam, r)
	drawAll(w.Explosions, cam, r)

	drawHealthBar(cam, r, s.healthBar, g.font, w.Player.Health, w.Player.MaxHealth)

	if p.banner.Active {
		cam.Draw(r, s.dim, dimRect, DrawOptions{Alpha: uint8(p.banner.DimAlpha())})
		g.font.DrawCentered(cam, r, fmt.Sprintf("wave %d", p.waves.Wave), int(p.banner.X), bannerY, bannerSize, textWhite)
	}

	if p.dying {
		p.deathExplosion.Draw(cam, r)
		cam.Draw(r, s.fade, fadeRect, DrawOptions{Alpha: uint8(p.fadeAlpha)})
		return
	}
	w.Player.Draw(cam, r)
}
