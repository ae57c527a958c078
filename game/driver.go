package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// overrunStreakForProfile is how many consecutive late ticks trigger a capture
const overrunStreakForProfile = 60

// FrameDriver runs a Game at a fixed tick rate against a Renderer. Frontends
// with their own loop (ebiten) call Game.Update and Game.Draw directly.
type FrameDriver struct {
	game     *Game
	renderer Renderer
	budget   time.Duration
	profiler *Profiler

	overrunStreak int
	overruns      int

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameDriver creates a driver ticking at the game's configured rate
func NewFrameDriver(g *Game, r Renderer) *FrameDriver {
	return &FrameDriver{
		game:     g,
		renderer: r,
		budget:   g.config.FrameBudget(),
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// SetProfiler enables profile capture on sustained overruns
func (d *FrameDriver) SetProfiler(p *Profiler) {
	d.profiler = p
}

// Overruns returns how many ticks missed their budget
func (d *FrameDriver) Overruns() int { return d.overruns }

// Step runs one tick: update, draw, then pace. A tick that overran its
// budget does not sleep and is not made up later.
func (d *FrameDriver) Step() error {
	start := d.now()

	if err := d.game.Update(); err != nil {
		return err
	}
	d.game.Draw(d.renderer)

	elapsed := d.now().Sub(start)
	if elapsed < d.budget {
		d.overrunStreak = 0
		d.sleep(d.budget - elapsed)
		return nil
	}

	d.overruns++
	d.overrunStreak++
	s := d.game.Stats()
	log.Printf("[FrameDriver] lagging... %d | %d", s.Enemies, s.Particles+s.Attacks)

	if d.profiler != nil && d.overrunStreak == overrunStreakForProfile {
		reason := fmt.Sprintf("overrun-enemies%d-particles%d", s.Enemies, s.Particles)
		if err := d.profiler.CaptureProfile(reason); err != nil {
			log.Printf("[FrameDriver] profile not captured: %v", err)
		}
	}
	return nil
}

// Run steps until the game quits or ctx is cancelled. Quitting is not an
// error.
func (d *FrameDriver) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := d.Step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}
