package game

import "testing"

func TestMissileKillsEnemyOnThirdHit(t *testing.T) {
	tg := newTestGame(t)
	p := tg.Playing()
	w := p.World()

	kind := testEnemyType(30)
	enemy := NewEnemy(kind, 300, 200, nil, nil)
	w.Enemies = []*Enemy{enemy}

	for hit := 1; hit <= 3; hit++ {
		tick := tg.tick()

		m := NewMissile(nil, 300, 200, 6)
		m.Update(tick)
		w.Missiles = []*Missile{m}

		p.collision.ResolveMissiles(tick)
		if len(w.Missiles) != 0 {
			t.Fatalf("hit %d: missile survived its impact", hit)
		}
		if want := 30 - 10*hit; enemy.Health != want {
			t.Fatalf("hit %d: enemy health %d, want %d", hit, enemy.Health, want)
		}

		before := len(w.Explosions)
		p.updateEnemies(tg.Game, tick)

		if hit < 3 {
			if len(w.Enemies) != 1 {
				t.Fatalf("hit %d: enemy removed early", hit)
			}
			continue
		}

		if len(w.Enemies) != 0 {
			t.Fatal("enemy should be removed on the third hit")
		}
		if got := len(w.Explosions) - before; got != 1 {
			t.Errorf("death explosions: got %d, want 1", got)
		}
		death := w.Explosions[len(w.Explosions)-1]
		if b := death.Bounds(); b.W != kind.Width || b.H != kind.Height {
			t.Errorf("death explosion size %dx%d, want %dx%d", b.W, b.H, kind.Width, kind.Height)
		}
		if got := tg.Camera().ShakeTicksRemaining(); got != deathShakeTicks {
			t.Errorf("shake after death: got %d ticks, want %d", got, deathShakeTicks)
		}
	}
}

func TestMissileCreditsOneEnemy(t *testing.T) {
	tg := newTestGame(t)
	p := tg.Playing()
	w := p.World()

	a := NewEnemy(testEnemyType(100), 300, 200, nil, nil)
	b := NewEnemy(testEnemyType(100), 310, 200, nil, nil)
	w.Enemies = []*Enemy{a, b}

	tick := tg.tick()
	m := NewMissile(nil, 305, 200, 6)
	m.Update(tick)
	w.Missiles = []*Missile{m}

	p.collision.ResolveMissiles(tick)
	if a.Health != 90 || b.Health != 100 {
		t.Errorf("health: got %d and %d, want 90 and 100", a.Health, b.Health)
	}
	if got := len(w.Explosions); got != 1 {
		t.Errorf("hit explosions: got %d, want 1", got)
	}
	if got := tg.Camera().ShakeTicksRemaining(); got != hitShakeTicks {
		t.Errorf("hit shake: got %d, want %d", got, hitShakeTicks)
	}
}

func TestFreshMissileCannotHit(t *testing.T) {
	tg := newTestGame(t)
	p := tg.Playing()
	w := p.World()

	enemy := NewEnemy(testEnemyType(100), 300, 200, nil, nil)
	w.Enemies = []*Enemy{enemy}
	w.Missiles = []*Missile{NewMissile(nil, 300, 200, 6)}

	p.collision.ResolveMissiles(tg.tick())
	if enemy.Health != 100 {
		t.Errorf("missile hit on the tick it was fired: health %d", enemy.Health)
	}
	if len(w.Missiles) != 1 {
		t.Errorf("missiles: got %d, want 1", len(w.Missiles))
	}
}

func TestAttackDebitsPlayerOnce(t *testing.T) {
	tg := newTestGame(t)
	p := tg.Playing()
	w := p.World()

	hit := w.Player.Bounds()
	a := NewEnemyAttack(nil, float64(hit.X+hit.W/2), float64(hit.Y+hit.H/2), 20, 20, 40, 0, 0, 1)
	w.Attacks = []*EnemyAttack{a}

	p.collision.ResolveAttacks(tg.tick())
	if w.Player.Health != 960 {
		t.Fatalf("player health: got %d, want 960", w.Player.Health)
	}
	if len(w.Attacks) != 0 {
		t.Fatal("attack should be removed after hitting")
	}
	if len(w.Explosions) != 1 {
		t.Errorf("impact explosions: got %d, want 1", len(w.Explosions))
	}

	p.collision.ResolveAttacks(tg.tick())
	if w.Player.Health != 960 {
		t.Errorf("player health after a second pass: got %d, want 960", w.Player.Health)
	}
}

func TestRemovedAttacksKeepTheirGlow(t *testing.T) {
	tg := newTestGame(t)
	p := tg.Playing()
	w := p.World()

	hit := w.Player.Bounds()
	w.Attacks = []*EnemyAttack{
		NewEnemyAttack(nil, float64(hit.X+hit.W/2), float64(hit.Y+hit.H/2), 20, 20, 40, 0, 0, 1),
		NewEnemyAttack(nil, 699, 100, 20, 20, 40, 5, 0, 1),
		NewEnemyAttack(nil, 300, 100, 20, 20, 40, 0, 1, 1),
	}

	p.collision.ResolveAttacks(tg.tick())
	if len(w.Attacks) != 1 {
		t.Fatalf("attacks: got %d, want 1 survivor", len(w.Attacks))
	}
	if len(w.AttackGlows) != 3 {
		t.Fatalf("glows: got %d, want one per advanced attack", len(w.AttackGlows))
	}
	if want := CenterRect(699, 100, 50, 50); w.AttackGlows[1] != want {
		t.Errorf("glow of the culled attack: got %+v, want %+v", w.AttackGlows[1], want)
	}

	p.collision.ResolveAttacks(tg.tick())
	if len(w.AttackGlows) != 1 {
		t.Errorf("glows are not reset per tick: got %d, want 1", len(w.AttackGlows))
	}
}

func TestAttackLeavingScreenDoesNoDamage(t *testing.T) {
	tg := newTestGame(t)
	p := tg.Playing()
	w := p.World()

	w.Attacks = []*EnemyAttack{NewEnemyAttack(nil, 699, 100, 20, 20, 40, 5, 0, 1)}
	p.collision.ResolveAttacks(tg.tick())

	if w.Player.Health != w.Player.MaxHealth {
		t.Errorf("player health: got %d, want %d", w.Player.Health, w.Player.MaxHealth)
	}
	if len(w.Attacks) != 0 {
		t.Error("attack should be removed once off screen")
	}
}

func TestBossDeathShake(t *testing.T) {
	tg := newTestGame(t)
	p := tg.Playing()

	boss, ok := tg.catalog.Lookup("sprayer")
	if !ok {
		t.Fatal("default table has no sprayer")
	}

	tg.Camera().Shake(10, 2, false)
	p.collision.HandleEnemyDeath(NewEnemy(boss, 300, 200, nil, nil))
	if got := tg.Camera().ShakeTicksRemaining(); got != bossDeathShakeTicks {
		t.Errorf("boss death shake: got %d, want %d", got, bossDeathShakeTicks)
	}
}
