package game

// Camera shake presets
const (
	hitShakeTicks     = 5
	hitShakeMagnitude = 2

	deathShakeTicks     = 80
	deathShakeMagnitude = 5

	bossDeathShakeTicks     = 270
	bossDeathShakeMagnitude = 8
)

// CollisionSystem resolves hits between populations and applies damage
type CollisionSystem struct {
	world           *World
	camera          *Camera
	explosionFrames []Texture
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *World, camera *Camera, explosionFrames []Texture) *CollisionSystem {
	return &CollisionSystem{
		world:           world,
		camera:          camera,
		explosionFrames: explosionFrames,
	}
}

// ResolveMissiles tests every missile against the enemies before moving it.
// The first enemy hit takes the player's damage and the missile is spent, so
// one missile never credits more than one enemy.
func (c *CollisionSystem) ResolveMissiles(t *Tick) {
	w := c.world
	survivors := make([]*Missile, 0, len(w.Missiles))

	for _, m := range w.Missiles {
		hit := false
		for _, e := range w.Enemies {
			if m.Bounds().Intersects(e.Bounds()) {
				hit = true
				c.HandleMissileHit(m, e)
				break
			}
		}

		// Update always runs so the missile's rect stays current even on the
		// tick it is spent.
		if m.Update(t) && !hit {
			survivors = append(survivors, m)
		}
	}

	w.Missiles = survivors
}

// HandleMissileHit applies a single missile impact to an enemy
func (c *CollisionSystem) HandleMissileHit(m *Missile, e *Enemy) {
	c.world.Explosions = append(c.world.Explosions, NewHitExplosion(c.explosionFrames, m.X, m.Y))
	e.Hit(c.world.Player.Damage)
	c.camera.Shake(hitShakeTicks, hitShakeMagnitude, false)
}

// ResolveAttacks advances every enemy projectile. A projectile that reaches
// the player debits its damage once and is dropped on the same pass.
func (c *CollisionSystem) ResolveAttacks(t *Tick) {
	w := c.world
	survivors := make([]*EnemyAttack, 0, len(w.Attacks))
	w.AttackGlows = w.AttackGlows[:0]

	for _, a := range w.Attacks {
		signal := a.Advance(t)
		w.AttackGlows = append(w.AttackGlows, a.GlowRect())
		switch signal {
		case SignalNone:
			survivors = append(survivors, a)
			continue
		case SignalHitPlayer:
			w.Player.takeDamage(a.Damage)
		}

		if w.Player.Alive() {
			w.Explosions = append(w.Explosions, NewHitExplosion(c.explosionFrames, a.X, a.Y))
		}
	}

	w.Attacks = survivors
}

// HandleEnemyDeath leaves an explosion the size of the enemy and shakes the
// camera, harder for bosses. Both shakes interrupt any running shake.
func (c *CollisionSystem) HandleEnemyDeath(e *Enemy) {
	c.world.Explosions = append(c.world.Explosions, e.DeathExplosion(c.explosionFrames))
	if e.Kind.IsBoss() {
		c.camera.Shake(bossDeathShakeTicks, bossDeathShakeMagnitude, true)
	} else {
		c.camera.Shake(deathShakeTicks, deathShakeMagnitude, true)
	}
}
