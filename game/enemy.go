package game

import "math"

const (
	enemyMaxAlpha  = 255
	enemyFadeStep  = 3
	enemyMoveTicks = 120
)

// Enemy wanders between random targets and fires spiral volleys
type Enemy struct {
	Kind   *EnemyType
	X, Y   float64
	Health int
	Alpha  int

	ticks          int
	attackRotation float64
	shotCooldown   int

	nextMoveTicks int
	distToTarget  int
	velX, velY    float64

	frame        int
	frames       []Texture
	attackFrames []Texture

	rect Rect
}

// NewEnemy creates a fully transparent enemy of the given kind at (x, y)
func NewEnemy(kind *EnemyType, x, y float64, frames, attackFrames []Texture) *Enemy {
	return &Enemy{
		Kind:         kind,
		X:            x,
		Y:            y,
		Health:       kind.Health,
		shotCooldown: kind.ShotCooldown,
		frames:       frames,
		attackFrames: attackFrames,
		rect:         CenterRect(x, y, kind.Width, kind.Height),
	}
}

// spawnArea is the range of centres that keep a w×h sprite inside the
// upper playfield.
func spawnArea(w, h int) (xs, ys IntRange) {
	xs = IntRange{Min: int(float64(w) / 2), Max: int(PlayfieldWidth - float64(w)/2)}
	ys = IntRange{Min: int(float64(h) / 2), Max: int(spawnFloor - float64(h)/2)}
	return xs, ys
}

// ReadyToFire reports whether the shot cooldown has run out
func (e *Enemy) ReadyToFire() bool {
	return e.shotCooldown == 0
}

// Fire emits ShotCount projectiles, turning the spiral between each, and
// restarts the cooldown.
func (e *Enemy) Fire() []*EnemyAttack {
	k := e.Kind
	shots := make([]*EnemyAttack, 0, k.ShotCount)
	for i := 0; i < k.ShotCount; i++ {
		e.attackRotation += k.AttackRotationVel
		rad := radians(e.attackRotation)
		vx := math.Sin(rad) * k.AttackXMult
		vy := math.Cos(rad) * k.AttackYMult
		shots = append(shots, NewEnemyAttack(e.attackFrames, e.X, float64(e.rect.Bottom()),
			k.AttackWidth, k.AttackHeight, k.AttackDamage, vx, vy, k.AttackFrameTicks))
	}
	e.shotCooldown = k.ShotCooldown
	return shots
}

// Update wanders, animates and fades in. The enemy lives while it has health.
func (e *Enemy) Update(t *Tick) bool {
	k := e.Kind
	e.ticks++
	e.rect = CenterRect(e.X, e.Y, k.Width, k.Height)
	e.shotCooldown--

	if e.nextMoveTicks == 0 {
		xs, ys := spawnArea(k.Width, k.Height)
		tx := float64(t.Rand.Pick(xs))
		ty := float64(t.Rand.Pick(ys))

		rad := radians(float64(headingDegrees(e.X, e.Y, tx, ty)))
		e.velX = math.Sin(rad)
		e.velY = math.Cos(rad)
		e.distToTarget = int(math.Hypot(tx-e.X, ty-e.Y))
		e.nextMoveTicks = enemyMoveTicks
	}

	if e.distToTarget > 0 {
		e.distToTarget--
		// enemies hold still until fully faded in
		if e.Alpha == enemyMaxAlpha {
			e.X += e.velX * k.Speed
			e.Y += e.velY * k.Speed
		}
	} else {
		e.nextMoveTicks--
	}

	if e.ticks%k.FrameDelayTicks == 0 && len(e.frames) > 0 {
		e.frame = (e.frame + 1) % len(e.frames)
	}

	if e.Alpha != enemyMaxAlpha {
		e.Alpha += min(enemyFadeStep, enemyMaxAlpha-e.Alpha)
	}

	return e.Alive()
}

// Alive reports whether the enemy has health left
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// Hit debits health
func (e *Enemy) Hit(damage int) {
	e.Health -= damage
}

func (e *Enemy) Bounds() Rect { return e.rect }

// DeathExplosion returns the explosion left behind when the enemy dies
func (e *Enemy) DeathExplosion(frames []Texture) *Explosion {
	return NewExplosion(frames, e.X, e.Y, e.Kind.Width, e.Kind.Height, 10)
}

func (e *Enemy) Draw(cam *Camera, r Renderer) {
	cam.Draw(r, frameAt(e.frames, e.frame), e.rect, DrawOptions{Alpha: uint8(e.Alpha)})
}
