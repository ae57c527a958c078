package game

// Signal is the per-tick outcome of an enemy projectile
type Signal int

const (
	SignalNone Signal = iota
	SignalHitPlayer
	SignalOutOfScreen
)

func (s Signal) String() string {
	switch s {
	case SignalHitPlayer:
		return "hit-player"
	case SignalOutOfScreen:
		return "out-of-screen"
	default:
		return "none"
	}
}

// Projectiles are only culled once well past the visible area.
const (
	attackMinX = -100
	attackMaxX = 700
	attackMinY = -100
	attackMaxY = 800

	glowStep = 0.2
)

// EnemyAttack is a projectile fired by an enemy, or a decorative one on the
// menu. Its velocity is fixed at creation.
type EnemyAttack struct {
	X, Y   float64
	VX, VY float64
	W, H   int
	Damage int

	glowRadius float64
	glowMin    float64
	glowMax    float64
	glowDir    float64
	glowRect   Rect

	ticks      int
	frame      int
	frameTicks int
	frames     []Texture

	rect Rect
}

// NewEnemyAttack creates a projectile at (x, y)
func NewEnemyAttack(frames []Texture, x, y float64, w, h, damage int, vx, vy float64, frameTicks int) *EnemyAttack {
	if frameTicks <= 0 {
		frameTicks = 1
	}
	a := &EnemyAttack{
		X:          x,
		Y:          y,
		VX:         vx,
		VY:         vy,
		W:          w,
		H:          h,
		Damage:     damage,
		glowMin:    float64(w) * 2,
		glowMax:    float64(w) * 2.5,
		glowDir:    -1,
		frameTicks: frameTicks,
		frames:     frames,
	}
	a.glowRadius = a.glowMax
	return a
}

// Advance moves the projectile one tick and reports what happened to it.
// The rect is taken at the position before the move.
func (a *EnemyAttack) Advance(t *Tick) Signal {
	a.ticks++

	g := int(a.glowRadius)
	a.glowRect = CenterRect(a.X, a.Y, g, g)
	a.rect = CenterRect(a.X, a.Y, a.W, a.H)

	a.X += a.VX
	a.Y += a.VY

	if a.ticks%a.frameTicks == 0 && len(a.frames) > 0 {
		a.frame = (a.frame + 1) % len(a.frames)
	}

	a.glowRadius += glowStep * a.glowDir
	if a.glowRadius <= a.glowMin || a.glowRadius >= a.glowMax {
		a.glowDir = -a.glowDir
	}

	if a.rect.Intersects(t.PlayerRect) {
		return SignalHitPlayer
	}
	if !(a.X > attackMinX && a.X < attackMaxX && a.Y > attackMinY && a.Y < attackMaxY) {
		return SignalOutOfScreen
	}
	return SignalNone
}

// Update is Advance reduced to liveness
func (a *EnemyAttack) Update(t *Tick) bool {
	return a.Advance(t) == SignalNone
}

func (a *EnemyAttack) Bounds() Rect { return a.rect }

// GlowRadius returns the current halo size
func (a *EnemyAttack) GlowRadius() float64 { return a.glowRadius }

// GlowRect returns the halo rect captured before the last move
func (a *EnemyAttack) GlowRect() Rect { return a.glowRect }

func (a *EnemyAttack) Draw(cam *Camera, r Renderer) {
	cam.Draw(r, frameAt(a.frames, a.frame), a.rect, Opaque())
}
