package game

const (
	explosionFrames     = 5
	explosionSize       = 48
	explosionFrameTicks = 5
)

// Explosion is a one-shot five frame animation
type Explosion struct {
	rect       Rect
	ticks      int
	frame      int
	frameTicks int
	frames     []Texture
}

// NewExplosion creates a w×h explosion centred on (x, y)
func NewExplosion(frames []Texture, x, y float64, w, h, frameTicks int) *Explosion {
	if frameTicks <= 0 {
		frameTicks = 1
	}
	return &Explosion{
		rect:       CenterRect(x, y, w, h),
		frameTicks: frameTicks,
		frames:     frames,
	}
}

// NewHitExplosion creates the small explosion used for projectile impacts
func NewHitExplosion(frames []Texture, x, y float64) *Explosion {
	return NewExplosion(frames, x, y, explosionSize, explosionSize, explosionFrameTicks)
}

// Update advances the animation. It ends on the tick the last frame expires.
func (e *Explosion) Update(*Tick) bool {
	e.ticks++
	if e.ticks%e.frameTicks == 0 {
		e.frame++
		if e.frame == explosionFrames {
			return false
		}
	}
	return true
}

// Frame returns the current animation frame index
func (e *Explosion) Frame() int { return e.frame }

func (e *Explosion) Bounds() Rect { return e.rect }

func (e *Explosion) Draw(cam *Camera, r Renderer) {
	cam.Draw(r, frameAt(e.frames, e.frame), e.rect, Opaque())
}
