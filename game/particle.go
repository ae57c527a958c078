package game

const (
	particleStartAlpha = 255
	defaultLoseAlpha   = 6

	// an alpha of 1 marks a spent particle
	particleAlphaFloor = 1
)

// Particle is a fading sprite used for thruster exhaust and enemy trails
type Particle struct {
	X, Y      float64
	VX, VY    float64
	Gravity   float64
	W, H      int
	Alpha     int
	LoseAlpha int

	rect    Rect
	texture Texture
}

// NewParticle creates an opaque size×size particle with no gravity
func NewParticle(tex Texture, x, y, vx, vy float64, size int) *Particle {
	return &Particle{
		X:         x,
		Y:         y,
		VX:        vx,
		VY:        vy,
		W:         size,
		H:         size,
		Alpha:     particleStartAlpha,
		LoseAlpha: defaultLoseAlpha,
		texture:   tex,
	}
}

// Update integrates motion and fades the particle. It is removed on the
// tick its alpha first reaches the floor.
func (p *Particle) Update(*Tick) bool {
	p.X += p.VX
	p.Y += p.VY
	p.VY += p.Gravity
	p.rect = CenterRect(p.X, p.Y, p.W, p.H)

	p.Alpha -= p.LoseAlpha
	if p.Alpha < particleAlphaFloor {
		p.Alpha = particleAlphaFloor
	}
	return p.Alpha != particleAlphaFloor
}

func (p *Particle) Bounds() Rect { return p.rect }

// GlowRect returns the halo drawn under the particle
func (p *Particle) GlowRect() Rect {
	return CenterRect(p.X, p.Y, p.W*2, p.W*2)
}

func (p *Particle) Draw(cam *Camera, r Renderer) {
	cam.Draw(r, p.texture, p.rect, DrawOptions{Alpha: uint8(p.Alpha)})
}
