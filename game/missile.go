package game

const (
	missileWidth  = 40
	missileHeight = 57
)

// Missile is a player projectile travelling straight up
type Missile struct {
	X, Y  float64
	Speed float64

	rect    Rect
	texture Texture
}

// NewMissile creates a missile. Its rect stays empty until the first Update,
// so a missile cannot hit anything on the tick it is fired.
func NewMissile(tex Texture, x, y, speed float64) *Missile {
	return &Missile{X: x, Y: y, Speed: speed, texture: tex}
}

// Update records the rect at the current position, then moves. The missile
// lives while any part of that rect is below the top edge.
func (m *Missile) Update(*Tick) bool {
	m.rect = CenterRect(m.X, m.Y, missileWidth, missileHeight)
	m.Y -= m.Speed
	return m.rect.Bottom() > 0
}

func (m *Missile) Bounds() Rect { return m.rect }

func (m *Missile) Draw(cam *Camera, r Renderer) {
	cam.Draw(r, m.texture, m.rect, Opaque())
}
