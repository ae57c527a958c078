package game

const (
	playerStartX = 300
	playerStartY = 600

	playerDisplayW = 60
	playerDisplayH = 49
	playerHitSize  = 20

	// hit rect sits this far below the sprite centre
	playerHitOffset = 10

	heartMaxRadius = 25
	heartStep      = 0.3

	// PlayerFireInterval is the number of game ticks between volleys
	PlayerFireInterval = 10
	playerMissileSpeed = 6
)

// Player is the ship controlled by the user
type Player struct {
	X, Y      int
	Speed     int
	Damage    int
	Health    int
	MaxHealth int

	heartRadius float64
	heartDir    float64

	rect        Rect
	displayRect Rect
	heartRect   Rect

	texture      Texture
	heartTexture Texture
}

// NewPlayer creates a player at its starting position with full health
func NewPlayer(texture, heart Texture) *Player {
	p := &Player{
		X:            playerStartX,
		Y:            playerStartY,
		Speed:        3,
		Damage:       10,
		Health:       1000,
		MaxHealth:    1000,
		heartRadius:  heartMaxRadius,
		heartDir:     -1,
		texture:      texture,
		heartTexture: heart,
	}
	p.syncRects()
	return p
}

func (p *Player) syncRects() {
	p.rect = CenterRect(float64(p.X), float64(p.Y+playerHitOffset), playerHitSize, playerHitSize)
	p.displayRect = CenterRect(float64(p.X), float64(p.Y), playerDisplayW, playerDisplayH)
	r := int(p.heartRadius)
	p.heartRect = CenterRect(float64(p.X), float64(p.Y+playerHitOffset), r, r)
}

// Update syncs the rects and animates the heart overlay. Health is never
// changed here.
func (p *Player) Update(*Tick) bool {
	p.syncRects()

	p.heartRadius += heartStep * p.heartDir
	if p.heartRadius <= 0 || p.heartRadius >= heartMaxRadius {
		p.heartDir = -p.heartDir
	}
	r := int(p.heartRadius)
	p.heartRect.W, p.heartRect.H = r, r

	return p.Alive()
}

// Alive reports whether the player still has health
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Bounds returns the hit rect
func (p *Player) Bounds() Rect { return p.rect }

// DisplayRect returns the sprite rect
func (p *Player) DisplayRect() Rect { return p.displayRect }

// HeartRadius returns the current heart overlay size
func (p *Player) HeartRadius() float64 { return p.heartRadius }

// Steer moves the player one step per held direction, keeping the sprite on
// the playfield.
func (p *Player) Steer(in InputSource) {
	if in.Pressed(KeyMoveLeft) && p.displayRect.X > 0 {
		p.X -= p.Speed
	}
	if in.Pressed(KeyMoveRight) && p.displayRect.Right() < PlayfieldWidth {
		p.X += p.Speed
	}
	if in.Pressed(KeyMoveUp) && p.displayRect.Y > 0 {
		p.Y -= p.Speed
	}
	if in.Pressed(KeyMoveDown) && p.displayRect.Bottom() < PlayfieldHeight {
		p.Y += p.Speed
	}
}

// Volley returns the two missiles fired from the sprite's top corners
func (p *Player) Volley(tex Texture) []*Missile {
	top := float64(p.displayRect.Y)
	return []*Missile{
		NewMissile(tex, float64(p.displayRect.X), top, playerMissileSpeed),
		NewMissile(tex, float64(p.displayRect.Right()), top, playerMissileSpeed),
	}
}

// takeDamage debits health. Only the collision resolver calls it.
func (p *Player) takeDamage(n int) {
	p.Health -= n
}

// DeathExplosion returns the enlarged explosion shown while the player dies
func (p *Player) DeathExplosion(frames []Texture) *Explosion {
	return NewExplosion(frames, float64(p.X), float64(p.Y),
		p.displayRect.W*3, p.displayRect.H*3, 20)
}

func (p *Player) Draw(cam *Camera, r Renderer) {
	cam.Draw(r, p.texture, p.displayRect, Opaque())
	cam.Draw(r, p.heartTexture, p.heartRect, Opaque())
}
