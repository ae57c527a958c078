package game

// Camera maps logical playfield rects to window space and applies shake
type Camera struct {
	offsetX, offsetY int
	wmult, hmult     float64

	shakeTicks int
	magnitude  int

	rng *Rand
}

// NewCamera creates a camera with unit scale and no shake
func NewCamera(rng *Rand) *Camera {
	return &Camera{
		wmult: 1,
		hmult: 1,
		rng:   rng,
	}
}

// Update advances the shake countdown by one tick and resamples the offset
func (c *Camera) Update() {
	if c.shakeTicks > 0 {
		c.offsetX = c.rng.Between(-c.magnitude, c.magnitude)
		c.offsetY = c.rng.Between(-c.magnitude, c.magnitude)
		c.shakeTicks--
	}
	if c.shakeTicks == 0 {
		c.offsetX, c.offsetY = 0, 0
	}
}

// Shake starts a shake lasting amount ticks with offsets up to magnitude.
// An active shake is only replaced when interrupt is set.
func (c *Camera) Shake(amount, magnitude int, interrupt bool) {
	if c.shakeTicks > 0 && !interrupt {
		return
	}
	if amount < 0 {
		amount = 0
	}
	if magnitude < 0 {
		magnitude = -magnitude
	}
	c.shakeTicks = amount
	c.magnitude = magnitude
}

// Scale recomputes the window multipliers for a new window size
func (c *Camera) Scale(newW, newH, baseW, baseH int) {
	if newW <= 0 || newH <= 0 || baseW <= 0 || baseH <= 0 {
		return
	}
	c.wmult = float64(newW) / float64(baseW)
	c.hmult = float64(newH) / float64(baseH)
}

// Offset returns the current shake offset
func (c *Camera) Offset() (int, int) {
	return c.offsetX, c.offsetY
}

// Multipliers returns the current window scale factors
func (c *Camera) Multipliers() (float64, float64) {
	return c.wmult, c.hmult
}

// ShakeTicksRemaining returns how many ticks of shake are left
func (c *Camera) ShakeTicksRemaining() int {
	return c.shakeTicks
}

// Project maps a logical rect to window space
func (c *Camera) Project(r Rect) Rect {
	return Rect{
		X: int(float64(r.X+c.offsetX) * c.wmult),
		Y: int(float64(r.Y+c.offsetY) * c.hmult),
		W: int(float64(r.W) * c.wmult),
		H: int(float64(r.H) * c.hmult),
	}
}

// Draw routes a blit through the camera. Missing textures are skipped.
func (c *Camera) Draw(r Renderer, tex Texture, dst Rect, opts DrawOptions) {
	if tex == nil {
		return
	}
	r.DrawTexture(tex, c.Project(dst), opts)
}
