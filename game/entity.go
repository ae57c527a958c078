package game

// Tick carries what entities may read while advancing one frame
type Tick struct {
	// PlayerRect is the player's hit rect as of the previous player update
	PlayerRect Rect

	// Rand is the game's shared random source
	Rand *Rand
}

// Entity is implemented by every simulated kind: Player, Missile, Particle,
// EnemyAttack, Enemy and Explosion.
type Entity interface {
	// Update advances one tick and reports whether the entity is still alive
	Update(t *Tick) bool

	// Bounds returns the rect computed by the last Update
	Bounds() Rect

	// Draw submits the entity's sprite through the camera
	Draw(cam *Camera, r Renderer)
}

var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Missile)(nil)
	_ Entity = (*Particle)(nil)
	_ Entity = (*EnemyAttack)(nil)
	_ Entity = (*Enemy)(nil)
	_ Entity = (*Explosion)(nil)
)

// advance updates every entity once and returns the survivors in order.
// The input slice is left untouched so callers never observe a half-filtered
// population.
func advance[T Entity](items []T, t *Tick) []T {
	out := make([]T, 0, len(items))
	for _, e := range items {
		if e.Update(t) {
			out = append(out, e)
		}
	}
	return out
}

func drawAll[T Entity](items []T, cam *Camera, r Renderer) {
	for _, e := range items {
		e.Draw(cam, r)
	}
}

// frameAt returns frames[i] or nil when the frame set is short
func frameAt(frames []Texture, i int) Texture {
	if i < 0 || i >= len(frames) {
		return nil
	}
	return frames[i]
}
