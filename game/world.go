package game

// World owns every live population of a Playing session. Each population
// is replaced wholesale once per tick by filtering on liveness.
type World struct {
	Player     *Player
	Missiles   []*Missile
	Particles  []*Particle
	Attacks    []*EnemyAttack
	Enemies    []*Enemy
	Explosions []*Explosion

	// AttackGlows holds the halo of every projectile advanced this tick,
	// including the ones removed on it.
	AttackGlows []Rect
}

// NewWorld creates an empty world around a fresh player
func NewWorld(player *Player) *World {
	return &World{Player: player}
}

// Clear drops every population except the player
func (w *World) Clear() {
	w.Missiles = nil
	w.Particles = nil
	w.Attacks = nil
	w.Enemies = nil
	w.Explosions = nil
	w.AttackGlows = nil
}

// Empty reports whether every population other than the player is empty
func (w *World) Empty() bool {
	return len(w.Missiles) == 0 && len(w.Particles) == 0 && len(w.Attacks) == 0 &&
		len(w.Enemies) == 0 && len(w.Explosions) == 0
}

// Stats is a snapshot of population sizes
type Stats struct {
	Mode       Mode
	Wave       int
	Enemies    int
	Attacks    int
	Particles  int
	Missiles   int
	Explosions int
}

// Stats returns the current population sizes
func (w *World) Stats() Stats {
	return Stats{
		Enemies:    len(w.Enemies),
		Attacks:    len(w.Attacks),
		Particles:  len(w.Particles),
		Missiles:   len(w.Missiles),
		Explosions: len(w.Explosions),
	}
}
