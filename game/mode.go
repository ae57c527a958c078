package game

// Mode is the top level state of a Game
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeDeathScreen
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeDeathScreen:
		return "death-screen"
	default:
		return "unknown"
	}
}

// modeHandler is implemented by each mode's state
type modeHandler interface {
	update(g *Game) error
	draw(g *Game, r Renderer)
}
