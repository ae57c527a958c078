package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"overwhelming/game"
)

// bindings maps each logical key to the physical keys that trigger it
var bindings = map[game.Key][]ebiten.Key{
	game.KeyConfirm:        {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	game.KeyUp:             {ebiten.KeyArrowUp, ebiten.KeyW},
	game.KeyDown:           {ebiten.KeyArrowDown, ebiten.KeyS},
	game.KeyMoveUp:         {ebiten.KeyW, ebiten.KeyArrowUp},
	game.KeyMoveLeft:       {ebiten.KeyA, ebiten.KeyArrowLeft},
	game.KeyMoveDown:       {ebiten.KeyS, ebiten.KeyArrowDown},
	game.KeyMoveRight:      {ebiten.KeyD, ebiten.KeyArrowRight},
	game.KeyDebugSpawn:     {ebiten.KeyG},
	game.KeyDebugWaveSound: {ebiten.KeyH},
	game.KeyDebugStats:     {ebiten.KeyF1},
	game.KeyQuit:           {ebiten.KeyEscape},
}

// Input reads the keyboard through ebiten. Poll must run inside ebiten's
// Update.
type Input struct {
	state game.KeyState
}

// NewInput creates an input source using the default bindings
func NewInput() *Input {
	return &Input{}
}

func (in *Input) Poll() {
	for k, keys := range bindings {
		held := false
		for _, key := range keys {
			if inpututil.IsKeyJustPressed(key) {
				in.state.Press(k)
			}
			if ebiten.IsKeyPressed(key) {
				held = true
			}
		}
		if !held {
			in.state.Release(k)
		}
	}
	in.state.SetCursor(ebiten.CursorPosition())
	in.state.Poll()
}

func (in *Input) JustPressed(k game.Key) bool { return in.state.JustPressed(k) }

func (in *Input) Pressed(k game.Key) bool { return in.state.Pressed(k) }

func (in *Input) Cursor() (int, int) { return in.state.Cursor() }
