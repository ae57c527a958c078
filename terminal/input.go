package terminal

import (
	"github.com/gdamore/tcell/v2"

	"overwhelming/game"
)

// Terminals report key presses and auto-repeats but never releases, so a
// key counts as held until no press has arrived for holdTicks.
const defaultHoldTicks = 36

var keyBindings = map[tcell.Key][]game.Key{
	tcell.KeyEnter:  {game.KeyConfirm},
	tcell.KeyUp:     {game.KeyUp, game.KeyMoveUp},
	tcell.KeyDown:   {game.KeyDown, game.KeyMoveDown},
	tcell.KeyLeft:   {game.KeyMoveLeft},
	tcell.KeyRight:  {game.KeyMoveRight},
	tcell.KeyF1:     {game.KeyDebugStats},
	tcell.KeyEscape: {game.KeyQuit},
	tcell.KeyCtrlC:  {game.KeyQuit},
}

var runeBindings = map[rune][]game.Key{
	'w': {game.KeyUp, game.KeyMoveUp},
	'a': {game.KeyMoveLeft},
	's': {game.KeyDown, game.KeyMoveDown},
	'd': {game.KeyMoveRight},
	'g': {game.KeyDebugSpawn},
	'h': {game.KeyDebugWaveSound},
	' ': {game.KeyConfirm},
}

// Input turns tcell events into game keys. Events are read from a channel
// so the screen can be polled on its own goroutine.
type Input struct {
	events   <-chan tcell.Event
	onResize func(cols, rows int)

	state     game.KeyState
	lastPress map[game.Key]int
	tick      int
	holdTicks int
}

// NewInput creates an input reading events. onResize may be nil.
func NewInput(events <-chan tcell.Event, onResize func(cols, rows int)) *Input {
	return &Input{
		events:    events,
		onResize:  onResize,
		lastPress: make(map[game.Key]int),
		holdTicks: defaultHoldTicks,
	}
}

// PollEvents forwards screen events into a channel until the screen is
// finalized.
func PollEvents(screen tcell.Screen) <-chan tcell.Event {
	ch := make(chan tcell.Event, 100)
	go func() {
		defer close(ch)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			ch <- ev
		}
	}()
	return ch
}

func (in *Input) Poll() {
	in.tick++
	in.drain()

	for k, at := range in.lastPress {
		if in.tick-at > in.holdTicks {
			in.state.Release(k)
			delete(in.lastPress, k)
		}
	}
	in.state.Poll()
}

func (in *Input) drain() {
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				return
			}
			in.handle(ev)
		default:
			return
		}
	}
}

func (in *Input) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		keys := keyBindings[ev.Key()]
		if ev.Key() == tcell.KeyRune {
			keys = runeBindings[ev.Rune()]
		}
		for _, k := range keys {
			in.state.Press(k)
			in.lastPress[k] = in.tick
		}
	case *tcell.EventResize:
		if in.onResize != nil {
			in.onResize(ev.Size())
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		in.state.SetCursor(x, y)
	}
}

func (in *Input) JustPressed(k game.Key) bool { return in.state.JustPressed(k) }

func (in *Input) Pressed(k game.Key) bool { return in.state.Pressed(k) }

func (in *Input) Cursor() (int, int) { return in.state.Cursor() }
