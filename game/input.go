package game

// Key is a logical input the simulation reacts to
type Key int

const (
	KeyConfirm Key = iota
	KeyUp
	KeyDown
	KeyMoveUp
	KeyMoveLeft
	KeyMoveDown
	KeyMoveRight
	KeyDebugSpawn
	KeyDebugWaveSound
	KeyDebugStats
	KeyQuit

	keyCount
)

var keyNames = [...]string{
	KeyConfirm:        "confirm",
	KeyUp:             "up",
	KeyDown:           "down",
	KeyMoveUp:         "move-up",
	KeyMoveLeft:       "move-left",
	KeyMoveDown:       "move-down",
	KeyMoveRight:      "move-right",
	KeyDebugSpawn:     "debug-spawn",
	KeyDebugWaveSound: "debug-wave-sound",
	KeyDebugStats:     "debug-stats",
	KeyQuit:           "quit",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// InputSource provides the keyboard state for one tick
type InputSource interface {
	// Poll latches the input state for the coming tick
	Poll()

	// JustPressed reports a key-down event during the latched tick
	JustPressed(k Key) bool

	// Pressed reports whether a key is currently held
	Pressed(k Key) bool

	// Cursor returns the pointer position in window space
	Cursor() (x, y int)
}

// KeyState is an InputSource driven by explicit calls. It backs the
// terminal frontend and headless runs.
type KeyState struct {
	held    [keyCount]bool
	pending [keyCount]bool
	latched [keyCount]bool
	cx, cy  int
}

// Press records a key-down event and marks the key held
func (s *KeyState) Press(k Key) {
	if k < 0 || k >= keyCount {
		return
	}
	s.pending[k] = true
	s.held[k] = true
}

// Release marks a key as no longer held
func (s *KeyState) Release(k Key) {
	if k < 0 || k >= keyCount {
		return
	}
	s.held[k] = false
}

// SetCursor records the pointer position
func (s *KeyState) SetCursor(x, y int) {
	s.cx, s.cy = x, y
}

func (s *KeyState) Poll() {
	s.latched = s.pending
	s.pending = [keyCount]bool{}
}

func (s *KeyState) JustPressed(k Key) bool {
	return k >= 0 && k < keyCount && s.latched[k]
}

func (s *KeyState) Pressed(k Key) bool {
	return k >= 0 && k < keyCount && s.held[k]
}

func (s *KeyState) Cursor() (int, int) {
	return s.cx, s.cy
}
