// Package terminal runs the game in a text terminal through tcell.
package terminal

import (
	"hash/fnv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"overwhelming/game"
)

// Paint says how a sprite covers its destination cells
type Paint int

const (
	// PaintFill repeats the rune over every cell of the rect
	PaintFill Paint = iota
	// PaintCenter puts a single rune in the rect's centre cell
	PaintCenter
	// PaintCorner puts a single rune in the rect's top-left cell
	PaintCorner
	// PaintDim dims whatever is already drawn under the rect
	PaintDim
	// PaintBlank clears the rect to the sprite's background
	PaintBlank
)

// Sprite is a texture made of one terminal rune
type Sprite struct {
	Rune    rune
	Flipped rune // drawn instead of Rune when mirrored
	Style   tcell.Style
	Paint   Paint
	W, H    int
}

func (s *Sprite) Size() (int, int) { return s.W, s.H }

func fg(r, g, b int32) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(r, g, b))
}

var particleStyles = map[string]tcell.Style{
	"particle/red_circle":    fg(255, 80, 60),
	"particle/orange_circle": fg(255, 170, 40),
	"particle/white_circle":  fg(255, 255, 255),
	"particle/green_circle":  fg(80, 255, 120),
}

// Assets maps texture names to sprites. Glow and background textures have
// no terminal form and resolve to nil.
type Assets struct {
	cache map[string]*Sprite
}

// NewAssets creates the sprite table
func NewAssets() *Assets {
	return &Assets{cache: make(map[string]*Sprite)}
}

func (a *Assets) Texture(name string) game.Texture {
	if s, ok := a.cache[name]; ok {
		return s
	}
	s := spriteFor(name)
	if s == nil {
		return nil
	}
	a.cache[name] = s
	return s
}

func spriteFor(name string) *Sprite {
	switch {
	case strings.HasPrefix(name, "font/"):
		r := []rune(strings.TrimPrefix(name, "font/"))
		if len(r) != 1 {
			return nil
		}
		// sized so that text at size 40 advances one cell on an 80 column terminal
		return &Sprite{Rune: r[0], Style: tcell.StyleDefault, Paint: PaintCorner, W: 19, H: 40}
	case strings.HasPrefix(name, "particle/"):
		return &Sprite{Rune: '•', Style: particleStyles[name], Paint: PaintCenter, W: 1, H: 1}
	case strings.HasPrefix(name, "hit/"):
		return &Sprite{Rune: '✶', Style: fg(255, 150, 40), Paint: PaintCenter, W: 1, H: 1}
	case strings.Contains(name, "/frames/"):
		kind := name[:strings.Index(name, "/")]
		return &Sprite{Rune: '▓', Style: kindStyle(kind), Paint: PaintFill, W: 1, H: 1}
	case strings.Contains(name, "/attacks/"):
		return &Sprite{Rune: '●', Style: fg(230, 60, 255), Paint: PaintCenter, W: 1, H: 1}
	}

	switch name {
	case game.TexPlayer:
		return &Sprite{Rune: '▲', Style: fg(100, 150, 255), Paint: PaintFill, W: 1, H: 1}
	case game.TexHeart:
		return &Sprite{Rune: '♥', Style: fg(255, 40, 80), Paint: PaintCenter, W: 1, H: 1}
	case game.TexMissile:
		return &Sprite{Rune: '┃', Style: fg(255, 210, 60), Paint: PaintCenter, W: 1, H: 1}
	case game.TexHealthBar:
		return &Sprite{Rune: '▀', Style: fg(220, 40, 40), Paint: PaintFill, W: 1, H: 1}
	case game.TexArrow:
		return &Sprite{Rune: '▶', Flipped: '◀', Style: tcell.StyleDefault, Paint: PaintCenter, W: 1, H: 1}
	case game.TexDim:
		return &Sprite{Paint: PaintDim, W: 1, H: 1}
	case game.TexFade:
		return &Sprite{Rune: ' ', Style: tcell.StyleDefault.Background(tcell.ColorBlack), Paint: PaintBlank, W: 1, H: 1}
	}
	return nil
}

func kindStyle(kind string) tcell.Style {
	h := fnv.New32a()
	h.Write([]byte(kind))
	v := h.Sum32()
	return fg(int32(128+v%128), int32(64+(v>>8)%128), int32(64+(v>>16)%128))
}
