package terminal

import (
	"github.com/gdamore/tcell/v2"

	"overwhelming/game"
)

// Alpha thresholds below which translucent sprites are not painted
const (
	dimThreshold   = 64
	blankThreshold = 128
	faintThreshold = 200
)

// Renderer paints sprites onto a tcell screen. The camera is scaled to the
// screen's cell grid, so destination rects arrive in cells.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) Clear() {
	r.screen.Clear()
}

func (r *Renderer) Present() {
	r.screen.Show()
}

func (r *Renderer) DrawTexture(tex game.Texture, dst game.Rect, opts game.DrawOptions) {
	s, ok := tex.(*Sprite)
	if !ok || opts.Alpha == 0 {
		return
	}

	style := s.Style
	if opts.Tint != nil {
		cr, cg, cb, _ := opts.Tint.RGBA()
		style = style.Foreground(tcell.NewRGBColor(int32(cr>>8), int32(cg>>8), int32(cb>>8)))
	}
	if opts.Alpha < faintThreshold {
		style = style.Dim(true)
	}
	ch := s.Rune
	if opts.FlipH && s.Flipped != 0 {
		ch = s.Flipped
	}

	switch s.Paint {
	case PaintCenter:
		r.set(dst.X+dst.W/2, dst.Y+dst.H/2, ch, style)
	case PaintCorner:
		r.set(dst.X, dst.Y, ch, style)
	case PaintFill:
		r.fill(dst, func(x, y int) { r.set(x, y, ch, style) })
	case PaintDim:
		if opts.Alpha < dimThreshold {
			return
		}
		r.fill(dst, func(x, y int) {
			mainc, combc, st, _ := r.screen.GetContent(x, y)
			r.screen.SetContent(x, y, mainc, combc, st.Dim(true))
		})
	case PaintBlank:
		if opts.Alpha < blankThreshold {
			return
		}
		r.fill(dst, func(x, y int) { r.set(x, y, ' ', s.Style) })
	}
}

// fill visits every on-screen cell of rect
func (r *Renderer) fill(rect game.Rect, paint func(x, y int)) {
	cols, rows := r.screen.Size()
	x0, y0 := max(rect.X, 0), max(rect.Y, 0)
	x1, y1 := min(rect.Right(), cols), min(rect.Bottom(), rows)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			paint(x, y)
		}
	}
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
