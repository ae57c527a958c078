package game

import "image/color"

// DefaultGlyphs is the character set the font renderer loads
const DefaultGlyphs = "abcdefghijklmnopqrstuvwxyz0123456789"

type glyph struct {
	tex    Texture
	wRatio float64
	hRatio float64
}

// FontRenderer draws text from one texture per glyph. A glyph's on-screen
// size is its texture size scaled by size/100.
type FontRenderer struct {
	glyphs map[rune]glyph
}

// NewFontRenderer loads the glyph textures for every rune in include
func NewFontRenderer(store AssetStore, include string) *FontRenderer {
	f := &FontRenderer{glyphs: make(map[rune]glyph, len(include))}
	for _, c := range include {
		tex := store.Texture(GlyphName(c))
		if tex == nil {
			continue
		}
		w, h := tex.Size()
		f.glyphs[c] = glyph{
			tex:    tex,
			wRatio: float64(w) * 0.01,
			hRatio: float64(h) * 0.01,
		}
	}
	return f
}

func spaceAdvance(size int) int {
	return 20 * size / 60
}

// Draw renders text with its top-left corner at (x, y)
func (f *FontRenderer) Draw(cam *Camera, r Renderer, text string, x, y, size int, clr color.Color) {
	opts := DrawOptions{Alpha: 255, Tint: clr}
	cursor := x
	for _, c := range text {
		if c == ' ' {
			cursor += spaceAdvance(size)
			continue
		}
		g, ok := f.glyphs[c]
		if !ok {
			continue
		}
		dst := Rect{
			X: cursor,
			Y: y,
			W: int(g.wRatio * float64(size)),
			H: int(g.hRatio * float64(size)),
		}
		cam.Draw(r, g.tex, dst, opts)
		cursor += dst.W
	}
}

// DrawCentered renders text centred on (x, y) and returns the summed glyph
// width, spaces excluded.
func (f *FontRenderer) DrawCentered(cam *Camera, r Renderer, text string, x, y, size int, clr color.Color) int {
	left, top, width := f.centre(text, x, y, size)
	f.Draw(cam, r, text, left, top, size, clr)
	return width
}

// Width returns the width DrawCentered would report for text
func (f *FontRenderer) Width(text string, size int) int {
	_, _, width := f.centre(text, 0, 0, size)
	return width
}

func (f *FontRenderer) centre(text string, x, y, size int) (left, top, width int) {
	cx := float64(x)
	total := 0.0
	heights := 0.0
	count := 0
	for _, c := range text {
		count++
		if c == ' ' {
			cx -= float64(spaceAdvance(size) / 2)
			continue
		}
		g, ok := f.glyphs[c]
		if !ok {
			continue
		}
		cx -= g.wRatio * float64(size) * 0.5
		total += g.wRatio * float64(size)
		heights += g.hRatio * float64(size) * 0.5
	}
	top = y
	if count > 0 {
		top = y - int(heights/float64(count))
	}
	return int(cx), top, int(total)
}
