package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"overwhelming/game"
)

// Renderer draws onto the screen image ebiten hands to Draw
type Renderer struct {
	screen *ebiten.Image
}

// SetTarget sets the image the next frame is drawn onto
func (r *Renderer) SetTarget(screen *ebiten.Image) {
	r.screen = screen
}

func (r *Renderer) Clear() {
	if r.screen != nil {
		r.screen.Clear()
	}
}

// DrawTexture stretches tex over dst
func (r *Renderer) DrawTexture(tex game.Texture, dst game.Rect, opts game.DrawOptions) {
	t, ok := tex.(*Texture)
	if !ok || r.screen == nil || dst.Empty() || opts.Alpha == 0 {
		return
	}

	w, h := t.Size()
	if w == 0 || h == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	if opts.FlipH {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(w), 0)
	}
	op.GeoM.Scale(float64(dst.W)/float64(w), float64(dst.H)/float64(h))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	op.Filter = ebiten.FilterLinear

	if opts.Tint != nil {
		op.ColorScale.ScaleWithColor(opts.Tint)
	}
	if opts.Alpha != 255 {
		op.ColorScale.ScaleAlpha(float32(opts.Alpha) / 255)
	}

	r.screen.DrawImage(t.img, op)
}

// Present is a no-op: ebiten shows the screen once Draw returns
func (r *Renderer) Present() {}
