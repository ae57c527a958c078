package terminal

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"overwhelming/game"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func styleAt(s tcell.Screen, x, y int) tcell.Style {
	_, _, st, _ := s.GetContent(x, y)
	return st
}

func TestDrawFillCoversRectClipped(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	r := NewRenderer(screen)
	a := NewAssets()

	r.DrawTexture(a.Texture(game.TexHealthBar), game.Rect{X: 7, Y: 3, W: 5, H: 4}, game.Opaque())

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			want := ' '
			if x >= 7 && y >= 3 {
				want = '▀'
			}
			if got := runeAt(screen, x, y); got != want {
				t.Errorf("cell (%d,%d) = %q, want %q", x, y, got, want)
			}
		}
	}
}

func TestDrawCenterAndCorner(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	r := NewRenderer(screen)
	a := NewAssets()

	r.DrawTexture(a.Texture(game.TexHeart), game.Rect{X: 2, Y: 2, W: 4, H: 4}, game.Opaque())
	r.DrawTexture(a.Texture("font/x"), game.Rect{X: 10, Y: 1, W: 3, H: 3}, game.Opaque())

	if got := runeAt(screen, 4, 4); got != '♥' {
		t.Errorf("heart centre = %q, want '♥'", got)
	}
	if got := runeAt(screen, 2, 2); got == '♥' {
		t.Error("centred sprite should not paint the corner")
	}
	if got := runeAt(screen, 10, 1); got != 'x' {
		t.Errorf("glyph corner = %q, want 'x'", got)
	}
}

func TestDrawFlipUsesMirroredRune(t *testing.T) {
	screen := newTestScreen(t, 5, 5)
	r := NewRenderer(screen)
	arrow := NewAssets().Texture(game.TexArrow)

	opts := game.Opaque()
	opts.FlipH = true
	r.DrawTexture(arrow, game.Rect{X: 0, Y: 0, W: 1, H: 1}, opts)
	r.DrawTexture(arrow, game.Rect{X: 2, Y: 0, W: 1, H: 1}, game.Opaque())

	if got := runeAt(screen, 0, 0); got != '◀' {
		t.Errorf("flipped arrow = %q, want '◀'", got)
	}
	if got := runeAt(screen, 2, 0); got != '▶' {
		t.Errorf("arrow = %q, want '▶'", got)
	}
}

func TestDrawTintAndFaintAlpha(t *testing.T) {
	screen := newTestScreen(t, 5, 5)
	r := NewRenderer(screen)
	missile := NewAssets().Texture(game.TexMissile)

	r.DrawTexture(missile, game.Rect{X: 0, Y: 0, W: 1, H: 1}, game.DrawOptions{
		Alpha: 255,
		Tint:  color.RGBA{R: 10, G: 20, B: 30, A: 255},
	})
	r.DrawTexture(missile, game.Rect{X: 2, Y: 0, W: 1, H: 1}, game.DrawOptions{Alpha: 100})

	fg, _, attr := styleAt(screen, 0, 0).Decompose()
	if fg != tcell.NewRGBColor(10, 20, 30) {
		t.Errorf("tinted foreground = %v, want rgb(10,20,30)", fg)
	}
	if attr&tcell.AttrDim != 0 {
		t.Error("opaque sprite should not be dim")
	}
	if _, _, attr := styleAt(screen, 2, 0).Decompose(); attr&tcell.AttrDim == 0 {
		t.Error("faint sprite should be dim")
	}
}

func TestDrawDimOverlay(t *testing.T) {
	tests := []struct {
		name    string
		alpha   uint8
		wantDim bool
	}{
		{"transparent", 0, false},
		{"below threshold", dimThreshold - 1, false},
		{"at threshold", dimThreshold, true},
		{"opaque", 255, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newTestScreen(t, 4, 4)
			r := NewRenderer(screen)
			a := NewAssets()

			r.DrawTexture(a.Texture(game.TexHealthBar), game.Rect{X: 0, Y: 0, W: 4, H: 4}, game.Opaque())
			r.DrawTexture(a.Texture(game.TexDim), game.Rect{X: 0, Y: 0, W: 2, H: 2}, game.DrawOptions{Alpha: tt.alpha})

			_, _, attr := styleAt(screen, 1, 1).Decompose()
			if got := attr&tcell.AttrDim != 0; got != tt.wantDim {
				t.Errorf("dimmed = %v, want %v", got, tt.wantDim)
			}
			if got := runeAt(screen, 1, 1); got != '▀' {
				t.Errorf("dim overlay replaced the cell with %q", got)
			}
			if _, _, attr := styleAt(screen, 3, 3).Decompose(); attr&tcell.AttrDim != 0 {
				t.Error("cell outside the overlay was dimmed")
			}
		})
	}
}

func TestDrawFadeBlanks(t *testing.T) {
	screen := newTestScreen(t, 4, 4)
	r := NewRenderer(screen)
	a := NewAssets()
	fade := a.Texture(game.TexFade)
	full := game.Rect{X: 0, Y: 0, W: 4, H: 4}

	r.DrawTexture(a.Texture(game.TexHealthBar), full, game.Opaque())
	r.DrawTexture(fade, full, game.DrawOptions{Alpha: blankThreshold - 1})
	if got := runeAt(screen, 0, 0); got != '▀' {
		t.Fatalf("light fade should leave the cell, got %q", got)
	}

	r.DrawTexture(fade, full, game.DrawOptions{Alpha: blankThreshold})
	if got := runeAt(screen, 0, 0); got != ' ' {
		t.Errorf("heavy fade should blank the cell, got %q", got)
	}
}

func TestAssetsWithoutTerminalForm(t *testing.T) {
	a := NewAssets()
	for _, name := range []string{game.TexGlow, game.TexBackground, "font/ab", "nothing/here"} {
		if tex := a.Texture(name); tex != nil {
			t.Errorf("Texture(%q) = %v, want nil", name, tex)
		}
	}
	if a.Texture(game.TexPlayer) != a.Texture(game.TexPlayer) {
		t.Error("sprites should be cached")
	}
}

func TestEveryGameTextureResolvesOrIsOptional(t *testing.T) {
	a := NewAssets()
	optional := map[string]bool{game.TexGlow: true, game.TexBackground: true, game.TexIcon: true}
	for _, name := range game.TextureNames(game.DefaultEnemyCatalog()) {
		if optional[name] {
			continue
		}
		if a.Texture(name) == nil {
			t.Errorf("no sprite for %q", name)
		}
	}
}
