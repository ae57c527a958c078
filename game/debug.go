package game

import "fmt"

// DebugState holds debug flags that persist across sessions of one Game
type DebugState struct {
	ShowStats bool // Show live population counts in the top-left corner
}

const debugTextSize = 20

func (g *Game) drawDebug(r Renderer) {
	if !g.debug.ShowStats {
		return
	}
	s := g.Stats()
	lines := []string{
		fmt.Sprintf("mode %s", s.Mode),
		fmt.Sprintf("wave %d", s.Wave),
		fmt.Sprintf("enemies %d", s.Enemies),
		fmt.Sprintf("attacks %d", s.Attacks),
		fmt.Sprintf("particles %d", s.Particles),
		fmt.Sprintf("missiles %d", s.Missiles),
	}
	y := 60
	for _, line := range lines {
		g.font.Draw(g.camera, r, line, 10, y, debugTextSize, textWhite)
		y += debugTextSize
	}
}
