package game

// DeathScreen waits for a confirm press and returns to the menu
type DeathScreen struct{}

func (d *DeathScreen) update(g *Game) error {
	if g.input.JustPressed(KeyConfirm) {
		g.setMode(ModeMenu)
	}
	return nil
}

func (d *DeathScreen) draw(g *Game, r Renderer) {
	cam := g.camera
	cam.Draw(r, g.sprites.fade, fadeRect, Opaque())
	g.font.DrawCentered(cam, r, "you died", PlayfieldWidth/2, 200, 70, textWhite)
	g.font.DrawCentered(cam, r, "press enter to continue", PlayfieldWidth/2, 500, 30, textWhite)
}
