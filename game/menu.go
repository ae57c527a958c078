package game

import "math"

// Menu item labels
const (
	MenuPlay    = "play"
	MenuOptions = "options"
	MenuExit    = "exit"
)

const (
	menuItemMinSize = 50
	menuItemMaxSize = 60

	menuTitle     = "overwhelming"
	menuTitleY    = 250
	menuTitleSize = 60

	menuDimAlpha = 125

	arrowW = 20
	arrowH = 24

	// decorative projectiles stream from the top-left corner
	menuAttackOrigin = -10
	menuAttackSize   = 20
	menuAttackTurn   = 4
)

type menuItem struct {
	label string
	x, y  int
	size  int
}

// Menu is the title screen with its play/options/exit selector
type Menu struct {
	items    []menuItem
	selected int

	attacks     []*EnemyAttack
	attackAngle int
}

// NewMenu creates the menu with "play" selected
func NewMenu() *Menu {
	return &Menu{
		items: []menuItem{
			{label: MenuPlay, x: 300, y: 350, size: menuItemMinSize},
			{label: MenuOptions, x: 300, y: 420, size: menuItemMinSize},
			{label: MenuExit, x: 300, y: 490, size: menuItemMinSize},
		},
	}
}

// Selected returns the label of the highlighted item
func (m *Menu) Selected() string {
	return m.items[m.selected].label
}

// ItemSize returns the current text size of an item, or 0 if unknown
func (m *Menu) ItemSize(label string) int {
	for _, it := range m.items {
		if it.label == label {
			return it.size
		}
	}
	return 0
}

// Attacks returns the decorative projectiles currently on screen
func (m *Menu) Attacks() []*EnemyAttack { return m.attacks }

func (m *Menu) update(g *Game) error {
	in := g.input

	if in.JustPressed(KeyConfirm) {
		switch m.Selected() {
		case MenuPlay:
			m.attacks = nil
			g.startPlaying()
			return nil
		case MenuOptions:
			g.openOptions()
		case MenuExit:
			return ErrQuit
		}
	}
	// the list does not wrap
	if in.JustPressed(KeyDown) && m.selected < len(m.items)-1 {
		m.selected++
	}
	if in.JustPressed(KeyUp) && m.selected > 0 {
		m.selected--
	}

	m.attackAngle += menuAttackTurn
	rad := radians(float64(m.attackAngle))
	m.attacks = append(m.attacks, NewEnemyAttack(g.menuAttackFrames(),
		menuAttackOrigin, menuAttackOrigin, menuAttackSize, menuAttackSize, 0,
		math.Sin(rad), math.Cos(rad), 1))

	g.background.Scroll()

	// decorative projectiles ignore the player and only leave the screen
	t := g.tick()
	survivors := make([]*EnemyAttack, 0, len(m.attacks))
	for _, a := range m.attacks {
		if a.Advance(t) != SignalOutOfScreen {
			survivors = append(survivors, a)
		}
	}
	m.attacks = survivors

	for i := range m.items {
		it := &m.items[i]
		if i == m.selected {
			if it.size < menuItemMaxSize {
				it.size++
			}
		} else if it.size > menuItemMinSize {
			it.size--
		}
	}

	return nil
}

func (m *Menu) draw(g *Game, r Renderer) {
	cam := g.camera
	s := g.sprites

	g.background.Draw(cam, r)
	for _, a := range m.attacks {
		cam.Draw(r, s.glow, a.GlowRect(), Opaque())
	}
	drawAll(m.attacks, cam, r)

	cam.Draw(r, s.dim, dimRect, DrawOptions{Alpha: menuDimAlpha})
	g.font.DrawCentered(cam, r, menuTitle, PlayfieldWidth/2, menuTitleY, menuTitleSize, textMenu)

	for i, it := range m.items {
		width := g.font.DrawCentered(cam, r, it.label, it.x, it.y, it.size, textMenu)
		if i != m.selected {
			continue
		}
		left := Rect{X: it.x - arrowW - width/2 - 10, Y: it.y - arrowH + 9, W: arrowW, H: arrowH}
		right := left
		right.X = it.x + width/2 - 3
		cam.Draw(r, s.arrow, left, Opaque())
		cam.Draw(r, s.arrow, right, DrawOptions{Alpha: 255, FlipH: true})
	}
}
