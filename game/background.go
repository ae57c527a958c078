package game

import (
	"fmt"
	"image/color"
)

const (
	backgroundScroll = 4
	backgroundX      = -10
	backgroundW      = 620
	backgroundH      = 700
)

// Background is two stacked tiles scrolling downwards
type Background struct {
	y1, y2 int
	tex    Texture
}

// NewBackground creates the tiles with the second one directly above the first
func NewBackground(tex Texture) *Background {
	return &Background{y1: 0, y2: -backgroundH, tex: tex}
}

// Scroll moves both tiles down, wrapping whichever left the bottom
func (b *Background) Scroll() {
	b.y1 += backgroundScroll
	b.y2 += backgroundScroll
	if b.y1 >= backgroundH {
		b.y1 = -backgroundH
	} else if b.y2 >= backgroundH {
		b.y2 = -backgroundH
	}
}

// Offsets returns the y of both tiles
func (b *Background) Offsets() (int, int) { return b.y1, b.y2 }

// Draw cancels the vertical shake so the seam between tiles never opens
func (b *Background) Draw(cam *Camera, r Renderer) {
	_, oy := cam.Offset()
	cam.Draw(r, b.tex, Rect{X: backgroundX, Y: b.y1 - oy, W: backgroundW, H: backgroundH}, Opaque())
	cam.Draw(r, b.tex, Rect{X: backgroundX, Y: b.y2 - oy, W: backgroundW, H: backgroundH}, Opaque())
}

const (
	healthBarWidth  = 500
	healthBarHeight = 50
)

var (
	textBlack = color.RGBA{A: 255}
	textWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	textMenu  = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

var dimRect = Rect{X: -100, Y: -100, W: 1000, H: 1000}

var fadeRect = Rect{W: PlayfieldWidth, H: PlayfieldHeight}

// drawHealthBar draws the bar at the top centre scaled by remaining health,
// with the value printed over it.
func drawHealthBar(cam *Camera, r Renderer, tex Texture, font *FontRenderer, health, maxHealth int) {
	if maxHealth > 0 {
		w := int(float64(health) / float64(maxHealth) * healthBarWidth)
		if w > 0 {
			cam.Draw(r, tex, CenterRect(PlayfieldWidth/2, 0, w, healthBarHeight), Opaque())
		}
	}
	font.DrawCentered(cam, r, fmt.Sprintf("%dhp", max(health, 0)), PlayfieldWidth/2, 10, 25, textBlack)
}
