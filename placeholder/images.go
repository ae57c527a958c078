// Package placeholder draws stand-in textures and sounds for builds that
// ship without the asset directory.
package placeholder

import (
	"hash/fnv"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"overwhelming/game"
)

// Glyph textures share one cell size so the font renderer's size ratios
// match the shipped font.
const (
	GlyphWidth  = 40
	GlyphHeight = 60
)

var (
	white   = color.RGBA{255, 255, 255, 255}
	black   = color.RGBA{0, 0, 0, 255}
	magenta = color.RGBA{255, 0, 255, 255}
)

var particleColors = map[string]color.RGBA{
	"red":    {255, 80, 60, 255},
	"orange": {255, 170, 40, 255},
	"white":  {255, 255, 255, 255},
	"green":  {80, 255, 120, 255},
}

// Image returns a generated texture for a logical texture name. Unknown
// names get a checkerboard so they stand out.
func Image(name string) *image.RGBA {
	switch {
	case strings.HasPrefix(name, "font/"):
		r := []rune(strings.TrimPrefix(name, "font/"))
		if len(r) != 1 {
			return checker(16, 16)
		}
		return Glyph(r[0])
	case strings.HasPrefix(name, "particle/"):
		key := strings.TrimSuffix(strings.TrimPrefix(name, "particle/"), "_circle")
		clr, ok := particleColors[key]
		if !ok {
			clr = white
		}
		return softDisc(16, clr)
	case strings.HasPrefix(name, "hit/hit"):
		n, _ := strconv.Atoi(strings.TrimPrefix(name, "hit/hit"))
		return ring(48, n)
	case strings.Contains(name, "/frames/"):
		kind := name[:strings.Index(name, "/")]
		frame, _ := strconv.Atoi(name[strings.LastIndex(name, "frame")+len("frame"):])
		return enemyShip(100, 100, kindColor(kind), frame)
	case strings.Contains(name, "/attacks/"):
		return softDisc(20, color.RGBA{230, 60, 255, 255})
	}

	switch name {
	case game.TexPlayer, game.TexIcon:
		return ship(60, 49, color.RGBA{100, 150, 255, 255}, false)
	case game.TexHeart:
		return disc(32, color.RGBA{255, 40, 80, 255})
	case game.TexMissile:
		return missile(40, 57)
	case game.TexGlow:
		return softDisc(64, white)
	case game.TexBackground:
		return starfield(620, 700)
	case game.TexHealthBar:
		return healthBar(500, 50)
	case game.TexArrow:
		return arrow(20, 24)
	case game.TexDim:
		return solid(8, 8, black)
	case game.TexFade:
		return solid(8, 8, color.RGBA{20, 0, 0, 255})
	}
	return checker(16, 16)
}

// Glyph renders c from the 7x13 bitmap font, scaled up to the glyph cell.
// Glyphs are white so draw-time tinting gives them their colour.
func Glyph(c rune) *image.RGBA {
	face := basicfont.Face7x13
	small := image.NewRGBA(image.Rect(0, 0, face.Advance, face.Height))
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(white),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(string(c))

	dst := image.NewRGBA(image.Rect(0, 0, GlyphWidth, GlyphHeight))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), small, small.Bounds(), draw.Over, nil)
	return dst
}

func solid(w, h int, clr color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
	return img
}

func checker(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/4+y/4)%2 == 0 {
				img.SetRGBA(x, y, magenta)
			} else {
				img.SetRGBA(x, y, black)
			}
		}
	}
	return img
}

func disc(size int, clr color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r) <= r {
				img.SetRGBA(x, y, clr)
			}
		}
	}
	return img
}

// softDisc fades from clr at the centre to transparent at the rim
func softDisc(size int, clr color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r) / r
			if d >= 1 {
				continue
			}
			a := 1 - d*d
			img.SetRGBA(x, y, premultiply(clr, a))
		}
	}
	return img
}

// ring draws explosion frame n as an orange ring that widens and thins
func ring(size, n int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	outer := c * (0.4 + 0.12*float64(n))
	width := c * 0.5 / float64(max(n, 1))
	clr := color.RGBA{255, uint8(max(220-30*n, 60)), 40, 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c)
			if d <= outer && d >= outer-width {
				img.SetRGBA(x, y, clr)
			}
		}
	}
	return img
}

// ship draws a filled triangle with a dark outline, nose up unless down
func ship(w, h int, clr color.RGBA, down bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx := float64(w) / 2
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h)
		if down {
			t = 1 - t
		}
		half := cx * t
		for x := 0; x < w; x++ {
			dx := math.Abs(float64(x) + 0.5 - cx)
			switch {
			case dx < half-1:
				img.SetRGBA(x, y, clr)
			case dx < half:
				img.SetRGBA(x, y, black)
			}
		}
	}
	return img
}

func enemyShip(w, h int, clr color.RGBA, frame int) *image.RGBA {
	if frame%2 == 0 {
		clr = color.RGBA{clr.R / 2, clr.G / 2, clr.B / 2, 255}
	}
	return ship(w, h, clr, true)
}

func missile(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	body := image.Rect(w/2-4, h/5, w/2+4, h)
	draw.Draw(img, body, image.NewUniform(color.RGBA{255, 210, 60, 255}), image.Point{}, draw.Src)
	tip := ship(8, h/5, color.RGBA{255, 120, 40, 255}, false)
	draw.Draw(img, image.Rect(w/2-4, 0, w/2+4, h/5), tip, image.Point{}, draw.Over)
	return img
}

func arrow(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cy := float64(h) / 2
	for y := 0; y < h; y++ {
		reach := float64(w) * (1 - math.Abs(float64(y)+0.5-cy)/cy)
		for x := 0; x < int(reach); x++ {
			img.SetRGBA(x, y, white)
		}
	}
	return img
}

func healthBar(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		t := float64(x) / float64(w)
		clr := color.RGBA{uint8(220 * (1 - t)), uint8(60 + 160*t), 60, 255}
		for y := 0; y < h; y++ {
			img.SetRGBA(x, y, clr)
		}
	}
	return img
}

// starfield is deterministic so that the two scrolling tiles line up
func starfield(w, h int) *image.RGBA {
	img := solid(w, h, color.RGBA{8, 10, 28, 255})
	seed := uint32(2463534242)
	next := func() uint32 {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		return seed
	}
	for i := 0; i < 220; i++ {
		x := int(next() % uint32(w))
		y := int(next() % uint32(h))
		b := uint8(120 + next()%136)
		img.SetRGBA(x, y, color.RGBA{b, b, b, 255})
	}
	return img
}

func kindColor(kind string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(kind))
	v := h.Sum32()
	return color.RGBA{uint8(128 + v%128), uint8(64 + (v>>8)%128), uint8(64 + (v>>16)%128), 255}
}

func premultiply(clr color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(clr.R) * a),
		G: uint8(float64(clr.G) * a),
		B: uint8(float64(clr.B) * a),
		A: uint8(255 * a),
	}
}
