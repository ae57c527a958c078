// Package desktop runs the game in a window through ebiten.
package desktop

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"overwhelming/game"
	"overwhelming/placeholder"
)

// Texture wraps an ebiten image for the game's renderer
type Texture struct {
	img *ebiten.Image
}

func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the underlying ebiten image
func (t *Texture) Image() *ebiten.Image { return t.img }

var imageExtensions = []string{".png", ".jpg"}

// Assets resolves texture names against a directory, generating a
// placeholder for anything that is missing.
type Assets struct {
	root  string
	cache map[string]*Texture

	placeholders int
}

// NewAssets creates a store reading from root
func NewAssets(root string) *Assets {
	return &Assets{
		root:  root,
		cache: make(map[string]*Texture),
	}
}

func (a *Assets) Texture(name string) game.Texture {
	if t, ok := a.cache[name]; ok {
		return t
	}

	src, err := a.Source(name)
	if err != nil {
		log.Printf("[Assets] %v", err)
		return nil
	}
	t := &Texture{img: ebiten.NewImageFromImage(src)}
	a.cache[name] = t
	return t
}

// Source loads the decoded image for name, falling back to a placeholder
func (a *Assets) Source(name string) (image.Image, error) {
	for _, ext := range imageExtensions {
		path := filepath.Join(a.root, filepath.FromSlash(name)+ext)
		img, err := loadImage(path)
		if err == nil {
			return img, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	if a.placeholders == 0 {
		log.Printf("[Assets] %s not found under %s, using generated placeholders", name, a.root)
	}
	a.placeholders++
	return placeholder.Image(name), nil
}

// Placeholders returns how many textures were generated instead of loaded
func (a *Assets) Placeholders() int { return a.placeholders }

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
