package game

import "image/color"

// Texture is an opaque image handle owned by a frontend
type Texture interface {
	// Size returns the source image size in pixels
	Size() (w, h int)
}

// DrawOptions modifies a single texture blit
type DrawOptions struct {
	Alpha uint8       // 255 is opaque
	FlipH bool        // mirror horizontally
	Tint  color.Color // multiplies the texture colour when non-nil
}

// Opaque returns draw options for a plain, fully visible blit
func Opaque() DrawOptions {
	return DrawOptions{Alpha: 255}
}

// Renderer draws textures onto the frontend's surface.
// Destination rects are already in window space; the Camera does the mapping.
type Renderer interface {
	Clear()
	DrawTexture(tex Texture, dst Rect, opts DrawOptions)
	Present()
}
