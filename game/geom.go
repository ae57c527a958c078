package game

import "math"

// Rect is an integer screen rectangle anchored at its top-left corner
type Rect struct {
	X, Y, W, H int
}

// CenterRect builds a w×h rect whose centre is the truncated (x, y)
func CenterRect(x, y float64, w, h int) Rect {
	return Rect{X: int(x) - w/2, Y: int(y) - h/2, W: w, H: h}
}

// Empty reports whether the rect has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right returns the x coordinate one past the right edge
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate one past the bottom edge
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether two rects share a positive area.
// Rects that merely touch, or that are empty, never intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// headingDegrees returns the whole-degree heading from (x, y) to (tx, ty),
// measured from the +y axis so that sin gives the x step and cos the y step.
func headingDegrees(x, y, tx, ty float64) int {
	return int(math.Atan2(tx-x, ty-y) * 180 / math.Pi)
}
