// Package core holds the platform-neutral types shared by games and the
// terminal front end: the cell screen, colors, input frames and runtime
// settings. Nothing here imports Bubble Tea.
package core

// Rect is an axis-aligned screen area in character cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle at (x, y) with the given size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inner returns the area inside a one-cell border drawn on r.
// Rectangles too small to have an inside yield an empty Rect.
func (r Rect) Inner() Rect {
	if r.W < 2 || r.H < 2 {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
}

// Centered returns a w×h rectangle centered in outer. When it does not fit
// it is pinned to outer's top-left corner.
func Centered(w, h int, outer Rect) Rect {
	return Rect{
		X: outer.X + Clamp((outer.W-w)/2, 0, max(0, outer.W-w)),
		Y: outer.Y + Clamp((outer.H-h)/2, 0, max(0, outer.H-h)),
		W: w,
		H: h,
	}
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
