package geometry

import "ShapeBoard/internal/state"

// Rect is an axis-aligned box on the canvas.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// ContainsPoint reports whether p lies inside the box, edges included.
func (r Rect) ContainsPoint(p state.Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Translate returns the box moved by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	r.X += dx
	r.Y += dy
	return r
}
