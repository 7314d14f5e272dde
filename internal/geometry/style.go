// Package geometry describes the fixed per-kind shape geometry: extents,
// hit testing, rasterisation and palette icons.
package geometry

import (
	"image/color"
	"math"

	"ShapeBoard/internal/config"
	"ShapeBoard/internal/state"
)

// Style is the geometry and fill shared by every shape of a kind.
type Style struct {
	CircleRadius float32
	StarPoints   int
	StarInner    float32
	StarOuter    float32
	RingInner    float32
	RingOuter    float32
	Fill         color.Color
}

// NewStyle builds a Style from validated config. Ring radii are normalised so
// RingInner <= RingOuter whatever order the config gives them in.
func NewStyle(cfg config.Config) Style {
	s := Style{
		CircleRadius: cfg.Shapes.Circle.Radius,
		StarPoints:   cfg.Shapes.Star.Points,
		StarInner:    cfg.Shapes.Star.InnerRadius,
		StarOuter:    cfg.Shapes.Star.OuterRadius,
		RingInner:    cfg.Shapes.Ring.InnerRadius,
		RingOuter:    cfg.Shapes.Ring.OuterRadius,
		Fill:         cfg.FillColor(),
	}
	if s.RingInner > s.RingOuter {
		s.RingInner, s.RingOuter = s.RingOuter, s.RingInner
	}
	return s
}

// DefaultStyle is NewStyle of the default config.
func DefaultStyle() Style {
	return NewStyle(config.Default())
}

// Extent returns half the side of the square box enclosing a shape of kind.
func (s Style) Extent(kind state.ShapeKind) float32 {
	switch kind {
	case state.Circle:
		return s.CircleRadius
	case state.Star:
		return max(s.StarOuter, s.StarInner)
	case state.Ring:
		return s.RingOuter
	}
	return 0
}

// Bounds returns the box enclosing a shape of kind centred at c.
func (s Style) Bounds(kind state.ShapeKind, c state.Point) Rect {
	e := s.Extent(kind)
	return Rect{X: c.X - e, Y: c.Y - e, Width: 2 * e, Height: 2 * e}
}

// Contains reports whether the offset (dx, dy) from the shape centre lies on
// the painted area of a shape of kind.
func (s Style) Contains(kind state.ShapeKind, dx, dy float32) bool {
	d2 := dx*dx + dy*dy
	switch kind {
	case state.Circle:
		return d2 <= s.CircleRadius*s.CircleRadius
	case state.Ring:
		return d2 >= s.RingInner*s.RingInner && d2 <= s.RingOuter*s.RingOuter
	case state.Star:
		return pointInPolygon(state.Point{X: dx, Y: dy}, s.StarVertices())
	}
	return false
}

// StarVertices returns the star outline around the origin, alternating outer
// and inner radius, with the first point straight up (screen coordinates).
func (s Style) StarVertices() []state.Point {
	n := s.StarPoints * 2
	if n < 6 {
		return nil
	}
	pts := make([]state.Point, 0, n)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		r := float64(s.StarOuter)
		if i%2 == 1 {
			r = float64(s.StarInner)
		}
		theta := -math.Pi/2 + float64(i)*step
		sin, cos := math.Sincos(theta)
		pts = append(pts, state.Point{X: float32(r * cos), Y: float32(r * sin)})
	}
	return pts
}

// pointInPolygon is an even-odd ray cast.
func pointInPolygon(p state.Point, poly []state.Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
