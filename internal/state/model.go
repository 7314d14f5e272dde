package state

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a shape name is not one of the palette kinds.
var ErrUnknownKind = errors.New("unknown shape kind")

// Point is a position in canvas content space.
type Point struct{ X, Y float32 }

// Viewport is the last observed size of the window content.
type Viewport struct {
	Width  float32
	Height float32
}

// ShapeKind identifies a palette tool and the shape it stamps.
// The zero value means no tool is selected.
type ShapeKind int

const (
	NoShape ShapeKind = iota
	Circle
	Star
	Ring
)

// Kinds lists the palette kinds in the order the palette shows them.
var Kinds = []ShapeKind{Star, Circle, Ring}

func (k ShapeKind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Star:
		return "star"
	case Ring:
		return "ring"
	case NoShape:
		return "none"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// Valid reports whether k is one of the palette kinds.
func (k ShapeKind) Valid() bool {
	return k == Circle || k == Star || k == Ring
}

// ParseShapeKind converts a shape name such as "star" into its kind.
func ParseShapeKind(s string) (ShapeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circle":
		return Circle, nil
	case "star":
		return Star, nil
	case "ring":
		return Ring, nil
	}
	return NoShape, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// PlacedShape is one shape stamped onto the canvas.
type PlacedShape struct {
	ID   string
	Kind ShapeKind
	X    float32
	Y    float32
}

// Pos returns the shape centre.
func (s PlacedShape) Pos() Point { return Point{X: s.X, Y: s.Y} }
