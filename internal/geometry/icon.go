package geometry

import (
	"bytes"
	"log"

	"ShapeBoard/internal/state"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/svg"
)

// IconSVG returns a square SVG document drawing a shape of kind, used for
// the palette buttons. The icon keeps the configured proportions.
func (s Style) IconSVG(kind state.ShapeKind) []byte {
	ext := float64(s.Extent(kind))
	p := s.Outline(kind, 1)
	if ext <= 0 || p == nil {
		return nil
	}

	c := canvas.New(2*ext, 2*ext)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(s.Fill)
	ctx.DrawPath(ext, ext, p)

	var buf bytes.Buffer
	w := svg.New(&buf, c.W, c.H, nil)
	c.RenderTo(w)
	if err := w.Close(); err != nil {
		log.Printf("[GEOMETRY] %s icon: %v", kind, err)
		return nil
	}
	return buf.Bytes()
}
