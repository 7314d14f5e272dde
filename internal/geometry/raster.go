package geometry

import (
	"image"

	"ShapeBoard/internal/state"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/vector"
)

// Outline returns the filled outline of a shape of kind centred on the
// origin, with radii multiplied by scale. Paths are y-up like every canvas
// path; the star has a point facing up. NoShape has no outline.
func (s Style) Outline(kind state.ShapeKind, scale float64) *canvas.Path {
	switch kind {
	case state.Circle:
		return canvas.Circle(float64(s.CircleRadius) * scale)
	case state.Ring:
		p := canvas.Circle(float64(s.RingOuter) * scale)
		if s.RingInner > 0 {
			// opposite winding cuts the hole
			p = p.Append(canvas.Circle(float64(s.RingInner) * scale).Reverse())
		}
		return p
	case state.Star:
		if s.StarPoints < 3 {
			return nil
		}
		return canvas.StarPolygon(s.StarPoints, float64(s.StarOuter)*scale, float64(s.StarInner)*scale, true)
	}
	return nil
}

// Rasterize renders a shape of kind, centred and scaled to fill a w×h pixel
// image, with anti-aliased edges.
func (s Style) Rasterize(kind state.ShapeKind, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	ext := s.Extent(kind)
	if w <= 0 || h <= 0 || ext <= 0 {
		return dst
	}

	scale := float64(min(w, h)) / float64(2*ext)
	p := s.Outline(kind, scale)
	if p == nil {
		return dst
	}

	// one path unit per pixel; ToVectorRasterizer flips the y-up path into image space
	ras := vector.NewRasterizer(w, h)
	p.Translate(float64(w)/2, float64(h)/2).ToVectorRasterizer(ras, canvas.DPMM(1))
	ras.Draw(dst, dst.Bounds(), image.NewUniform(s.Fill), image.Point{})
	return dst
}
