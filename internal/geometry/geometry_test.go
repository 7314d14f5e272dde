package geometry

import (
	"encoding/xml"
	"image/color"
	"testing"

	"ShapeBoard/internal/config"
	"ShapeBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtent(t *testing.T) {
	s := DefaultStyle()
	assert.Equal(t, float32(20), s.Extent(state.Circle))
	assert.Equal(t, float32(40), s.Extent(state.Star))
	assert.Equal(t, float32(30), s.Extent(state.Ring))
	assert.Equal(t, float32(0), s.Extent(state.NoShape))
}

func TestNewStyleNormalisesRing(t *testing.T) {
	cfg := config.Default()
	cfg.Shapes.Ring = config.RingShape{InnerRadius: 30, OuterRadius: 20}
	s := NewStyle(cfg)
	assert.Equal(t, float32(20), s.RingInner)
	assert.Equal(t, float32(30), s.RingOuter)
}

func TestContains(t *testing.T) {
	s := DefaultStyle()
	tests := []struct {
		kind   state.ShapeKind
		dx, dy float32
		want   bool
	}{
		{state.Circle, 0, 0, true},
		{state.Circle, 19, 0, true},
		{state.Circle, 15, 15, false},
		{state.Ring, 0, 0, false},
		{state.Ring, 25, 0, true},
		{state.Ring, 0, -29, true},
		{state.Ring, 31, 0, false},
		{state.Star, 0, 0, true},
		{state.Star, 0, -38, true},
		{state.Star, 0, 38, false},
		{state.Star, 35, 35, false},
		{state.NoShape, 0, 0, false},
	}
	for _, tt := range tests {
		got := s.Contains(tt.kind, tt.dx, tt.dy)
		assert.Equal(t, tt.want, got, "%s at (%v, %v)", tt.kind, tt.dx, tt.dy)
	}
}

func TestStarVertices(t *testing.T) {
	s := DefaultStyle()
	pts := s.StarVertices()
	require.Len(t, pts, 10)
	assert.InDelta(t, 0, pts[0].X, 1e-4)
	assert.InDelta(t, -40, pts[0].Y, 1e-4)

	s.StarPoints = 2
	assert.Nil(t, s.StarVertices())
}

func TestBounds(t *testing.T) {
	s := DefaultStyle()
	r := s.Bounds(state.Circle, state.Point{X: 100, Y: 50})
	assert.Equal(t, Rect{X: 80, Y: 30, Width: 40, Height: 40}, r)
	assert.True(t, r.ContainsPoint(state.Point{X: 80, Y: 70}))
	assert.False(t, r.ContainsPoint(state.Point{X: 79, Y: 50}))
	assert.Equal(t, Rect{X: 90, Y: 40, Width: 40, Height: 40}, r.Translate(10, 10))
}

func TestRasterize(t *testing.T) {
	s := DefaultStyle()
	fill := color.RGBAModel.Convert(s.Fill).(color.RGBA)

	img := s.Rasterize(state.Ring, 60, 60)
	assert.Equal(t, color.RGBA{}, img.RGBAAt(30, 30), "ring hole")
	assert.Equal(t, fill, img.RGBAAt(55, 30), "ring band")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(1, 1), "ring corner")

	img = s.Rasterize(state.Circle, 40, 40)
	assert.Equal(t, fill, img.RGBAAt(20, 20))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(1, 1))

	img = s.Rasterize(state.Star, 80, 80)
	assert.Equal(t, fill, img.RGBAAt(40, 40))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(40, 78))

	img = s.Rasterize(state.Star, 0, 10)
	assert.Equal(t, 0, img.Bounds().Dx())
}

func TestRasterizeMatchesContains(t *testing.T) {
	s := DefaultStyle()
	for _, kind := range state.Kinds {
		ext := s.Extent(kind)
		size := int(2 * ext)
		img := s.Rasterize(kind, size, size)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				dx, dy := float32(x)+0.5-ext, float32(y)+0.5-ext
				switch img.RGBAAt(x, y).A {
				case 0xff:
					assert.True(t, s.Contains(kind, dx, dy), "%s painted at (%d, %d)", kind, x, y)
				case 0:
					assert.False(t, s.Contains(kind, dx, dy), "%s empty at (%d, %d)", kind, x, y)
				}
			}
		}
	}
}

func TestOutline(t *testing.T) {
	s := DefaultStyle()
	for _, kind := range state.Kinds {
		assert.NotNil(t, s.Outline(kind, 1), kind.String())
	}
	assert.Nil(t, s.Outline(state.NoShape, 1))

	s.StarPoints = 2
	assert.Nil(t, s.Outline(state.Star, 1))
}

func TestIconSVG(t *testing.T) {
	s := DefaultStyle()
	for _, kind := range state.Kinds {
		data := s.IconSVG(kind)
		require.NotEmpty(t, data, kind.String())
		assert.Contains(t, string(data), "#89b717")

		var doc struct {
			XMLName xml.Name `xml:"svg"`
		}
		assert.NoError(t, xml.Unmarshal(data, &doc), kind.String())
	}
	assert.Nil(t, s.IconSVG(state.NoShape))
}
