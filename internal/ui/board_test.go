package ui

import (
	"bytes"
	"image/color"
	"log"
	"os"
	"testing"

	"ShapeBoard/internal/geometry"
	"ShapeBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T) (*BoardWidget, fyne.Window) {
	t.Helper()
	test.NewTempApp(t)

	ed := state.NewEditor(state.Viewport{})
	b := NewBoardWidget(ed, geometry.DefaultStyle(), color.White)
	ed.OnChange = b.Refresh

	w := test.NewWindow(b)
	t.Cleanup(w.Close)
	w.SetPadded(false)
	w.Resize(fyne.NewSize(400, 300))
	return b, w
}

func boardShapes(b *BoardWidget) []*shapeWidget {
	var out []*shapeWidget
	for _, o := range test.WidgetRenderer(b).Objects() {
		if sw, ok := o.(*shapeWidget); ok {
			out = append(out, sw)
		}
	}
	return out
}

func TestBoardStageNotReady(t *testing.T) {
	b, _ := newTestBoard(t)
	b.editor.SelectTool(state.Circle)

	_, ok := b.editor.PlaceShape(b)
	assert.False(t, ok)

	test.TapAt(b, fyne.NewPos(10, 20))
	p, ok := b.PointerPosition()
	assert.True(t, ok)
	assert.Equal(t, state.Point{X: 10, Y: 20}, p)
	assert.Equal(t, 1, b.editor.Len())
}

func TestBoardTapOnShapeStampsAnother(t *testing.T) {
	b, w := newTestBoard(t)
	ed := b.editor
	ed.SelectTool(state.Circle)

	test.TapAt(b, fyne.NewPos(105, 105))
	// the tap lands on the first shape's widget, which must not swallow it
	test.TapCanvas(w.Canvas(), fyne.NewPos(105, 105))

	shapes := ed.Shapes()
	require.Len(t, shapes, 2)
	assert.Equal(t, shapes[0].Pos(), shapes[1].Pos())
	assert.Equal(t, state.Point{X: 105, Y: 105}, shapes[1].Pos())
	assert.NotEqual(t, shapes[0].ID, shapes[1].ID)
}

func TestBoardVerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	b, _ := newTestBoard(t)
	b.editor.SelectTool(state.Star)
	test.TapAt(b, fyne.NewPos(60, 60))
	require.Equal(t, 1, b.editor.Len())
	assert.NotContains(t, buf.String(), "[BOARD] added")

	b.editor.Verbose = true
	test.TapAt(b, fyne.NewPos(160, 60))
	assert.Contains(t, buf.String(), "[BOARD] added star")
}

func TestBoardRendersShapesInOrder(t *testing.T) {
	b, _ := newTestBoard(t)
	ed := b.editor

	for i, kind := range []state.ShapeKind{state.Ring, state.Star, state.Circle} {
		ed.SelectTool(kind)
		test.TapAt(b, fyne.NewPos(float32(50+i*100), 100))
	}

	widgets := boardShapes(b)
	require.Len(t, widgets, 3)
	for i, s := range ed.Shapes() {
		assert.Equal(t, s.ID, widgets[i].id)
		assert.Equal(t, s.Kind, widgets[i].kind)
	}

	// circle of radius 20 centred on (250, 100)
	circle := widgets[2]
	assert.Equal(t, fyne.NewPos(230, 80), circle.Position())
	assert.Equal(t, fyne.NewSize(40, 40), circle.Size())
}

func TestBoardPanMovesShapes(t *testing.T) {
	b, _ := newTestBoard(t)
	b.editor.SelectTool(state.Circle)
	test.TapAt(b, fyne.NewPos(100, 100))

	b.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DX: 15, DY: -5}})
	assert.Equal(t, state.Point{X: 15, Y: -5}, b.PanOffset())
	assert.Equal(t, fyne.NewPos(95, 75), boardShapes(b)[0].Position())

	b.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DX: -15, DY: 5}})
	assert.Equal(t, state.Point{}, b.PanOffset())
	assert.Equal(t, fyne.NewPos(80, 80), boardShapes(b)[0].Position())
}

func TestShapeDragWritesBack(t *testing.T) {
	b, w := newTestBoard(t)
	ed := b.editor
	ed.SelectTool(state.Circle)
	test.TapAt(b, fyne.NewPos(100, 150))
	ed.ToggleDragMode()

	test.Drag(w.Canvas(), fyne.NewPos(100, 150), 5, 5)

	shapes := ed.Shapes()
	require.Len(t, shapes, 1)
	assert.Equal(t, state.Point{X: 105, Y: 155}, shapes[0].Pos())
	assert.Equal(t, state.Point{}, b.PanOffset(), "board must not pan")
	assert.Equal(t, fyne.NewPos(85, 135), boardShapes(b)[0].Position())
}

func TestShapeDragPansWhenDragModeOff(t *testing.T) {
	b, w := newTestBoard(t)
	ed := b.editor
	ed.SelectTool(state.Circle)
	test.TapAt(b, fyne.NewPos(100, 150))

	test.Drag(w.Canvas(), fyne.NewPos(100, 150), 5, 5)

	assert.Equal(t, state.Point{X: 100, Y: 150}, ed.Shapes()[0].Pos())
	assert.Equal(t, state.Point{X: 5, Y: 5}, b.PanOffset())
}

func TestShapeDragOutsidePaintPans(t *testing.T) {
	b, w := newTestBoard(t)
	ed := b.editor
	ed.SelectTool(state.Ring)
	test.TapAt(b, fyne.NewPos(100, 100))
	ed.ToggleDragMode()

	// ring hole: inside the widget box but not on the ring
	test.Drag(w.Canvas(), fyne.NewPos(101, 101), 1, 1)

	assert.Equal(t, state.Point{X: 100, Y: 100}, ed.Shapes()[0].Pos())
	assert.Equal(t, state.Point{X: 1, Y: 1}, b.PanOffset())
}

func TestToolSwatchHighlight(t *testing.T) {
	test.NewTempApp(t)
	var got state.ShapeKind
	sw := newToolSwatch(state.Star, shapeIcon(geometry.DefaultStyle(), state.Star), func(k state.ShapeKind) { got = k })
	r := test.WidgetRenderer(sw).(*toolSwatchRenderer)

	test.Tap(sw)
	assert.Equal(t, state.Star, got)

	sw.SetSelected(true)
	assert.Equal(t, float32(2), r.border.StrokeWidth)
	sw.SetSelected(false)
	assert.Equal(t, float32(1), r.border.StrokeWidth)
}

func TestViewportWatcher(t *testing.T) {
	test.NewTempApp(t)
	v := NewViewportWatcher(NewBoardWidget(state.NewEditor(state.Viewport{}), geometry.DefaultStyle(), color.White))

	var sizes []fyne.Size
	cancel := v.Subscribe(func(s fyne.Size) { sizes = append(sizes, s) })
	v.Resize(fyne.NewSize(320, 240))
	v.Resize(fyne.NewSize(320, 240))
	v.Resize(fyne.NewSize(800, 600))

	assert.Equal(t, []fyne.Size{fyne.NewSize(320, 240), fyne.NewSize(800, 600)}, sizes)

	cancel()
	cancel()
	assert.Equal(t, 0, subscriberCount(v))
	v.Resize(fyne.NewSize(100, 100))
	assert.Len(t, sizes, 2)
}

func subscriberCount(v *ViewportWatcher) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}
