package ui

import (
	"image"

	"ShapeBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// shapeWidget draws one placed shape. While drag mode is on, a drag that
// starts on the painted area moves the shape; any other drag pans the board.
type shapeWidget struct {
	widget.BaseWidget
	board    *BoardWidget
	id       string
	kind     state.ShapeKind
	center   state.Point
	gesture  bool
	dragging bool
}

var _ fyne.Draggable = (*shapeWidget)(nil)

func newShapeWidget(board *BoardWidget, s state.PlacedShape) *shapeWidget {
	sw := &shapeWidget{
		board:  board,
		id:     s.ID,
		kind:   s.Kind,
		center: s.Pos(),
	}
	sw.ExtendBaseWidget(sw)
	return sw
}

// grabs reports whether a drag starting at p, relative to the widget, lands
// on the shape itself.
func (sw *shapeWidget) grabs(p fyne.Position) bool {
	style := sw.board.style
	ext := style.Extent(sw.kind)
	pt := state.Point{X: p.X, Y: p.Y}
	if !style.Bounds(sw.kind, state.Point{X: ext, Y: ext}).ContainsPoint(pt) {
		return false
	}
	return style.Contains(sw.kind, pt.X-ext, pt.Y-ext)
}

func (sw *shapeWidget) Dragged(e *fyne.DragEvent) {
	if !sw.gesture {
		sw.gesture = true
		start := e.Position.Subtract(fyne.NewPos(e.Dragged.DX, e.Dragged.DY))
		sw.dragging = sw.board.editor.DragMode() && sw.grabs(start)
	}
	if !sw.dragging {
		sw.board.Dragged(sw.toBoard(e))
		return
	}
	sw.center.X += e.Dragged.DX
	sw.center.Y += e.Dragged.DY
	sw.board.Refresh()
}

func (sw *shapeWidget) DragEnd() {
	if sw.dragging {
		sw.board.editor.MoveShape(sw.id, sw.center)
	} else {
		sw.board.DragEnd()
	}
	sw.gesture = false
	sw.dragging = false
}

func (sw *shapeWidget) toBoard(e *fyne.DragEvent) *fyne.DragEvent {
	ev := *e
	ev.Position = e.Position.Add(sw.Position())
	return &ev
}

func (sw *shapeWidget) CreateRenderer() fyne.WidgetRenderer {
	style := sw.board.style
	kind := sw.kind
	raster := canvas.NewRaster(func(w, h int) image.Image {
		return style.Rasterize(kind, w, h)
	})
	return widget.NewSimpleRenderer(raster)
}

func (sw *shapeWidget) MinSize() fyne.Size {
	ext := sw.board.style.Extent(sw.kind)
	return fyne.NewSize(2*ext, 2*ext)
}
