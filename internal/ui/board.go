package ui

import (
	"image/color"
	"log"

	"ShapeBoard/internal/geometry"
	"ShapeBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is the pannable canvas surface. It is the editor's stage: it
// tracks the pointer and the pan offset, and draws one shapeWidget per
// placed shape in list order.
type BoardWidget struct {
	widget.BaseWidget
	editor     *state.Editor
	style      geometry.Style
	background color.Color
	panX, panY float32
	pointer    fyne.Position
	hasPointer bool
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Tappable = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ state.Stage = (*BoardWidget)(nil)

func NewBoardWidget(editor *state.Editor, style geometry.Style, background color.Color) *BoardWidget {
	b := &BoardWidget{
		editor:     editor,
		style:      style,
		background: background,
	}
	b.ExtendBaseWidget(b)
	return b
}

// PointerPosition returns the last pointer position over the board.
func (b *BoardWidget) PointerPosition() (state.Point, bool) {
	return state.Point{X: b.pointer.X, Y: b.pointer.Y}, b.hasPointer
}

// PanOffset returns the current pan translation of the board content.
func (b *BoardWidget) PanOffset() state.Point {
	return state.Point{X: b.panX, Y: b.panY}
}

func (b *BoardWidget) setPointer(p fyne.Position) {
	b.pointer = p
	b.hasPointer = true
}

func (b *BoardWidget) Tapped(e *fyne.PointEvent) {
	b.setPointer(e.Position)
	if b.editor.ActiveTool() == state.NoShape {
		return
	}
	b.editor.PlaceShape(b)
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.setPointer(e.Position)
	b.panX += e.Dragged.DX
	b.panY += e.Dragged.DY
	b.Refresh()
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	b.panX += e.Scrolled.DX
	b.panY += e.Scrolled.DY
	b.Refresh()
}

func (b *BoardWidget) MouseIn(e *desktop.MouseEvent)    { b.setPointer(e.Position) }
func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) { b.setPointer(e.Position) }
func (b *BoardWidget) MouseOut()                        {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{
		board:  b,
		shapes: make(map[string]*shapeWidget),
	}
	r.background = canvas.NewRectangle(b.background)
	r.sync()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	shapes     map[string]*shapeWidget
	order      []*shapeWidget
	revision   uint64
	synced     bool
}

// sync brings the shape widgets in line with the editor. Widgets are reused
// by shape ID so an in-flight drag keeps its live position.
func (r *boardWidgetRenderer) sync() {
	rev := r.board.editor.Revision()
	if r.synced && rev == r.revision {
		return
	}
	r.revision = rev
	r.synced = true

	placed := r.board.editor.Shapes()
	order := make([]*shapeWidget, 0, len(placed))
	for _, s := range placed {
		sw, ok := r.shapes[s.ID]
		if !ok {
			sw = newShapeWidget(r.board, s)
			r.shapes[s.ID] = sw
			if r.board.editor.Verbose {
				log.Printf("[BOARD] added %s %s", s.Kind, s.ID)
			}
		} else if !sw.dragging {
			sw.center = s.Pos()
		}
		order = append(order, sw)
	}
	r.order = order
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.order)+1)
	objects = append(objects, r.background)
	for _, sw := range r.order {
		objects = append(objects, sw)
	}
	return objects
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	for _, sw := range r.order {
		r.place(sw)
	}
}

func (r *boardWidgetRenderer) place(sw *shapeWidget) {
	box := r.board.style.Bounds(sw.kind, sw.center).Translate(r.board.panX, r.board.panY)
	sw.Resize(fyne.NewSize(box.Width, box.Height))
	sw.Move(fyne.NewPos(box.X, box.Y))
}

func (r *boardWidgetRenderer) Refresh() {
	r.background.FillColor = r.board.background
	r.sync()
	r.Layout(r.board.Size())
	r.background.Refresh()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}
