package state

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Stage is the drawing surface shapes are placed on. It owns the pointer
// tracking and the pan translation; the editor only queries it at click time.
type Stage interface {
	// PointerPosition returns the last pointer position in stage container
	// space, or false if the stage has not seen the pointer yet.
	PointerPosition() (Point, bool)
	// PanOffset returns the current pan translation of the stage content.
	PanOffset() Point
}

// Editor holds the whole UI state of the canvas: viewport, tool selection,
// palette and drag-mode toggles and the append-only list of placed shapes.
type Editor struct {
	viewport    Viewport
	dragMode    bool
	paletteOpen bool
	activeTool  ShapeKind
	shapes      []PlacedShape
	clock       Clock
	mu          sync.RWMutex

	// OnChange is called after every mutation, outside the lock.
	OnChange func()
	// Verbose enables per-event logging.
	Verbose bool
}

// NewEditor creates an editor with the given initial viewport, no tool
// selected, palette closed and drag mode off.
func NewEditor(v Viewport) *Editor {
	return &Editor{
		viewport: v,
		shapes:   make([]PlacedShape, 0),
	}
}

func (e *Editor) changed() {
	e.clock.Tick()
	if e.OnChange != nil {
		e.OnChange()
	}
}

func (e *Editor) logf(format string, args ...any) {
	if e.Verbose {
		log.Printf("[EDITOR] "+format, args...)
	}
}

// Resize records the latest window size.
func (e *Editor) Resize(v Viewport) {
	e.mu.Lock()
	if e.viewport == v {
		e.mu.Unlock()
		return
	}
	e.viewport = v
	e.mu.Unlock()

	e.logf("viewport %.0fx%.0f", v.Width, v.Height)
	e.changed()
}

// ToggleDragMode flips whether placed shapes can be dragged and returns the
// new setting.
func (e *Editor) ToggleDragMode() bool {
	e.mu.Lock()
	e.dragMode = !e.dragMode
	on := e.dragMode
	e.mu.Unlock()

	e.logf("drag mode %t", on)
	e.changed()
	return on
}

// TogglePalette flips palette visibility and returns the new setting.
// The active tool is left untouched.
func (e *Editor) TogglePalette() bool {
	e.mu.Lock()
	e.paletteOpen = !e.paletteOpen
	open := e.paletteOpen
	e.mu.Unlock()

	e.logf("palette open %t", open)
	e.changed()
	return open
}

// SelectTool selects kind, or clears the selection if kind is already the
// active tool. It returns the resulting active tool.
func (e *Editor) SelectTool(kind ShapeKind) ShapeKind {
	e.mu.Lock()
	if !kind.Valid() || e.activeTool == kind {
		e.activeTool = NoShape
	} else {
		e.activeTool = kind
	}
	tool := e.activeTool
	e.mu.Unlock()

	e.logf("active tool %s", tool)
	e.changed()
	return tool
}

// PlaceShape stamps the active tool at the stage pointer position,
// translated into content space by the stage pan offset. It does nothing and
// returns false when no tool is active or the stage is not ready. The tool is
// read and the shape appended under one lock, so a concurrent SelectTool
// cannot interleave. The stage must not call back into the editor.
func (e *Editor) PlaceShape(stage Stage) (PlacedShape, bool) {
	e.mu.Lock()
	if e.activeTool == NoShape {
		e.mu.Unlock()
		return PlacedShape{}, false
	}
	if stage == nil {
		e.mu.Unlock()
		log.Println("[EDITOR] PlaceShape called without a stage, ignoring")
		return PlacedShape{}, false
	}
	pointer, ok := stage.PointerPosition()
	if !ok {
		e.mu.Unlock()
		log.Println("[EDITOR] PlaceShape called before the stage saw the pointer, ignoring")
		return PlacedShape{}, false
	}
	pan := stage.PanOffset()

	s := PlacedShape{
		ID:   uuid.NewString(),
		Kind: e.activeTool,
		X:    pointer.X - pan.X,
		Y:    pointer.Y - pan.Y,
	}
	e.shapes = append(e.shapes, s)
	e.mu.Unlock()

	e.logf("placed %s %s at (%.1f, %.1f)", s.Kind, s.ID, s.X, s.Y)
	e.changed()
	return s, true
}

// MoveShape writes a dragged position back into the shape with the given ID.
// The shape keeps its place in the list.
func (e *Editor) MoveShape(id string, p Point) bool {
	e.mu.Lock()
	idx := -1
	for i := range e.shapes {
		if e.shapes[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		e.mu.Unlock()
		log.Printf("[EDITOR] MoveShape: no shape with id %s", id)
		return false
	}
	e.shapes[idx].X = p.X
	e.shapes[idx].Y = p.Y
	e.mu.Unlock()

	e.logf("moved %s to (%.1f, %.1f)", id, p.X, p.Y)
	e.changed()
	return true
}

// Viewport returns the last recorded window size.
func (e *Editor) Viewport() Viewport {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.viewport
}

// DragMode reports whether placed shapes are draggable.
func (e *Editor) DragMode() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.dragMode
}

// PaletteOpen reports whether the tool palette is visible.
func (e *Editor) PaletteOpen() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.paletteOpen
}

// ActiveTool returns the selected tool, NoShape if none.
func (e *Editor) ActiveTool() ShapeKind {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.activeTool
}

// Shapes returns a copy of the placed shapes in render order.
func (e *Editor) Shapes() []PlacedShape {
	e.mu.RLock()
	defer e.mu.RUnlock()

	shapes := make([]PlacedShape, len(e.shapes))
	copy(shapes, e.shapes)
	return shapes
}

// Len returns the number of placed shapes.
func (e *Editor) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.shapes)
}

// Revision returns a counter that increases on every mutation.
func (e *Editor) Revision() uint64 {
	return e.clock.Now()
}
