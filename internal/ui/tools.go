package ui

import (
	"image/color"

	"ShapeBoard/internal/geometry"
	"ShapeBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const swatchSize = 40

// --- Custom widget for palette tools ---
type toolSwatch struct {
	widget.BaseWidget
	Kind     state.ShapeKind
	Icon     fyne.Resource
	Selected bool
	OnTapped func(state.ShapeKind)
}

func newToolSwatch(kind state.ShapeKind, icon fyne.Resource, tapped func(state.ShapeKind)) *toolSwatch {
	s := &toolSwatch{Kind: kind, Icon: icon, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *toolSwatch) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromResource(s.Icon)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(swatchSize-12, swatchSize-12))

	border := canvas.NewRectangle(color.Transparent)
	border.SetMinSize(fyne.NewSize(swatchSize, swatchSize))
	border.CornerRadius = 6

	r := &toolSwatchRenderer{
		inner:  widget.NewSimpleRenderer(container.NewStack(border, container.NewCenter(img))),
		swatch: s,
		border: border,
	}
	r.Refresh()
	return r
}

func (s *toolSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Kind)
	}
}

func (s *toolSwatch) SetSelected(selected bool) {
	if s.Selected == selected {
		return
	}
	s.Selected = selected
	s.Refresh()
}

type toolSwatchRenderer struct {
	inner  fyne.WidgetRenderer
	swatch *toolSwatch
	border *canvas.Rectangle
}

func (r *toolSwatchRenderer) Layout(size fyne.Size)        { r.inner.Layout(size) }
func (r *toolSwatchRenderer) MinSize() fyne.Size           { return r.inner.MinSize() }
func (r *toolSwatchRenderer) Objects() []fyne.CanvasObject { return r.inner.Objects() }
func (r *toolSwatchRenderer) Destroy()                     {}

func (r *toolSwatchRenderer) Refresh() {
	if r.swatch.Selected {
		r.border.StrokeColor = theme.Color(theme.ColorNamePrimary)
		r.border.StrokeWidth = 2
		r.border.FillColor = theme.Color(theme.ColorNameSelection)
	} else {
		r.border.StrokeColor = color.Gray{Y: 150}
		r.border.StrokeWidth = 1
		r.border.FillColor = color.Transparent
	}
	r.border.Refresh()
}

// shield swallows taps and drags that land on a panel's background so they
// do not reach the board underneath.
type shield struct {
	widget.BaseWidget
	content fyne.CanvasObject
}

var _ fyne.Tappable = (*shield)(nil)
var _ fyne.Draggable = (*shield)(nil)

func newShield(content fyne.CanvasObject) *shield {
	s := &shield{content: content}
	s.ExtendBaseWidget(s)
	return s
}

func (s *shield) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

func (s *shield) Tapped(*fyne.PointEvent)  {}
func (s *shield) Dragged(*fyne.DragEvent) {}
func (s *shield) DragEnd()                 {}

// --- Slide-out palette ---
type Palette struct {
	editor   *state.Editor
	swatches []*toolSwatch
	close    *widget.Button
	panel    *shield
}

func NewPalette(editor *state.Editor, style geometry.Style) *Palette {
	p := &Palette{editor: editor}

	onTapped := func(kind state.ShapeKind) {
		editor.SelectTool(kind)
	}
	items := make([]fyne.CanvasObject, 0, len(state.Kinds)+2)
	for _, kind := range state.Kinds {
		sw := newToolSwatch(kind, shapeIcon(style, kind), onTapped)
		p.swatches = append(p.swatches, sw)
		items = append(items, sw)
	}
	items = append(items, layout.NewSpacer())

	p.close = widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		editor.TogglePalette()
	})
	p.close.Importance = widget.LowImportance
	items = append(items, p.close)

	bg := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	p.panel = newShield(container.NewStack(bg, container.NewPadded(container.NewVBox(items...))))
	p.Update()
	return p
}

// Object returns the panel to place in the window.
func (p *Palette) Object() fyne.CanvasObject { return p.panel }

// Update mirrors palette visibility and the active tool.
func (p *Palette) Update() {
	if p.editor.PaletteOpen() {
		p.panel.Show()
	} else {
		p.panel.Hide()
	}
	active := p.editor.ActiveTool()
	for _, sw := range p.swatches {
		sw.SetSelected(sw.Kind == active)
	}
}

// --- Header ---
type Header struct {
	editor  *state.Editor
	palette *widget.ToolbarAction
	drag    *widget.ToolbarAction
	toolbar *widget.Toolbar
	bar     *shield
	active  bool
}

func NewHeader(editor *state.Editor) *Header {
	h := &Header{editor: editor}
	h.palette = widget.NewToolbarAction(theme.ContentAddIcon(), func() {
		editor.TogglePalette()
	})
	h.drag = widget.NewToolbarAction(moveIcon, func() {
		editor.ToggleDragMode()
	})
	h.toolbar = widget.NewToolbar(h.palette, h.drag)

	bg := canvas.NewRectangle(theme.Color(theme.ColorNameHeaderBackground))
	bg.SetMinSize(fyne.NewSize(0, 48))
	h.bar = newShield(container.NewStack(bg, container.NewVBox(layout.NewSpacer(), h.toolbar, layout.NewSpacer())))
	h.Update()
	return h
}

// Object returns the header bar to place in the window.
func (h *Header) Object() fyne.CanvasObject { return h.bar }

// Update highlights the drag action while drag mode is on.
func (h *Header) Update() {
	on := h.editor.DragMode()
	if on == h.active {
		return
	}
	h.active = on
	if on {
		h.drag.SetIcon(theme.NewPrimaryThemedResource(moveIcon))
	} else {
		h.drag.SetIcon(moveIcon)
	}
}
