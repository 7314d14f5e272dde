package ui

import (
	"log"

	"ShapeBoard/internal/config"
	"ShapeBoard/internal/geometry"
	"ShapeBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// EditorView is the whole editor screen: the board filling the window with
// the header and the palette floating above it.
type EditorView struct {
	Editor  *state.Editor
	Board   *BoardWidget
	Header  *Header
	Palette *Palette
	Watcher *ViewportWatcher
}

func NewEditorView(editor *state.Editor, cfg config.Config) *EditorView {
	style := geometry.NewStyle(cfg)
	v := &EditorView{
		Editor:  editor,
		Board:   NewBoardWidget(editor, style, cfg.BackgroundColor()),
		Header:  NewHeader(editor),
		Palette: NewPalette(editor, style),
	}

	overlay := container.NewBorder(v.Header.Object(), nil, v.Palette.Object(), nil)
	v.Watcher = NewViewportWatcher(container.NewStack(v.Board, overlay))
	return v
}

// Content returns the root object for the window.
func (v *EditorView) Content() fyne.CanvasObject { return v.Watcher }

// Mount connects the view to the editor: state changes refresh the widgets
// and window resizes update the editor viewport. The returned func undoes
// both and must be called when the view goes away.
func (v *EditorView) Mount() (unmount func()) {
	v.Editor.OnChange = v.update
	cancel := v.Watcher.Subscribe(func(size fyne.Size) {
		v.Editor.Resize(state.Viewport{Width: size.Width, Height: size.Height})
	})
	log.Println("[EDITOR] mounted")

	return func() {
		cancel()
		v.Editor.OnChange = nil
		log.Println("[EDITOR] unmounted")
	}
}

func (v *EditorView) update() {
	v.Header.Update()
	v.Palette.Update()
	v.Board.Refresh()
}

// newEditor creates the editor for cfg, with the configured start tool
// already selected.
func newEditor(cfg config.Config, verbose bool) *state.Editor {
	editor := state.NewEditor(state.Viewport{Width: cfg.Window.Width, Height: cfg.Window.Height})
	editor.Verbose = verbose
	if tool := cfg.StartTool(); tool != state.NoShape {
		editor.SelectTool(tool)
	}
	return editor
}

// RunApp opens the editor window and blocks until it is closed.
func RunApp(cfg config.Config, verbose bool) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Window.Title)
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	editor := newEditor(cfg, verbose)
	view := NewEditorView(editor, cfg)
	unmount := view.Mount()
	defer unmount()

	myWindow.SetContent(view.Content())
	myWindow.ShowAndRun()
}
