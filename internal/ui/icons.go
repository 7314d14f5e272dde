package ui

import (
	"ShapeBoard/internal/geometry"
	"ShapeBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// four-way arrow, themed so it follows the foreground colour
var moveIcon fyne.Resource = theme.NewThemedResource(fyne.NewStaticResource("move.svg", []byte(
	`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
		`<path fill="#000000" d="M12 2l3 3h-2v5h5V8l3 3.99L18 16v-2h-5v5h2l-3 3-3-3h2v-5H6v2l-3-4 3-4v2h5V5H9z"/>` +
		`</svg>`)))

func shapeIcon(style geometry.Style, kind state.ShapeKind) fyne.Resource {
	return fyne.NewStaticResource(kind.String()+".svg", style.IconSVG(kind))
}
