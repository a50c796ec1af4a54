package components

import (
	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

const (
	CloseIcon = "xmark"
)

// IconRenderer draws a named icon at the given size. An empty size keeps the inherited font size.
type IconRenderer interface {
	RenderIcon(name string, size string) app.UI
}

// FontAwesomeIcons renders Font Awesome glyphs, e.g. "circle-info" becomes <i class="fas fa-circle-info">.
// The Font Awesome stylesheet must be loaded by the host page.
type FontAwesomeIcons struct {
	Style string // Icon style class. Defaults to "fas".
}

func (f FontAwesomeIcons) RenderIcon(name string, size string) app.UI {
	style := f.Style
	if style == "" {
		style = "fas"
	}

	icon := app.I().
		Class(style+" fa-"+name).
		Aria("hidden", true)

	if size != "" {
		icon = icon.Style("font-size", size)
	}

	return icon
}
