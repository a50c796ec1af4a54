package domain

const (
	primarySuffix = "primary"

	ContentClassName = "content"
	CenterClassName  = "center"
)

// State is everything an alert renders from: its attributes plus whether it was dismissed.
type State struct {
	Attributes

	dismissed bool
}

func NewState(attrs Attributes) State {
	return State{Attributes: attrs}
}

// Dismiss returns the state with the alert hidden. Dismissing is irreversible and idempotent.
func (s State) Dismiss() State {
	s.dismissed = true
	return s
}

func (s State) Dismissed() bool {
	return s.dismissed
}

// WithAttributes replaces the attributes. A dismissed alert stays dismissed.
func (s State) WithAttributes(attrs Attributes) State {
	s.Attributes = attrs
	return s
}

// Theme returns the theme class, e.g. "warning" or "warningprimary".
func (a Attributes) Theme() string {
	if a.Primary {
		return string(a.Level) + primarySuffix
	}

	return string(a.Level)
}

// ContentClass returns the class list of the row holding the icon and the content.
func (a Attributes) ContentClass() string {
	if a.Center {
		return ContentClassName + " " + CenterClassName
	}

	return ContentClassName
}

// ResolveIcon returns the icon to draw in front of the content, or "" for none.
func (a Attributes) ResolveIcon() string {
	if a.Icon != "" {
		return a.Icon
	}

	if !a.ShowIcon {
		return ""
	}

	icon, _ := a.Level.DefaultIcon()
	return icon
}

// Layout describes what an alert renders. A zero Layout renders nothing.
type Layout struct {
	Visible      bool
	Theme        string
	ContentClass string
	Size         string
	Title        string // Empty means no title block.
	Icon         string // Empty means no icon.
	Closable     bool
}

// View computes the Layout of the given state. It has no side effects.
func View(s State) Layout {
	if s.dismissed {
		return Layout{}
	}

	return Layout{
		Visible:      true,
		Theme:        s.Theme(),
		ContentClass: s.ContentClass(),
		Size:         s.Size,
		Title:        s.Title,
		Icon:         s.ResolveIcon(),
		Closable:     !s.Permanent,
	}
}
