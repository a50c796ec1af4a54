package components

import (
	"strings"

	"github.com/google/uuid"
	"github.com/maxence-charriere/go-app/v9/pkg/app"
	"github.com/scusemua/alert-view/m/v2/src/domain"
)

const (
	AlertViewTag = "alert-view"
)

// AlertView is a dismissible alert box.
//
// The exported fields are the attributes of the alert and may be changed by the parent at any
// time. Once the close control has been clicked the alert renders nothing for the rest of its
// lifetime, whatever the attributes are changed to. Dismissal is tied to ID: when go-app reuses
// a mounted AlertView for an alert with a different ID, the new alert is visible.
//
// A zero Level or Size renders with domain.DefaultLevel and domain.DefaultSize, so the
// component can be written as a struct literal.
type AlertView struct {
	app.Compo

	ID        string // Set this to uuid.New().String()
	Title     string
	Level     domain.Level
	Icon      string
	Size      string
	ShowIcon  bool
	Permanent bool
	Primary   bool
	Center    bool

	Content []app.UI     // Rendered as-is after the icon.
	Icons   IconRenderer // Defaults to FontAwesomeIcons.

	OnDismiss func(alertId string, ctx app.Context, e app.Event) // Optional.

	state       domain.State
	dismissedID string
}

func NewAlertView(attrs domain.Attributes, content ...app.UI) *AlertView {
	a := &AlertView{
		ID:      uuid.New().String(),
		Content: content,
	}
	a.SetAttributes(attrs)

	return a
}

// Attributes returns the current attributes with defaults applied.
func (a *AlertView) Attributes() domain.Attributes {
	return domain.Attributes{
		Title:     a.Title,
		Level:     a.Level,
		Icon:      a.Icon,
		Size:      a.Size,
		ShowIcon:  a.ShowIcon,
		Permanent: a.Permanent,
		Primary:   a.Primary,
		Center:    a.Center,
	}.WithDefaults()
}

func (a *AlertView) SetAttributes(attrs domain.Attributes) {
	a.Title = attrs.Title
	a.Level = attrs.Level
	a.Icon = attrs.Icon
	a.Size = attrs.Size
	a.ShowIcon = attrs.ShowIcon
	a.Permanent = attrs.Permanent
	a.Primary = attrs.Primary
	a.Center = attrs.Center
}

// State returns the current attributes together with the dismissed flag.
func (a *AlertView) State() domain.State {
	state := domain.NewState(a.Attributes())
	if a.Dismissed() {
		state = state.Dismiss()
	}

	return state
}

// Dismiss hides the alert. It does not trigger a re-render by itself.
func (a *AlertView) Dismiss() {
	a.state = a.state.Dismiss()
	a.dismissedID = a.ID
}

func (a *AlertView) Dismissed() bool {
	return a.state.Dismissed() && a.dismissedID == a.ID
}

func (a *AlertView) icons() IconRenderer {
	if a.Icons == nil {
		return FontAwesomeIcons{}
	}

	return a.Icons
}

func (a *AlertView) onCloseClicked(ctx app.Context, e app.Event) {
	app.Logf("Dismissing alert \"%s\" now.", a.ID)

	a.Dismiss()

	if a.OnDismiss != nil {
		a.OnDismiss(a.ID, ctx, e)
	}

	a.Update()
}

func (a *AlertView) Render() app.UI {
	layout := domain.View(a.State())
	if !layout.Visible {
		return app.Div()
	}

	row := make([]app.UI, 0, len(a.Content)+1)
	if layout.Icon != "" {
		row = append(row, a.icons().RenderIcon(layout.Icon, layout.Size))
	}
	row = append(row, a.Content...)

	return app.Div().
		Class(strings.TrimSpace("alert "+layout.Theme)).
		Style("font-size", layout.Size).
		Attr("role", "alert").
		Body(
			app.Div().
				Class("layout").
				Body(
					app.If(layout.Title != "",
						app.Div().
							Class("title").
							Text(layout.Title),
					),
					app.Div().
						Class(layout.ContentClass).
						Body(row...),
				),
			app.If(layout.Closable,
				app.Span().
					Class("close").
					Aria("label", "Close").
					Body(
						a.icons().RenderIcon(CloseIcon, ""),
					).
					OnClick(a.onCloseClicked),
			),
		)
}
