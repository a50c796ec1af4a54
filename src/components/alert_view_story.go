package components

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
	"github.com/scusemua/alert-view/m/v2/src/domain"
)

// AlertViewStory is a gallery page showing every variant of the AlertView.
type AlertViewStory struct {
	app.Compo

	// Extra alerts appended after the built-in examples.
	Extra []domain.Attributes

	// Size used by the built-in examples. Defaults to domain.DefaultSize.
	Size string

	list *AlertList
}

func NewAlertViewStory() *AlertViewStory {
	s := &AlertViewStory{
		Size: domain.DefaultSize,
	}
	s.Reset()

	return s
}

// Examples returns the attributes of the built-in examples: every level in both variants,
// then a permanent alert, a centered alert and an alert with an explicit icon.
func (s *AlertViewStory) Examples() []domain.Attributes {
	size := s.Size
	if size == "" {
		size = domain.DefaultSize
	}

	examples := make([]domain.Attributes, 0, 2*len(domain.Levels)+3+len(s.Extra))
	for _, primary := range []bool{false, true} {
		for _, level := range domain.Levels {
			attrs := domain.DefaultAttributes()
			attrs.Level = level
			attrs.Size = size
			attrs.Primary = primary
			attrs.ShowIcon = true
			attrs.Title = fmt.Sprintf("%s alert", level)
			examples = append(examples, attrs)
		}
	}

	permanent := domain.DefaultAttributes()
	permanent.Size = size
	permanent.Permanent = true
	permanent.Title = "This alert cannot be dismissed"

	centered := domain.DefaultAttributes()
	centered.Size = size
	centered.Level = domain.LevelSuccess
	centered.ShowIcon = true
	centered.Center = true

	explicit := domain.DefaultAttributes()
	explicit.Size = size
	explicit.Level = domain.LevelWarning
	explicit.Icon = "bell"

	examples = append(examples, permanent, centered, explicit)

	return append(examples, s.Extra...)
}

// Reset recreates all the alerts, including the ones that were dismissed.
func (s *AlertViewStory) Reset() {
	s.list = NewAlertList()

	for _, attrs := range s.Examples() {
		alert := NewAlertView(attrs, app.Span().Text(describe(attrs)))
		alert.OnDismiss = s.onAlertDismissed
		s.list.Add(alert)
	}
}

// Alerts returns the alerts currently shown.
func (s *AlertViewStory) Alerts() []*AlertView {
	return s.list.Visible()
}

// OnMount loads the alerts configured on the server, if any.
func (s *AlertViewStory) OnMount(ctx app.Context) {
	if !app.IsClient {
		return
	}

	ctx.Async(func() {
		cfg, err := FetchStoryConfiguration(ctx)
		if err != nil {
			app.Logf("[WARNING] Could not load the alert configuration: %v", err)
			return
		}

		ctx.Dispatch(func(ctx app.Context) {
			s.Size = cfg.DefaultSize
			s.Extra = cfg.Alerts
			s.Reset()
		})
	})
}

func (s *AlertViewStory) onAlertDismissed(alertId string, ctx app.Context, e app.Event) {
	app.Logf("Alert \"%s\" was dismissed.", alertId)
	s.list.Remove(alertId)
	s.Update()
}

func (s *AlertViewStory) Render() app.UI {
	return app.Div().Body(
		app.H1().
			Class("story-title").
			Text("Alerts"),
		app.Button().
			Class("story-reset").
			Type("button").
			Text("Reset").
			OnClick(func(ctx app.Context, e app.Event) {
				s.Reset()
				s.Update()
			}),
		s.list,
	)
}

func describe(attrs domain.Attributes) string {
	desc := fmt.Sprintf("level=%s primary=%t", attrs.Level, attrs.Primary)
	if attrs.Permanent {
		desc += " permanent"
	}
	if attrs.Center {
		desc += " center"
	}
	if attrs.Icon != "" {
		desc += " icon=" + attrs.Icon
	}

	return desc
}
