package components

import (
	"net/url"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
	"github.com/scusemua/alert-view/m/v2/src/domain"
)

const (
	// Query parameter holding the text shown inside the alert.
	ContentParam = "content"
)

// AlertViewElement is the page behind the <alert-view> tag. The query string of the page is
// the tag's attribute list: /components/alert-view?level=error&showIcon&content=Disk+full
type AlertViewElement struct {
	app.Compo

	alert *AlertView
}

func NewAlertViewElement() *AlertViewElement {
	return &AlertViewElement{
		alert: NewAlertView(domain.DefaultAttributes()),
	}
}

// NewAlertViewFromQuery builds an AlertView from query parameters named like the tag
// attributes. A parameter without a value sets a boolean attribute.
func NewAlertViewFromQuery(query url.Values) (*AlertView, error) {
	tagAttrs := make(map[string]string, len(query))
	for name, values := range query {
		if name == ContentParam {
			continue
		}

		tagAttrs[name] = ""
		if len(values) > 0 {
			tagAttrs[name] = values[0]
		}
	}

	attrs, err := domain.AttributesFromTag(tagAttrs)
	if err != nil {
		return nil, err
	}

	var content []app.UI
	if text := query.Get(ContentParam); text != "" {
		content = append(content, app.Span().Text(text))
	}

	return NewAlertView(attrs, content...), nil
}

func (e *AlertViewElement) OnNav(ctx app.Context) {
	alert, err := NewAlertViewFromQuery(ctx.Page().URL().Query())
	if err != nil {
		app.Logf("[WARNING] Invalid <%s> attributes: %v", AlertViewTag, err)
		return
	}

	e.alert = alert
}

func (e *AlertViewElement) Alert() *AlertView {
	return e.alert
}

func (e *AlertViewElement) Render() app.UI {
	if e.alert == nil {
		return &AlertView{}
	}

	return e.alert
}
