package components

import (
	"net/url"
	"testing"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
	"github.com/scusemua/alert-view/m/v2/src/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlertViewFromQuery(t *testing.T) {
	query, err := url.ParseQuery("level=error&showIcon&permanent&title=Upload+failed&content=File+too+large")
	require.NoError(t, err)

	alert, err := NewAlertViewFromQuery(query)
	require.NoError(t, err)

	assert.Equal(t, domain.Attributes{
		Title:     "Upload failed",
		Level:     domain.LevelError,
		Size:      domain.DefaultSize,
		ShowIcon:  true,
		Permanent: true,
	}, alert.Attributes())

	html := render(alert)
	assert.Contains(t, html, `class="alert error"`)
	assert.Contains(t, html, "fa-circle-exclamation")
	assert.Contains(t, html, "File too large")
	assert.NotContains(t, html, "fa-"+CloseIcon)
}

func TestNewAlertViewFromEmptyQuery(t *testing.T) {
	alert, err := NewAlertViewFromQuery(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAttributes(), alert.Attributes())
	assert.Empty(t, alert.Content)
}

func TestNewAlertViewFromQueryInvalidBoolean(t *testing.T) {
	_, err := NewAlertViewFromQuery(url.Values{"primary": {"sometimes"}})
	assert.Error(t, err)
}

func TestAlertViewElementRender(t *testing.T) {
	element := NewAlertViewElement()
	require.NotNil(t, element.Alert())

	html := app.HTMLString(element.Render().(*AlertView).Render())
	assert.Contains(t, html, `class="alert info"`)

	html = app.HTMLString((&AlertViewElement{}).Render().(*AlertView).Render())
	assert.Contains(t, html, `role="alert"`)
}
