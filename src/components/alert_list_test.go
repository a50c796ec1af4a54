package components

import (
	"strings"
	"testing"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
	"github.com/scusemua/alert-view/m/v2/src/domain"
	"github.com/stretchr/testify/assert"
)

func TestAlertList(t *testing.T) {
	list := NewAlertList()

	first := NewAlertView(domain.DefaultAttributes())
	second := NewAlertView(domain.DefaultAttributes())
	third := NewAlertView(domain.DefaultAttributes())

	list.Add(first)
	list.Add(second)
	list.Add(third)
	assert.Equal(t, []*AlertView{first, second, third}, list.Visible())

	second.Dismiss()
	assert.Equal(t, []*AlertView{first, third}, list.Visible())
	assert.Equal(t, 3, list.Alerts.Len())

	assert.Equal(t, 1, list.Prune())
	assert.Equal(t, 2, list.Alerts.Len())
	assert.Equal(t, 0, list.Prune())

	assert.True(t, list.Remove(first.ID))
	assert.False(t, list.Remove(first.ID))
	assert.Equal(t, []*AlertView{third}, list.Visible())
}

func TestAlertViewStory(t *testing.T) {
	story := NewAlertViewStory()

	alerts := story.Alerts()
	assert.Len(t, alerts, 2*len(domain.Levels)+3)

	themes := make(map[string]bool)
	for _, alert := range alerts[:2*len(domain.Levels)] {
		themes[alert.Attributes().Theme()] = true
	}
	assert.Len(t, themes, 8)

	alerts[0].Dismiss()
	assert.Len(t, story.Alerts(), len(alerts)-1)

	story.Extra = []domain.Attributes{{Title: "Extra", Level: domain.LevelWarning, Size: "small"}}
	story.Size = "medium"
	story.Reset()

	alerts = story.Alerts()
	assert.Len(t, alerts, 2*len(domain.Levels)+4)
	assert.Equal(t, "Extra", alerts[len(alerts)-1].Title)
	assert.Equal(t, "medium", alerts[0].Size)
}

func countAlertBoxes(html string) int {
	return strings.Count(html, `role="alert"`)
}

func TestAlertViewStoryResetAfterDismiss(t *testing.T) {
	story := NewAlertViewStory()
	total := len(story.Alerts())

	disp := app.NewClientTester(story)
	defer disp.Close()

	assert.Equal(t, total, countAlertBoxes(app.HTMLString(story)))

	first := story.Alerts()[0]
	first.onCloseClicked(nil, app.Event{})
	disp.Consume()

	assert.Equal(t, total-1, story.list.Alerts.Len())
	assert.Equal(t, total-1, countAlertBoxes(app.HTMLString(story)))

	story.Reset()
	story.Update()
	disp.Consume()

	assert.Equal(t, total, story.list.Alerts.Len())
	assert.Equal(t, total, countAlertBoxes(app.HTMLString(story)))
}
