package components

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// AlertList renders alerts in insertion order. Dismissed alerts are dropped from the list.
type AlertList struct {
	app.Compo

	Alerts *orderedmap.OrderedMap[string, *AlertView]
}

func NewAlertList() *AlertList {
	return &AlertList{
		Alerts: orderedmap.NewOrderedMap[string, *AlertView](),
	}
}

func (l *AlertList) Add(alert *AlertView) {
	app.Logf("Adding new alert: '%s'", alert.ID)
	l.Alerts.Set(alert.ID, alert)
}

func (l *AlertList) Remove(alertId string) bool {
	return l.Alerts.Delete(alertId)
}

// Prune removes dismissed alerts and returns how many were removed.
func (l *AlertList) Prune() int {
	removed := 0
	for _, alertId := range l.Alerts.Keys() {
		alert, ok := l.Alerts.Get(alertId)
		if ok && alert.Dismissed() {
			l.Alerts.Delete(alertId)
			removed++
		}
	}

	return removed
}

// Visible returns the alerts that have not been dismissed, in order.
func (l *AlertList) Visible() []*AlertView {
	alerts := make([]*AlertView, 0, l.Alerts.Len())
	for el := l.Alerts.Front(); el != nil; el = el.Next() {
		if !el.Value.Dismissed() {
			alerts = append(alerts, el.Value)
		}
	}

	return alerts
}

func (l *AlertList) Render() app.UI {
	if removed := l.Prune(); removed > 0 {
		app.Logf("Pruned %d dismissed alert(s).", removed)
	}

	keys := l.Alerts.Keys()

	app.Logf("Rendering AlertList with %d alert(s).", len(keys))

	return app.Div().Class("alert-list").Body(
		app.Range(keys).Slice(func(idx int) app.UI {
			alertId := keys[idx]
			val, ok := l.Alerts.Get(alertId)
			if ok {
				return val
			}
			return app.Div()
		}))
}
