package components

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
	"github.com/scusemua/alert-view/m/v2/src/config"
)

const (
	ConfigWebsocketPath = "/ws/config"
)

// FetchStoryConfiguration requests the configuration from the server that served the page.
func FetchStoryConfiguration(ctx app.Context) (*config.Configuration, error) {
	u := app.Window().URL()

	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}

	return config.FetchRemote(ctx, fmt.Sprintf("%s://%s%s", scheme, u.Host, ConfigWebsocketPath))
}
