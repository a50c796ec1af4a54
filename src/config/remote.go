package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/scusemua/alert-view/m/v2/src/domain"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	OpRequestConfig = "request-config"
)

// FetchRemote requests the configuration from a ConfigHttpHandler over a websocket.
func FetchRemote(ctx context.Context, url string) (*Configuration, error) {
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial \"%s\": %w", url, err)
	}
	defer c.CloseNow()

	err = wsjson.Write(ctx, c, map[string]interface{}{
		"payload": map[string]interface{}{
			"op": OpRequestConfig,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send configuration request: %w", err)
	}

	_, data, err := c.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	var errMsg domain.ErrorMessage
	if err := json.Unmarshal(data, &errMsg); err == nil && errMsg.Valid {
		return nil, errors.New(errMsg.ErrorMessage)
	}

	conf := GetConfiguration()
	if err := json.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	c.Close(websocket.StatusNormalClosure, "")

	return conf, nil
}
