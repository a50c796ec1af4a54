package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/scusemua/alert-view/m/v2/src/config"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
)

// ConfigHttpHandler sends the configuration to the front-end.
type ConfigHttpHandler struct {
	*BaseHandler
	opts *config.Configuration
}

func NewConfigHttpHandler(opts *config.Configuration, logger *zap.Logger) *ConfigHttpHandler {
	handler := &ConfigHttpHandler{
		BaseHandler: NewBaseHandler(logger),
		opts:        opts,
	}
	handler.RequestHandler = handler

	handler.Logger.Info("Creating server-side ConfigHttpHandler.", zap.String("options", opts.String()))

	return handler
}

func (h *ConfigHttpHandler) HandleRequest(ctx context.Context, c *websocket.Conn, payload map[string]interface{}) {
	h.Logger.Debug("Received payload from client.", zap.Any("payload", payload))

	op, _ := payload["op"].(string)
	if op != config.OpRequestConfig {
		h.Logger.Error("Unexpected operation requested from client.", zap.String("op", op))
		h.WriteError(ctx, c, fmt.Sprintf("Unexpected operation: %s", op))
		return
	}

	data, err := json.Marshal(h.opts)
	if err != nil {
		h.Logger.Error("Failed to marshal configuration object to JSON.", zap.Error(err))
		h.WriteError(ctx, c, "Failed to marshal configuration object to JSON.")
		return
	}

	err = c.Write(ctx, websocket.MessageBinary, data)
	if err != nil {
		h.Logger.Error("Error while writing configuration object back to front-end.", zap.Error(err))
	} else {
		h.Logger.Debug("Successfully sent config back to client.")
	}
}
