package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/scusemua/alert-view/m/v2/src/domain"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	requestTimeout = time.Second * 10
)

// RequestHandler serves a single decoded request received over a websocket.
type RequestHandler interface {
	HandleRequest(ctx context.Context, c *websocket.Conn, payload map[string]interface{})
}

// BaseHandler accepts a websocket connection, reads one JSON request from it and passes the
// request to the RequestHandler.
type BaseHandler struct {
	Logger *zap.Logger

	RequestHandler RequestHandler
}

func NewBaseHandler(logger *zap.Logger) *BaseHandler {
	if logger == nil {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
	}

	handler := &BaseHandler{
		Logger: logger,
	}
	handler.RequestHandler = handler

	return handler
}

// Write an error back to the client.
func (h *BaseHandler) WriteError(ctx context.Context, c *websocket.Conn, errorMessage string) {
	msg := &domain.ErrorMessage{
		ErrorMessage: errorMessage,
		Valid:        true,
	}
	msgJSON, _ := json.Marshal(msg)

	err := c.Write(ctx, websocket.MessageBinary, msgJSON)
	if err != nil {
		h.Logger.Error("Error while writing error message back to front-end.", zap.String("original-error-message", errorMessage), zap.Error(err))
	}
}

func (h *BaseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Logger.Debug("Trying to accept a websocket connection now.")

	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.Logger.Error("Failed to accept websocket connection.", zap.Error(err))
		return
	}
	defer c.CloseNow()

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var payload map[string]interface{}
	err = wsjson.Read(ctx, c, &payload)
	if err != nil {
		h.Logger.Error("Failed to read data from websocket connection.", zap.Error(err))
		h.WriteError(ctx, c, "Failed to read any data.")
		return
	}

	// The payload is usually a dict with a single entry "payload" containing the dict that the client sent.
	if inner, ok := payload["payload"].(map[string]interface{}); ok {
		payload = inner
	}

	h.RequestHandler.HandleRequest(ctx, c, payload)

	c.Close(websocket.StatusNormalClosure, "")
}

func (h *BaseHandler) HandleRequest(ctx context.Context, c *websocket.Conn, payload map[string]interface{}) {
	h.Logger.Warn("No request handler configured.", zap.Any("payload", payload))
	h.WriteError(ctx, c, "Unsupported request.")
}
