package server

import (
	"io"
	"net/http"

	"github.com/scusemua/alert-view/m/v2/src/theme"
	"go.uber.org/zap"
)

// StylesheetHandler serves the alert stylesheet.
type StylesheetHandler struct {
	logger     *zap.Logger
	stylesheet string
}

func NewStylesheetHandler(provider *theme.Provider, logger *zap.Logger) *StylesheetHandler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &StylesheetHandler{
		logger:     logger,
		stylesheet: provider.Stylesheet(),
	}
}

func (h *StylesheetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")

	if r.Method == http.MethodHead {
		return
	}

	if _, err := io.WriteString(w, h.stylesheet); err != nil {
		h.logger.Error("Failed to write stylesheet.", zap.Error(err))
	}
}
