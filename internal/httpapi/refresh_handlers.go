package httpapi

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"interning-engine/internal/config"
	"interning-engine/internal/refresh"
)

type RefreshHandler struct {
	Refresher *refresh.Refresher
	CfgVal    *atomic.Value // config.Config
}

func (h RefreshHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Refresher.Status())
}

// Run kicks a refresh in the background and returns immediately. If one
// is already in flight the request is a no-op; the sequence numbering
// inside the refresher makes the overlap harmless either way.
func (h RefreshHandler) Run(w http.ResponseWriter, r *http.Request) {
	if h.Refresher.Status().Running {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		_, _ = h.Refresher.Run(ctx, cfg)
	}()

	writeJSON(w, map[string]any{"ok": true})
}
