package httpapi

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"interning-engine/internal/events"
	"interning-engine/internal/listing"
	"interning-engine/internal/store"
)

type AppliedHandler struct {
	Store *store.DB
	Hub   *events.Hub
}

type appliedRequest struct {
	Applied bool `json:"applied"`
}

// PutByPath toggles the persisted applied flag for one company. The
// path segment is the display name; it is normalized the same way the
// grouper normalizes company cells so the key matches the view. Flags
// for names no longer in the listing are accepted and simply orphaned.
func (h AppliedHandler) PutByPath(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.URL.Path, "/applied/")
	name, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(name) == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_company", "missing company name")
		return
	}
	name = listing.ParseName(strings.TrimSpace(name))

	var req appliedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if err := h.Store.SetApplied(r.Context(), name, req.Applied); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeAppliedChanged, 1, map[string]any{
		"company": name,
		"applied": req.Applied,
	}))
	writeJSON(w, map[string]any{"ok": true, "company": name, "applied": req.Applied})
}
