package httpapi

import (
	"encoding/json"
	"net/http"

	"interning-engine/internal/events"
	"interning-engine/internal/store"
)

type PrefsHandler struct {
	Store *store.DB
	Hub   *events.Hub
}

type prefsPayload struct {
	DarkMode bool `json:"darkMode"`
	Flipped  bool `json:"flipped"`
}

func (h PrefsHandler) Get(w http.ResponseWriter, r *http.Request) {
	darkMode, err := h.Store.GetBool(r.Context(), store.KeyDarkMode)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}
	flipped, err := h.Store.GetBool(r.Context(), store.KeyFlipped)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}
	writeJSON(w, prefsPayload{DarkMode: darkMode, Flipped: flipped})
}

func (h PrefsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var p prefsPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	// two independent key writes, matching the storage contract; a
	// failure on the second leaves the first in place
	if err := h.Store.SetBool(r.Context(), store.KeyDarkMode, p.DarkMode); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}
	if err := h.Store.SetBool(r.Context(), store.KeyFlipped, p.Flipped); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypePrefsChanged, 1, p))
	writeJSON(w, p)
}
