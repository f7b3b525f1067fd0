package httpapi

import (
	"net/http"

	"interning-engine/internal/levels"
	"interning-engine/internal/refresh"
	"interning-engine/internal/store"
	"interning-engine/internal/view"
)

type ListingHandler struct {
	Refresher *refresh.Refresher
	Store     *store.DB
	Levels    *levels.Table
}

type ListResponse struct {
	Loaded bool `json:"loaded"`
	view.Model
}

// List derives the filtered view model from the latest snapshot, the
// persisted applied flags, and the request's filter params. Filters are
// never persisted; the flipped axis alone falls back to the stored
// preference when the param is absent.
func (h ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	snapshot := h.Refresher.Snapshot()
	if snapshot == nil {
		writeJSON(w, ListResponse{Loaded: false})
		return
	}

	flags, err := h.Store.AppliedFlags(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "storage_error", err.Error())
		return
	}

	q := r.URL.Query()
	criteria := view.Criteria{
		Text:        q.Get("q"),
		Closed:      q.Get("closed"),
		Applied:     q.Get("applied"),
		Sponsorship: q.Get("sponsorship"),
	}
	if q.Has("flipped") {
		criteria.Flipped = q.Get("flipped") == store.ValueYes
	} else {
		flipped, err := h.Store.GetBool(r.Context(), store.KeyFlipped)
		if err != nil {
			WriteError(w, r, http.StatusInternalServerError, "storage_error", err.Error())
			return
		}
		criteria.Flipped = flipped
	}

	m := view.Derive(snapshot, flags, criteria)
	for i := range m.Companies {
		m.Companies[i].LevelsURL = h.Levels.URLFor(m.Companies[i].Name)
	}

	writeJSON(w, ListResponse{Loaded: true, Model: m})
}
