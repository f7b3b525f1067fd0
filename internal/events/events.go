package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types published over SSE.
const (
	TypePing             = "ping"
	TypeListingRefreshed = "listing_refreshed"
	TypeRefreshFailed    = "refresh_failed"
	TypeAppliedChanged   = "applied_changed"
	TypePrefsChanged     = "prefs_changed"
)

type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		ID:        uuid.NewString(),
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
