package events

import (
	"encoding/json"
	"testing"
)

func TestMakeEvent(t *testing.T) {
	s := MakeEvent("req-1", TypeListingRefreshed, 1, map[string]any{"companies": 3})

	var e Event
	if err := json.Unmarshal([]byte(s), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Type != TypeListingRefreshed || e.Version != 1 || e.RequestID != "req-1" {
		t.Errorf("bad envelope: %+v", e)
	}
	if e.ID == "" {
		t.Error("missing event id")
	}
	if e.At.IsZero() {
		t.Error("missing timestamp")
	}
}

func TestHubPublish(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	h.Publish("hello")
	select {
	case got := <-ch:
		if got != "hello" {
			t.Errorf("got %q", got)
		}
	default:
		t.Fatal("no event delivered")
	}
}

func TestHubDropsWhenSlow(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	// buffer is 10; overflow must not block the publisher
	for i := 0; i < 50; i++ {
		h.Publish("evt")
	}
	if len(ch) != 10 {
		t.Errorf("got %d buffered, want 10", len(ch))
	}
}
