// Package refresh owns the fetch -> extract -> parse -> group pipeline
// and the in-memory listing snapshot the API serves from. Refreshes are
// not retried and not cancelled; instead every run gets a monotonic
// sequence number and only the latest issued run may publish its
// result, so a slow early response can never overwrite a newer one.
package refresh

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"

	"interning-engine/internal/config"
	"interning-engine/internal/events"
	"interning-engine/internal/listing"
)

type Status struct {
	LastRunAt     string `json:"last_run_at"`
	LastOkAt      string `json:"last_ok_at"`
	LastError     string `json:"last_error"`
	LastCompanies int    `json:"last_companies"`
	LastPostings  int    `json:"last_postings"`
	Running       bool   `json:"running"`
}

type Refresher struct {
	client *listing.Client
	hub    *events.Hub

	status   atomic.Value // Status
	snapshot atomic.Value // []listing.Company
	seq      atomic.Uint64
}

func New(client *listing.Client, hub *events.Hub) *Refresher {
	r := &Refresher{client: client, hub: hub}
	r.status.Store(Status{})
	return r
}

func (r *Refresher) Status() Status {
	return r.status.Load().(Status)
}

// Snapshot returns the companies from the last successful refresh, or
// nil when nothing has loaded yet. A failed refresh leaves the previous
// snapshot in place.
func (r *Refresher) Snapshot() []listing.Company {
	v := r.snapshot.Load()
	if v == nil {
		return nil
	}
	return v.([]listing.Company)
}

// Run executes one refresh. Safe to call concurrently; the loser of a
// race simply has its result discarded.
func (r *Refresher) Run(ctx context.Context, cfg config.Config) (int, error) {
	id := r.seq.Add(1)

	st := r.Status()
	st.Running = true
	st.LastRunAt = time.Now().Format(time.RFC3339)
	r.status.Store(st)

	companies, fetched, err := r.load(ctx, cfg)
	return r.finish(id, companies, fetched, err)
}

func (r *Refresher) load(ctx context.Context, cfg config.Config) ([]listing.Company, int, error) {
	doc, err := r.client.Fetch(ctx, cfg.Source.URL)
	if err != nil {
		return nil, 0, err
	}

	body, err := listing.ExtractTable(doc, cfg.Source.StartMarker, cfg.Source.EndMarker)
	if err != nil {
		return nil, len(doc), err
	}

	return listing.GroupRows(listing.ParseRows(body)), len(doc), nil
}

// finish applies the outcome of run id unless a newer run has been
// issued since.
func (r *Refresher) finish(id uint64, companies []listing.Company, fetched int, err error) (int, error) {
	if id != r.seq.Load() {
		log.Printf("[refresh] discarding stale result seq=%d", id)
		return 0, err
	}

	now := time.Now().Format(time.RFC3339)
	next := r.Status()
	next.Running = false
	next.LastRunAt = now

	if err != nil {
		next.LastError = err.Error()
		r.status.Store(next)
		log.Printf("[refresh] error: %v", err)
		r.hub.Publish(events.MakeEvent("", events.TypeRefreshFailed, 1, map[string]any{
			"error": err.Error(),
		}))
		return 0, err
	}

	postings := 0
	for _, co := range companies {
		postings += len(co.Postings)
	}

	r.snapshot.Store(companies)
	next.LastError = ""
	next.LastOkAt = now
	next.LastCompanies = len(companies)
	next.LastPostings = postings
	r.status.Store(next)

	log.Printf("[refresh] ok companies=%d postings=%d fetched=%s",
		len(companies), postings, humanize.Bytes(uint64(fetched)))
	r.hub.Publish(events.MakeEvent("", events.TypeListingRefreshed, 1, map[string]any{
		"companies": len(companies),
		"postings":  postings,
	}))
	return len(companies), nil
}
