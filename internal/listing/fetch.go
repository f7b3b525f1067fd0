package listing

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client fetches the raw listing document. A small rate limiter keeps
// refresh spamming from hammering the upstream host; there is no retry
// and no auth.
type Client struct {
	hc      *http.Client
	limiter *rate.Limiter
}

func NewClient(minFetchInterval time.Duration) *Client {
	if minFetchInterval <= 0 {
		minFetchInterval = time.Second
	}
	return &Client{
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: rate.NewLimiter(rate.Every(minFetchInterval), 1),
	}
}

func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "interning-engine/1.0 (+local)")

	res, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("listing get: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return "", fmt.Errorf("listing status %d", res.StatusCode)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("listing read body: %w", err)
	}
	return string(b), nil
}
