package httpprobe

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Prober implements domain.URLProber with a single HEAD request. Redirects
// are followed the way net/http follows them by default.
type Prober struct {
	client    *http.Client
	userAgent string
}

func New(client *http.Client, userAgent string) *Prober {
	if client == nil {
		client = http.DefaultClient
	}
	return &Prober{client: client, userAgent: userAgent}
}

func (p *Prober) Probe(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
