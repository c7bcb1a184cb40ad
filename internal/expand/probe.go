package expand

import (
	"context"
	"io"
	"log/slog"
	"net/http"
)

// Prober checks whether a candidate URI exists.
// A failed check means "not this namespace", never an error.
type Prober interface {
	Exists(ctx context.Context, uri string) bool
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(ctx context.Context, uri string) bool

// Exists calls f.
func (f ProberFunc) Exists(ctx context.Context, uri string) bool {
	return f(ctx, uri)
}

// HTTPProber issues a GET request, following redirects, and accepts a 200.
type HTTPProber struct {
	// Client performs requests. Nil means http.DefaultClient.
	Client *http.Client
	Logger *slog.Logger
}

// Exists implements Prober.
func (p *HTTPProber) Exists(ctx context.Context, uri string) bool {
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		p.debug(ctx, "probe request rejected", uri, err)
		return false
	}

	resp, err := client.Do(req)
	if err != nil {
		p.debug(ctx, "probe failed", uri, err)
		return false
	}
	defer resp.Body.Close()

	// drain a little so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if p.Logger != nil {
		p.Logger.DebugContext(ctx, "probe", slog.String("uri", uri), slog.Int("status", resp.StatusCode))
	}

	return resp.StatusCode == http.StatusOK
}

func (p *HTTPProber) debug(ctx context.Context, msg, uri string, err error) {
	if p.Logger != nil {
		p.Logger.DebugContext(ctx, msg, slog.String("uri", uri), slog.Any("error", err))
	}
}
