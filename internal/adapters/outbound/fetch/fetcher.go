// Package fetch implements the PageFetcher port over HTTP with retries.
package fetch

import (
	"context"
	"io"
	stdlog "log"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	log "github.com/sirupsen/logrus"

	"github.com/pagelint/pagelint/internal/domain"
)

const (
	DefaultTimeout   = 12 * time.Second
	DefaultUserAgent = "pagelint/0.1 (+https://github.com/pagelint/pagelint)"
)

// Fetcher retrieves remote resources with a bounded retry policy. One
// Fetcher is safe for concurrent use.
type Fetcher struct {
	client    *retryablehttp.Client
	userAgent string
}

func New(timeout time.Duration, userAgent string) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	client := retryablehttp.NewClient()
	client.Logger = stdlog.New(io.Discard, "", 0)
	client.RetryMax = 2
	client.HTTPClient.Timeout = timeout

	return &Fetcher{client: client, userAgent: userAgent}
}

// Fetch retrieves the primary document. Transport failures are returned to
// the caller and abort the audit.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*domain.FetchResult, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", "en")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"url": url, "status": resp.StatusCode, "bytes": len(body)}).Debug("fetched")

	return &domain.FetchResult{
		Body:       string(body),
		Headers:    resp.Header,
		StatusCode: resp.StatusCode,
	}, nil
}

// FetchOptional retrieves an auxiliary resource. Any failure, timeout or
// non-2xx status resolves to absent rather than an error.
func (f *Fetcher) FetchOptional(ctx context.Context, url string) (string, bool) {
	res, err := f.Fetch(ctx, url)
	if err != nil {
		log.WithError(err).WithField("url", url).Debug("optional resource absent")
		return "", false
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", false
	}
	return res.Body, true
}
