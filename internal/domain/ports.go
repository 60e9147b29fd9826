package domain

import (
	"context"
	"net/http"
)

// FetchResult is the response to a primary page fetch. Headers keeps the
// net/http canonical-key semantics, which gives case-insensitive lookup.
type FetchResult struct {
	Body       string
	Headers    http.Header
	StatusCode int
}

// PageFetcher retrieves remote resources for an audit.
type PageFetcher interface {
	// Fetch retrieves the primary document. A transport failure is returned
	// as an error and aborts the audit.
	Fetch(ctx context.Context, url string) (*FetchResult, error)
	// FetchOptional retrieves an auxiliary resource such as robots.txt.
	// Absence (transport failure, timeout, non-2xx) is a valid result, not
	// an error.
	FetchOptional(ctx context.Context, url string) (string, bool)
}

// ChecklistSource loads the checklist configuration.
type ChecklistSource interface {
	Load() (*Checklist, error)
}

// DocumentStore reads and overwrites the stored document remediation
// operates on.
type DocumentStore interface {
	Read(path string) (string, error)
	Write(path, content string) error
}

// AuditHistory persists audit summaries, best-effort.
type AuditHistory interface {
	Save(ctx context.Context, entry HistoryEntry) error
	Load(ctx context.Context, url string) ([]HistoryEntry, error)
	Close() error
}

// Artifacts is the snapshot of everything fetched for one audit subject.
// Evaluators operate only on this value, never on the network.
type Artifacts struct {
	URL        string
	HTML       string
	Headers    http.Header
	Robots     string
	HasRobots  bool
	Sitemap    string
	HasSitemap bool
}
