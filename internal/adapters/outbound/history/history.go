// Package history persists audit summaries in a local SQLite database.
// Saving is best-effort: the audit itself never depends on it.
package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	_ "modernc.org/sqlite"

	"github.com/pagelint/pagelint/internal/domain"
)

type Store struct {
	sql *sql.DB
}

// DefaultPath returns ~/.pagelint/history.db.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pagelint", "history.db"), nil
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS audits (
  id             INTEGER PRIMARY KEY,
  url            TEXT NOT NULL,
  audited_at     DATETIME NOT NULL,
  score          INTEGER NOT NULL,
  total_checks   INTEGER NOT NULL,
  passed         INTEGER NOT NULL,
  failed         INTEGER NOT NULL,
  partial        INTEGER NOT NULL,
  not_applicable INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_audits_url ON audits(url, audited_at);
	`); err != nil {
		return nil, err
	}
	return &Store{sql: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sql == nil {
		return nil
	}
	return s.sql.Close()
}

func (s *Store) Save(ctx context.Context, entry domain.HistoryEntry) error {
	_, err := s.sql.ExecContext(ctx,
		`INSERT INTO audits (url, audited_at, score, total_checks, passed, failed, partial, not_applicable)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.URL, entry.AuditedAt.UTC().Format(time.RFC3339), entry.Score,
		entry.TotalChecks, entry.Passed, entry.Failed, entry.Partial, entry.NotApplicable)
	return err
}

func (s *Store) Load(ctx context.Context, url string) ([]domain.HistoryEntry, error) {
	rows, err := s.sql.QueryContext(ctx,
		`SELECT url, audited_at, score, total_checks, passed, failed, partial, not_applicable
		 FROM audits WHERE url = ? ORDER BY audited_at`, url)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var (
			e  domain.HistoryEntry
			at string
		)
		if err := rows.Scan(&e.URL, &at, &e.Score, &e.TotalChecks, &e.Passed, &e.Failed, &e.Partial, &e.NotApplicable); err != nil {
			return nil, err
		}
		if t, perr := time.Parse(time.RFC3339, at); perr == nil {
			e.AuditedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
