package application

import (
	"fmt"

	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/remedy"
)

// RemediateService wraps the pure patch transform with the single
// read-modify-write cycle against the document store. Concurrent calls for
// the same document must be serialized by the caller.
type RemediateService struct {
	store domain.DocumentStore
}

func NewRemediateService(store domain.DocumentStore) *RemediateService {
	return &RemediateService{store: store}
}

// Remediate applies the routed fixes for the given issues to the stored
// document and overwrites it in place. There is no rollback: callers needing
// one must snapshot the document first.
func (s *RemediateService) Remediate(path string, issues []domain.Issue, ctx domain.RemediationContext) (*domain.RemediationOutcome, error) {
	doc, err := s.store.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	patched, changes := remedy.Apply(doc, issues, ctx)
	if err := s.store.Write(path, patched); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}

	if changes == nil {
		changes = []string{}
	}
	return &domain.RemediationOutcome{
		OriginalSize: len(doc),
		ResultSize:   len(patched),
		Changes:      changes,
	}, nil
}
