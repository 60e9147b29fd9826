package domain

import "errors"

// ErrDocumentNotFound indicates the remediation target does not exist.
// Callers match it with errors.Is after %w wrapping.
var ErrDocumentNotFound = errors.New("document not found")
