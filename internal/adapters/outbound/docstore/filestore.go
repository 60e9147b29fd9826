// Package docstore implements the DocumentStore port on the local
// filesystem.
package docstore

import (
	"errors"
	"fmt"
	"os"

	"github.com/pagelint/pagelint/internal/domain"
)

// FileStore reads and overwrites stored documents in place.
type FileStore struct{}

func New() *FileStore { return &FileStore{} }

func (FileStore) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, domain.ErrDocumentNotFound)
		}
		return "", err
	}
	return string(data), nil
}

func (FileStore) Write(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
