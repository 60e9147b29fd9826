// Package checklist loads the checklist configuration from YAML.
package checklist

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/pagelint/pagelint/internal/domain"
)

const (
	projectFile = "checklists/pagelint.yaml"
	cwdFile     = ".pagelint.yaml"
	homeFile    = ".pagelint/checklist.yaml"
)

// YAMLSource resolves the checklist from the first existing path in the
// chain: explicit override → project checklists/ directory → working
// directory dotfile → home directory fallback. No resolvable path is not an
// error; the built-in defaults take over.
type YAMLSource struct {
	override string
}

func New(override string) *YAMLSource { return &YAMLSource{override: override} }

func (s *YAMLSource) Load() (*domain.Checklist, error) {
	path, ok := s.resolve()
	if !ok {
		return domain.DefaultChecklist(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cl domain.Checklist
	if err := yaml.Unmarshal(data, &cl); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cl, nil
}

func (s *YAMLSource) resolve() (string, bool) {
	candidates := []string{}
	if s.override != "" {
		candidates = append(candidates, s.override)
	}
	candidates = append(candidates, projectFile, cwdFile)
	if home, err := homedir.Dir(); err == nil {
		candidates = append(candidates, filepath.Join(home, homeFile))
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, true
		}
	}
	return "", false
}
