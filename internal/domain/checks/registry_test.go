package checks_test

import (
	"net/http"
	"testing"

	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/checks"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_Order(t *testing.T) {
	var sections []string
	for _, f := range checks.Registry() {
		sections = append(sections, f.SectionID)
	}
	assert.Equal(t, []string{
		"technical", "content", "structured", "social",
		"performance", "security", "ux", "accessibility", "legal",
	}, sections)
}

func TestRegistry_CoversEveryChecklistSection(t *testing.T) {
	cl := domain.DefaultChecklist()
	seen := map[string]bool{}
	for _, f := range checks.Registry() {
		assert.NotNil(t, f.Evaluate, "family %s has no evaluator", f.SectionID)
		assert.Contains(t, cl.Sections, f.SectionID)
		assert.False(t, seen[f.SectionID], "duplicate family %s", f.SectionID)
		seen[f.SectionID] = true
	}
	assert.Len(t, seen, len(cl.Sections))
}

func TestRegistry_EveryCheckEvaluatedExactlyOnce(t *testing.T) {
	cl := domain.DefaultChecklist()
	art := &domain.Artifacts{URL: "https://example.com/", HTML: "<html></html>", Headers: http.Header{}}

	for _, f := range checks.Registry() {
		outcomes := f.Evaluate(cl, art)
		assert.Len(t, outcomes, len(cl.Sections[f.SectionID].Checks), "section %s", f.SectionID)

		ids := map[string]bool{}
		for _, o := range outcomes {
			assert.False(t, ids[o.ID], "check %s evaluated twice in %s", o.ID, f.SectionID)
			ids[o.ID] = true
			assert.Contains(t, cl.Sections[f.SectionID].Checks, o.ID)
			assert.NotEmpty(t, o.Result.Status)
			assert.NotEmpty(t, o.Result.Label)
		}
	}
}
