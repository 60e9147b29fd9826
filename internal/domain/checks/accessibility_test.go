package checks_test

import (
	"testing"

	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/checks"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateAccessibility_Lang(t *testing.T) {
	cl := domain.DefaultChecklist()

	art := &domain.Artifacts{HTML: `<html lang="en"><body></body></html>`}
	res := outcomeByID(t, checks.EvaluateAccessibility(cl, art), "lang_attr")
	assert.Equal(t, domain.StatusDone, res.Status)

	art = &domain.Artifacts{HTML: `<html><body></body></html>`}
	res = outcomeByID(t, checks.EvaluateAccessibility(cl, art), "lang_attr")
	assert.Equal(t, domain.StatusMissing, res.Status)
}

func TestEvaluateAccessibility_Landmarks(t *testing.T) {
	cl := domain.DefaultChecklist()

	for _, html := range []string{
		`<nav><a href="/">Home</a></nav>`,
		`<main>content</main>`,
		`<div role="main">content</div>`,
	} {
		art := &domain.Artifacts{HTML: html}
		res := outcomeByID(t, checks.EvaluateAccessibility(cl, art), "aria_landmarks")
		assert.Equal(t, domain.StatusDone, res.Status, "html %q", html)
	}

	art := &domain.Artifacts{HTML: `<div>plain</div>`}
	res := outcomeByID(t, checks.EvaluateAccessibility(cl, art), "aria_landmarks")
	assert.Equal(t, domain.StatusMissing, res.Status)
}

func TestEvaluateAccessibility_SkipLink(t *testing.T) {
	cl := domain.DefaultChecklist()

	art := &domain.Artifacts{HTML: `<a href="#main">Skip to content</a>`}
	res := outcomeByID(t, checks.EvaluateAccessibility(cl, art), "skip_link")
	assert.Equal(t, domain.StatusDone, res.Status)

	art = &domain.Artifacts{HTML: `<a class="skip-link" href="#main">Jump</a>`}
	res = outcomeByID(t, checks.EvaluateAccessibility(cl, art), "skip_link")
	assert.Equal(t, domain.StatusDone, res.Status)

	art = &domain.Artifacts{HTML: `<a href="/about">About</a>`}
	res = outcomeByID(t, checks.EvaluateAccessibility(cl, art), "skip_link")
	assert.Equal(t, domain.StatusMissing, res.Status)
}

func TestEvaluateAccessibility_FormLabels(t *testing.T) {
	cl := domain.DefaultChecklist()

	tests := []struct {
		name   string
		html   string
		status domain.Status
	}{
		{"no form inputs", `<p>nothing</p>`, domain.StatusNotApplicable},
		{"label for", `<label for="email">Email</label><input id="email" type="text">`, domain.StatusDone},
		{"aria-label", `<input type="search" aria-label="Search">`, domain.StatusDone},
		{"unlabelled", `<input type="text">`, domain.StatusMissing},
		{"mixed", `<label for="a">A</label><input id="a" type="text"><input type="text">`, domain.StatusPartial},
		{"hidden inputs ignored", `<input type="hidden" name="csrf"><input type="submit" value="Go">`, domain.StatusNotApplicable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art := &domain.Artifacts{HTML: tt.html}
			res := outcomeByID(t, checks.EvaluateAccessibility(cl, art), "form_labels")
			assert.Equal(t, tt.status, res.Status)
		})
	}
}
