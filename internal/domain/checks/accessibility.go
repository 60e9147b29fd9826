package checks

import (
	"regexp"
	"strings"

	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/markup"
)

var skipLinkRe = regexp.MustCompile(`(?is)<a\b[^>]*href\s*=\s*["']#[^"']*["'][^>]*>[^<]*skip`)

// EvaluateAccessibility inspects accessibility markers: document language,
// landmark regions, a skip link and label coverage for form inputs.
func EvaluateAccessibility(cl *domain.Checklist, art *domain.Artifacts) []domain.CheckOutcome {
	const section = "accessibility"
	doc := art.HTML

	_, hasLang := markup.Lang(doc)

	return []domain.CheckOutcome{
		{ID: "lang_attr", Result: binary(cl.Def(section, "lang_attr"), hasLang,
			"lang attribute on <html>", "no lang attribute on <html>")},
		{ID: "aria_landmarks", Result: binary(cl.Def(section, "aria_landmarks"), hasLandmarks(doc),
			"landmark regions found", "no <nav>, <main> or ARIA landmark roles")},
		{ID: "skip_link", Result: binary(cl.Def(section, "skip_link"), hasSkipLink(doc),
			"skip link found", "no skip-to-content link")},
		{ID: "form_labels", Result: evalFormLabels(cl.Def(section, "form_labels"), doc)},
	}
}

func hasLandmarks(doc string) bool {
	if len(markup.Tags(doc, "nav")) > 0 || len(markup.Tags(doc, "main")) > 0 {
		return true
	}
	lower := strings.ToLower(doc)
	for _, role := range []string{`role="main"`, `role="navigation"`, `role="banner"`, `role='main'`, `role='navigation'`, `role='banner'`} {
		if strings.Contains(lower, role) {
			return true
		}
	}
	return false
}

func hasSkipLink(doc string) bool {
	if skipLinkRe.MatchString(doc) {
		return true
	}
	for _, tag := range markup.Tags(doc, "a") {
		if v, ok := markup.Attr(tag, "class"); ok && strings.Contains(strings.ToLower(v), "skip") {
			return true
		}
	}
	return false
}

// evalFormLabels counts how many labellable inputs have an associated
// <label for> or their own aria-label. Hidden and button-like inputs are not
// labellable and do not count.
func evalFormLabels(def domain.CheckDefinition, doc string) domain.ItemResult {
	labelled := map[string]bool{}
	for _, tag := range markup.Tags(doc, "label") {
		if v, ok := markup.Attr(tag, "for"); ok && v != "" {
			labelled[v] = true
		}
	}

	var inputs, covered int
	for _, tag := range markup.Tags(doc, "input") {
		if t, ok := markup.Attr(tag, "type"); ok {
			switch strings.ToLower(t) {
			case "hidden", "submit", "button", "reset", "image":
				continue
			}
		}
		inputs++
		if id, ok := markup.Attr(tag, "id"); ok && labelled[id] {
			covered++
			continue
		}
		if v, ok := markup.Attr(tag, "aria-label"); ok && v != "" {
			covered++
		}
	}
	return counted(def, covered, inputs, "form inputs")
}
