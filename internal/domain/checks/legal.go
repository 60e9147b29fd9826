package checks

import (
	"strings"

	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/markup"
)

// EvaluateLegal inspects legal-notice markers: privacy policy and imprint
// links plus a cookie notice. Link detection accepts the common English and
// German path spellings.
func EvaluateLegal(cl *domain.Checklist, art *domain.Artifacts) []domain.CheckOutcome {
	const section = "legal"
	doc := art.HTML
	hrefs := markup.AnchorHrefs(doc)

	return []domain.CheckOutcome{
		{ID: "privacy_policy", Result: binary(cl.Def(section, "privacy_policy"),
			anyHrefContains(hrefs, "privacy", "datenschutz"),
			"privacy policy linked", "no link to a privacy policy")},
		{ID: "imprint", Result: binary(cl.Def(section, "imprint"),
			anyHrefContains(hrefs, "imprint", "impressum", "legal-notice", "mentions-legales"),
			"imprint linked", "no link to an imprint or legal notice")},
		{ID: "cookie_notice", Result: binary(cl.Def(section, "cookie_notice"),
			hasCookieNotice(doc),
			"cookie notice marker found", "no cookie notice marker")},
	}
}

func hasCookieNotice(doc string) bool {
	lower := strings.ToLower(doc)
	for _, marker := range []string{"cookie-consent", "cookieconsent", "cookie-banner", "cookie-notice", "cookies"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
