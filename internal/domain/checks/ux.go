package checks

import (
	"strings"

	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/markup"
)

// EvaluateUX inspects conversion markers: a reachable contact page, a
// click-to-call link and at least one visible call to action.
func EvaluateUX(cl *domain.Checklist, art *domain.Artifacts) []domain.CheckOutcome {
	const section = "ux"
	doc := art.HTML
	hrefs := markup.AnchorHrefs(doc)

	return []domain.CheckOutcome{
		{ID: "contact_page", Result: binary(cl.Def(section, "contact_page"),
			anyHrefContains(hrefs, "contact", "kontakt"),
			"contact page linked", "no link to a contact page")},
		{ID: "phone_link", Result: binary(cl.Def(section, "phone_link"),
			anyHrefPrefix(hrefs, "tel:"),
			"tel: link present", "no click-to-call link")},
		{ID: "cta_presence", Result: binary(cl.Def(section, "cta_presence"),
			hasCallToAction(doc),
			"call to action found", "no button or call-to-action marker")},
	}
}

func anyHrefContains(hrefs []string, needles ...string) bool {
	for _, href := range hrefs {
		lower := strings.ToLower(href)
		for _, needle := range needles {
			if strings.Contains(lower, needle) {
				return true
			}
		}
	}
	return false
}

func anyHrefPrefix(hrefs []string, prefix string) bool {
	for _, href := range hrefs {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(href)), prefix) {
			return true
		}
	}
	return false
}

func hasCallToAction(doc string) bool {
	if len(markup.Tags(doc, "button")) > 0 {
		return true
	}
	for _, tag := range markup.Tags(doc, "input") {
		if v, ok := markup.Attr(tag, "type"); ok && strings.EqualFold(v, "submit") {
			return true
		}
	}
	for _, tag := range markup.Tags(doc, "a") {
		if v, ok := markup.Attr(tag, "role"); ok && strings.EqualFold(v, "button") {
			return true
		}
		if v, ok := markup.Attr(tag, "class"); ok && strings.Contains(strings.ToLower(v), "cta") {
			return true
		}
	}
	return false
}
