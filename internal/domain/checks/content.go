package checks

import (
	"fmt"
	"unicode/utf8"

	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/markup"
)

// Inclusive length ranges for the threshold checks.
const (
	titleMinLen = 30
	titleMaxLen = 70
	descMinLen  = 100
	descMaxLen  = 170
	minWords    = 300

	minInternalLinks = 3
)

// EvaluateContent inspects the on-page content: title and description
// lengths, heading structure, image attributes, text volume and internal
// linking.
func EvaluateContent(cl *domain.Checklist, art *domain.Artifacts) []domain.CheckOutcome {
	const section = "content"
	doc := art.HTML

	return []domain.CheckOutcome{
		{ID: "title", Result: evalTitle(cl.Def(section, "title"), doc)},
		{ID: "meta_description", Result: evalDescription(cl.Def(section, "meta_description"), doc)},
		{ID: "h1_presence", Result: evalH1(cl.Def(section, "h1_presence"), doc)},
		{ID: "heading_order", Result: evalHeadingOrder(cl.Def(section, "heading_order"), doc)},
		{ID: "img_alt", Result: evalImgAlt(cl.Def(section, "img_alt"), doc)},
		{ID: "img_dimensions", Result: evalImgDimensions(cl.Def(section, "img_dimensions"), doc)},
		{ID: "content_length", Result: evalContentLength(cl.Def(section, "content_length"), doc)},
		{ID: "internal_links", Result: evalInternalLinks(cl.Def(section, "internal_links"), doc, art.URL)},
	}
}

func evalTitle(def domain.CheckDefinition, doc string) domain.ItemResult {
	title, ok := markup.Title(doc)
	if !ok || title == "" {
		return missing(def, "no <title> element")
	}
	return ranged(def, utf8.RuneCountInString(title), titleMinLen, titleMaxLen, "title")
}

func evalDescription(def domain.CheckDefinition, doc string) domain.ItemResult {
	desc, ok := markup.MetaContent(doc, "description")
	if !ok || desc == "" {
		return missing(def, "no meta description")
	}
	return ranged(def, utf8.RuneCountInString(desc), descMinLen, descMaxLen, "description")
}

func evalH1(def domain.CheckDefinition, doc string) domain.ItemResult {
	count := 0
	for _, level := range markup.HeadingLevels(doc) {
		if level == 1 {
			count++
		}
	}
	switch count {
	case 0:
		return missing(def, "no <h1> heading")
	case 1:
		return done(def, "exactly one <h1>")
	default:
		return partial(def, fmt.Sprintf("%d <h1> headings, want exactly one", count))
	}
}

func evalHeadingOrder(def domain.CheckDefinition, doc string) domain.ItemResult {
	levels := markup.HeadingLevels(doc)
	if len(levels) == 0 {
		return notApplicable(def, "no headings on page")
	}
	skips := 0
	prev := levels[0]
	for _, level := range levels[1:] {
		if level > prev+1 {
			skips++
		}
		prev = level
	}
	if skips == 0 {
		return done(def, fmt.Sprintf("%d headings in order", len(levels)))
	}
	return partial(def, fmt.Sprintf("%d skipped heading level(s)", skips))
}

func evalImgAlt(def domain.CheckDefinition, doc string) domain.ItemResult {
	imgs := markup.Tags(doc, "img")
	withAlt := 0
	for _, img := range imgs {
		if alt, ok := markup.Attr(img, "alt"); ok && alt != "" {
			withAlt++
		}
	}
	return counted(def, withAlt, len(imgs), "images")
}

func evalImgDimensions(def domain.CheckDefinition, doc string) domain.ItemResult {
	imgs := markup.Tags(doc, "img")
	sized := 0
	for _, img := range imgs {
		_, hasW := markup.Attr(img, "width")
		_, hasH := markup.Attr(img, "height")
		if hasW && hasH {
			sized++
		}
	}
	return counted(def, sized, len(imgs), "images")
}

func evalContentLength(def domain.CheckDefinition, doc string) domain.ItemResult {
	words := markup.WordCount(doc)
	switch {
	case words == 0:
		return missing(def, "no visible text content")
	case words >= minWords:
		return done(def, fmt.Sprintf("%d words of visible text", words))
	default:
		return partial(def, fmt.Sprintf("%d words of visible text, want at least %d", words, minWords))
	}
}

func evalInternalLinks(def domain.CheckDefinition, doc, pageURL string) domain.ItemResult {
	internal := 0
	for _, href := range markup.AnchorHrefs(doc) {
		if markup.IsInternalLink(href, pageURL) {
			internal++
		}
	}
	switch {
	case internal >= minInternalLinks:
		return done(def, fmt.Sprintf("%d internal links", internal))
	case internal > 0:
		return partial(def, fmt.Sprintf("%d internal links, want at least %d", internal, minInternalLinks))
	default:
		return missing(def, "no internal links")
	}
}
