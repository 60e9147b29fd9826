package checks

import (
	"fmt"
	"strings"

	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/markup"
)

const (
	maxHTMLBytes      = 512 * 1024
	maxInlineStyles   = 10
	lazyLoadingMarker = "lazy"
)

// EvaluatePerformance inspects cheap performance hints readable from raw
// markup: script loading attributes, image lazy loading, inline style volume
// and document weight. No rendering or timing is involved.
func EvaluatePerformance(cl *domain.Checklist, art *domain.Artifacts) []domain.CheckOutcome {
	const section = "performance"
	doc := art.HTML

	return []domain.CheckOutcome{
		{ID: "script_defer", Result: evalScriptDefer(cl.Def(section, "script_defer"), doc)},
		{ID: "img_lazy", Result: evalImgLazy(cl.Def(section, "img_lazy"), doc)},
		{ID: "inline_css", Result: evalInlineCSS(cl.Def(section, "inline_css"), doc)},
		{ID: "html_size", Result: evalHTMLSize(cl.Def(section, "html_size"), doc)},
	}
}

func evalScriptDefer(def domain.CheckDefinition, doc string) domain.ItemResult {
	var external, nonBlocking int
	for _, tag := range markup.Tags(doc, "script") {
		if _, ok := markup.Attr(tag, "src"); !ok {
			continue
		}
		external++
		if markup.HasAttr(tag, "defer") || markup.HasAttr(tag, "async") {
			nonBlocking++
		}
	}
	return counted(def, nonBlocking, external, "external scripts")
}

func evalImgLazy(def domain.CheckDefinition, doc string) domain.ItemResult {
	imgs := markup.Tags(doc, "img")
	lazy := 0
	for _, img := range imgs {
		if v, ok := markup.Attr(img, "loading"); ok && strings.EqualFold(v, lazyLoadingMarker) {
			lazy++
		}
	}
	return counted(def, lazy, len(imgs), "images")
}

func evalInlineCSS(def domain.CheckDefinition, doc string) domain.ItemResult {
	count := strings.Count(strings.ToLower(doc), " style=")
	if count <= maxInlineStyles {
		return done(def, fmt.Sprintf("%d inline style attributes", count))
	}
	return partial(def, fmt.Sprintf("%d inline style attributes, want at most %d", count, maxInlineStyles))
}

func evalHTMLSize(def domain.CheckDefinition, doc string) domain.ItemResult {
	size := len(doc)
	if size <= maxHTMLBytes {
		return done(def, fmt.Sprintf("document is %d KiB", size/1024))
	}
	return partial(def, fmt.Sprintf("document is %d KiB, want at most %d KiB", size/1024, maxHTMLBytes/1024))
}
