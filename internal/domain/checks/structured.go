package checks

import (
	"fmt"
	"strings"

	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/markup"
)

// EvaluateStructured inspects structured-data markers: JSON-LD blocks and
// microdata attributes.
func EvaluateStructured(cl *domain.Checklist, art *domain.Artifacts) []domain.CheckOutcome {
	const section = "structured"
	doc := art.HTML

	return []domain.CheckOutcome{
		{ID: "json_ld", Result: evalJSONLD(cl.Def(section, "json_ld"), doc)},
		{ID: "microdata", Result: binary(cl.Def(section, "microdata"),
			strings.Contains(strings.ToLower(doc), "itemscope"),
			"microdata itemscope found", "no microdata annotations")},
	}
}

func evalJSONLD(def domain.CheckDefinition, doc string) domain.ItemResult {
	blocks := markup.JSONLDBlocks(doc)
	if len(blocks) == 0 {
		return missing(def, "no application/ld+json block")
	}
	typed := 0
	for _, block := range blocks {
		if markup.JSONLDHasType(block) {
			typed++
		}
	}
	if typed > 0 {
		return done(def, fmt.Sprintf("%d JSON-LD block(s) with @type", typed))
	}
	return partial(def, "JSON-LD block present but invalid or without @type")
}
