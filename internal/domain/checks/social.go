package checks

import (
	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/markup"
)

// EvaluateSocial inspects social sharing markers: Open Graph properties and
// the Twitter card type.
func EvaluateSocial(cl *domain.Checklist, art *domain.Artifacts) []domain.CheckOutcome {
	const section = "social"
	doc := art.HTML

	ogCheck := func(id, property string) domain.CheckOutcome {
		v, ok := markup.MetaProperty(doc, property)
		return domain.CheckOutcome{ID: id, Result: binary(cl.Def(section, id), ok && v != "",
			property+" present", "no "+property+" meta tag")}
	}

	twitter, ok := markup.MetaContent(doc, "twitter:card")

	return []domain.CheckOutcome{
		ogCheck("og_title", "og:title"),
		ogCheck("og_description", "og:description"),
		ogCheck("og_image", "og:image"),
		{ID: "twitter_card", Result: binary(cl.Def(section, "twitter_card"), ok && twitter != "",
			"twitter:card present", "no twitter:card meta tag")},
	}
}
