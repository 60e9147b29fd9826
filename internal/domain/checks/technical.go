package checks

import (
	"strings"

	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/markup"
)

// EvaluateTechnical inspects the technical foundation markers: doctype,
// encoding, viewport, canonical URL, favicon and crawler plumbing.
func EvaluateTechnical(cl *domain.Checklist, art *domain.Artifacts) []domain.CheckOutcome {
	const section = "technical"
	doc := art.HTML

	out := []domain.CheckOutcome{
		{ID: "doctype", Result: binary(cl.Def(section, "doctype"), markup.HasDoctype(doc),
			"HTML5 doctype found", "no <!DOCTYPE html> declaration")},
		{ID: "charset", Result: binary(cl.Def(section, "charset"), markup.HasCharset(doc),
			"character encoding declared", "no charset declaration in <head>")},
		{ID: "viewport", Result: evalViewport(cl.Def(section, "viewport"), doc)},
	}

	_, hasCanonical := markup.LinkRel(doc, "canonical")
	out = append(out, domain.CheckOutcome{ID: "canonical", Result: binary(cl.Def(section, "canonical"), hasCanonical,
		"canonical link present", "no <link rel=\"canonical\">")})

	_, hasFavicon := markup.LinkRel(doc, "icon")
	out = append(out, domain.CheckOutcome{ID: "favicon", Result: binary(cl.Def(section, "favicon"), hasFavicon,
		"favicon link present", "no <link rel=\"icon\">")})

	out = append(out,
		domain.CheckOutcome{ID: "robots_txt", Result: evalRobots(cl.Def(section, "robots_txt"), art)},
		domain.CheckOutcome{ID: "sitemap_xml", Result: evalSitemap(cl.Def(section, "sitemap_xml"), art)},
	)
	return out
}

func evalViewport(def domain.CheckDefinition, doc string) domain.ItemResult {
	content, ok := markup.MetaContent(doc, "viewport")
	if !ok {
		return missing(def, "no viewport meta tag")
	}
	if strings.Contains(strings.ToLower(content), "width=device-width") {
		return done(def, "viewport uses width=device-width")
	}
	return partial(def, "viewport present but without width=device-width")
}

func evalRobots(def domain.CheckDefinition, art *domain.Artifacts) domain.ItemResult {
	if !art.HasRobots {
		return missing(def, "robots.txt not reachable")
	}
	if robotsBlocksAll(art.Robots) {
		return partial(def, "robots.txt present but disallows the whole site")
	}
	return done(def, "robots.txt reachable")
}

// robotsBlocksAll detects a bare "Disallow: /" directive, the form that hides
// the entire site from crawlers.
func robotsBlocksAll(robots string) bool {
	for _, line := range strings.Split(robots, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "disallow") && strings.TrimSpace(value) == "/" {
			return true
		}
	}
	return false
}

func evalSitemap(def domain.CheckDefinition, art *domain.Artifacts) domain.ItemResult {
	if art.HasSitemap {
		return done(def, "sitemap.xml reachable")
	}
	if art.HasRobots && strings.Contains(strings.ToLower(art.Robots), "sitemap:") {
		return done(def, "sitemap referenced from robots.txt")
	}
	return missing(def, "no sitemap.xml and no Sitemap directive in robots.txt")
}
