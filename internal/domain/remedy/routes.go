package remedy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/markup"
)

// route is one remediation rule: a check-id prefix, a precondition asking
// "does the target marker already exist?", and a single anchored insertion.
// Route prefixes are disjoint by construction, so a check-id matches at most
// one route.
type route struct {
	prefix  string
	present func(doc string, issue domain.Issue) bool
	insert  func(doc string, issue domain.Issue, ctx domain.RemediationContext) (string, string)
}

var (
	headOpenRe = regexp.MustCompile(`(?i)<head[^>]*>`)
	bodyOpenRe = regexp.MustCompile(`(?i)<body[^>]*>`)
	htmlOpenRe = regexp.MustCompile(`(?i)<html`)
)

func routeFor(checkID string) (route, bool) {
	for _, r := range routes {
		if strings.HasPrefix(checkID, r.prefix) {
			return r, true
		}
	}
	return route{}, false
}

// insertAfter splices fragment directly after the first match of anchor.
// A document without the anchor is left untouched.
func insertAfter(doc string, anchor *regexp.Regexp, fragment string) (string, bool) {
	loc := anchor.FindStringIndex(doc)
	if loc == nil {
		return doc, false
	}
	return doc[:loc[1]] + fragment + doc[loc[1]:], true
}

func inHead(doc, fragment, description string) (string, string) {
	next, ok := insertAfter(doc, headOpenRe, "\n  "+fragment)
	if !ok {
		return doc, ""
	}
	return next, description
}

var routes = []route{
	{
		prefix: "title",
		present: func(doc string, _ domain.Issue) bool {
			t, ok := markup.Title(doc)
			return ok && t != ""
		},
		insert: func(doc string, issue domain.Issue, ctx domain.RemediationContext) (string, string) {
			text := issue.Text
			if text == "" {
				text = ctx.DisplayName
			}
			if text == "" {
				return doc, ""
			}
			return inHead(doc, fmt.Sprintf("<title>%s</title>", text), "inserted <title>")
		},
	},
	{
		prefix: "meta_description",
		present: func(doc string, _ domain.Issue) bool {
			v, ok := markup.MetaContent(doc, "description")
			return ok && v != ""
		},
		insert: func(doc string, issue domain.Issue, _ domain.RemediationContext) (string, string) {
			if issue.Text == "" {
				return doc, ""
			}
			return inHead(doc, fmt.Sprintf(`<meta name="description" content="%s">`, issue.Text), "inserted meta description")
		},
	},
	{
		prefix: "charset",
		present: func(doc string, _ domain.Issue) bool { return markup.HasCharset(doc) },
		insert: func(doc string, _ domain.Issue, _ domain.RemediationContext) (string, string) {
			return inHead(doc, `<meta charset="utf-8">`, "inserted charset declaration")
		},
	},
	{
		prefix: "viewport",
		present: func(doc string, _ domain.Issue) bool {
			_, ok := markup.MetaContent(doc, "viewport")
			return ok
		},
		insert: func(doc string, _ domain.Issue, _ domain.RemediationContext) (string, string) {
			return inHead(doc, `<meta name="viewport" content="width=device-width, initial-scale=1">`, "inserted viewport meta tag")
		},
	},
	{
		prefix: "canonical",
		present: func(doc string, _ domain.Issue) bool {
			_, ok := markup.LinkRel(doc, "canonical")
			return ok
		},
		insert: func(doc string, issue domain.Issue, ctx domain.RemediationContext) (string, string) {
			href := issue.Text
			if href == "" {
				href = ctx.SiteID
			}
			if href == "" {
				return doc, ""
			}
			return inHead(doc, fmt.Sprintf(`<link rel="canonical" href="%s">`, href), "inserted canonical link")
		},
	},
	{
		prefix: "favicon",
		present: func(doc string, _ domain.Issue) bool {
			_, ok := markup.LinkRel(doc, "icon")
			return ok
		},
		insert: func(doc string, _ domain.Issue, _ domain.RemediationContext) (string, string) {
			return inHead(doc, `<link rel="icon" href="/favicon.ico">`, "inserted favicon link")
		},
	},
	{
		prefix: "lang",
		present: func(doc string, _ domain.Issue) bool {
			_, ok := markup.Lang(doc)
			return ok
		},
		insert: func(doc string, issue domain.Issue, _ domain.RemediationContext) (string, string) {
			lang := issue.Text
			if lang == "" {
				lang = "en"
			}
			next, ok := insertAfter(doc, htmlOpenRe, fmt.Sprintf(` lang="%s"`, lang))
			if !ok {
				return doc, ""
			}
			return next, fmt.Sprintf("added lang=%q to <html>", lang)
		},
	},
	{
		prefix: "og_",
		present: func(doc string, issue domain.Issue) bool {
			v, ok := markup.MetaProperty(doc, ogProperty(issue.CheckID))
			return ok && v != ""
		},
		insert: func(doc string, issue domain.Issue, ctx domain.RemediationContext) (string, string) {
			property := ogProperty(issue.CheckID)
			content := issue.Text
			if content == "" && property == "og:title" {
				content = ctx.DisplayName
			}
			if content == "" {
				return doc, ""
			}
			return inHead(doc, fmt.Sprintf(`<meta property="%s" content="%s">`, property, content),
				"inserted "+property+" meta tag")
		},
	},
	{
		prefix: "json_ld",
		present: func(doc string, _ domain.Issue) bool {
			return len(markup.JSONLDBlocks(doc)) > 0
		},
		insert: func(doc string, _ domain.Issue, ctx domain.RemediationContext) (string, string) {
			if ctx.DisplayName == "" && ctx.SiteID == "" {
				return doc, ""
			}
			block := fmt.Sprintf("<script type=\"application/ld+json\">\n"+
				`  {"@context": "https://schema.org", "@type": "WebSite", "name": %q, "url": %q}`+
				"\n  </script>", ctx.DisplayName, ctx.SiteID)
			return inHead(doc, block, "inserted JSON-LD WebSite schema")
		},
	},
	{
		prefix: "h1",
		present: func(doc string, _ domain.Issue) bool {
			for _, level := range markup.HeadingLevels(doc) {
				if level == 1 {
					return true
				}
			}
			return false
		},
		insert: func(doc string, issue domain.Issue, ctx domain.RemediationContext) (string, string) {
			text := issue.Text
			if text == "" {
				text = ctx.DisplayName
			}
			if text == "" {
				return doc, ""
			}
			next, ok := insertAfter(doc, bodyOpenRe, fmt.Sprintf("\n  <h1>%s</h1>", text))
			if !ok {
				return doc, ""
			}
			return next, "inserted <h1> heading"
		},
	},
}

// ogProperty maps an og_* check id to its Open Graph property name.
func ogProperty(checkID string) string {
	return "og:" + strings.TrimPrefix(checkID, "og_")
}
