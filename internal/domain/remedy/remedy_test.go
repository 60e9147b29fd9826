package remedy_test

import (
	"strings"
	"testing"

	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/remedy"
	"github.com/stretchr/testify/assert"
)

const bareDoc = `<!DOCTYPE html>
<html>
<head>
</head>
<body>
<p>Hello</p>
</body>
</html>`

func TestApply_InsertsTitle(t *testing.T) {
	issues := []domain.Issue{{CheckID: "title", Text: "Acme Widgets"}}

	out, changes := remedy.Apply(bareDoc, issues, domain.RemediationContext{})
	assert.Equal(t, []string{"inserted <title>"}, changes)
	assert.Equal(t, 1, strings.Count(out, "<title>Acme Widgets</title>"))
}

func TestApply_Idempotent(t *testing.T) {
	issues := []domain.Issue{
		{CheckID: "title", Text: "Acme"},
		{CheckID: "charset"},
		{CheckID: "viewport"},
		{CheckID: "meta_description", Text: "A fine description."},
	}
	ctx := domain.RemediationContext{}

	once, changes := remedy.Apply(bareDoc, issues, ctx)
	assert.Len(t, changes, 4)

	twice, changes2 := remedy.Apply(once, issues, ctx)
	assert.Equal(t, once, twice, "second run must not alter the document")
	assert.Empty(t, changes2)
}

func TestApply_SkipsWhenMarkerPresent(t *testing.T) {
	doc := `<html><head><title>Existing</title></head><body></body></html>`
	out, changes := remedy.Apply(doc, []domain.Issue{{CheckID: "title", Text: "New"}}, domain.RemediationContext{})
	assert.Equal(t, doc, out)
	assert.Empty(t, changes)
}

func TestApply_SkipsUnroutedChecks(t *testing.T) {
	issues := []domain.Issue{
		{CheckID: "hsts"},
		{CheckID: "content_length"},
		{CheckID: "robots_txt"},
	}
	out, changes := remedy.Apply(bareDoc, issues, domain.RemediationContext{})
	assert.Equal(t, bareDoc, out)
	assert.Empty(t, changes, "checks without a route are skipped, not errors")
}

func TestApply_TitleFallsBackToDisplayName(t *testing.T) {
	ctx := domain.RemediationContext{DisplayName: "Acme GmbH"}
	out, changes := remedy.Apply(bareDoc, []domain.Issue{{CheckID: "title"}}, ctx)
	assert.Len(t, changes, 1)
	assert.Contains(t, out, "<title>Acme GmbH</title>")
}

func TestApply_TitleWithoutTextOrName(t *testing.T) {
	out, changes := remedy.Apply(bareDoc, []domain.Issue{{CheckID: "title"}}, domain.RemediationContext{})
	assert.Equal(t, bareDoc, out, "nothing to insert without text")
	assert.Empty(t, changes)
}

func TestApply_MetaDescriptionRequiresText(t *testing.T) {
	out, changes := remedy.Apply(bareDoc, []domain.Issue{{CheckID: "meta_description"}}, domain.RemediationContext{})
	assert.Equal(t, bareDoc, out)
	assert.Empty(t, changes)
}

func TestApply_LangAttribute(t *testing.T) {
	out, changes := remedy.Apply(bareDoc, []domain.Issue{{CheckID: "lang_attr"}}, domain.RemediationContext{})
	assert.Len(t, changes, 1)
	assert.Contains(t, out, `<html lang="en">`)

	again, changes2 := remedy.Apply(out, []domain.Issue{{CheckID: "lang_attr"}}, domain.RemediationContext{})
	assert.Equal(t, out, again)
	assert.Empty(t, changes2)
}

func TestApply_LangUsesIssueText(t *testing.T) {
	out, _ := remedy.Apply(bareDoc, []domain.Issue{{CheckID: "lang_attr", Text: "de"}}, domain.RemediationContext{})
	assert.Contains(t, out, `<html lang="de">`)
}

func TestApply_OpenGraph(t *testing.T) {
	ctx := domain.RemediationContext{DisplayName: "Acme"}
	issues := []domain.Issue{
		{CheckID: "og_title"},
		{CheckID: "og_description", Text: "What Acme does."},
		{CheckID: "og_image"},
	}

	out, changes := remedy.Apply(bareDoc, issues, ctx)
	assert.Len(t, changes, 2, "og_image has no text source and is skipped")
	assert.Contains(t, out, `<meta property="og:title" content="Acme">`)
	assert.Contains(t, out, `<meta property="og:description" content="What Acme does.">`)
	assert.NotContains(t, out, "og:image")
}

func TestApply_JSONLD(t *testing.T) {
	ctx := domain.RemediationContext{SiteID: "https://acme.example", DisplayName: "Acme"}
	out, changes := remedy.Apply(bareDoc, []domain.Issue{{CheckID: "json_ld"}}, ctx)
	assert.Len(t, changes, 1)
	assert.Contains(t, out, "application/ld+json")
	assert.Contains(t, out, `"@type": "WebSite"`)

	again, changes2 := remedy.Apply(out, []domain.Issue{{CheckID: "json_ld"}}, ctx)
	assert.Equal(t, out, again)
	assert.Empty(t, changes2)
}

func TestApply_H1InsertedAfterBody(t *testing.T) {
	out, changes := remedy.Apply(bareDoc, []domain.Issue{{CheckID: "h1_presence", Text: "Welcome"}}, domain.RemediationContext{})
	assert.Len(t, changes, 1)

	bodyIdx := strings.Index(out, "<body>")
	h1Idx := strings.Index(out, "<h1>Welcome</h1>")
	assert.Greater(t, h1Idx, bodyIdx)
}

func TestApply_NoAnchorNoChange(t *testing.T) {
	doc := "<p>fragment without head or body</p>"
	out, changes := remedy.Apply(doc, []domain.Issue{{CheckID: "charset"}}, domain.RemediationContext{})
	assert.Equal(t, doc, out, "a document without <head> is left untouched")
	assert.Empty(t, changes)
}

func TestApply_FoldsMultipleInsertions(t *testing.T) {
	issues := []domain.Issue{
		{CheckID: "charset"},
		{CheckID: "viewport"},
		{CheckID: "favicon"},
	}
	out, changes := remedy.Apply(bareDoc, issues, domain.RemediationContext{})
	assert.Equal(t, []string{
		"inserted charset declaration",
		"inserted viewport meta tag",
		"inserted favicon link",
	}, changes)
	assert.Equal(t, 1, strings.Count(out, `<meta charset="utf-8">`))
	assert.Equal(t, 1, strings.Count(out, `rel="icon"`))
}
