package checks_test

import (
	"strings"
	"testing"

	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/checks"
	"github.com/stretchr/testify/assert"
)

func outcomeByID(t *testing.T, outcomes []domain.CheckOutcome, id string) domain.ItemResult {
	t.Helper()
	for _, o := range outcomes {
		if o.ID == id {
			return o.Result
		}
	}
	t.Fatalf("no outcome for check %q", id)
	return domain.ItemResult{}
}

func contentArtifacts(html string) *domain.Artifacts {
	return &domain.Artifacts{URL: "https://example.com/", HTML: html}
}

func TestEvaluateContent_Title(t *testing.T) {
	cl := domain.DefaultChecklist()

	tests := []struct {
		name   string
		html   string
		status domain.Status
	}{
		{"in range", "<title>" + strings.Repeat("x", 45) + "</title>", domain.StatusDone},
		{"too short", "<title>" + strings.Repeat("x", 10) + "</title>", domain.StatusPartial},
		{"too long", "<title>" + strings.Repeat("x", 90) + "</title>", domain.StatusPartial},
		{"boundary low", "<title>" + strings.Repeat("x", 30) + "</title>", domain.StatusDone},
		{"boundary high", "<title>" + strings.Repeat("x", 70) + "</title>", domain.StatusDone},
		{"absent", "<head></head>", domain.StatusMissing},
		{"empty", "<title>   </title>", domain.StatusMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts(tt.html)), "title")
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, domain.PriorityCritical, res.Priority)
		})
	}
}

func TestEvaluateContent_TitleCountsRunes(t *testing.T) {
	cl := domain.DefaultChecklist()
	// 40 umlauts is 80 bytes but 40 runes, inside the 30-70 range.
	html := "<title>" + strings.Repeat("ü", 40) + "</title>"
	res := outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts(html)), "title")
	assert.Equal(t, domain.StatusDone, res.Status)
}

func TestEvaluateContent_MetaDescription(t *testing.T) {
	cl := domain.DefaultChecklist()

	ok := `<meta name="description" content="` + strings.Repeat("d", 120) + `">`
	res := outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts(ok)), "meta_description")
	assert.Equal(t, domain.StatusDone, res.Status)

	short := `<meta name="description" content="too short">`
	res = outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts(short)), "meta_description")
	assert.Equal(t, domain.StatusPartial, res.Status)

	res = outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts("<head></head>")), "meta_description")
	assert.Equal(t, domain.StatusMissing, res.Status)
}

func TestEvaluateContent_H1(t *testing.T) {
	cl := domain.DefaultChecklist()

	res := outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts("<h1>One</h1>")), "h1_presence")
	assert.Equal(t, domain.StatusDone, res.Status)

	res = outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts("<h2>None</h2>")), "h1_presence")
	assert.Equal(t, domain.StatusMissing, res.Status)

	res = outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts("<h1>A</h1><h1>B</h1>")), "h1_presence")
	assert.Equal(t, domain.StatusPartial, res.Status)
}

func TestEvaluateContent_HeadingOrder(t *testing.T) {
	cl := domain.DefaultChecklist()

	res := outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts("<h1>A</h1><h2>B</h2><h3>C</h3>")), "heading_order")
	assert.Equal(t, domain.StatusDone, res.Status)

	res = outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts("<h1>A</h1><h3>skip</h3>")), "heading_order")
	assert.Equal(t, domain.StatusPartial, res.Status)

	res = outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts("<p>nothing</p>")), "heading_order")
	assert.Equal(t, domain.StatusNotApplicable, res.Status, "no headings is not a failure")
}

func TestEvaluateContent_ImgAlt(t *testing.T) {
	cl := domain.DefaultChecklist()

	res := outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts("<p>no images</p>")), "img_alt")
	assert.Equal(t, domain.StatusNotApplicable, res.Status)

	res = outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts(`<img src="a.png">`)), "img_alt")
	assert.Equal(t, domain.StatusMissing, res.Status)
	assert.Equal(t, domain.PriorityCritical, res.Priority)

	mixed := `<img src="a.png" alt="a"><img src="b.png">`
	res = outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts(mixed)), "img_alt")
	assert.Equal(t, domain.StatusPartial, res.Status)
	assert.Equal(t, "1 of 2 images pass", res.Detail)

	res = outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts(`<img src="a.png" alt="a">`)), "img_alt")
	assert.Equal(t, domain.StatusDone, res.Status)
}

func TestEvaluateContent_ContentLength(t *testing.T) {
	cl := domain.DefaultChecklist()

	long := "<p>" + strings.Repeat("word ", 350) + "</p>"
	res := outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts(long)), "content_length")
	assert.Equal(t, domain.StatusDone, res.Status)

	res = outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts("<p>just a few words</p>")), "content_length")
	assert.Equal(t, domain.StatusPartial, res.Status)

	res = outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts("<p></p>")), "content_length")
	assert.Equal(t, domain.StatusMissing, res.Status)
}

func TestEvaluateContent_InternalLinks(t *testing.T) {
	cl := domain.DefaultChecklist()

	html := `<a href="/a">a</a><a href="/b">b</a><a href="/c">c</a><a href="https://other.com">x</a>`
	res := outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts(html)), "internal_links")
	assert.Equal(t, domain.StatusDone, res.Status)

	res = outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts(`<a href="/a">a</a>`)), "internal_links")
	assert.Equal(t, domain.StatusPartial, res.Status)

	res = outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts(`<a href="https://other.com">x</a>`)), "internal_links")
	assert.Equal(t, domain.StatusMissing, res.Status)
}

func TestEvaluateContent_ChecklistOverrides(t *testing.T) {
	cl := domain.DefaultChecklist()
	sec := cl.Sections["content"]
	sec.Checks["title"] = domain.CheckDefinition{Label: "Custom title", Priority: domain.PriorityLow}
	cl.Sections["content"] = sec

	res := outcomeByID(t, checks.EvaluateContent(cl, contentArtifacts("<title>"+strings.Repeat("x", 40)+"</title>")), "title")
	assert.Equal(t, "Custom title", res.Label)
	assert.Equal(t, domain.PriorityLow, res.Priority)
}
