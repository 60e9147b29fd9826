package checks_test

import (
	"testing"

	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/checks"
	"github.com/stretchr/testify/assert"
)

const minimalPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link rel="canonical" href="https://example.com/">
  <link rel="icon" href="/favicon.ico">
  <title>Example</title>
</head>
<body><h1>Hi</h1></body>
</html>`

func TestEvaluateTechnical_AllPresent(t *testing.T) {
	cl := domain.DefaultChecklist()
	art := &domain.Artifacts{
		URL:        "https://example.com/",
		HTML:       minimalPage,
		Robots:     "User-agent: *\nDisallow:\nSitemap: https://example.com/sitemap.xml\n",
		HasRobots:  true,
		HasSitemap: true,
	}

	outcomes := checks.EvaluateTechnical(cl, art)
	assert.Len(t, outcomes, 7)
	for _, o := range outcomes {
		assert.Equal(t, domain.StatusDone, o.Result.Status, "check %s", o.ID)
	}
}

func TestEvaluateTechnical_EmptyPage(t *testing.T) {
	cl := domain.DefaultChecklist()
	art := &domain.Artifacts{URL: "https://example.com/", HTML: "<html></html>"}

	for _, o := range checks.EvaluateTechnical(cl, art) {
		assert.Equal(t, domain.StatusMissing, o.Result.Status, "check %s", o.ID)
	}
}

func TestEvaluateTechnical_Viewport(t *testing.T) {
	cl := domain.DefaultChecklist()

	art := &domain.Artifacts{HTML: `<meta name="viewport" content="width=1024">`}
	res := outcomeByID(t, checks.EvaluateTechnical(cl, art), "viewport")
	assert.Equal(t, domain.StatusPartial, res.Status, "fixed-width viewport is only partial")
}

func TestEvaluateTechnical_RobotsBlocksAll(t *testing.T) {
	cl := domain.DefaultChecklist()
	art := &domain.Artifacts{
		HTML:      "<html></html>",
		Robots:    "User-agent: *\nDisallow: /\n",
		HasRobots: true,
	}

	res := outcomeByID(t, checks.EvaluateTechnical(cl, art), "robots_txt")
	assert.Equal(t, domain.StatusPartial, res.Status, "a reachable robots.txt that hides the site is not a pass")
}

func TestEvaluateTechnical_RobotsDisallowPath(t *testing.T) {
	cl := domain.DefaultChecklist()
	art := &domain.Artifacts{
		HTML:      "<html></html>",
		Robots:    "User-agent: *\nDisallow: /admin\n",
		HasRobots: true,
	}

	res := outcomeByID(t, checks.EvaluateTechnical(cl, art), "robots_txt")
	assert.Equal(t, domain.StatusDone, res.Status)
}

func TestEvaluateTechnical_SitemapViaRobots(t *testing.T) {
	cl := domain.DefaultChecklist()
	art := &domain.Artifacts{
		HTML:      "<html></html>",
		Robots:    "Sitemap: https://example.com/sitemap.xml\n",
		HasRobots: true,
	}

	res := outcomeByID(t, checks.EvaluateTechnical(cl, art), "sitemap_xml")
	assert.Equal(t, domain.StatusDone, res.Status)
}
