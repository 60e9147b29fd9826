package application

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/checks"
)

// AuditService orchestrates the audit pipeline:
// fetch artifacts → run evaluator families → aggregate → score.
type AuditService struct {
	fetcher   domain.PageFetcher
	checklist domain.ChecklistSource
}

func NewAuditService(fetcher domain.PageFetcher, checklist domain.ChecklistSource) *AuditService {
	return &AuditService{fetcher: fetcher, checklist: checklist}
}

// Audit fetches the subject page plus auxiliary resources and produces the
// full report. A primary fetch failure aborts with no partial result.
func (s *AuditService) Audit(ctx context.Context, subjectURL string) (*domain.AuditResult, error) {
	target := NormalizeURL(subjectURL)

	art, err := s.fetchArtifacts(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", target, err)
	}

	return Aggregate(target, s.loadChecklist(), art), nil
}

// NormalizeURL turns a bare host into an https:// URL.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		return "https://" + raw
	}
	return raw
}

// fetchArtifacts issues the primary fetch and the auxiliary robots/sitemap
// probes concurrently. Auxiliary fetches soft-fail to "absent"; only the
// primary fetch can fail the audit.
func (s *AuditService) fetchArtifacts(ctx context.Context, target string) (*domain.Artifacts, error) {
	art := &domain.Artifacts{URL: target}
	base := siteBase(target)

	var (
		wg       sync.WaitGroup
		page     *domain.FetchResult
		fetchErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		page, fetchErr = s.fetcher.Fetch(ctx, target)
	}()
	go func() {
		defer wg.Done()
		art.Robots, art.HasRobots = s.fetcher.FetchOptional(ctx, base+"/robots.txt")
	}()
	go func() {
		defer wg.Done()
		art.Sitemap, art.HasSitemap = s.fetcher.FetchOptional(ctx, base+"/sitemap.xml")
	}()
	wg.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}
	art.HTML = page.Body
	art.Headers = page.Headers
	return art, nil
}

// siteBase reduces a URL to scheme://host for auxiliary resource probing.
func siteBase(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		return strings.TrimRight(target, "/")
	}
	return u.Scheme + "://" + u.Host
}

func (s *AuditService) loadChecklist() *domain.Checklist {
	if s.checklist == nil {
		return domain.DefaultChecklist()
	}
	cl, err := s.checklist.Load()
	if err != nil || cl == nil {
		log.WithError(err).Warn("checklist unavailable, using built-in defaults")
		return domain.DefaultChecklist()
	}
	return cl
}

// Aggregate folds the evaluator outputs into a single report. It is a pure
// transformation of its inputs except for the timestamp: identical artifacts
// and checklist always produce the same counters, sections, fixes and score.
func Aggregate(target string, cl *domain.Checklist, art *domain.Artifacts) *domain.AuditResult {
	result := &domain.AuditResult{
		URL:       target,
		Timestamp: time.Now(),
		Sections:  make(map[string]domain.SectionResult),
	}

	for _, family := range checks.Registry() {
		outcomes := family.Evaluate(cl, art)
		section := domain.SectionResult{
			Label: cl.SectionLabel(family.SectionID),
			Items: make(map[string]domain.ItemResult, len(outcomes)),
		}

		for _, oc := range outcomes {
			section.Total++
			result.TotalChecks++

			// Each item lands in exactly one global bucket; the section's
			// failed tally folds partial in alongside missing.
			switch oc.Result.Status {
			case domain.StatusDone:
				result.Passed++
				section.Passed++
			case domain.StatusMissing:
				result.Failed++
				section.Failed++
			case domain.StatusPartial:
				result.Partial++
				section.Failed++
			case domain.StatusNotApplicable:
				result.NotApplicable++
			}

			section.Items[oc.ID] = oc.Result

			if oc.Result.Status != domain.StatusDone && oc.Result.Status != domain.StatusNotApplicable {
				result.Fixes = append(result.Fixes, domain.PriorityFix{
					CheckID:  oc.ID,
					Label:    oc.Result.Label,
					Priority: oc.Result.Priority,
					Hint:     oc.Result.Hint,
					Section:  section.Label,
				})
			}
		}

		result.Sections[family.SectionID] = section
	}

	// Stable: equal priorities keep discovery order.
	sort.SliceStable(result.Fixes, func(i, j int) bool {
		return domain.PriorityRank(result.Fixes[i].Priority) < domain.PriorityRank(result.Fixes[j].Priority)
	})

	result.Score = domain.ComputeScore(result.Passed, result.TotalChecks, result.NotApplicable)
	return result
}
