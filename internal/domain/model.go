package domain

import (
	"math"
	"time"
)

// Status is the four-valued outcome of evaluating a single check.
type Status string

const (
	StatusDone          Status = "done"
	StatusMissing       Status = "missing"
	StatusPartial       Status = "partial"
	StatusNotApplicable Status = "not_applicable"
)

// Priority levels, in descending urgency.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// PriorityRank returns a numeric rank for sorting priorities (lower is more
// urgent). Unknown values rank as low.
func PriorityRank(p string) int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 3
	}
}

// ItemResult is the evaluated outcome of one check.
type ItemResult struct {
	Label    string `json:"label"`
	Priority string `json:"priority"`
	Status   Status `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Hint     string `json:"hint,omitempty"`
}

// CheckOutcome pairs a check id with its result. Evaluators return ordered
// slices of these so the aggregator sees a deterministic iteration order.
type CheckOutcome struct {
	ID     string     `json:"id"`
	Result ItemResult `json:"result"`
}

// SectionResult rolls up one checklist section.
// Failed counts missing and partial items together.
type SectionResult struct {
	Label  string                `json:"label"`
	Total  int                   `json:"total"`
	Passed int                   `json:"passed"`
	Failed int                   `json:"failed"`
	Items  map[string]ItemResult `json:"items"`
}

// PriorityFix is a queued remediation suggestion derived from a non-passing
// check. Never created for done or not_applicable items.
type PriorityFix struct {
	CheckID  string `json:"check_id"`
	Label    string `json:"label"`
	Priority string `json:"priority"`
	Hint     string `json:"hint,omitempty"`
	Section  string `json:"section"`
}

// AuditResult is the full report for one audited page.
type AuditResult struct {
	URL           string                   `json:"url"`
	Timestamp     time.Time                `json:"timestamp"`
	TotalChecks   int                      `json:"total_checks"`
	Passed        int                      `json:"passed"`
	Failed        int                      `json:"failed"`
	Partial       int                      `json:"partial"`
	NotApplicable int                      `json:"not_applicable"`
	Score         int                      `json:"score_percentage"`
	Sections      map[string]SectionResult `json:"sections"`
	Fixes         []PriorityFix            `json:"priority_fixes"`
}

func (r AuditResult) Grade() string { return GradeFor(r.Score) }

func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

// ComputeScore returns round(passed / (total - notApplicable) * 100), or 0
// when no check was applicable.
func ComputeScore(passed, total, notApplicable int) int {
	applicable := total - notApplicable
	if applicable <= 0 {
		return 0
	}
	return int(math.Round(float64(passed) / float64(applicable) * 100))
}

// Issue selects a single check for remediation, carrying the remediation
// text the routes may splice into the document.
type Issue struct {
	CheckID string `json:"check_id"`
	Text    string `json:"text,omitempty"`
}

// RemediationContext carries optional site identity used by routes that
// generate content (canonical URLs, Open Graph blocks, JSON-LD).
type RemediationContext struct {
	SiteID      string `json:"site_id,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// RemediationOutcome reports what one remediation call changed.
type RemediationOutcome struct {
	OriginalSize int      `json:"original_size"`
	ResultSize   int      `json:"result_size"`
	Changes      []string `json:"changes"`
}

// HistoryEntry is one persisted audit summary.
type HistoryEntry struct {
	URL           string    `json:"url"`
	AuditedAt     time.Time `json:"audited_at"`
	Score         int       `json:"score"`
	TotalChecks   int       `json:"total_checks"`
	Passed        int       `json:"passed"`
	Failed        int       `json:"failed"`
	Partial       int       `json:"partial"`
	NotApplicable int       `json:"not_applicable"`
}
