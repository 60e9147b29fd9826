// Package checks holds the pattern evaluator families, one per checklist
// section. Every evaluator is a pure function over an artifact snapshot: it
// never fetches, never fails, and consults the checklist only for display
// metadata. Pass/fail logic is hard-coded per family.
package checks

import "github.com/pagelint/pagelint/internal/domain"

// Family binds a checklist section to its evaluator.
type Family struct {
	SectionID string
	Evaluate  func(cl *domain.Checklist, art *domain.Artifacts) []domain.CheckOutcome
}

// Registry returns the evaluator families in their fixed processing order.
// The order is part of the report contract: equal-priority fixes keep the
// relative order in which their checks were evaluated.
func Registry() []Family {
	return []Family{
		{SectionID: "technical", Evaluate: EvaluateTechnical},
		{SectionID: "content", Evaluate: EvaluateContent},
		{SectionID: "structured", Evaluate: EvaluateStructured},
		{SectionID: "social", Evaluate: EvaluateSocial},
		{SectionID: "performance", Evaluate: EvaluatePerformance},
		{SectionID: "security", Evaluate: EvaluateSecurity},
		{SectionID: "ux", Evaluate: EvaluateUX},
		{SectionID: "accessibility", Evaluate: EvaluateAccessibility},
		{SectionID: "legal", Evaluate: EvaluateLegal},
	}
}
