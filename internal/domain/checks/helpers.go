package checks

import (
	"fmt"

	"github.com/pagelint/pagelint/internal/domain"
)

// binary classifies a marker check: done when found, missing otherwise.
func binary(def domain.CheckDefinition, found bool, foundDetail, missingDetail string) domain.ItemResult {
	r := domain.ItemResult{Label: def.Label, Priority: def.Priority, Hint: def.Hint}
	if found {
		r.Status = domain.StatusDone
		r.Detail = foundDetail
	} else {
		r.Status = domain.StatusMissing
		r.Detail = missingDetail
	}
	return r
}

// counted classifies an "n of m satisfy X" check. Zero candidates means the
// concern does not exist on the page, which is not a failure.
func counted(def domain.CheckDefinition, n, m int, noun string) domain.ItemResult {
	r := domain.ItemResult{Label: def.Label, Priority: def.Priority, Hint: def.Hint}
	switch {
	case m == 0:
		r.Status = domain.StatusNotApplicable
		r.Detail = fmt.Sprintf("no %s on page", noun)
	case n == m:
		r.Status = domain.StatusDone
		r.Detail = fmt.Sprintf("all %d %s pass", m, noun)
	case n == 0:
		r.Status = domain.StatusMissing
		r.Detail = fmt.Sprintf("0 of %d %s pass", m, noun)
	default:
		r.Status = domain.StatusPartial
		r.Detail = fmt.Sprintf("%d of %d %s pass", n, m, noun)
	}
	return r
}

// ranged classifies a present value against an inclusive length range.
// Absence must be handled by the caller (status missing).
func ranged(def domain.CheckDefinition, length, lo, hi int, what string) domain.ItemResult {
	r := domain.ItemResult{Label: def.Label, Priority: def.Priority, Hint: def.Hint}
	if length >= lo && length <= hi {
		r.Status = domain.StatusDone
		r.Detail = fmt.Sprintf("%s is %d characters", what, length)
	} else {
		r.Status = domain.StatusPartial
		r.Detail = fmt.Sprintf("%s is %d characters, want %d-%d", what, length, lo, hi)
	}
	return r
}

// missing builds a missing result with a detail message.
func missing(def domain.CheckDefinition, detail string) domain.ItemResult {
	return domain.ItemResult{Label: def.Label, Priority: def.Priority, Hint: def.Hint, Status: domain.StatusMissing, Detail: detail}
}

// partial builds a partial result with a detail message.
func partial(def domain.CheckDefinition, detail string) domain.ItemResult {
	return domain.ItemResult{Label: def.Label, Priority: def.Priority, Hint: def.Hint, Status: domain.StatusPartial, Detail: detail}
}

// done builds a done result with a detail message.
func done(def domain.CheckDefinition, detail string) domain.ItemResult {
	return domain.ItemResult{Label: def.Label, Priority: def.Priority, Hint: def.Hint, Status: domain.StatusDone, Detail: detail}
}

// notApplicable builds a not_applicable result with a detail message.
func notApplicable(def domain.CheckDefinition, detail string) domain.ItemResult {
	return domain.ItemResult{Label: def.Label, Priority: def.Priority, Hint: def.Hint, Status: domain.StatusNotApplicable, Detail: detail}
}
