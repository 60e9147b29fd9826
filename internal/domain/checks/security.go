package checks

import (
	"github.com/pagelint/pagelint/internal/domain"
)

// EvaluateSecurity inspects security response headers. These are pure binary
// markers: the header is either sent or it is not.
func EvaluateSecurity(cl *domain.Checklist, art *domain.Artifacts) []domain.CheckOutcome {
	const section = "security"

	header := func(id, name string) domain.CheckOutcome {
		present := art.Headers.Get(name) != ""
		return domain.CheckOutcome{ID: id, Result: binary(cl.Def(section, id), present,
			name+" header sent", "no "+name+" header")}
	}

	return []domain.CheckOutcome{
		header("hsts", "Strict-Transport-Security"),
		header("x_content_type_options", "X-Content-Type-Options"),
		header("x_frame_options", "X-Frame-Options"),
		header("csp", "Content-Security-Policy"),
		header("referrer_policy", "Referrer-Policy"),
	}
}
