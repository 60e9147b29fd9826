package checks_test

import (
	"net/http"
	"testing"

	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/checks"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateSecurity(t *testing.T) {
	cl := domain.DefaultChecklist()
	headers := http.Header{}
	headers.Set("Strict-Transport-Security", "max-age=31536000")
	headers.Set("X-Content-Type-Options", "nosniff")

	art := &domain.Artifacts{HTML: "<html></html>", Headers: headers}
	outcomes := checks.EvaluateSecurity(cl, art)
	assert.Len(t, outcomes, 5)

	assert.Equal(t, domain.StatusDone, outcomeByID(t, outcomes, "hsts").Status)
	assert.Equal(t, domain.StatusDone, outcomeByID(t, outcomes, "x_content_type_options").Status)
	assert.Equal(t, domain.StatusMissing, outcomeByID(t, outcomes, "x_frame_options").Status)
	assert.Equal(t, domain.StatusMissing, outcomeByID(t, outcomes, "csp").Status)
	assert.Equal(t, domain.StatusMissing, outcomeByID(t, outcomes, "referrer_policy").Status)
}

func TestEvaluateSecurity_NoHeaders(t *testing.T) {
	cl := domain.DefaultChecklist()
	art := &domain.Artifacts{HTML: "<html></html>", Headers: http.Header{}}

	for _, o := range checks.EvaluateSecurity(cl, art) {
		assert.Equal(t, domain.StatusMissing, o.Result.Status, "check %s", o.ID)
	}
}
