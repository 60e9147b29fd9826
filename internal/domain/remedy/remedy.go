// Package remedy applies safe, idempotent textual insertions to a stored
// document. The transform is pure: document text in, document text out. The
// single read-modify-write lives at the storage adapter, never here.
package remedy

import "github.com/pagelint/pagelint/internal/domain"

// Apply routes each issue to at most one remediation route and folds the
// resulting insertions left to right over the document. Issues without a
// route are silently skipped (unsupported remediation, not an error), and a
// route whose marker already exists is a no-op, so re-running the same issue
// list on an already-fixed document changes nothing.
func Apply(doc string, issues []domain.Issue, ctx domain.RemediationContext) (string, []string) {
	var changes []string
	for _, issue := range issues {
		route, ok := routeFor(issue.CheckID)
		if !ok {
			continue
		}
		if route.present(doc, issue) {
			continue
		}
		next, change := route.insert(doc, issue, ctx)
		if change == "" {
			continue
		}
		doc = next
		changes = append(changes, change)
	}
	return doc, changes
}
