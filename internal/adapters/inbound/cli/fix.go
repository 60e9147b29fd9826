package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagelint/pagelint/internal/adapters/outbound/docstore"
	"github.com/pagelint/pagelint/internal/application"
	"github.com/pagelint/pagelint/internal/domain"
	"github.com/pagelint/pagelint/internal/domain/remedy"
)

func newFixCmd() *cobra.Command {
	var (
		checkFlags  []string
		siteID      string
		displayName string
		dryRun      bool
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "fix <document>",
		Short: "Apply safe, idempotent fixes to a stored page copy",
		Long: "Patch a stored HTML document with anchored insertions for the given check ids. " +
			"Checks whose marker already exists are skipped, so re-running the same fix changes nothing. " +
			"Use --check id or --check id=text to supply insertion text (e.g. a meta description).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(checkFlags) == 0 {
				return fmt.Errorf("at least one --check is required")
			}

			issues := parseIssues(checkFlags)
			ctx := domain.RemediationContext{SiteID: siteID, DisplayName: displayName}

			if dryRun {
				store := docstore.New()
				doc, err := store.Read(args[0])
				if err != nil {
					return fmt.Errorf("fix failed: %w", err)
				}
				_, changes := remedy.Apply(doc, issues, ctx)
				return printChanges(cmd, changes)
			}

			svc := application.NewRemediateService(docstore.New())
			outcome, err := svc.Remediate(args[0], issues, ctx)
			if err != nil {
				return fmt.Errorf("fix failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(outcome)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d -> %d bytes\n", outcome.OriginalSize, outcome.ResultSize)
			return printChanges(cmd, outcome.Changes)
		},
	}

	cmd.Flags().StringArrayVar(&checkFlags, "check", nil, "Check id to remediate, optionally with text: id or id=text (repeatable)")
	cmd.Flags().StringVar(&siteID, "site", "", "Canonical site URL used by URL-generating fixes")
	cmd.Flags().StringVar(&displayName, "name", "", "Site display name used by content-generating fixes")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show changes without writing the document")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the outcome as JSON")

	return cmd
}

// parseIssues splits repeated --check values into issues. "id=text" carries
// the insertion text; a bare "id" leaves it to the route defaults.
func parseIssues(flags []string) []domain.Issue {
	issues := make([]domain.Issue, 0, len(flags))
	for _, f := range flags {
		id, text, _ := strings.Cut(f, "=")
		issues = append(issues, domain.Issue{CheckID: strings.TrimSpace(id), Text: strings.TrimSpace(text)})
	}
	return issues
}

func printChanges(cmd *cobra.Command, changes []string) error {
	if len(changes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no changes")
		return nil
	}
	for _, change := range changes {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", change)
	}
	return nil
}
