package cli

import (
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pagelint/pagelint/internal/adapters/outbound/checklist"
	"github.com/pagelint/pagelint/internal/adapters/outbound/fetch"
	"github.com/pagelint/pagelint/internal/adapters/outbound/history"
	"github.com/pagelint/pagelint/internal/adapters/outbound/tui"
	"github.com/pagelint/pagelint/internal/application"
	"github.com/pagelint/pagelint/internal/domain"
)

func newAuditCmd() *cobra.Command {
	var (
		jsonOutput    bool
		ciMode        bool
		minScore      int
		checklistPath string
		showHistory   bool
	)

	cmd := &cobra.Command{
		Use:   "audit <url>",
		Short: "Audit a web page and score its compliance",
		Long:  "Fetch a page (bare hosts become https://), evaluate every checklist section and print the scored report with a priority-ordered fix queue.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if checklistPath == "" {
				checklistPath = viper.GetString("checklist.path")
			}

			fetcher := fetch.New(viper.GetDuration("fetch.timeout"), viper.GetString("fetch.user_agent"))
			svc := application.NewAuditService(fetcher, checklist.New(checklistPath))

			target := application.NormalizeURL(args[0])

			if showHistory {
				return printHistory(cmd, target)
			}

			result, err := svc.Audit(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			saveHistory(cmd, result)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(result))
			}

			if ciMode && result.Score < minScore {
				return fmt.Errorf("score %d is below minimum %d", result.Score, minScore)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode")
	cmd.Flags().StringVar(&checklistPath, "checklist", "", "Path to a checklist YAML file")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show past audits for this URL instead of auditing")

	return cmd
}

// openHistory opens the audit history store at its default location.
func openHistory() (domain.AuditHistory, error) {
	path, err := history.DefaultPath()
	if err != nil {
		return nil, err
	}
	store, err := history.Open(path)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// saveHistory records the audit summary, best-effort.
func saveHistory(cmd *cobra.Command, result *domain.AuditResult) {
	if !viper.GetBool("history.enabled") {
		return
	}
	store, err := openHistory()
	if err != nil {
		log.WithError(err).Debug("history unavailable")
		return
	}
	defer store.Close()

	_ = store.Save(cmd.Context(), domain.HistoryEntry{
		URL:           result.URL,
		AuditedAt:     time.Now(),
		Score:         result.Score,
		TotalChecks:   result.TotalChecks,
		Passed:        result.Passed,
		Failed:        result.Failed,
		Partial:       result.Partial,
		NotApplicable: result.NotApplicable,
	})
}

func printHistory(cmd *cobra.Command, target string) error {
	store, err := openHistory()
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer store.Close()

	entries, err := store.Load(cmd.Context(), target)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
	return nil
}
