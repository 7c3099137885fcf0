package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/classpulse/classpulse/internal/interventions"
	"github.com/classpulse/classpulse/internal/llm"
	"github.com/classpulse/classpulse/internal/risk"
	"github.com/classpulse/classpulse/internal/signals"
	"github.com/classpulse/classpulse/internal/store"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify student academic risk",
	Long: "Classify academic risk for a student, a class, or the whole cohort. " +
		"When an LLM provider is configured, flagged students also get anonymized intervention recommendations.",
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, _ := cmd.Flags().GetString("student")
		classID, _ := cmd.Flags().GetString("class")
		noRecs, _ := cmd.Flags().GetBool("no-recommendations")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		var collab risk.Interventions
		if !noRecs {
			collab = buildCollaborator(ctx, s.EventRepo())
		}

		svc := risk.NewService(s.SignalRepo(), collab)
		report, err := svc.ClassifyScope(ctx, signals.Scope{StudentID: studentID, ClassID: classID})
		if err != nil {
			return fmt.Errorf("classify: %w", err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

// buildCollaborator wires the interventions client if a provider is
// configured, preferring explicit CLASSPULSE_* settings over discovered
// vendor API keys. Returns nil when no provider is available, which simply
// omits recommendations.
func buildCollaborator(ctx context.Context, events store.EventRepo) risk.Interventions {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Fprintln(os.Stderr, "note: no LLM provider configured; skipping intervention recommendations")
			return nil
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, events)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: LLM provider unavailable: %v\n", err)
		return nil
	}
	return interventions.NewService(provider, interventions.DefaultConfig())
}

func init() {
	classifyCmd.Flags().String("student", "", "Classify a single student by ID")
	classifyCmd.Flags().String("class", "", "Classify every student in a class")
	classifyCmd.Flags().Bool("no-recommendations", false, "Skip the intervention recommendation step")
}
