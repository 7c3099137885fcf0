package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/classpulse/classpulse/internal/deadlines"
	"github.com/classpulse/classpulse/internal/signals"
	"github.com/classpulse/classpulse/internal/store"
	"github.com/spf13/cobra"
)

var deadlinesCmd = &cobra.Command{
	Use:   "deadlines",
	Short: "Classify compliance deadline urgency",
	Long: "Classify compliance deadlines into urgency colors (red/yellow/green/overdue). " +
		"Caseload-restricted callers see only deadlines for students they manage.",
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, _ := cmd.Flags().GetString("student")
		classID, _ := cmd.Flags().GetString("class")
		callerID, _ := cmd.Flags().GetString("caller")
		restricted, _ := cmd.Flags().GetBool("restricted")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		svc := deadlines.NewService(s.SignalRepo())
		scope := signals.Scope{StudentID: studentID, ClassID: classID}
		report, err := svc.ClassifyForCaller(context.Background(), callerID, restricted, scope, time.Now())
		if err != nil {
			return fmt.Errorf("classify deadlines: %w", err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	deadlinesCmd.Flags().String("student", "", "Limit to a single student by ID")
	deadlinesCmd.Flags().String("class", "", "Limit to a class")
	deadlinesCmd.Flags().String("caller", "", "Caller ID, required with --restricted")
	deadlinesCmd.Flags().Bool("restricted", false, "Apply caseload visibility restrictions")
}
