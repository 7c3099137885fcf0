package cmd

import (
	"context"
	"fmt"

	"github.com/classpulse/classpulse/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all signal data",
	Long:  "Delete students, mastery records, submissions, assignments, deadlines, and caseloads. Telemetry events are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.Reset(context.Background()); err != nil {
			return fmt.Errorf("reset: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Signal data cleared.")
		return nil
	},
}
