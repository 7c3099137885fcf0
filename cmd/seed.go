package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/classpulse/classpulse/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a demo dataset",
	Long:  "Replace all signal data with a small demo class covering the risk spectrum.",
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

		if err := s.Seed(context.Background(), time.Now()); err != nil {
			return fmt.Errorf("seed: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Seeded demo dataset into", dbPath)
		return nil
	},
}
