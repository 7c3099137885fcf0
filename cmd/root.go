package cmd

import (
	"github.com/classpulse/classpulse/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "classpulse",
	Short: "Learning analytics and risk classification engine",
	Long:  "ClassPulse — analytics engine that classifies student academic risk, deadline urgency, and rubric scores from platform signals.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CLASSPULSE_DB env var)")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(deadlinesCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CLASSPULSE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
