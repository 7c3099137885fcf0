package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/classpulse/classpulse/internal/rubric"
	"github.com/spf13/cobra"
)

// gradeInput is the JSON shape the grade command reads: a rubric definition
// plus the grader's level selections per criterion.
type gradeInput struct {
	Levels   []string `json:"levels"`
	Criteria []struct {
		ID     string  `json:"id"`
		Name   string  `json:"name"`
		Weight float64 `json:"weight"`
	} `json:"criteria"`
	Selections map[string]string `json:"selections"`
}

var gradeCmd = &cobra.Command{
	Use:   "grade <rubric.json>",
	Short: "Normalize rubric selections into a weighted score",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read rubric file: %w", err)
		}

		var in gradeInput
		if err := json.Unmarshal(raw, &in); err != nil {
			return fmt.Errorf("parse rubric file: %w", err)
		}

		criteria := make([]rubric.Criterion, 0, len(in.Criteria))
		for _, c := range in.Criteria {
			criteria = append(criteria, rubric.Criterion{
				ID:     c.ID,
				Name:   c.Name,
				Weight: c.Weight,
			})
		}

		res, err := rubric.ScoreSubmission(in.Levels, criteria, in.Selections)
		if err != nil {
			return fmt.Errorf("score submission: %w", err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}
