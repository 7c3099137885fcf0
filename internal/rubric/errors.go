package rubric

import (
	"fmt"
	"strings"
)

// InvalidLevelError indicates a level selection that is not present in the
// rubric's level list. A caller-input error, never retried.
type InvalidLevelError struct {
	Level       string
	Levels      []string
	CriterionID string // set when the selection was missing for a criterion
}

func (e *InvalidLevelError) Error() string {
	if e.Level == "" && e.CriterionID != "" {
		return fmt.Sprintf("no level selected for criterion %q", e.CriterionID)
	}
	return fmt.Sprintf("level %q is not in the rubric levels [%s]",
		e.Level, strings.Join(e.Levels, ", "))
}

// Kind returns the stable error kind.
func (e *InvalidLevelError) Kind() string { return "invalid_level" }

// InvalidWeightError indicates a criterion weight outside [0, 1].
// A caller-input error, never retried.
type InvalidWeightError struct {
	Weight float64
}

func (e *InvalidWeightError) Error() string {
	return fmt.Sprintf("criterion weight %g is outside [0, 1]", e.Weight)
}

// Kind returns the stable error kind.
func (e *InvalidWeightError) Kind() string { return "invalid_weight" }
