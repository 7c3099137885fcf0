// Package interventions is the client for the Content Generation
// Collaborator: anonymized student batch in, recommendation batch out. The
// engine never inspects how the text is produced; it only validates that
// the output matches the declared schema and echoes labels back exactly.
package interventions

// AnonymizedStudent is one flagged student stripped of identity. Labels are
// sequential per request ("Student A", "Student B", …); real names never
// leave the engine.
type AnonymizedStudent struct {
	Label          string
	RiskLevel      string
	Indicators     []string
	RecentScores   []float64
	TrendDirection string
}

// Result is the collaborator's output for one student, rejoined to the
// originating profile by label.
type Result struct {
	StudentLabel    string
	Recommendations []string
}

// Config holds generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for intervention generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}
