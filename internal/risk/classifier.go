package risk

import "github.com/classpulse/classpulse/internal/trend"

// Level is the headline risk tier for a student.
type Level string

const (
	HighRisk     Level = "high_risk"
	ModerateRisk Level = "moderate_risk"
	OnTrack      Level = "on_track"
)

// HighRiskIndicatorCount is the indicator count that alone forces the
// high-risk tier.
const HighRiskIndicatorCount = 3

// Classify reduces an indicator set to a tier. Rules apply in order, first
// match wins:
//
//  1. high_risk: count ≥ 3, or low mastery average combined with missing
//     submissions.
//  2. moderate_risk: any indicator at all.
//  3. on_track: otherwise.
func Classify(indicators []Indicator) Level {
	if len(indicators) >= HighRiskIndicatorCount {
		return HighRisk
	}
	if has(indicators, IndicatorLowMasteryAvg) && has(indicators, IndicatorMissingSubmissions) {
		return HighRisk
	}
	if len(indicators) >= 1 {
		return ModerateRisk
	}
	return OnTrack
}

func has(indicators []Indicator, want Indicator) bool {
	for _, i := range indicators {
		if i == want {
			return true
		}
	}
	return false
}

// StudentRiskProfile is the per-student classification result, constructed
// fresh per request and never stored.
type StudentRiskProfile struct {
	StudentID      string          `json:"studentId"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	RiskLevel      Level           `json:"riskLevel"`
	Indicators     []Indicator     `json:"indicators"`
	RecentScores   []float64       `json:"recentScores"` // chronological
	TrendDirection trend.Direction `json:"trendDirection"`
	Strengths      []string        `json:"strengths,omitempty"`
	GrowthAreas    []string        `json:"growthAreas,omitempty"`

	// Recommendations is present only for flagged students, and may be
	// empty even then when the collaborator fails: a collaborator failure
	// never suppresses the classification itself.
	Recommendations []string `json:"recommendations,omitempty"`
}

// Flagged reports whether the profile warrants intervention text.
func (p *StudentRiskProfile) Flagged() bool {
	return p.RiskLevel != OnTrack
}

// Report is the risk classification response shape.
type Report struct {
	Students []StudentRiskProfile `json:"students"`
}
