// Package risk reduces heterogeneous student signals into discrete risk
// indicators and a three-tier classification, attaching collaborator-written
// intervention text to flagged students.
package risk

import (
	"github.com/classpulse/classpulse/internal/signals"
	"github.com/classpulse/classpulse/internal/trend"
)

// Indicator is a tagged risk classification derived per request, never
// persisted.
type Indicator string

const (
	IndicatorLowMasteryAvg        Indicator = "low_mastery_avg"
	IndicatorBelowProficientMulti Indicator = "below_proficient_multiple"
	IndicatorMissingSubmissions   Indicator = "missing_submissions"
	IndicatorLowSubmissionAvg     Indicator = "low_submission_avg"
	IndicatorDecliningTrend       Indicator = "declining_trend"
)

// Tunable thresholds for indicator extraction. Kept as named constants so
// they can be tested and revised independently of the extraction logic.
const (
	// LowScoreThreshold is the mean-score floor for both the mastery and
	// graded-submission averages.
	LowScoreThreshold = 60.0

	// BelowProficientCutoff is how many distinct standards must sit below
	// proficient before the indicator fires.
	BelowProficientCutoff = 2

	// MissingSubmissionCutoff is the minimum count (not ratio) of
	// un-submitted assignments in the window.
	MissingSubmissionCutoff = 2
)

// StudentSignals is one student's in-window evidence, as materialized by the
// signal repository.
type StudentSignals struct {
	Mastery           []signals.MasteryRecord // newest first
	Submissions       []signals.Submission
	AssignmentsIssued int
}

// Scores returns the mastery score series, preserving input (newest-first)
// order.
func (s StudentSignals) Scores() []float64 {
	out := make([]float64, len(s.Mastery))
	for i, r := range s.Mastery {
		out[i] = r.Score
	}
	return out
}

// Extract evaluates every indicator independently and returns those that
// fire, always in declaration order, so downstream classification is
// reproducible for identical inputs. Inputs are never mutated.
func Extract(sig StudentSignals) []Indicator {
	var out []Indicator

	if lowMasteryAvg(sig.Mastery) {
		out = append(out, IndicatorLowMasteryAvg)
	}
	if belowProficientMultiple(sig.Mastery) {
		out = append(out, IndicatorBelowProficientMulti)
	}
	if sig.AssignmentsIssued-len(sig.Submissions) >= MissingSubmissionCutoff {
		out = append(out, IndicatorMissingSubmissions)
	}
	if lowSubmissionAvg(sig.Submissions) {
		out = append(out, IndicatorLowSubmissionAvg)
	}
	if trend.Analyze(sig.Scores()) == trend.Declining {
		out = append(out, IndicatorDecliningTrend)
	}

	return out
}

func lowMasteryAvg(records []signals.MasteryRecord) bool {
	if len(records) == 0 {
		return false
	}
	sum := 0.0
	for _, r := range records {
		sum += r.Score
	}
	return sum/float64(len(records)) < LowScoreThreshold
}

func belowProficientMultiple(records []signals.MasteryRecord) bool {
	distinct := make(map[string]bool)
	for _, r := range records {
		if r.Level.BelowProficient() {
			distinct[r.StandardID] = true
		}
	}
	return len(distinct) >= BelowProficientCutoff
}

func lowSubmissionAvg(subs []signals.Submission) bool {
	sum, graded := 0.0, 0
	for _, s := range subs {
		if s.Status != signals.StatusGraded || s.MaxScore == 0 {
			continue
		}
		sum += s.Percentage()
		graded++
	}
	if graded == 0 {
		return false
	}
	return sum/float64(graded) < LowScoreThreshold
}
