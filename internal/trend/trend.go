// Package trend derives a directional trend from a time-ordered series of
// mastery scores by comparing the mean of the recent half against the mean
// of the older half.
package trend

// Direction is the headline movement of a student's mastery scores.
type Direction string

const (
	Improving Direction = "improving"
	Stable    Direction = "stable"
	Declining Direction = "declining"
)

// MinTrendPoints is the minimum series length for a trend call. Shorter
// series are insufficient signal and always read as Stable.
const MinTrendPoints = 4

// trendDelta is the half-to-half mean difference required before a series
// reads as Improving or Declining. Fixed at 5 points to avoid over-reacting
// to single-assessment noise; a diff of exactly ±5 resolves to Stable.
const trendDelta = 5.0

// Analyze classifies a newest-first score series. The series is split by
// index into a recent half and an older half; with an odd count the extra
// point goes to the older half, so the minimum split is 2-and-2.
func Analyze(scores []float64) Direction {
	if len(scores) < MinTrendPoints {
		return Stable
	}

	half := len(scores) / 2
	recent := mean(scores[:half])
	older := mean(scores[half:])

	diff := recent - older
	switch {
	case diff > trendDelta:
		return Improving
	case diff < -trendDelta:
		return Declining
	default:
		return Stable
	}
}

func mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
