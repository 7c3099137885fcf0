package trend

import (
	"testing"
	"time"

	"github.com/classpulse/classpulse/internal/signals"
)

func TestAnalyze_Empty(t *testing.T) {
	if d := Analyze(nil); d != Stable {
		t.Errorf("Analyze(nil) = %s, want stable", d)
	}
}

func TestAnalyze_BelowMinimumPoints(t *testing.T) {
	series := [][]float64{
		{90},
		{90, 10},
		{90, 50, 10},
	}
	for _, s := range series {
		if d := Analyze(s); d != Stable {
			t.Errorf("Analyze(%v) = %s, want stable", s, d)
		}
	}
}

func TestAnalyze_Improving(t *testing.T) {
	// Oldest→newest 40, 45, 90, 88 reversed to newest-first.
	// Recent half mean 89, older half mean 42.5, diff +46.5.
	scores := []float64{88, 90, 45, 40}
	if d := Analyze(scores); d != Improving {
		t.Errorf("Analyze(%v) = %s, want improving", scores, d)
	}
}

func TestAnalyze_Declining(t *testing.T) {
	scores := []float64{40, 45, 90, 88}
	if d := Analyze(scores); d != Declining {
		t.Errorf("Analyze(%v) = %s, want declining", scores, d)
	}
}

func TestAnalyze_ExactDeltaIsStable(t *testing.T) {
	// diff of exactly +5 and exactly -5 must both resolve to stable.
	up := []float64{75, 75, 70, 70}
	if d := Analyze(up); d != Stable {
		t.Errorf("Analyze(%v) = %s, want stable at +5 boundary", up, d)
	}
	down := []float64{70, 70, 75, 75}
	if d := Analyze(down); d != Stable {
		t.Errorf("Analyze(%v) = %s, want stable at -5 boundary", down, d)
	}
}

func TestAnalyze_JustPastDelta(t *testing.T) {
	up := []float64{76, 75, 70, 70}
	if d := Analyze(up); d != Improving {
		t.Errorf("Analyze(%v) = %s, want improving past +5", up, d)
	}
}

func TestAnalyze_OddCountExtraPointToOlderHalf(t *testing.T) {
	// Five points: recent half is first 2, older half is last 3.
	// recent mean 90, older mean 50 → improving.
	scores := []float64{90, 90, 50, 50, 50}
	if d := Analyze(scores); d != Improving {
		t.Errorf("Analyze(%v) = %s, want improving", scores, d)
	}
}

func rec(standard, desc string, score float64, daysAgo int) signals.MasteryRecord {
	return signals.MasteryRecord{
		StudentID:           "s1",
		StandardID:          standard,
		StandardDescription: desc,
		Subject:             "math",
		Score:               score,
		AssessedAt:          time.Now().AddDate(0, 0, -daysAgo),
	}
}

func TestTags_Empty(t *testing.T) {
	tags := Tags(nil)
	if len(tags.Strengths) != 0 || len(tags.GrowthAreas) != 0 {
		t.Errorf("Tags(nil) = %+v, want empty", tags)
	}
}

func TestTags_LatestRecordPerStandardWins(t *testing.T) {
	records := []signals.MasteryRecord{
		rec("std-1", "Multiply fractions", 85, 1), // latest: strength
		rec("std-1", "Multiply fractions", 40, 10),
		rec("std-2", "Long division", 55, 2), // latest: growth area
		rec("std-2", "Long division", 90, 20),
	}
	tags := Tags(records)

	if len(tags.Strengths) != 1 || tags.Strengths[0] != "Multiply fractions" {
		t.Errorf("Strengths = %v, want [Multiply fractions]", tags.Strengths)
	}
	if len(tags.GrowthAreas) != 1 || tags.GrowthAreas[0] != "Long division" {
		t.Errorf("GrowthAreas = %v, want [Long division]", tags.GrowthAreas)
	}
}

func TestTags_MiddleBandUntagged(t *testing.T) {
	records := []signals.MasteryRecord{
		rec("std-1", "Place value", 70, 1),
	}
	tags := Tags(records)
	if len(tags.Strengths) != 0 || len(tags.GrowthAreas) != 0 {
		t.Errorf("Tags = %+v, want no tags for a 70 score", tags)
	}
}

func TestTags_Boundaries(t *testing.T) {
	records := []signals.MasteryRecord{
		rec("std-1", "Exactly eighty", 80, 1),
		rec("std-2", "Just under sixty", 59.9, 1),
		rec("std-3", "Exactly sixty", 60, 1),
	}
	tags := Tags(records)

	if len(tags.Strengths) != 1 || tags.Strengths[0] != "Exactly eighty" {
		t.Errorf("Strengths = %v, want score 80 tagged as strength", tags.Strengths)
	}
	if len(tags.GrowthAreas) != 1 || tags.GrowthAreas[0] != "Just under sixty" {
		t.Errorf("GrowthAreas = %v, want only the sub-60 score tagged", tags.GrowthAreas)
	}
}
