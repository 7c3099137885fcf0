package risk

import (
	"testing"
	"time"

	"github.com/classpulse/classpulse/internal/signals"
)

func masteryRec(standard string, level signals.MasteryLevel, score float64) signals.MasteryRecord {
	return signals.MasteryRecord{
		StudentID:           "s1",
		StandardID:          standard,
		StandardDescription: standard,
		Level:               level,
		Score:               score,
		AssessedAt:          time.Now(),
	}
}

func gradedSub(id string, total, max float64) signals.Submission {
	return signals.Submission{
		StudentID:    "s1",
		AssignmentID: id,
		TotalScore:   total,
		MaxScore:     max,
		Status:       signals.StatusGraded,
		SubmittedAt:  time.Now(),
	}
}

func hasIndicator(inds []Indicator, want Indicator) bool {
	for _, i := range inds {
		if i == want {
			return true
		}
	}
	return false
}

func TestExtract_NoSignalsNoIndicators(t *testing.T) {
	inds := Extract(StudentSignals{})
	if len(inds) != 0 {
		t.Errorf("Extract(empty) = %v, want none", inds)
	}
}

func TestExtract_LowMasteryAvg(t *testing.T) {
	sig := StudentSignals{
		Mastery: []signals.MasteryRecord{
			masteryRec("std-1", signals.LevelProficient, 55),
			masteryRec("std-2", signals.LevelProficient, 62),
		},
	}
	// mean 58.5 < 60
	inds := Extract(sig)
	if !hasIndicator(inds, IndicatorLowMasteryAvg) {
		t.Errorf("indicators = %v, want low_mastery_avg", inds)
	}
}

func TestExtract_MasteryAvgBoundary(t *testing.T) {
	sig := StudentSignals{
		Mastery: []signals.MasteryRecord{
			masteryRec("std-1", signals.LevelProficient, 60),
			masteryRec("std-2", signals.LevelProficient, 60),
		},
	}
	if inds := Extract(sig); hasIndicator(inds, IndicatorLowMasteryAvg) {
		t.Errorf("mean of exactly 60 must not trigger low_mastery_avg: %v", inds)
	}
}

func TestExtract_BelowProficientCountsDistinctStandards(t *testing.T) {
	// Two records on the SAME standard must not trigger the indicator.
	same := StudentSignals{
		Mastery: []signals.MasteryRecord{
			masteryRec("std-1", signals.LevelBeginning, 80),
			masteryRec("std-1", signals.LevelDeveloping, 85),
		},
	}
	if inds := Extract(same); hasIndicator(inds, IndicatorBelowProficientMulti) {
		t.Errorf("single standard below proficient triggered the indicator: %v", inds)
	}

	two := StudentSignals{
		Mastery: []signals.MasteryRecord{
			masteryRec("std-1", signals.LevelBeginning, 80),
			masteryRec("std-2", signals.LevelDeveloping, 85),
		},
	}
	if inds := Extract(two); !hasIndicator(inds, IndicatorBelowProficientMulti) {
		t.Errorf("two distinct standards below proficient: indicators = %v", inds)
	}
}

func TestExtract_MissingSubmissionsIsACountNotARatio(t *testing.T) {
	sig := StudentSignals{
		Submissions:       []signals.Submission{gradedSub("a1", 80, 100)},
		AssignmentsIssued: 3, // 2 missing
	}
	if inds := Extract(sig); !hasIndicator(inds, IndicatorMissingSubmissions) {
		t.Errorf("2 missing assignments: indicators = %v", inds)
	}

	sig.AssignmentsIssued = 2 // 1 missing
	if inds := Extract(sig); hasIndicator(inds, IndicatorMissingSubmissions) {
		t.Errorf("1 missing assignment must not trigger: %v", inds)
	}
}

func TestExtract_LowSubmissionAvgIgnoresUngraded(t *testing.T) {
	sig := StudentSignals{
		Submissions: []signals.Submission{
			gradedSub("a1", 50, 100), // 50%
			{AssignmentID: "a2", TotalScore: 0, MaxScore: 100, Status: signals.StatusSubmitted},
		},
	}
	inds := Extract(sig)
	if !hasIndicator(inds, IndicatorLowSubmissionAvg) {
		t.Errorf("graded mean 50%%: indicators = %v", inds)
	}

	// Only ungraded work → no signal either way.
	sig.Submissions = sig.Submissions[1:]
	if inds := Extract(sig); hasIndicator(inds, IndicatorLowSubmissionAvg) {
		t.Errorf("no graded submissions must not trigger: %v", inds)
	}
}

func TestExtract_DecliningTrend(t *testing.T) {
	sig := StudentSignals{
		Mastery: []signals.MasteryRecord{
			masteryRec("std-1", signals.LevelDeveloping, 40),
			masteryRec("std-1", signals.LevelDeveloping, 45),
			masteryRec("std-1", signals.LevelProficient, 90),
			masteryRec("std-1", signals.LevelProficient, 88),
		},
	}
	if inds := Extract(sig); !hasIndicator(inds, IndicatorDecliningTrend) {
		t.Errorf("declining series: indicators = %v", inds)
	}
}

func TestExtract_DeterministicDeclarationOrder(t *testing.T) {
	sig := StudentSignals{
		Mastery: []signals.MasteryRecord{
			masteryRec("std-1", signals.LevelBeginning, 40),
			masteryRec("std-2", signals.LevelDeveloping, 45),
		},
		Submissions:       []signals.Submission{gradedSub("a1", 30, 100)},
		AssignmentsIssued: 4,
	}
	want := []Indicator{
		IndicatorLowMasteryAvg,
		IndicatorBelowProficientMulti,
		IndicatorMissingSubmissions,
		IndicatorLowSubmissionAvg,
	}
	inds := Extract(sig)
	if len(inds) != len(want) {
		t.Fatalf("indicators = %v, want %v", inds, want)
	}
	for i := range want {
		if inds[i] != want[i] {
			t.Errorf("indicators[%d] = %s, want %s", i, inds[i], want[i])
		}
	}
}
