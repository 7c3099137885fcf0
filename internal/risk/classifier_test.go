package risk

import "testing"

func TestClassify_OnTrackWithNoIndicators(t *testing.T) {
	if got := Classify(nil); got != OnTrack {
		t.Errorf("Classify(nil) = %s, want on_track", got)
	}
}

func TestClassify_ModerateWithOneIndicator(t *testing.T) {
	got := Classify([]Indicator{IndicatorLowSubmissionAvg})
	if got != ModerateRisk {
		t.Errorf("Classify = %s, want moderate_risk", got)
	}
}

func TestClassify_ModerateWithTwoIndicators(t *testing.T) {
	got := Classify([]Indicator{IndicatorLowSubmissionAvg, IndicatorDecliningTrend})
	if got != ModerateRisk {
		t.Errorf("Classify = %s, want moderate_risk", got)
	}
}

func TestClassify_HighWithThreeIndicators(t *testing.T) {
	got := Classify([]Indicator{
		IndicatorBelowProficientMulti,
		IndicatorLowSubmissionAvg,
		IndicatorDecliningTrend,
	})
	if got != HighRisk {
		t.Errorf("Classify = %s, want high_risk", got)
	}
}

func TestClassify_HighWithCriticalPair(t *testing.T) {
	// low_mastery_avg + missing_submissions forces high risk even at
	// only two indicators.
	got := Classify([]Indicator{IndicatorLowMasteryAvg, IndicatorMissingSubmissions})
	if got != HighRisk {
		t.Errorf("Classify = %s, want high_risk", got)
	}
}

func TestLabeler_Sequence(t *testing.T) {
	l := newLabeler()
	want := []string{"Student A", "Student B", "Student C"}
	for _, w := range want {
		if got := l.Next(); got != w {
			t.Errorf("Next() = %q, want %q", got, w)
		}
	}
}

func TestLabeler_WrapsPastZ(t *testing.T) {
	l := newLabeler()
	for range 26 {
		l.Next()
	}
	if got := l.Next(); got != "Student AA" {
		t.Errorf("27th label = %q, want Student AA", got)
	}
	if got := l.Next(); got != "Student AB" {
		t.Errorf("28th label = %q, want Student AB", got)
	}
}

func TestLabeler_IndependentSequences(t *testing.T) {
	a, b := newLabeler(), newLabeler()
	a.Next()
	a.Next()
	if got := b.Next(); got != "Student A" {
		t.Errorf("fresh labeler Next() = %q, want Student A", got)
	}
}
