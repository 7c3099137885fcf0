package rubric

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

var fourLevels = []string{"Beginning", "Developing", "Proficient", "Advanced"}

func TestNormalizeScore_QuarterWeightProficient(t *testing.T) {
	// weight 0.25, index 2 of 4 → 25 × 2/3 = 16.67
	cs, err := NormalizeScore(fourLevels, 0.25, "Proficient")
	if err != nil {
		t.Fatalf("NormalizeScore: %v", err)
	}
	if !almostEqual(cs.Score, 16.67) {
		t.Errorf("Score = %g, want 16.67", cs.Score)
	}
	if !almostEqual(cs.MaxScore, 25) {
		t.Errorf("MaxScore = %g, want 25", cs.MaxScore)
	}
}

func TestNormalizeScore_Endpoints(t *testing.T) {
	low, err := NormalizeScore(fourLevels, 0.4, "Beginning")
	if err != nil {
		t.Fatalf("NormalizeScore: %v", err)
	}
	if low.Score != 0 {
		t.Errorf("lowest level Score = %g, want 0", low.Score)
	}

	high, err := NormalizeScore(fourLevels, 0.4, "Advanced")
	if err != nil {
		t.Fatalf("NormalizeScore: %v", err)
	}
	if !almostEqual(high.Score, high.MaxScore) {
		t.Errorf("highest level Score = %g, want MaxScore %g", high.Score, high.MaxScore)
	}
}

func TestNormalizeScore_SingleLevelIsFullMarks(t *testing.T) {
	cs, err := NormalizeScore([]string{"Done"}, 0.5, "Done")
	if err != nil {
		t.Fatalf("NormalizeScore: %v", err)
	}
	if !almostEqual(cs.Score, 50) {
		t.Errorf("Score = %g, want 50", cs.Score)
	}
}

func TestNormalizeScore_Idempotent(t *testing.T) {
	first, err := NormalizeScore(fourLevels, 0.3, "Developing")
	if err != nil {
		t.Fatalf("NormalizeScore: %v", err)
	}
	for range 5 {
		again, err := NormalizeScore(fourLevels, 0.3, "Developing")
		if err != nil {
			t.Fatalf("NormalizeScore: %v", err)
		}
		if again.Score != first.Score {
			t.Errorf("re-score = %g, want %g", again.Score, first.Score)
		}
	}
}

func TestNormalizeScore_UnknownLevel(t *testing.T) {
	_, err := NormalizeScore(fourLevels, 0.25, "Expert")
	var levelErr *InvalidLevelError
	if !errors.As(err, &levelErr) {
		t.Fatalf("err = %v, want *InvalidLevelError", err)
	}
	if levelErr.Kind() != "invalid_level" {
		t.Errorf("Kind = %q, want invalid_level", levelErr.Kind())
	}
}

func TestNormalizeScore_WeightOutOfRange(t *testing.T) {
	for _, w := range []float64{-0.1, 1.01} {
		_, err := NormalizeScore(fourLevels, w, "Proficient")
		var weightErr *InvalidWeightError
		if !errors.As(err, &weightErr) {
			t.Errorf("weight %g: err = %v, want *InvalidWeightError", w, err)
		}
	}
}

func TestScoreSubmission_MaxScoresSumTo100(t *testing.T) {
	criteria := []Criterion{
		{ID: "c1", Name: "Thesis", Weight: 0.25},
		{ID: "c2", Name: "Evidence", Weight: 0.40},
		{ID: "c3", Name: "Mechanics", Weight: 0.35},
	}
	selections := map[string]string{
		"c1": "Advanced",
		"c2": "Proficient",
		"c3": "Developing",
	}

	res, err := ScoreSubmission(fourLevels, criteria, selections)
	if err != nil {
		t.Fatalf("ScoreSubmission: %v", err)
	}

	if !almostEqual(res.MaxScore, 100) {
		t.Errorf("MaxScore = %g, want 100 when weights sum to 1.0", res.MaxScore)
	}
	if len(res.CriterionScores) != 3 {
		t.Fatalf("got %d criterion scores, want 3", len(res.CriterionScores))
	}
	// Criteria order must be preserved.
	if res.CriterionScores[0].CriterionID != "c1" || res.CriterionScores[2].CriterionID != "c3" {
		t.Errorf("criterion order not preserved: %+v", res.CriterionScores)
	}
	// 25 + 40×2/3 + 35×1/3 = 25 + 26.67 + 11.67 = 63.34
	if !almostEqual(res.TotalScore, 63.34) {
		t.Errorf("TotalScore = %g, want 63.34", res.TotalScore)
	}
	if res.LetterGrade != "D-" {
		t.Errorf("LetterGrade = %q, want D-", res.LetterGrade)
	}
}

func TestScoreSubmission_MissingSelection(t *testing.T) {
	criteria := []Criterion{{ID: "c1", Weight: 1.0}}
	_, err := ScoreSubmission(fourLevels, criteria, map[string]string{})
	var levelErr *InvalidLevelError
	if !errors.As(err, &levelErr) {
		t.Fatalf("err = %v, want *InvalidLevelError", err)
	}
	if levelErr.CriterionID != "c1" {
		t.Errorf("CriterionID = %q, want c1", levelErr.CriterionID)
	}
}

func TestLetterGrade_Bands(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{100, "A"}, {90, "A"}, {89.9, "B"}, {80, "B"},
		{79.9, "C"}, {70, "C"}, {69.9, "D"}, {60, "D"}, {59.9, "F"}, {0, "F"},
	}
	for _, c := range cases {
		if got := LetterGrade(c.pct); got != c.want {
			t.Errorf("LetterGrade(%g) = %q, want %q", c.pct, got, c.want)
		}
	}
}

func TestFineLetterGrade_Thirds(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{90, "A-"}, {93, "A-"}, {94, "A"}, {97, "A"}, {98, "A+"}, {100, "A+"},
		{80, "B-"}, {85, "B"}, {88.5, "B+"},
		{60, "D-"}, {64, "D"}, {68, "D+"},
		{59, "F"}, {30, "F"},
	}
	for _, c := range cases {
		if got := FineLetterGrade(c.pct); got != c.want {
			t.Errorf("FineLetterGrade(%g) = %q, want %q", c.pct, got, c.want)
		}
	}
}
