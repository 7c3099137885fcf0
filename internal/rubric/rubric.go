// Package rubric converts proficiency-level selections into weighted numeric
// scores and aggregates them into totals and letter grades.
package rubric

import "math"

// Criterion is one weighted dimension of an assessment rubric. Weights for a
// rubric must sum to 1.0 — enforcing that is the caller's precondition, so
// criterion max scores sum to 100.
type Criterion struct {
	ID          string
	Name        string
	Weight      float64 // 0-1
	Descriptors map[string]string
}

// CriterionScore is the normalized score for one criterion.
type CriterionScore struct {
	CriterionID string
	Level       string
	Score       float64
	MaxScore    float64
}

// Result is the aggregate outcome for one scored submission.
type Result struct {
	CriterionScores []CriterionScore
	TotalScore      float64
	MaxScore        float64
	LetterGrade     string
}

// NormalizeScore converts a level selection into a numeric score against a
// criterion weight. Levels must be ordered low→high; the lowest level scores
// 0 and the highest scores the full weight×100. A single-level rubric is
// automatically full marks. Scores are rounded to 2 decimals.
func NormalizeScore(levels []string, weight float64, selected string) (CriterionScore, error) {
	if weight < 0 || weight > 1 {
		return CriterionScore{}, &InvalidWeightError{Weight: weight}
	}

	idx := -1
	for i, l := range levels {
		if l == selected {
			idx = i
			break
		}
	}
	if idx < 0 {
		return CriterionScore{}, &InvalidLevelError{Level: selected, Levels: levels}
	}

	maxScore := weight * 100
	score := maxScore
	if len(levels) > 1 {
		score = maxScore * float64(idx) / float64(len(levels)-1)
	}

	return CriterionScore{
		Level:    selected,
		Score:    round2(score),
		MaxScore: round2(maxScore),
	}, nil
}

// ScoreSubmission normalizes every criterion's selection and aggregates the
// totals. Selections map criterion ID → chosen level. Criterion order in the
// result follows the rubric's criteria order.
func ScoreSubmission(levels []string, criteria []Criterion, selections map[string]string) (*Result, error) {
	res := &Result{
		CriterionScores: make([]CriterionScore, 0, len(criteria)),
	}

	for _, c := range criteria {
		selected, ok := selections[c.ID]
		if !ok {
			return nil, &InvalidLevelError{Level: "", Levels: levels, CriterionID: c.ID}
		}

		cs, err := NormalizeScore(levels, c.Weight, selected)
		if err != nil {
			return nil, err
		}
		cs.CriterionID = c.ID

		res.CriterionScores = append(res.CriterionScores, cs)
		res.TotalScore += cs.Score
		res.MaxScore += cs.MaxScore
	}

	res.TotalScore = round2(res.TotalScore)
	res.MaxScore = round2(res.MaxScore)

	if res.MaxScore > 0 {
		res.LetterGrade = FineLetterGrade(res.TotalScore / res.MaxScore * 100)
	}

	return res, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
