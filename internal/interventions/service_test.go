package interventions

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/classpulse/classpulse/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBatchJSON() json.RawMessage {
	return json.RawMessage(`{
		"interventions": [
			{
				"student_label": "Student A",
				"recommendations": [
					"Schedule a check-in on the three missing assignments",
					"Re-teach fraction comparison in a small group"
				]
			},
			{
				"student_label": "Student B",
				"recommendations": [
					"Pair with a peer tutor for two sessions this week",
					"Send home a progress note",
					"Offer a retake on the last quiz"
				]
			}
		]
	}`)
}

func testBatch() []AnonymizedStudent {
	return []AnonymizedStudent{
		{
			Label:          "Student A",
			RiskLevel:      "high_risk",
			Indicators:     []string{"low_mastery_avg", "missing_submissions"},
			RecentScores:   []float64{42, 45, 51},
			TrendDirection: "declining",
		},
		{
			Label:          "Student B",
			RiskLevel:      "moderate_risk",
			Indicators:     []string{"low_submission_avg"},
			RecentScores:   []float64{58, 62},
			TrendDirection: "stable",
		},
	}
}

func TestGenerate_Batch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	svc := NewService(mock, DefaultConfig())

	results, err := svc.Generate(context.Background(), testBatch())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Student A", results[0].StudentLabel)
	assert.Len(t, results[0].Recommendations, 2)
	assert.Equal(t, "Student B", results[1].StudentLabel)
	assert.Len(t, results[1].Recommendations, 3)
}

func TestGenerate_PromptCarriesSignalsNotNames(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), testBatch())
	require.NoError(t, err)
	require.Equal(t, 1, mock.CallCount())

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Student A", "low_mastery_avg", "declining", "42, 45, 51"} {
		assert.Contains(t, msg, want)
	}
	assert.Same(t, InterventionSchema, mock.Calls[0].Schema,
		"request must carry the shared intervention schema")
}

func TestGenerate_EmptyBatchMakesNoCall(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	results, err := svc.Generate(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, results)
	assert.Equal(t, 0, mock.CallCount())
}

func TestGenerate_UnknownLabelDropped(t *testing.T) {
	bad := json.RawMessage(`{
		"interventions": [
			{"student_label": "Jamie Rivera", "recommendations": ["a", "b"]},
			{"student_label": "Student A", "recommendations": ["c", "d"]}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	svc := NewService(mock, DefaultConfig())

	results, err := svc.Generate(context.Background(), testBatch())
	require.NoError(t, err)
	require.Len(t, results, 1, "label not in the batch must be dropped")
	assert.Equal(t, "Student A", results[0].StudentLabel)
}

func TestGenerate_ProviderFailurePropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), testBatch())
	var unavail *llm.ErrProviderUnavailable
	require.ErrorAs(t, err, &unavail)
}
