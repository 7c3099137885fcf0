package interventions

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/classpulse/classpulse/internal/llm"
)

// Service generates intervention recommendations for batches of flagged
// students.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an intervention generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type batchOutput struct {
	Interventions []struct {
		StudentLabel    string   `json:"student_label"`
		Recommendations []string `json:"recommendations"`
	} `json:"interventions"`
}

// Generate requests recommendations for one batch. Results whose labels were
// not in the input batch violate the collaborator contract and are dropped
// with a warning; the remaining results are still returned. An error means
// the whole batch failed — callers treat that as "no recommendations", never
// as a classification failure.
func (s *Service) Generate(ctx context.Context, batch []AnonymizedStudent) ([]Result, error) {
	if len(batch) == 0 {
		return nil, nil
	}

	ctx = llm.WithPurpose(ctx, "interventions")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(batch)},
		},
		Schema:      InterventionSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("intervention generation: %w", err)
	}

	var out batchOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse intervention response: %w", err)
	}

	known := make(map[string]bool, len(batch))
	for _, s := range batch {
		known[s.Label] = true
	}

	results := make([]Result, 0, len(out.Interventions))
	for _, iv := range out.Interventions {
		if !known[iv.StudentLabel] {
			fmt.Fprintf(os.Stderr, "warning: collaborator returned unknown label %q, dropping\n", iv.StudentLabel)
			continue
		}
		results = append(results, Result{
			StudentLabel:    iv.StudentLabel,
			Recommendations: iv.Recommendations,
		})
	}

	return results, nil
}
