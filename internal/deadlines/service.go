package deadlines

import (
	"context"
	"fmt"
	"time"

	"github.com/classpulse/classpulse/internal/signals"
)

// Report is the deadline classification response shape.
type Report struct {
	Deadlines []Classified `json:"deadlines"`
	Summary   Summary      `json:"summary"`
}

// Service classifies compliance deadlines read from the signal repository,
// scoping visibility for caseload-restricted callers.
type Service struct {
	repo signals.Repository
}

// NewService creates a deadline classification service.
func NewService(repo signals.Repository) *Service {
	return &Service{repo: repo}
}

// ClassifyScope classifies every deadline in scope with no caller
// restriction.
func (s *Service) ClassifyScope(ctx context.Context, scope signals.Scope, now time.Time) (*Report, error) {
	ds, err := s.repo.Deadlines(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("fetch deadlines: %w", err)
	}
	return buildReport(ds, now), nil
}

// ClassifyForCaller classifies deadlines visible to the caller. Restricted
// callers see only deadlines for students on their active caseload; an
// empty caseload yields zero deadlines rather than disabling the filter.
func (s *Service) ClassifyForCaller(ctx context.Context, callerID string, restricted bool, scope signals.Scope, now time.Time) (*Report, error) {
	if !restricted {
		return s.ClassifyScope(ctx, scope, now)
	}
	if callerID == "" {
		return nil, &signals.InvalidScopeError{Reason: "restricted caller requires a caller ID"}
	}

	ds, err := s.repo.Deadlines(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("fetch deadlines: %w", err)
	}

	caseload, err := s.repo.Caseload(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("fetch caseload: %w", err)
	}

	return buildReport(filterByCaseload(ds, caseload), now), nil
}

// filterByCaseload keeps only deadlines whose student is on the caseload.
// An empty caseload keeps nothing: a restricted caller with no assigned
// students has no compliance visibility.
func filterByCaseload(ds []signals.ComplianceDeadline, caseload []string) []signals.ComplianceDeadline {
	allowed := make(map[string]bool, len(caseload))
	for _, id := range caseload {
		allowed[id] = true
	}

	kept := ds[:0:0]
	for _, d := range ds {
		if allowed[d.StudentID] {
			kept = append(kept, d)
		}
	}
	return kept
}

func buildReport(ds []signals.ComplianceDeadline, now time.Time) *Report {
	classified := ClassifyAll(ds, now)
	return &Report{
		Deadlines: classified,
		Summary:   Summarize(classified),
	}
}
