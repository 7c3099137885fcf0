package risk

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/classpulse/classpulse/internal/interventions"
	"github.com/classpulse/classpulse/internal/signals"
	"github.com/classpulse/classpulse/internal/trend"
)

// DefaultWindowDays is the lookback window for submission and assignment
// signals.
const DefaultWindowDays = 30

// collaboratorChunkSize is how many flagged students ride in one
// collaborator request. Chunks are issued concurrently to bound latency on
// large cohorts.
const collaboratorChunkSize = 8

// Interventions is the collaborator surface the classifier depends on.
type Interventions interface {
	Generate(ctx context.Context, batch []interventions.AnonymizedStudent) ([]interventions.Result, error)
}

// Service orchestrates signal fetching, trend analysis, indicator
// extraction, and tier classification for a scope of students.
type Service struct {
	repo       signals.Repository
	collab     Interventions
	windowDays int
}

// NewService creates a risk classification service. collab may be nil, in
// which case flagged students simply carry no recommendations.
func NewService(repo signals.Repository, collab Interventions) *Service {
	return &Service{repo: repo, collab: collab, windowDays: DefaultWindowDays}
}

// ClassifyScope classifies every student in scope. Students with no signals
// in-window are valid (new students) and classify as on_track with a stable
// trend; no collaborator call is made for them.
func (s *Service) ClassifyScope(ctx context.Context, scope signals.Scope) (*Report, error) {
	students, err := s.repo.Students(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("fetch students: %w", err)
	}

	window := signals.LastDays(s.windowDays, time.Now())

	report := &Report{Students: make([]StudentRiskProfile, 0, len(students))}
	for _, student := range students {
		profile, err := s.classifyStudent(ctx, student, window)
		if err != nil {
			return nil, err
		}
		report.Students = append(report.Students, *profile)
	}

	s.attachRecommendations(ctx, report)
	return report, nil
}

func (s *Service) classifyStudent(ctx context.Context, student signals.Student, window signals.Window) (*StudentRiskProfile, error) {
	scope := signals.Scope{StudentID: student.ID}

	mastery, err := s.repo.MasteryRecords(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("fetch mastery for %s: %w", student.ID, err)
	}
	subs, err := s.repo.Submissions(ctx, scope, window)
	if err != nil {
		return nil, fmt.Errorf("fetch submissions for %s: %w", student.ID, err)
	}
	issued, err := s.repo.AssignmentCount(ctx, scope, window)
	if err != nil {
		return nil, fmt.Errorf("fetch assignment count for %s: %w", student.ID, err)
	}

	sig := StudentSignals{
		Mastery:           mastery,
		Submissions:       subs,
		AssignmentsIssued: issued,
	}

	scores := sig.Scores()
	indicators := Extract(sig)
	tags := trend.Tags(mastery)

	return &StudentRiskProfile{
		StudentID:      student.ID,
		Name:           student.Name,
		Email:          student.Email,
		RiskLevel:      Classify(indicators),
		Indicators:     indicators,
		RecentScores:   chronological(scores),
		TrendDirection: trend.Analyze(scores),
		Strengths:      tags.Strengths,
		GrowthAreas:    tags.GrowthAreas,
	}, nil
}

// attachRecommendations anonymizes flagged profiles, fans chunks out to the
// collaborator, and rejoins results by label. Any chunk failure is logged
// and swallowed: classification stands on its own.
func (s *Service) attachRecommendations(ctx context.Context, report *Report) {
	if s.collab == nil {
		return
	}

	labels := newLabeler()
	byLabel := make(map[string]*StudentRiskProfile)
	var batch []interventions.AnonymizedStudent

	for i := range report.Students {
		p := &report.Students[i]
		if !p.Flagged() {
			continue
		}
		label := labels.Next()
		byLabel[label] = p
		batch = append(batch, anonymize(label, p))
	}
	if len(batch) == 0 {
		return
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []interventions.Result
	)
	for chunk := range chunks(batch, collaboratorChunkSize) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := s.collab.Generate(ctx, chunk)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: interventions unavailable for %d students: %v\n", len(chunk), err)
				return
			}
			mu.Lock()
			results = append(results, res...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	for _, r := range results {
		if p, ok := byLabel[r.StudentLabel]; ok {
			p.Recommendations = r.Recommendations
		}
	}
}

func anonymize(label string, p *StudentRiskProfile) interventions.AnonymizedStudent {
	inds := make([]string, len(p.Indicators))
	for i, ind := range p.Indicators {
		inds[i] = string(ind)
	}
	return interventions.AnonymizedStudent{
		Label:          label,
		RiskLevel:      string(p.RiskLevel),
		Indicators:     inds,
		RecentScores:   p.RecentScores,
		TrendDirection: string(p.TrendDirection),
	}
}

// chronological reverses a newest-first series into oldest-first order for
// the profile's recentScores field.
func chronological(scores []float64) []float64 {
	out := make([]float64, len(scores))
	for i, v := range scores {
		out[len(scores)-1-i] = v
	}
	return out
}

// chunks yields size-bounded sub-slices of batch.
func chunks(batch []interventions.AnonymizedStudent, size int) func(yield func([]interventions.AnonymizedStudent) bool) {
	return func(yield func([]interventions.AnonymizedStudent) bool) {
		for start := 0; start < len(batch); start += size {
			end := min(start+size, len(batch))
			if !yield(batch[start:end]) {
				return
			}
		}
	}
}
