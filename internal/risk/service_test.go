package risk

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/classpulse/classpulse/internal/interventions"
	"github.com/classpulse/classpulse/internal/signals"
	"github.com/classpulse/classpulse/internal/trend"
)

// fakeRepo serves canned per-student signals.
type fakeRepo struct {
	signals.Repository
	students    []signals.Student
	mastery     map[string][]signals.MasteryRecord
	submissions map[string][]signals.Submission
	issued      map[string]int
}

func (f *fakeRepo) Students(_ context.Context, _ signals.Scope) ([]signals.Student, error) {
	return f.students, nil
}

func (f *fakeRepo) MasteryRecords(_ context.Context, scope signals.Scope) ([]signals.MasteryRecord, error) {
	return f.mastery[scope.StudentID], nil
}

func (f *fakeRepo) Submissions(_ context.Context, scope signals.Scope, _ signals.Window) ([]signals.Submission, error) {
	return f.submissions[scope.StudentID], nil
}

func (f *fakeRepo) AssignmentCount(_ context.Context, scope signals.Scope, _ signals.Window) (int, error) {
	return f.issued[scope.StudentID], nil
}

// fakeCollab records batches and serves canned results or an error.
type fakeCollab struct {
	mu      sync.Mutex
	batches [][]interventions.AnonymizedStudent
	results []interventions.Result
	err     error
}

func (f *fakeCollab) Generate(_ context.Context, batch []interventions.AnonymizedStudent) ([]interventions.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, batch)
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func (f *fakeCollab) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.batches)
}

func studentRec(standard string, level signals.MasteryLevel, score float64, daysAgo int) signals.MasteryRecord {
	return signals.MasteryRecord{
		StandardID:          standard,
		StandardDescription: standard,
		Level:               level,
		Score:               score,
		AssessedAt:          time.Now().AddDate(0, 0, -daysAgo),
	}
}

func TestClassifyScope_NewStudentIsOnTrack(t *testing.T) {
	// Scenario: a known student with zero signals in-window must classify
	// as on_track with no collaborator call.
	repo := &fakeRepo{
		students: []signals.Student{{ID: "s1", Name: "Ana", Email: "ana@school.test"}},
	}
	collab := &fakeCollab{}
	svc := NewService(repo, collab)

	report, err := svc.ClassifyScope(context.Background(), signals.Scope{})
	if err != nil {
		t.Fatalf("ClassifyScope: %v", err)
	}

	if len(report.Students) != 1 {
		t.Fatalf("got %d students, want 1", len(report.Students))
	}
	p := report.Students[0]
	if p.RiskLevel != OnTrack {
		t.Errorf("RiskLevel = %s, want on_track", p.RiskLevel)
	}
	if len(p.Indicators) != 0 {
		t.Errorf("Indicators = %v, want empty", p.Indicators)
	}
	if p.TrendDirection != trend.Stable {
		t.Errorf("TrendDirection = %s, want stable", p.TrendDirection)
	}
	if collab.callCount() != 0 {
		t.Errorf("collaborator called %d times for an on_track cohort", collab.callCount())
	}
}

func TestClassifyScope_HighRiskStudent(t *testing.T) {
	// Mastery mean 55, two standards below proficient, 3 missing
	// submissions → three indicators → high_risk.
	repo := &fakeRepo{
		students: []signals.Student{{ID: "s1", Name: "Ben", Email: "ben@school.test"}},
		mastery: map[string][]signals.MasteryRecord{
			"s1": {
				studentRec("std-1", signals.LevelDeveloping, 50, 1),
				studentRec("std-2", signals.LevelBeginning, 60, 2),
			},
		},
		issued: map[string]int{"s1": 3},
	}
	collab := &fakeCollab{
		results: []interventions.Result{
			{StudentLabel: "Student A", Recommendations: []string{"check in", "re-teach"}},
		},
	}
	svc := NewService(repo, collab)

	report, err := svc.ClassifyScope(context.Background(), signals.Scope{})
	if err != nil {
		t.Fatalf("ClassifyScope: %v", err)
	}

	p := report.Students[0]
	if p.RiskLevel != HighRisk {
		t.Errorf("RiskLevel = %s, want high_risk", p.RiskLevel)
	}
	for _, want := range []Indicator{IndicatorLowMasteryAvg, IndicatorBelowProficientMulti, IndicatorMissingSubmissions} {
		if !hasIndicator(p.Indicators, want) {
			t.Errorf("Indicators = %v, missing %s", p.Indicators, want)
		}
	}
	if len(p.Recommendations) != 2 {
		t.Errorf("Recommendations = %v, want 2 attached", p.Recommendations)
	}
}

func TestClassifyScope_RecentScoresAreChronological(t *testing.T) {
	repo := &fakeRepo{
		students: []signals.Student{{ID: "s1"}},
		mastery: map[string][]signals.MasteryRecord{
			"s1": { // newest first from the repository
				studentRec("std-1", signals.LevelProficient, 88, 1),
				studentRec("std-1", signals.LevelProficient, 90, 5),
				studentRec("std-1", signals.LevelDeveloping, 45, 10),
				studentRec("std-1", signals.LevelDeveloping, 40, 15),
			},
		},
	}
	svc := NewService(repo, nil)

	report, err := svc.ClassifyScope(context.Background(), signals.Scope{})
	if err != nil {
		t.Fatalf("ClassifyScope: %v", err)
	}

	p := report.Students[0]
	want := []float64{40, 45, 90, 88}
	for i, v := range want {
		if p.RecentScores[i] != v {
			t.Fatalf("RecentScores = %v, want %v", p.RecentScores, want)
		}
	}
	if p.TrendDirection != trend.Improving {
		t.Errorf("TrendDirection = %s, want improving", p.TrendDirection)
	}
}

func TestClassifyScope_CollaboratorFailureKeepsClassification(t *testing.T) {
	repo := &fakeRepo{
		students: []signals.Student{{ID: "s1"}},
		mastery: map[string][]signals.MasteryRecord{
			"s1": {studentRec("std-1", signals.LevelDeveloping, 40, 1)},
		},
		issued: map[string]int{"s1": 5},
	}
	collab := &fakeCollab{err: errors.New("timeout")}
	svc := NewService(repo, collab)

	report, err := svc.ClassifyScope(context.Background(), signals.Scope{})
	if err != nil {
		t.Fatalf("ClassifyScope must not fail on collaborator error: %v", err)
	}

	p := report.Students[0]
	if p.RiskLevel != HighRisk {
		t.Errorf("RiskLevel = %s, want high_risk", p.RiskLevel)
	}
	if len(p.Recommendations) != 0 {
		t.Errorf("Recommendations = %v, want none after failure", p.Recommendations)
	}
}

func TestClassifyScope_OnlyFlaggedStudentsSent(t *testing.T) {
	repo := &fakeRepo{
		students: []signals.Student{
			{ID: "ok", Name: "Fine"},
			{ID: "risky", Name: "Flagged"},
		},
		mastery: map[string][]signals.MasteryRecord{
			"risky": {studentRec("std-1", signals.LevelDeveloping, 30, 1)},
		},
	}
	collab := &fakeCollab{}
	svc := NewService(repo, collab)

	if _, err := svc.ClassifyScope(context.Background(), signals.Scope{}); err != nil {
		t.Fatalf("ClassifyScope: %v", err)
	}

	if collab.callCount() != 1 {
		t.Fatalf("collaborator calls = %d, want 1", collab.callCount())
	}
	batch := collab.batches[0]
	if len(batch) != 1 {
		t.Fatalf("batch size = %d, want only the flagged student", len(batch))
	}
	if batch[0].Label != "Student A" {
		t.Errorf("Label = %q, want Student A", batch[0].Label)
	}
	if batch[0].RiskLevel != string(ModerateRisk) {
		t.Errorf("RiskLevel = %q, want moderate_risk", batch[0].RiskLevel)
	}
}
