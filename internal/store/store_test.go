package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/classpulse/classpulse/internal/signals"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "classpulse-test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := LLMEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-20250514",
		Purpose:      "interventions",
		InputTokens:  812,
		OutputTokens: 240,
		LatencyMs:    1430,
		Success:      true,
		RequestBody:  "[system]\nYou advise teachers.",
		ResponseBody: `{"interventions":[]}`,
	}
	if err := repo.AppendLLMEvent(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	e := events[0]
	if e.Provider != data.Provider || e.Purpose != data.Purpose {
		t.Errorf("event = %+v, want provider/purpose from %+v", e, data)
	}
	if e.InputTokens != 812 || e.OutputTokens != 240 {
		t.Errorf("tokens = %d/%d, want 812/240", e.InputTokens, e.OutputTokens)
	}

	got, err := repo.GetLLMEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event by ID")
	}
	if got.ResponseBody != data.ResponseBody {
		t.Errorf("ResponseBody = %q, want %q", got.ResponseBody, data.ResponseBody)
	}
}

func TestQueryLLMEventsFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"interventions", "interventions", "probe"} {
		err := repo.AppendLLMEvent(ctx, LLMEventData{
			Provider: "mock",
			Model:    "mock",
			Purpose:  purpose,
			Success:  i%2 == 0,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "interventions"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("purpose filter: got %d, want 2", len(events))
	}

	events, err = repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("limit: got %d, want 1", len(events))
	}
	// Newest first.
	if events[0].Purpose != "probe" {
		t.Errorf("newest event purpose = %q, want probe", events[0].Purpose)
	}
}

func TestGetLLMEventMissing(t *testing.T) {
	s := openTestStore(t)

	e, err := s.EventRepo().GetLLMEvent(context.Background(), 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if e != nil {
		t.Errorf("expected nil for missing event, got %+v", e)
	}
}

func TestSeedAndSignalReads(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	if err := s.Seed(ctx, now); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := s.SignalRepo()

	students, err := repo.Students(ctx, signals.Scope{})
	if err != nil {
		t.Fatalf("students: %v", err)
	}
	if len(students) != 4 {
		t.Fatalf("got %d students, want 4", len(students))
	}

	// Mastery history comes back newest first.
	records, err := repo.MasteryRecords(ctx, signals.Scope{StudentID: "stu-001"})
	if err != nil {
		t.Fatalf("mastery records: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].AssessedAt.After(records[i-1].AssessedAt) {
			t.Fatalf("records not newest-first at index %d", i)
		}
	}

	// Priya is seeded with no history: a valid empty read.
	records, err = repo.MasteryRecords(ctx, signals.Scope{StudentID: "stu-004"})
	if err != nil {
		t.Fatalf("mastery records (empty): %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records for new student, want 0", len(records))
	}
}

func TestSubmissionWindowCutoff(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	if err := s.Seed(ctx, now); err != nil {
		t.Fatalf("seed: %v", err)
	}
	repo := s.SignalRepo()

	all, err := repo.Submissions(ctx, signals.Scope{StudentID: "stu-001"}, signals.Window{})
	if err != nil {
		t.Fatalf("submissions: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("got %d submissions, want 4", len(all))
	}

	recent, err := repo.Submissions(ctx, signals.Scope{StudentID: "stu-001"}, signals.LastDays(10, now))
	if err != nil {
		t.Fatalf("submissions in window: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("got %d submissions in 10-day window, want 2", len(recent))
	}
}

func TestAssignmentCountByStudentClass(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	if err := s.Seed(ctx, now); err != nil {
		t.Fatalf("seed: %v", err)
	}
	repo := s.SignalRepo()

	count, err := repo.AssignmentCount(ctx, signals.Scope{StudentID: "stu-003"}, signals.LastDays(30, now))
	if err != nil {
		t.Fatalf("assignment count: %v", err)
	}
	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}

	count, err = repo.AssignmentCount(ctx, signals.Scope{StudentID: "stu-003"}, signals.LastDays(10, now))
	if err != nil {
		t.Fatalf("assignment count in window: %v", err)
	}
	if count != 2 {
		t.Errorf("windowed count = %d, want 2", count)
	}

	// Unknown student counts nothing.
	count, err = repo.AssignmentCount(ctx, signals.Scope{StudentID: "nope"}, signals.Window{})
	if err != nil {
		t.Fatalf("assignment count unknown: %v", err)
	}
	if count != 0 {
		t.Errorf("unknown student count = %d, want 0", count)
	}
}

func TestCaseloadAndDeadlines(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	if err := s.Seed(ctx, now); err != nil {
		t.Fatalf("seed: %v", err)
	}
	repo := s.SignalRepo()

	ids, err := repo.Caseload(ctx, "cm-lopez")
	if err != nil {
		t.Fatalf("caseload: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("caseload = %v, want 2 students", ids)
	}

	ids, err = repo.Caseload(ctx, "cm-unknown")
	if err != nil {
		t.Fatalf("caseload (unknown): %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("unknown manager caseload = %v, want empty", ids)
	}

	dls, err := repo.Deadlines(ctx, signals.Scope{StudentID: "stu-003"})
	if err != nil {
		t.Fatalf("deadlines: %v", err)
	}
	if len(dls) != 2 {
		t.Fatalf("got %d deadlines, want 2", len(dls))
	}
	if dls[0].Status != signals.DeadlineUpcoming {
		t.Errorf("status = %s, want upcoming", dls[0].Status)
	}
}

func TestResetClearsDomainRows(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Seed(ctx, time.Now()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	students, err := s.SignalRepo().Students(ctx, signals.Scope{})
	if err != nil {
		t.Fatalf("students after reset: %v", err)
	}
	if len(students) != 0 {
		t.Errorf("got %d students after reset, want 0", len(students))
	}
}
