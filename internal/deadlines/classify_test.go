package deadlines

import (
	"context"
	"testing"
	"time"

	"github.com/classpulse/classpulse/internal/signals"
)

var now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func due(days int) signals.ComplianceDeadline {
	return signals.ComplianceDeadline{
		ID:        "d1",
		Type:      "annual-review",
		StudentID: "s1",
		DueDate:   now.AddDate(0, 0, days),
		Status:    signals.DeadlineUpcoming,
	}
}

func TestClassify_Bands(t *testing.T) {
	cases := []struct {
		days int
		want Color
	}{
		{-1, ColorOverdue},
		{0, ColorRed},
		{14, ColorRed},
		{15, ColorYellow},
		{30, ColorYellow},
		{31, ColorGreen},
		{365, ColorGreen},
	}
	for _, c := range cases {
		got := Classify(due(c.days), now)
		if got.Color != c.want {
			t.Errorf("due in %d days: Color = %s, want %s", c.days, got.Color, c.want)
		}
		if got.DaysUntilDue != c.days {
			t.Errorf("due in %d days: DaysUntilDue = %d", c.days, got.DaysUntilDue)
		}
	}
}

func TestClassify_FractionalHoursTruncateDown(t *testing.T) {
	d := due(0)
	d.DueDate = now.Add(36 * time.Hour) // 1.5 days out
	got := Classify(d, now)
	if got.DaysUntilDue != 1 {
		t.Errorf("DaysUntilDue = %d, want 1", got.DaysUntilDue)
	}

	d.DueDate = now.Add(-6 * time.Hour) // earlier today by the clock
	got = Classify(d, now)
	if got.DaysUntilDue != -1 {
		t.Errorf("DaysUntilDue = %d, want -1", got.DaysUntilDue)
	}
	if got.Color != ColorOverdue {
		t.Errorf("Color = %s, want overdue", got.Color)
	}
}

func TestClassify_CompletedOverridesDateBands(t *testing.T) {
	for _, days := range []int{-30, 0, 20, 90} {
		d := due(days)
		d.Status = signals.DeadlineCompleted
		if got := Classify(d, now); got.Color != ColorCompleted {
			t.Errorf("completed deadline due in %d days: Color = %s", days, got.Color)
		}
	}
}

func TestClassify_EveryDayMapsToExactlyOneBand(t *testing.T) {
	for days := -60; days <= 60; days++ {
		got := Classify(due(days), now)
		switch got.Color {
		case ColorOverdue, ColorRed, ColorYellow, ColorGreen:
		default:
			t.Fatalf("due in %d days: unexpected color %s", days, got.Color)
		}
	}
}

func TestSummarize(t *testing.T) {
	ds := []signals.ComplianceDeadline{
		due(-5), due(3), due(10), due(20), due(45),
	}
	completed := due(1)
	completed.Status = signals.DeadlineCompleted
	ds = append(ds, completed)

	s := Summarize(ClassifyAll(ds, now))

	if s.Overdue != 1 || s.Red != 2 || s.Yellow != 1 || s.Green != 1 || s.Completed != 1 {
		t.Errorf("Summary = %+v", s)
	}
	if s.Total != 6 {
		t.Errorf("Total = %d, want 6", s.Total)
	}
}

// fakeRepo implements signals.Repository for service tests.
type fakeRepo struct {
	signals.Repository
	deadlines []signals.ComplianceDeadline
	caseload  []string
}

func (f *fakeRepo) Deadlines(_ context.Context, _ signals.Scope) ([]signals.ComplianceDeadline, error) {
	return f.deadlines, nil
}

func (f *fakeRepo) Caseload(_ context.Context, _ string) ([]string, error) {
	return f.caseload, nil
}

func TestService_RestrictedCallerSeesOnlyCaseload(t *testing.T) {
	a := due(3)
	b := due(3)
	b.StudentID = "s2"
	repo := &fakeRepo{
		deadlines: []signals.ComplianceDeadline{a, b},
		caseload:  []string{"s2"},
	}
	svc := NewService(repo)

	report, err := svc.ClassifyForCaller(context.Background(), "staff-1", true, signals.Scope{}, now)
	if err != nil {
		t.Fatalf("ClassifyForCaller: %v", err)
	}
	if len(report.Deadlines) != 1 || report.Deadlines[0].StudentID != "s2" {
		t.Errorf("Deadlines = %+v, want only s2", report.Deadlines)
	}
}

func TestService_EmptyCaseloadSeesNothing(t *testing.T) {
	repo := &fakeRepo{
		deadlines: []signals.ComplianceDeadline{due(3), due(40)},
		caseload:  nil,
	}
	svc := NewService(repo)

	report, err := svc.ClassifyForCaller(context.Background(), "staff-1", true, signals.Scope{}, now)
	if err != nil {
		t.Fatalf("ClassifyForCaller: %v", err)
	}
	if len(report.Deadlines) != 0 || report.Summary.Total != 0 {
		t.Errorf("empty caseload: report = %+v, want zero deadlines", report)
	}
}

func TestService_UnrestrictedCallerSeesAll(t *testing.T) {
	repo := &fakeRepo{
		deadlines: []signals.ComplianceDeadline{due(3), due(40)},
	}
	svc := NewService(repo)

	report, err := svc.ClassifyForCaller(context.Background(), "", false, signals.Scope{}, now)
	if err != nil {
		t.Fatalf("ClassifyForCaller: %v", err)
	}
	if report.Summary.Total != 2 {
		t.Errorf("Total = %d, want 2", report.Summary.Total)
	}
}
