package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Seed writes a small demo dataset: one class of students spanning the risk
// spectrum, with mastery history, submissions, assignments, and compliance
// deadlines. Safe to call repeatedly; existing data is reset first.
func (s *Store) Seed(ctx context.Context, now time.Time) error {
	if err := s.Reset(ctx); err != nil {
		return err
	}

	const classID = "class-701"

	students := []struct {
		id, name, email string
	}{
		{"stu-001", "Maya Chen", "maya.chen@school.example"},
		{"stu-002", "Jordan Okafor", "jordan.okafor@school.example"},
		{"stu-003", "Sam Delgado", "sam.delgado@school.example"},
		{"stu-004", "Priya Nair", "priya.nair@school.example"},
	}
	for _, st := range students {
		_, err := s.client.Student.Create().
			SetStudentID(st.id).
			SetName(st.name).
			SetEmail(st.email).
			SetClassID(classID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("seed student %s: %w", st.id, err)
		}
	}

	// Maya: strong and improving. Jordan: sliding. Sam: struggling across
	// the board. Priya: new student with no history.
	type rec struct {
		student, standard, desc string
		level                   string
		score                   float64
		daysAgo                 int
	}
	records := []rec{
		{"stu-001", "ela.7.1", "Cite textual evidence", "proficient", 82, 21},
		{"stu-001", "ela.7.1", "Cite textual evidence", "advanced", 91, 14},
		{"stu-001", "ela.7.2", "Determine central idea", "proficient", 85, 10},
		{"stu-001", "ela.7.2", "Determine central idea", "advanced", 94, 3},

		{"stu-002", "math.7.ee.1", "Equivalent expressions", "proficient", 84, 25},
		{"stu-002", "math.7.ee.1", "Equivalent expressions", "proficient", 78, 18},
		{"stu-002", "math.7.ee.4", "Solve word-problem equations", "developing", 58, 9},
		{"stu-002", "math.7.ee.4", "Solve word-problem equations", "developing", 52, 2},

		{"stu-003", "math.7.ee.1", "Equivalent expressions", "beginning", 41, 20},
		{"stu-003", "math.7.ee.4", "Solve word-problem equations", "developing", 49, 12},
		{"stu-003", "math.7.ns.1", "Add and subtract rationals", "beginning", 38, 5},
	}
	for _, r := range records {
		_, err := s.client.MasteryRecord.Create().
			SetStudentID(r.student).
			SetStandardID(r.standard).
			SetStandardDescription(r.desc).
			SetSubject("math").
			SetLevel(r.level).
			SetScore(r.score).
			SetAssessedAt(now.AddDate(0, 0, -r.daysAgo)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("seed mastery record: %w", err)
		}
	}

	assignments := []struct {
		title   string
		daysAgo int
	}{
		{"Problem set 12", 18},
		{"Chapter 5 quiz", 11},
		{"Unit project draft", 6},
		{"Exit ticket review", 2},
	}
	assignmentIDs := make([]string, 0, len(assignments))
	for _, a := range assignments {
		id := uuid.NewString()
		assignmentIDs = append(assignmentIDs, id)
		_, err := s.client.Assignment.Create().
			SetAssignmentID(id).
			SetClassID(classID).
			SetTitle(a.title).
			SetDueAt(now.AddDate(0, 0, -a.daysAgo)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("seed assignment: %w", err)
		}
	}

	type sub struct {
		student    string
		assignment int
		total, max float64
		daysAgo    int
	}
	subs := []sub{
		{"stu-001", 0, 19, 20, 19},
		{"stu-001", 1, 27, 30, 12},
		{"stu-001", 2, 46, 50, 7},
		{"stu-001", 3, 9, 10, 2},

		{"stu-002", 0, 15, 20, 18},
		{"stu-002", 1, 16, 30, 11},
		{"stu-002", 2, 24, 50, 6},
		{"stu-002", 3, 5, 10, 2},

		{"stu-003", 0, 8, 20, 17},
	}
	for _, sb := range subs {
		_, err := s.client.Submission.Create().
			SetStudentID(sb.student).
			SetAssignmentID(assignmentIDs[sb.assignment]).
			SetSubject("math").
			SetTotalScore(sb.total).
			SetMaxScore(sb.max).
			SetStatus("graded").
			SetSubmittedAt(now.AddDate(0, 0, -sb.daysAgo)).
			SetGradedAt(now.AddDate(0, 0, -sb.daysAgo+1)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("seed submission: %w", err)
		}
	}

	deadlines := []struct {
		student  string
		kind     string
		daysOut  int
		complete bool
	}{
		{"stu-003", "iep_review", 9, false},
		{"stu-003", "evaluation_consent", 24, false},
		{"stu-002", "504_plan_review", 45, false},
		{"stu-001", "iep_review", -10, true},
	}
	for _, d := range deadlines {
		create := s.client.ComplianceDeadline.Create().
			SetDeadlineID(uuid.NewString()).
			SetStudentID(d.student).
			SetType(d.kind).
			SetDueAt(now.AddDate(0, 0, d.daysOut))
		if d.complete {
			create = create.
				SetStatus("completed").
				SetCompletedAt(now.AddDate(0, 0, d.daysOut-1))
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("seed deadline: %w", err)
		}
	}

	caseload := []struct{ manager, student string }{
		{"cm-lopez", "stu-002"},
		{"cm-lopez", "stu-003"},
	}
	for _, c := range caseload {
		_, err := s.client.CaseRecord.Create().
			SetCaseManagerID(c.manager).
			SetStudentID(c.student).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("seed case record: %w", err)
		}
	}

	return nil
}

// Reset deletes all domain rows. Telemetry events are kept.
func (s *Store) Reset(ctx context.Context) error {
	type wipe struct {
		name string
		fn   func(context.Context) (int, error)
	}
	wipes := []wipe{
		{"case records", func(ctx context.Context) (int, error) {
			return s.client.CaseRecord.Delete().Exec(ctx)
		}},
		{"deadlines", func(ctx context.Context) (int, error) {
			return s.client.ComplianceDeadline.Delete().Exec(ctx)
		}},
		{"submissions", func(ctx context.Context) (int, error) {
			return s.client.Submission.Delete().Exec(ctx)
		}},
		{"assignments", func(ctx context.Context) (int, error) {
			return s.client.Assignment.Delete().Exec(ctx)
		}},
		{"mastery records", func(ctx context.Context) (int, error) {
			return s.client.MasteryRecord.Delete().Exec(ctx)
		}},
		{"students", func(ctx context.Context) (int, error) {
			return s.client.Student.Delete().Exec(ctx)
		}},
	}
	for _, w := range wipes {
		if _, err := w.fn(ctx); err != nil {
			return fmt.Errorf("reset %s: %w", w.name, err)
		}
	}
	return nil
}
