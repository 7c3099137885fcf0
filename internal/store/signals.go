package store

import (
	"context"
	"fmt"

	"github.com/classpulse/classpulse/ent"
	"github.com/classpulse/classpulse/ent/assignment"
	"github.com/classpulse/classpulse/ent/caserecord"
	"github.com/classpulse/classpulse/ent/compliancedeadline"
	"github.com/classpulse/classpulse/ent/masteryrecord"
	"github.com/classpulse/classpulse/ent/student"
	"github.com/classpulse/classpulse/ent/submission"
	"github.com/classpulse/classpulse/internal/signals"
)

// signalRepo implements signals.Repository over the ent client. Scopes are
// resolved to student IDs once, then every table is filtered the same way.
type signalRepo struct {
	client *ent.Client
}

// scopeStudentIDs resolves a scope to the student IDs it covers. The second
// return is false for a cohort scope, meaning no filtering applies.
func (r *signalRepo) scopeStudentIDs(ctx context.Context, scope signals.Scope) ([]string, bool, error) {
	if scope.StudentID != "" {
		return []string{scope.StudentID}, true, nil
	}
	if scope.ClassID == "" {
		return nil, false, nil
	}

	ids, err := r.client.Student.Query().
		Where(student.ClassIDEQ(scope.ClassID)).
		Select(student.FieldStudentID).
		Strings(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("resolve class %s: %w", scope.ClassID, err)
	}
	return ids, true, nil
}

func (r *signalRepo) MasteryRecords(ctx context.Context, scope signals.Scope) ([]signals.MasteryRecord, error) {
	ids, filtered, err := r.scopeStudentIDs(ctx, scope)
	if err != nil {
		return nil, err
	}

	q := r.client.MasteryRecord.Query().
		Order(ent.Desc(masteryrecord.FieldAssessedAt))
	if filtered {
		q = q.Where(masteryrecord.StudentIDIn(ids...))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery records: %w", err)
	}

	records := make([]signals.MasteryRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, signals.MasteryRecord{
			StudentID:           row.StudentID,
			StandardID:          row.StandardID,
			StandardDescription: row.StandardDescription,
			Subject:             row.Subject,
			Level:               signals.MasteryLevel(row.Level),
			Score:               row.Score,
			AssessedAt:          row.AssessedAt,
		})
	}
	return records, nil
}

func (r *signalRepo) Submissions(ctx context.Context, scope signals.Scope, window signals.Window) ([]signals.Submission, error) {
	ids, filtered, err := r.scopeStudentIDs(ctx, scope)
	if err != nil {
		return nil, err
	}

	q := r.client.Submission.Query().
		Order(ent.Desc(submission.FieldSubmittedAt))
	if filtered {
		q = q.Where(submission.StudentIDIn(ids...))
	}
	if !window.Since.IsZero() {
		q = q.Where(submission.SubmittedAtGTE(window.Since))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}

	subs := make([]signals.Submission, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, signals.Submission{
			StudentID:    row.StudentID,
			AssignmentID: row.AssignmentID,
			Subject:      row.Subject,
			TotalScore:   row.TotalScore,
			MaxScore:     row.MaxScore,
			Status:       signals.SubmissionStatus(row.Status),
			SubmittedAt:  row.SubmittedAt,
			GradedAt:     row.GradedAt,
		})
	}
	return subs, nil
}

func (r *signalRepo) AssignmentCount(ctx context.Context, scope signals.Scope, window signals.Window) (int, error) {
	classID := scope.ClassID
	if scope.StudentID != "" {
		st, err := r.client.Student.Query().
			Where(student.StudentIDEQ(scope.StudentID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return 0, nil
			}
			return 0, fmt.Errorf("resolve student %s: %w", scope.StudentID, err)
		}
		classID = st.ClassID
	}

	q := r.client.Assignment.Query()
	if classID != "" {
		q = q.Where(assignment.ClassIDEQ(classID))
	}
	if !window.Since.IsZero() {
		q = q.Where(assignment.DueAtGTE(window.Since))
	}

	count, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count assignments: %w", err)
	}
	return count, nil
}

func (r *signalRepo) Caseload(ctx context.Context, callerID string) ([]string, error) {
	ids, err := r.client.CaseRecord.Query().
		Where(caserecord.CaseManagerIDEQ(callerID)).
		Select(caserecord.FieldStudentID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query caseload for %s: %w", callerID, err)
	}
	return ids, nil
}

func (r *signalRepo) Deadlines(ctx context.Context, scope signals.Scope) ([]signals.ComplianceDeadline, error) {
	ids, filtered, err := r.scopeStudentIDs(ctx, scope)
	if err != nil {
		return nil, err
	}

	q := r.client.ComplianceDeadline.Query().
		Order(ent.Asc(compliancedeadline.FieldDueAt))
	if filtered {
		q = q.Where(compliancedeadline.StudentIDIn(ids...))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query deadlines: %w", err)
	}

	deadlines := make([]signals.ComplianceDeadline, 0, len(rows))
	for _, row := range rows {
		deadlines = append(deadlines, signals.ComplianceDeadline{
			ID:          row.DeadlineID,
			Type:        row.Type,
			StudentID:   row.StudentID,
			DueDate:     row.DueAt,
			Status:      signals.DeadlineStatus(row.Status),
			CompletedAt: row.CompletedAt,
		})
	}
	return deadlines, nil
}

func (r *signalRepo) Students(ctx context.Context, scope signals.Scope) ([]signals.Student, error) {
	q := r.client.Student.Query().
		Order(ent.Asc(student.FieldStudentID))
	if scope.StudentID != "" {
		q = q.Where(student.StudentIDEQ(scope.StudentID))
	} else if scope.ClassID != "" {
		q = q.Where(student.ClassIDEQ(scope.ClassID))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}

	students := make([]signals.Student, 0, len(rows))
	for _, row := range rows {
		students = append(students, signals.Student{
			ID:      row.StudentID,
			Name:    row.Name,
			Email:   row.Email,
			ClassID: row.ClassID,
		})
	}
	return students, nil
}
