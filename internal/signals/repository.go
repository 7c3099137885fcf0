package signals

import (
	"context"
	"time"
)

// Scope selects whose signals to read: one student, one class, or the whole
// cohort when both fields are empty.
type Scope struct {
	StudentID string
	ClassID   string
}

// Cohort reports whether the scope covers every student.
func (s Scope) Cohort() bool {
	return s.StudentID == "" && s.ClassID == ""
}

// Window is the recency cutoff for submission and assignment reads.
// Assignments are counted by due date, submissions by submission time.
type Window struct {
	Since time.Time
}

// LastDays returns a window covering the trailing n calendar days from now.
func LastDays(n int, now time.Time) Window {
	return Window{Since: now.AddDate(0, 0, -n)}
}

// Repository is the read-only Signal Repository contract. All reads are
// eventually-consistent snapshots; callers must tolerate empty results for
// known students (absence of data is a valid state for a new student).
type Repository interface {
	// MasteryRecords returns mastery history for the scope, newest first.
	MasteryRecords(ctx context.Context, scope Scope) ([]MasteryRecord, error)

	// Submissions returns submissions in the window for the scope.
	Submissions(ctx context.Context, scope Scope, window Window) ([]Submission, error)

	// AssignmentCount returns how many assignments were issued to the
	// scope's class(es) within the window.
	AssignmentCount(ctx context.Context, scope Scope, window Window) (int, error)

	// Caseload returns the IDs of students on the caller's active caseload.
	Caseload(ctx context.Context, callerID string) ([]string, error)

	// Deadlines returns compliance deadlines for the scope.
	Deadlines(ctx context.Context, scope Scope) ([]ComplianceDeadline, error)

	// Students returns the student identities in the scope.
	Students(ctx context.Context, scope Scope) ([]Student, error)
}
