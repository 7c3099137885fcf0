package signals

import "time"

// MasteryLevel is a proficiency band recorded against one academic standard.
type MasteryLevel string

const (
	LevelBeginning  MasteryLevel = "beginning"
	LevelDeveloping MasteryLevel = "developing"
	LevelProficient MasteryLevel = "proficient"
	LevelAdvanced   MasteryLevel = "advanced"
)

// BelowProficient reports whether the level sits under the proficient band.
func (l MasteryLevel) BelowProficient() bool {
	return l == LevelBeginning || l == LevelDeveloping
}

// MasteryRecord is one timestamped measurement of a student's demonstrated
// proficiency on one standard. Records are immutable history, not upserts:
// a student accumulates many records per standard over time. The canonical
// read order is AssessedAt descending (newest first).
type MasteryRecord struct {
	StudentID           string
	StandardID          string
	StandardDescription string
	Subject             string
	Level               MasteryLevel
	Score               float64 // 0-100
	AssessedAt          time.Time
}

// SubmissionStatus is the grading state of a submission.
type SubmissionStatus string

const (
	StatusSubmitted SubmissionStatus = "submitted"
	StatusGraded    SubmissionStatus = "graded"
)

// Submission is one student's turned-in work for one assignment. A missing
// (student, assignment) pair means the work was never submitted.
type Submission struct {
	StudentID    string
	AssignmentID string
	Subject      string
	TotalScore   float64
	MaxScore     float64
	Status       SubmissionStatus
	SubmittedAt  time.Time
	GradedAt     *time.Time
}

// Percentage returns the graded score as a 0-100 percentage.
// Returns 0 for an ungraded submission or a zero max score.
func (s Submission) Percentage() float64 {
	if s.Status != StatusGraded || s.MaxScore == 0 {
		return 0
	}
	return s.TotalScore / s.MaxScore * 100
}

// Assignment is the minimal assignment view the engine consumes: enough to
// count expected submissions within a lookback window.
type Assignment struct {
	ID      string
	ClassID string
	DueDate time.Time
}

// DeadlineStatus is the lifecycle state of a compliance deadline.
type DeadlineStatus string

const (
	DeadlineUpcoming  DeadlineStatus = "upcoming"
	DeadlineCompleted DeadlineStatus = "completed"
)

// ComplianceDeadline is a dated obligation tracked for one student.
// Created by caseload-management workflows; this engine only reads it.
type ComplianceDeadline struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	StudentID   string         `json:"studentId"`
	DueDate     time.Time      `json:"dueDate"`
	Status      DeadlineStatus `json:"status"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
}

// Student is the identity view attached to risk profiles.
type Student struct {
	ID      string
	Name    string
	Email   string
	ClassID string
}
