// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Assignment is the predicate function for assignment builders.
type Assignment func(*sql.Selector)

// CaseRecord is the predicate function for caserecord builders.
type CaseRecord func(*sql.Selector)

// ComplianceDeadline is the predicate function for compliancedeadline builders.
type ComplianceDeadline func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MasteryRecord is the predicate function for masteryrecord builders.
type MasteryRecord func(*sql.Selector)

// Student is the predicate function for student builders.
type Student func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)
