// Code generated by ent, DO NOT EDIT.

package compliancedeadline

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the compliancedeadline type in the database.
	Label = "compliance_deadline"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDeadlineID holds the string denoting the deadline_id field in the database.
	FieldDeadlineID = "deadline_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldDueAt holds the string denoting the due_at field in the database.
	FieldDueAt = "due_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the compliancedeadline in the database.
	Table = "compliance_deadlines"
)

// Columns holds all SQL columns for compliancedeadline fields.
var Columns = []string{
	FieldID,
	FieldDeadlineID,
	FieldStudentID,
	FieldType,
	FieldDueAt,
	FieldStatus,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DeadlineIDValidator is a validator for the "deadline_id" field. It is called by the builders before save.
	DeadlineIDValidator func(string) error
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// TypeValidator is a validator for the "type" field. It is called by the builders before save.
	TypeValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
)

// OrderOption defines the ordering options for the ComplianceDeadline queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDeadlineID orders the results by the deadline_id field.
func ByDeadlineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeadlineID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByDueAt orders the results by the due_at field.
func ByDueAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
