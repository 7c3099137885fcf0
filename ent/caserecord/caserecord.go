// Code generated by ent, DO NOT EDIT.

package caserecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the caserecord type in the database.
	Label = "case_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCaseManagerID holds the string denoting the case_manager_id field in the database.
	FieldCaseManagerID = "case_manager_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// Table holds the table name of the caserecord in the database.
	Table = "case_records"
)

// Columns holds all SQL columns for caserecord fields.
var Columns = []string{
	FieldID,
	FieldCaseManagerID,
	FieldStudentID,
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
	// CaseManagerIDValidator is a validator for the "case_manager_id" field. It is called by the builders before save.
	CaseManagerIDValidator func(string) error
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
)

// OrderOption defines the ordering options for the CaseRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCaseManagerID orders the results by the case_manager_id field.
func ByCaseManagerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseManagerID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}
