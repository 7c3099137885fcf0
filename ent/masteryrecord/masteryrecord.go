// Code generated by ent, DO NOT EDIT.

package masteryrecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the masteryrecord type in the database.
	Label = "mastery_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldStandardID holds the string denoting the standard_id field in the database.
	FieldStandardID = "standard_id"
	// FieldStandardDescription holds the string denoting the standard_description field in the database.
	FieldStandardDescription = "standard_description"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldAssessedAt holds the string denoting the assessed_at field in the database.
	FieldAssessedAt = "assessed_at"
	// Table holds the table name of the masteryrecord in the database.
	Table = "mastery_records"
)

// Columns holds all SQL columns for masteryrecord fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldStandardID,
	FieldStandardDescription,
	FieldSubject,
	FieldLevel,
	FieldScore,
	FieldAssessedAt,
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
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// StandardIDValidator is a validator for the "standard_id" field. It is called by the builders before save.
	StandardIDValidator func(string) error
	// DefaultStandardDescription holds the default value on creation for the "standard_description" field.
	DefaultStandardDescription string
	// DefaultSubject holds the default value on creation for the "subject" field.
	DefaultSubject string
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(string) error
)

// OrderOption defines the ordering options for the MasteryRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByStandardID orders the results by the standard_id field.
func ByStandardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStandardID, opts...).ToFunc()
}

// ByStandardDescription orders the results by the standard_description field.
func ByStandardDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStandardDescription, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByAssessedAt orders the results by the assessed_at field.
func ByAssessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessedAt, opts...).ToFunc()
}
