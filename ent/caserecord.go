// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/classpulse/classpulse/ent/caserecord"
)

// CaseRecord is the model entity for the CaseRecord schema.
type CaseRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CaseManagerID holds the value of the "case_manager_id" field.
	CaseManagerID string `json:"case_manager_id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID    string `json:"student_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CaseRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case caserecord.FieldID:
			values[i] = new(sql.NullInt64)
		case caserecord.FieldCaseManagerID, caserecord.FieldStudentID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CaseRecord fields.
func (_m *CaseRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case caserecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case caserecord.FieldCaseManagerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_manager_id", values[i])
			} else if value.Valid {
				_m.CaseManagerID = value.String
			}
		case caserecord.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CaseRecord.
// This includes values selected through modifiers, order, etc.
func (_m *CaseRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CaseRecord.
// Note that you need to call CaseRecord.Unwrap() before calling this method if this CaseRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CaseRecord) Update() *CaseRecordUpdateOne {
	return NewCaseRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CaseRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CaseRecord) Unwrap() *CaseRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CaseRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CaseRecord) String() string {
	var builder strings.Builder
	builder.WriteString("CaseRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("case_manager_id=")
	builder.WriteString(_m.CaseManagerID)
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteByte(')')
	return builder.String()
}

// CaseRecords is a parsable slice of CaseRecord.
type CaseRecords []*CaseRecord
