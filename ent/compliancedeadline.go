// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/classpulse/classpulse/ent/compliancedeadline"
)

// ComplianceDeadline is the model entity for the ComplianceDeadline schema.
type ComplianceDeadline struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DeadlineID holds the value of the "deadline_id" field.
	DeadlineID string `json:"deadline_id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// Obligation kind, e.g. iep_review, evaluation_consent
	Type string `json:"type,omitempty"`
	// DueAt holds the value of the "due_at" field.
	DueAt time.Time `json:"due_at,omitempty"`
	// upcoming or completed
	Status string `json:"status,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ComplianceDeadline) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case compliancedeadline.FieldID:
			values[i] = new(sql.NullInt64)
		case compliancedeadline.FieldDeadlineID, compliancedeadline.FieldStudentID, compliancedeadline.FieldType, compliancedeadline.FieldStatus:
			values[i] = new(sql.NullString)
		case compliancedeadline.FieldDueAt, compliancedeadline.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ComplianceDeadline fields.
func (_m *ComplianceDeadline) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case compliancedeadline.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case compliancedeadline.FieldDeadlineID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deadline_id", values[i])
			} else if value.Valid {
				_m.DeadlineID = value.String
			}
		case compliancedeadline.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case compliancedeadline.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case compliancedeadline.FieldDueAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_at", values[i])
			} else if value.Valid {
				_m.DueAt = value.Time
			}
		case compliancedeadline.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case compliancedeadline.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ComplianceDeadline.
// This includes values selected through modifiers, order, etc.
func (_m *ComplianceDeadline) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ComplianceDeadline.
// Note that you need to call ComplianceDeadline.Unwrap() before calling this method if this ComplianceDeadline
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ComplianceDeadline) Update() *ComplianceDeadlineUpdateOne {
	return NewComplianceDeadlineClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ComplianceDeadline entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ComplianceDeadline) Unwrap() *ComplianceDeadline {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ComplianceDeadline is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ComplianceDeadline) String() string {
	var builder strings.Builder
	builder.WriteString("ComplianceDeadline(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("deadline_id=")
	builder.WriteString(_m.DeadlineID)
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	builder.WriteString("due_at=")
	builder.WriteString(_m.DueAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ComplianceDeadlines is a parsable slice of ComplianceDeadline.
type ComplianceDeadlines []*ComplianceDeadline
