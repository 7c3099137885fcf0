// Code generated by ent, DO NOT EDIT.

package compliancedeadline

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/classpulse/classpulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldLTE(FieldID, id))
}

// DeadlineID applies equality check predicate on the "deadline_id" field. It's identical to DeadlineIDEQ.
func DeadlineID(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEQ(FieldDeadlineID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEQ(FieldStudentID, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEQ(FieldType, v))
}

// DueAt applies equality check predicate on the "due_at" field. It's identical to DueAtEQ.
func DueAt(v time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEQ(FieldDueAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEQ(FieldStatus, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEQ(FieldCompletedAt, v))
}

// DeadlineIDEQ applies the EQ predicate on the "deadline_id" field.
func DeadlineIDEQ(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEQ(FieldDeadlineID, v))
}

// DeadlineIDNEQ applies the NEQ predicate on the "deadline_id" field.
func DeadlineIDNEQ(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldNEQ(FieldDeadlineID, v))
}

// DeadlineIDIn applies the In predicate on the "deadline_id" field.
func DeadlineIDIn(vs ...string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldIn(FieldDeadlineID, vs...))
}

// DeadlineIDNotIn applies the NotIn predicate on the "deadline_id" field.
func DeadlineIDNotIn(vs ...string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldNotIn(FieldDeadlineID, vs...))
}

// DeadlineIDGT applies the GT predicate on the "deadline_id" field.
func DeadlineIDGT(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldGT(FieldDeadlineID, v))
}

// DeadlineIDGTE applies the GTE predicate on the "deadline_id" field.
func DeadlineIDGTE(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldGTE(FieldDeadlineID, v))
}

// DeadlineIDLT applies the LT predicate on the "deadline_id" field.
func DeadlineIDLT(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldLT(FieldDeadlineID, v))
}

// DeadlineIDLTE applies the LTE predicate on the "deadline_id" field.
func DeadlineIDLTE(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldLTE(FieldDeadlineID, v))
}

// DeadlineIDContains applies the Contains predicate on the "deadline_id" field.
func DeadlineIDContains(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldContains(FieldDeadlineID, v))
}

// DeadlineIDHasPrefix applies the HasPrefix predicate on the "deadline_id" field.
func DeadlineIDHasPrefix(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldHasPrefix(FieldDeadlineID, v))
}

// DeadlineIDHasSuffix applies the HasSuffix predicate on the "deadline_id" field.
func DeadlineIDHasSuffix(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldHasSuffix(FieldDeadlineID, v))
}

// DeadlineIDEqualFold applies the EqualFold predicate on the "deadline_id" field.
func DeadlineIDEqualFold(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEqualFold(FieldDeadlineID, v))
}

// DeadlineIDContainsFold applies the ContainsFold predicate on the "deadline_id" field.
func DeadlineIDContainsFold(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldContainsFold(FieldDeadlineID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldContainsFold(FieldStudentID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldContainsFold(FieldType, v))
}

// DueAtEQ applies the EQ predicate on the "due_at" field.
func DueAtEQ(v time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEQ(FieldDueAt, v))
}

// DueAtNEQ applies the NEQ predicate on the "due_at" field.
func DueAtNEQ(v time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldNEQ(FieldDueAt, v))
}

// DueAtIn applies the In predicate on the "due_at" field.
func DueAtIn(vs ...time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldIn(FieldDueAt, vs...))
}

// DueAtNotIn applies the NotIn predicate on the "due_at" field.
func DueAtNotIn(vs ...time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldNotIn(FieldDueAt, vs...))
}

// DueAtGT applies the GT predicate on the "due_at" field.
func DueAtGT(v time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldGT(FieldDueAt, v))
}

// DueAtGTE applies the GTE predicate on the "due_at" field.
func DueAtGTE(v time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldGTE(FieldDueAt, v))
}

// DueAtLT applies the LT predicate on the "due_at" field.
func DueAtLT(v time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldLT(FieldDueAt, v))
}

// DueAtLTE applies the LTE predicate on the "due_at" field.
func DueAtLTE(v time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldLTE(FieldDueAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldContainsFold(FieldStatus, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ComplianceDeadline) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ComplianceDeadline) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ComplianceDeadline) predicate.ComplianceDeadline {
	return predicate.ComplianceDeadline(sql.NotPredicates(p))
}
