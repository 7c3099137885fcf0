// Code generated by ent, DO NOT EDIT.

package assignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/classpulse/classpulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldID, id))
}

// AssignmentID applies equality check predicate on the "assignment_id" field. It's identical to AssignmentIDEQ.
func AssignmentID(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssignmentID, v))
}

// ClassID applies equality check predicate on the "class_id" field. It's identical to ClassIDEQ.
func ClassID(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldClassID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldTitle, v))
}

// DueAt applies equality check predicate on the "due_at" field. It's identical to DueAtEQ.
func DueAt(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldDueAt, v))
}

// AssignmentIDEQ applies the EQ predicate on the "assignment_id" field.
func AssignmentIDEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssignmentID, v))
}

// AssignmentIDNEQ applies the NEQ predicate on the "assignment_id" field.
func AssignmentIDNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldAssignmentID, v))
}

// AssignmentIDIn applies the In predicate on the "assignment_id" field.
func AssignmentIDIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldAssignmentID, vs...))
}

// AssignmentIDNotIn applies the NotIn predicate on the "assignment_id" field.
func AssignmentIDNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldAssignmentID, vs...))
}

// AssignmentIDGT applies the GT predicate on the "assignment_id" field.
func AssignmentIDGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldAssignmentID, v))
}

// AssignmentIDGTE applies the GTE predicate on the "assignment_id" field.
func AssignmentIDGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldAssignmentID, v))
}

// AssignmentIDLT applies the LT predicate on the "assignment_id" field.
func AssignmentIDLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldAssignmentID, v))
}

// AssignmentIDLTE applies the LTE predicate on the "assignment_id" field.
func AssignmentIDLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldAssignmentID, v))
}

// AssignmentIDContains applies the Contains predicate on the "assignment_id" field.
func AssignmentIDContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldAssignmentID, v))
}

// AssignmentIDHasPrefix applies the HasPrefix predicate on the "assignment_id" field.
func AssignmentIDHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldAssignmentID, v))
}

// AssignmentIDHasSuffix applies the HasSuffix predicate on the "assignment_id" field.
func AssignmentIDHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldAssignmentID, v))
}

// AssignmentIDEqualFold applies the EqualFold predicate on the "assignment_id" field.
func AssignmentIDEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldAssignmentID, v))
}

// AssignmentIDContainsFold applies the ContainsFold predicate on the "assignment_id" field.
func AssignmentIDContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldAssignmentID, v))
}

// ClassIDEQ applies the EQ predicate on the "class_id" field.
func ClassIDEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldClassID, v))
}

// ClassIDNEQ applies the NEQ predicate on the "class_id" field.
func ClassIDNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldClassID, v))
}

// ClassIDIn applies the In predicate on the "class_id" field.
func ClassIDIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldClassID, vs...))
}

// ClassIDNotIn applies the NotIn predicate on the "class_id" field.
func ClassIDNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldClassID, vs...))
}

// ClassIDGT applies the GT predicate on the "class_id" field.
func ClassIDGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldClassID, v))
}

// ClassIDGTE applies the GTE predicate on the "class_id" field.
func ClassIDGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldClassID, v))
}

// ClassIDLT applies the LT predicate on the "class_id" field.
func ClassIDLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldClassID, v))
}

// ClassIDLTE applies the LTE predicate on the "class_id" field.
func ClassIDLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldClassID, v))
}

// ClassIDContains applies the Contains predicate on the "class_id" field.
func ClassIDContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldClassID, v))
}

// ClassIDHasPrefix applies the HasPrefix predicate on the "class_id" field.
func ClassIDHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldClassID, v))
}

// ClassIDHasSuffix applies the HasSuffix predicate on the "class_id" field.
func ClassIDHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldClassID, v))
}

// ClassIDEqualFold applies the EqualFold predicate on the "class_id" field.
func ClassIDEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldClassID, v))
}

// ClassIDContainsFold applies the ContainsFold predicate on the "class_id" field.
func ClassIDContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldClassID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldTitle, v))
}

// DueAtEQ applies the EQ predicate on the "due_at" field.
func DueAtEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldDueAt, v))
}

// DueAtNEQ applies the NEQ predicate on the "due_at" field.
func DueAtNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldDueAt, v))
}

// DueAtIn applies the In predicate on the "due_at" field.
func DueAtIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldDueAt, vs...))
}

// DueAtNotIn applies the NotIn predicate on the "due_at" field.
func DueAtNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldDueAt, vs...))
}

// DueAtGT applies the GT predicate on the "due_at" field.
func DueAtGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldDueAt, v))
}

// DueAtGTE applies the GTE predicate on the "due_at" field.
func DueAtGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldDueAt, v))
}

// DueAtLT applies the LT predicate on the "due_at" field.
func DueAtLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldDueAt, v))
}

// DueAtLTE applies the LTE predicate on the "due_at" field.
func DueAtLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldDueAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.NotPredicates(p))
}
