// Code generated by ent, DO NOT EDIT.

package caserecord

import (
	"entgo.io/ent/dialect/sql"
	"github.com/classpulse/classpulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLTE(FieldID, id))
}

// CaseManagerID applies equality check predicate on the "case_manager_id" field. It's identical to CaseManagerIDEQ.
func CaseManagerID(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldCaseManagerID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldStudentID, v))
}

// CaseManagerIDEQ applies the EQ predicate on the "case_manager_id" field.
func CaseManagerIDEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldCaseManagerID, v))
}

// CaseManagerIDNEQ applies the NEQ predicate on the "case_manager_id" field.
func CaseManagerIDNEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNEQ(FieldCaseManagerID, v))
}

// CaseManagerIDIn applies the In predicate on the "case_manager_id" field.
func CaseManagerIDIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIn(FieldCaseManagerID, vs...))
}

// CaseManagerIDNotIn applies the NotIn predicate on the "case_manager_id" field.
func CaseManagerIDNotIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotIn(FieldCaseManagerID, vs...))
}

// CaseManagerIDGT applies the GT predicate on the "case_manager_id" field.
func CaseManagerIDGT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGT(FieldCaseManagerID, v))
}

// CaseManagerIDGTE applies the GTE predicate on the "case_manager_id" field.
func CaseManagerIDGTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGTE(FieldCaseManagerID, v))
}

// CaseManagerIDLT applies the LT predicate on the "case_manager_id" field.
func CaseManagerIDLT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLT(FieldCaseManagerID, v))
}

// CaseManagerIDLTE applies the LTE predicate on the "case_manager_id" field.
func CaseManagerIDLTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLTE(FieldCaseManagerID, v))
}

// CaseManagerIDContains applies the Contains predicate on the "case_manager_id" field.
func CaseManagerIDContains(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContains(FieldCaseManagerID, v))
}

// CaseManagerIDHasPrefix applies the HasPrefix predicate on the "case_manager_id" field.
func CaseManagerIDHasPrefix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasPrefix(FieldCaseManagerID, v))
}

// CaseManagerIDHasSuffix applies the HasSuffix predicate on the "case_manager_id" field.
func CaseManagerIDHasSuffix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasSuffix(FieldCaseManagerID, v))
}

// CaseManagerIDEqualFold applies the EqualFold predicate on the "case_manager_id" field.
func CaseManagerIDEqualFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEqualFold(FieldCaseManagerID, v))
}

// CaseManagerIDContainsFold applies the ContainsFold predicate on the "case_manager_id" field.
func CaseManagerIDContainsFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContainsFold(FieldCaseManagerID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContainsFold(FieldStudentID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CaseRecord) predicate.CaseRecord {
	return predicate.CaseRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CaseRecord) predicate.CaseRecord {
	return predicate.CaseRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CaseRecord) predicate.CaseRecord {
	return predicate.CaseRecord(sql.NotPredicates(p))
}
