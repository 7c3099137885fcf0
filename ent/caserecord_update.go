// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classpulse/classpulse/ent/caserecord"
	"github.com/classpulse/classpulse/ent/predicate"
)

// CaseRecordUpdate is the builder for updating CaseRecord entities.
type CaseRecordUpdate struct {
	config
	hooks    []Hook
	mutation *CaseRecordMutation
}

// Where appends a list predicates to the CaseRecordUpdate builder.
func (_u *CaseRecordUpdate) Where(ps ...predicate.CaseRecord) *CaseRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaseManagerID sets the "case_manager_id" field.
func (_u *CaseRecordUpdate) SetCaseManagerID(v string) *CaseRecordUpdate {
	_u.mutation.SetCaseManagerID(v)
	return _u
}

// SetNillableCaseManagerID sets the "case_manager_id" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableCaseManagerID(v *string) *CaseRecordUpdate {
	if v != nil {
		_u.SetCaseManagerID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *CaseRecordUpdate) SetStudentID(v string) *CaseRecordUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableStudentID(v *string) *CaseRecordUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// Mutation returns the CaseRecordMutation object of the builder.
func (_u *CaseRecordUpdate) Mutation() *CaseRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaseRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaseRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseRecordUpdate) check() error {
	if v, ok := _u.mutation.CaseManagerID(); ok {
		if err := caserecord.CaseManagerIDValidator(v); err != nil {
			return &ValidationError{Name: "case_manager_id", err: fmt.Errorf(`ent: validator failed for field "CaseRecord.case_manager_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := caserecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "CaseRecord.student_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CaseRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caserecord.Table, caserecord.Columns, sqlgraph.NewFieldSpec(caserecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseManagerID(); ok {
		_spec.SetField(caserecord.FieldCaseManagerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(caserecord.FieldStudentID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caserecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaseRecordUpdateOne is the builder for updating a single CaseRecord entity.
type CaseRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaseRecordMutation
}

// SetCaseManagerID sets the "case_manager_id" field.
func (_u *CaseRecordUpdateOne) SetCaseManagerID(v string) *CaseRecordUpdateOne {
	_u.mutation.SetCaseManagerID(v)
	return _u
}

// SetNillableCaseManagerID sets the "case_manager_id" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableCaseManagerID(v *string) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetCaseManagerID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *CaseRecordUpdateOne) SetStudentID(v string) *CaseRecordUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableStudentID(v *string) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// Mutation returns the CaseRecordMutation object of the builder.
func (_u *CaseRecordUpdateOne) Mutation() *CaseRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the CaseRecordUpdate builder.
func (_u *CaseRecordUpdateOne) Where(ps ...predicate.CaseRecord) *CaseRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaseRecordUpdateOne) Select(field string, fields ...string) *CaseRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaseRecord entity.
func (_u *CaseRecordUpdateOne) Save(ctx context.Context) (*CaseRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseRecordUpdateOne) SaveX(ctx context.Context) *CaseRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaseRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseRecordUpdateOne) check() error {
	if v, ok := _u.mutation.CaseManagerID(); ok {
		if err := caserecord.CaseManagerIDValidator(v); err != nil {
			return &ValidationError{Name: "case_manager_id", err: fmt.Errorf(`ent: validator failed for field "CaseRecord.case_manager_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := caserecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "CaseRecord.student_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CaseRecordUpdateOne) sqlSave(ctx context.Context) (_node *CaseRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caserecord.Table, caserecord.Columns, sqlgraph.NewFieldSpec(caserecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaseRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, caserecord.FieldID)
		for _, f := range fields {
			if !caserecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != caserecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseManagerID(); ok {
		_spec.SetField(caserecord.FieldCaseManagerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(caserecord.FieldStudentID, field.TypeString, value)
	}
	_node = &CaseRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caserecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
