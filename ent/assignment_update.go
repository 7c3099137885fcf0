// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classpulse/classpulse/ent/assignment"
	"github.com/classpulse/classpulse/ent/predicate"
)

// AssignmentUpdate is the builder for updating Assignment entities.
type AssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssignmentMutation
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdate) Where(ps ...predicate.Assignment) *AssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *AssignmentUpdate) SetAssignmentID(v string) *AssignmentUpdate {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableAssignmentID(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetClassID sets the "class_id" field.
func (_u *AssignmentUpdate) SetClassID(v string) *AssignmentUpdate {
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableClassID(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AssignmentUpdate) SetTitle(v string) *AssignmentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableTitle(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *AssignmentUpdate) SetDueAt(v time.Time) *AssignmentUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableDueAt(v *time.Time) *AssignmentUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdate) Mutation() *AssignmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssignmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentUpdate) check() error {
	if v, ok := _u.mutation.AssignmentID(); ok {
		if err := assignment.AssignmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_id", err: fmt.Errorf(`ent: validator failed for field "Assignment.assignment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssignmentID(); ok {
		_spec.SetField(assignment.FieldAssignmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassID(); ok {
		_spec.SetField(assignment.FieldClassID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(assignment.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(assignment.FieldDueAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssignmentUpdateOne is the builder for updating a single Assignment entity.
type AssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssignmentMutation
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *AssignmentUpdateOne) SetAssignmentID(v string) *AssignmentUpdateOne {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableAssignmentID(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetClassID sets the "class_id" field.
func (_u *AssignmentUpdateOne) SetClassID(v string) *AssignmentUpdateOne {
	_u.mutation.SetClassID(v)
	return _u
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableClassID(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetClassID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AssignmentUpdateOne) SetTitle(v string) *AssignmentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableTitle(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *AssignmentUpdateOne) SetDueAt(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableDueAt(v *time.Time) *AssignmentUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdateOne) Mutation() *AssignmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdateOne) Where(ps ...predicate.Assignment) *AssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssignmentUpdateOne) Select(field string, fields ...string) *AssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assignment entity.
func (_u *AssignmentUpdateOne) Save(ctx context.Context) (*Assignment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdateOne) SaveX(ctx context.Context) *Assignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentUpdateOne) check() error {
	if v, ok := _u.mutation.AssignmentID(); ok {
		if err := assignment.AssignmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_id", err: fmt.Errorf(`ent: validator failed for field "Assignment.assignment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssignmentUpdateOne) sqlSave(ctx context.Context) (_node *Assignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assignment.FieldID)
		for _, f := range fields {
			if !assignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assignment.FieldID {
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
	if value, ok := _u.mutation.AssignmentID(); ok {
		_spec.SetField(assignment.FieldAssignmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassID(); ok {
		_spec.SetField(assignment.FieldClassID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(assignment.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(assignment.FieldDueAt, field.TypeTime, value)
	}
	_node = &Assignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
