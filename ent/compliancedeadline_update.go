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
	"github.com/classpulse/classpulse/ent/compliancedeadline"
	"github.com/classpulse/classpulse/ent/predicate"
)

// ComplianceDeadlineUpdate is the builder for updating ComplianceDeadline entities.
type ComplianceDeadlineUpdate struct {
	config
	hooks    []Hook
	mutation *ComplianceDeadlineMutation
}

// Where appends a list predicates to the ComplianceDeadlineUpdate builder.
func (_u *ComplianceDeadlineUpdate) Where(ps ...predicate.ComplianceDeadline) *ComplianceDeadlineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDeadlineID sets the "deadline_id" field.
func (_u *ComplianceDeadlineUpdate) SetDeadlineID(v string) *ComplianceDeadlineUpdate {
	_u.mutation.SetDeadlineID(v)
	return _u
}

// SetNillableDeadlineID sets the "deadline_id" field if the given value is not nil.
func (_u *ComplianceDeadlineUpdate) SetNillableDeadlineID(v *string) *ComplianceDeadlineUpdate {
	if v != nil {
		_u.SetDeadlineID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *ComplianceDeadlineUpdate) SetStudentID(v string) *ComplianceDeadlineUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ComplianceDeadlineUpdate) SetNillableStudentID(v *string) *ComplianceDeadlineUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ComplianceDeadlineUpdate) SetType(v string) *ComplianceDeadlineUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ComplianceDeadlineUpdate) SetNillableType(v *string) *ComplianceDeadlineUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ComplianceDeadlineUpdate) SetDueAt(v time.Time) *ComplianceDeadlineUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ComplianceDeadlineUpdate) SetNillableDueAt(v *time.Time) *ComplianceDeadlineUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ComplianceDeadlineUpdate) SetStatus(v string) *ComplianceDeadlineUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ComplianceDeadlineUpdate) SetNillableStatus(v *string) *ComplianceDeadlineUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ComplianceDeadlineUpdate) SetCompletedAt(v time.Time) *ComplianceDeadlineUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ComplianceDeadlineUpdate) SetNillableCompletedAt(v *time.Time) *ComplianceDeadlineUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ComplianceDeadlineUpdate) ClearCompletedAt() *ComplianceDeadlineUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ComplianceDeadlineMutation object of the builder.
func (_u *ComplianceDeadlineUpdate) Mutation() *ComplianceDeadlineMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ComplianceDeadlineUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComplianceDeadlineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ComplianceDeadlineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComplianceDeadlineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComplianceDeadlineUpdate) check() error {
	if v, ok := _u.mutation.DeadlineID(); ok {
		if err := compliancedeadline.DeadlineIDValidator(v); err != nil {
			return &ValidationError{Name: "deadline_id", err: fmt.Errorf(`ent: validator failed for field "ComplianceDeadline.deadline_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := compliancedeadline.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ComplianceDeadline.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := compliancedeadline.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "ComplianceDeadline.type": %w`, err)}
		}
	}
	return nil
}

func (_u *ComplianceDeadlineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(compliancedeadline.Table, compliancedeadline.Columns, sqlgraph.NewFieldSpec(compliancedeadline.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DeadlineID(); ok {
		_spec.SetField(compliancedeadline.FieldDeadlineID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(compliancedeadline.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(compliancedeadline.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(compliancedeadline.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(compliancedeadline.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(compliancedeadline.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(compliancedeadline.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compliancedeadline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ComplianceDeadlineUpdateOne is the builder for updating a single ComplianceDeadline entity.
type ComplianceDeadlineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ComplianceDeadlineMutation
}

// SetDeadlineID sets the "deadline_id" field.
func (_u *ComplianceDeadlineUpdateOne) SetDeadlineID(v string) *ComplianceDeadlineUpdateOne {
	_u.mutation.SetDeadlineID(v)
	return _u
}

// SetNillableDeadlineID sets the "deadline_id" field if the given value is not nil.
func (_u *ComplianceDeadlineUpdateOne) SetNillableDeadlineID(v *string) *ComplianceDeadlineUpdateOne {
	if v != nil {
		_u.SetDeadlineID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *ComplianceDeadlineUpdateOne) SetStudentID(v string) *ComplianceDeadlineUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ComplianceDeadlineUpdateOne) SetNillableStudentID(v *string) *ComplianceDeadlineUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ComplianceDeadlineUpdateOne) SetType(v string) *ComplianceDeadlineUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ComplianceDeadlineUpdateOne) SetNillableType(v *string) *ComplianceDeadlineUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ComplianceDeadlineUpdateOne) SetDueAt(v time.Time) *ComplianceDeadlineUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ComplianceDeadlineUpdateOne) SetNillableDueAt(v *time.Time) *ComplianceDeadlineUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ComplianceDeadlineUpdateOne) SetStatus(v string) *ComplianceDeadlineUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ComplianceDeadlineUpdateOne) SetNillableStatus(v *string) *ComplianceDeadlineUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ComplianceDeadlineUpdateOne) SetCompletedAt(v time.Time) *ComplianceDeadlineUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ComplianceDeadlineUpdateOne) SetNillableCompletedAt(v *time.Time) *ComplianceDeadlineUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ComplianceDeadlineUpdateOne) ClearCompletedAt() *ComplianceDeadlineUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ComplianceDeadlineMutation object of the builder.
func (_u *ComplianceDeadlineUpdateOne) Mutation() *ComplianceDeadlineMutation {
	return _u.mutation
}

// Where appends a list predicates to the ComplianceDeadlineUpdate builder.
func (_u *ComplianceDeadlineUpdateOne) Where(ps ...predicate.ComplianceDeadline) *ComplianceDeadlineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ComplianceDeadlineUpdateOne) Select(field string, fields ...string) *ComplianceDeadlineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ComplianceDeadline entity.
func (_u *ComplianceDeadlineUpdateOne) Save(ctx context.Context) (*ComplianceDeadline, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComplianceDeadlineUpdateOne) SaveX(ctx context.Context) *ComplianceDeadline {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ComplianceDeadlineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComplianceDeadlineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComplianceDeadlineUpdateOne) check() error {
	if v, ok := _u.mutation.DeadlineID(); ok {
		if err := compliancedeadline.DeadlineIDValidator(v); err != nil {
			return &ValidationError{Name: "deadline_id", err: fmt.Errorf(`ent: validator failed for field "ComplianceDeadline.deadline_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := compliancedeadline.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ComplianceDeadline.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := compliancedeadline.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "ComplianceDeadline.type": %w`, err)}
		}
	}
	return nil
}

func (_u *ComplianceDeadlineUpdateOne) sqlSave(ctx context.Context) (_node *ComplianceDeadline, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(compliancedeadline.Table, compliancedeadline.Columns, sqlgraph.NewFieldSpec(compliancedeadline.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ComplianceDeadline.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, compliancedeadline.FieldID)
		for _, f := range fields {
			if !compliancedeadline.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != compliancedeadline.FieldID {
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
	if value, ok := _u.mutation.DeadlineID(); ok {
		_spec.SetField(compliancedeadline.FieldDeadlineID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(compliancedeadline.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(compliancedeadline.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(compliancedeadline.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(compliancedeadline.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(compliancedeadline.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(compliancedeadline.FieldCompletedAt, field.TypeTime)
	}
	_node = &ComplianceDeadline{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compliancedeadline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
