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
	"github.com/classpulse/classpulse/ent/predicate"
	"github.com/classpulse/classpulse/ent/submission"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SubmissionUpdate) SetStudentID(v string) *SubmissionUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStudentID(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *SubmissionUpdate) SetAssignmentID(v string) *SubmissionUpdate {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableAssignmentID(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *SubmissionUpdate) SetSubject(v string) *SubmissionUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableSubject(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *SubmissionUpdate) SetTotalScore(v float64) *SubmissionUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableTotalScore(v *float64) *SubmissionUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *SubmissionUpdate) AddTotalScore(v float64) *SubmissionUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *SubmissionUpdate) SetMaxScore(v float64) *SubmissionUpdate {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableMaxScore(v *float64) *SubmissionUpdate {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *SubmissionUpdate) AddMaxScore(v float64) *SubmissionUpdate {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdate) SetStatus(v string) *SubmissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStatus(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGradedAt sets the "graded_at" field.
func (_u *SubmissionUpdate) SetGradedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetGradedAt(v)
	return _u
}

// SetNillableGradedAt sets the "graded_at" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableGradedAt(v *time.Time) *SubmissionUpdate {
	if v != nil {
		_u.SetGradedAt(*v)
	}
	return _u
}

// ClearGradedAt clears the value of the "graded_at" field.
func (_u *SubmissionUpdate) ClearGradedAt() *SubmissionUpdate {
	_u.mutation.ClearGradedAt()
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := submission.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "Submission.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentID(); ok {
		if err := submission.AssignmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_id", err: fmt.Errorf(`ent: validator failed for field "Submission.assignment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(submission.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignmentID(); ok {
		_spec.SetField(submission.FieldAssignmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(submission.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(submission.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(submission.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(submission.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(submission.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradedAt(); ok {
		_spec.SetField(submission.FieldGradedAt, field.TypeTime, value)
	}
	if _u.mutation.GradedAtCleared() {
		_spec.ClearField(submission.FieldGradedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetStudentID sets the "student_id" field.
func (_u *SubmissionUpdateOne) SetStudentID(v string) *SubmissionUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStudentID(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *SubmissionUpdateOne) SetAssignmentID(v string) *SubmissionUpdateOne {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableAssignmentID(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *SubmissionUpdateOne) SetSubject(v string) *SubmissionUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableSubject(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *SubmissionUpdateOne) SetTotalScore(v float64) *SubmissionUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableTotalScore(v *float64) *SubmissionUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *SubmissionUpdateOne) AddTotalScore(v float64) *SubmissionUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *SubmissionUpdateOne) SetMaxScore(v float64) *SubmissionUpdateOne {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableMaxScore(v *float64) *SubmissionUpdateOne {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *SubmissionUpdateOne) AddMaxScore(v float64) *SubmissionUpdateOne {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdateOne) SetStatus(v string) *SubmissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStatus(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGradedAt sets the "graded_at" field.
func (_u *SubmissionUpdateOne) SetGradedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetGradedAt(v)
	return _u
}

// SetNillableGradedAt sets the "graded_at" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableGradedAt(v *time.Time) *SubmissionUpdateOne {
	if v != nil {
		_u.SetGradedAt(*v)
	}
	return _u
}

// ClearGradedAt clears the value of the "graded_at" field.
func (_u *SubmissionUpdateOne) ClearGradedAt() *SubmissionUpdateOne {
	_u.mutation.ClearGradedAt()
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := submission.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "Submission.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentID(); ok {
		if err := submission.AssignmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_id", err: fmt.Errorf(`ent: validator failed for field "Submission.assignment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(submission.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignmentID(); ok {
		_spec.SetField(submission.FieldAssignmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(submission.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(submission.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(submission.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(submission.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(submission.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradedAt(); ok {
		_spec.SetField(submission.FieldGradedAt, field.TypeTime, value)
	}
	if _u.mutation.GradedAtCleared() {
		_spec.ClearField(submission.FieldGradedAt, field.TypeTime)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
