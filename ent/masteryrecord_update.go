// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classpulse/classpulse/ent/masteryrecord"
	"github.com/classpulse/classpulse/ent/predicate"
)

// MasteryRecordUpdate is the builder for updating MasteryRecord entities.
type MasteryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdate) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *MasteryRecordUpdate) SetStudentID(v string) *MasteryRecordUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableStudentID(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetStandardID sets the "standard_id" field.
func (_u *MasteryRecordUpdate) SetStandardID(v string) *MasteryRecordUpdate {
	_u.mutation.SetStandardID(v)
	return _u
}

// SetNillableStandardID sets the "standard_id" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableStandardID(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetStandardID(*v)
	}
	return _u
}

// SetStandardDescription sets the "standard_description" field.
func (_u *MasteryRecordUpdate) SetStandardDescription(v string) *MasteryRecordUpdate {
	_u.mutation.SetStandardDescription(v)
	return _u
}

// SetNillableStandardDescription sets the "standard_description" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableStandardDescription(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetStandardDescription(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *MasteryRecordUpdate) SetSubject(v string) *MasteryRecordUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableSubject(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryRecordUpdate) SetLevel(v string) *MasteryRecordUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLevel(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *MasteryRecordUpdate) SetScore(v float64) *MasteryRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableScore(v *float64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MasteryRecordUpdate) AddScore(v float64) *MasteryRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdate) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := masteryrecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StandardID(); ok {
		if err := masteryrecord.StandardIDValidator(v); err != nil {
			return &ValidationError{Name: "standard_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.standard_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := masteryrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.level": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(masteryrecord.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StandardID(); ok {
		_spec.SetField(masteryrecord.FieldStandardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StandardDescription(); ok {
		_spec.SetField(masteryrecord.FieldStandardDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(masteryrecord.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(masteryrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(masteryrecord.FieldScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryRecordUpdateOne is the builder for updating a single MasteryRecord entity.
type MasteryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// SetStudentID sets the "student_id" field.
func (_u *MasteryRecordUpdateOne) SetStudentID(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableStudentID(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetStandardID sets the "standard_id" field.
func (_u *MasteryRecordUpdateOne) SetStandardID(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetStandardID(v)
	return _u
}

// SetNillableStandardID sets the "standard_id" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableStandardID(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetStandardID(*v)
	}
	return _u
}

// SetStandardDescription sets the "standard_description" field.
func (_u *MasteryRecordUpdateOne) SetStandardDescription(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetStandardDescription(v)
	return _u
}

// SetNillableStandardDescription sets the "standard_description" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableStandardDescription(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetStandardDescription(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *MasteryRecordUpdateOne) SetSubject(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableSubject(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryRecordUpdateOne) SetLevel(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLevel(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *MasteryRecordUpdateOne) SetScore(v float64) *MasteryRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableScore(v *float64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MasteryRecordUpdateOne) AddScore(v float64) *MasteryRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdateOne) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdateOne) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryRecordUpdateOne) Select(field string, fields ...string) *MasteryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryRecord entity.
func (_u *MasteryRecordUpdateOne) Save(ctx context.Context) (*MasteryRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) SaveX(ctx context.Context) *MasteryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := masteryrecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StandardID(); ok {
		if err := masteryrecord.StandardIDValidator(v); err != nil {
			return &ValidationError{Name: "standard_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.standard_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := masteryrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.level": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MasteryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryrecord.FieldID)
		for _, f := range fields {
			if !masteryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryrecord.FieldID {
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
		_spec.SetField(masteryrecord.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StandardID(); ok {
		_spec.SetField(masteryrecord.FieldStandardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StandardDescription(); ok {
		_spec.SetField(masteryrecord.FieldStandardDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(masteryrecord.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(masteryrecord.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(masteryrecord.FieldScore, field.TypeFloat64, value)
	}
	_node = &MasteryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
