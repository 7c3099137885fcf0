// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classpulse/classpulse/ent/masteryrecord"
)

// MasteryRecordCreate is the builder for creating a MasteryRecord entity.
type MasteryRecordCreate struct {
	config
	mutation *MasteryRecordMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *MasteryRecordCreate) SetStudentID(v string) *MasteryRecordCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetStandardID sets the "standard_id" field.
func (_c *MasteryRecordCreate) SetStandardID(v string) *MasteryRecordCreate {
	_c.mutation.SetStandardID(v)
	return _c
}

// SetStandardDescription sets the "standard_description" field.
func (_c *MasteryRecordCreate) SetStandardDescription(v string) *MasteryRecordCreate {
	_c.mutation.SetStandardDescription(v)
	return _c
}

// SetNillableStandardDescription sets the "standard_description" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableStandardDescription(v *string) *MasteryRecordCreate {
	if v != nil {
		_c.SetStandardDescription(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *MasteryRecordCreate) SetSubject(v string) *MasteryRecordCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableSubject(v *string) *MasteryRecordCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *MasteryRecordCreate) SetLevel(v string) *MasteryRecordCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *MasteryRecordCreate) SetScore(v float64) *MasteryRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetAssessedAt sets the "assessed_at" field.
func (_c *MasteryRecordCreate) SetAssessedAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetAssessedAt(v)
	return _c
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_c *MasteryRecordCreate) Mutation() *MasteryRecordMutation {
	return _c.mutation
}

// Save creates the MasteryRecord in the database.
func (_c *MasteryRecordCreate) Save(ctx context.Context) (*MasteryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryRecordCreate) SaveX(ctx context.Context) *MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryRecordCreate) defaults() {
	if _, ok := _c.mutation.StandardDescription(); !ok {
		v := masteryrecord.DefaultStandardDescription
		_c.mutation.SetStandardDescription(v)
	}
	if _, ok := _c.mutation.Subject(); !ok {
		v := masteryrecord.DefaultSubject
		_c.mutation.SetSubject(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryRecordCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "MasteryRecord.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := masteryrecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StandardID(); !ok {
		return &ValidationError{Name: "standard_id", err: errors.New(`ent: missing required field "MasteryRecord.standard_id"`)}
	}
	if v, ok := _c.mutation.StandardID(); ok {
		if err := masteryrecord.StandardIDValidator(v); err != nil {
			return &ValidationError{Name: "standard_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.standard_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StandardDescription(); !ok {
		return &ValidationError{Name: "standard_description", err: errors.New(`ent: missing required field "MasteryRecord.standard_description"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "MasteryRecord.subject"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "MasteryRecord.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := masteryrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "MasteryRecord.score"`)}
	}
	if _, ok := _c.mutation.AssessedAt(); !ok {
		return &ValidationError{Name: "assessed_at", err: errors.New(`ent: missing required field "MasteryRecord.assessed_at"`)}
	}
	return nil
}

func (_c *MasteryRecordCreate) sqlSave(ctx context.Context) (*MasteryRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MasteryRecordCreate) createSpec() (*MasteryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteryrecord.Table, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(masteryrecord.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.StandardID(); ok {
		_spec.SetField(masteryrecord.FieldStandardID, field.TypeString, value)
		_node.StandardID = value
	}
	if value, ok := _c.mutation.StandardDescription(); ok {
		_spec.SetField(masteryrecord.FieldStandardDescription, field.TypeString, value)
		_node.StandardDescription = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(masteryrecord.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(masteryrecord.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.AssessedAt(); ok {
		_spec.SetField(masteryrecord.FieldAssessedAt, field.TypeTime, value)
		_node.AssessedAt = value
	}
	return _node, _spec
}

// MasteryRecordCreateBulk is the builder for creating many MasteryRecord entities in bulk.
type MasteryRecordCreateBulk struct {
	config
	err      error
	builders []*MasteryRecordCreate
}

// Save creates the MasteryRecord entities in the database.
func (_c *MasteryRecordCreateBulk) Save(ctx context.Context) ([]*MasteryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) SaveX(ctx context.Context) []*MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
