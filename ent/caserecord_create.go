// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classpulse/classpulse/ent/caserecord"
)

// CaseRecordCreate is the builder for creating a CaseRecord entity.
type CaseRecordCreate struct {
	config
	mutation *CaseRecordMutation
	hooks    []Hook
}

// SetCaseManagerID sets the "case_manager_id" field.
func (_c *CaseRecordCreate) SetCaseManagerID(v string) *CaseRecordCreate {
	_c.mutation.SetCaseManagerID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *CaseRecordCreate) SetStudentID(v string) *CaseRecordCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// Mutation returns the CaseRecordMutation object of the builder.
func (_c *CaseRecordCreate) Mutation() *CaseRecordMutation {
	return _c.mutation
}

// Save creates the CaseRecord in the database.
func (_c *CaseRecordCreate) Save(ctx context.Context) (*CaseRecord, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaseRecordCreate) SaveX(ctx context.Context) *CaseRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaseRecordCreate) check() error {
	if _, ok := _c.mutation.CaseManagerID(); !ok {
		return &ValidationError{Name: "case_manager_id", err: errors.New(`ent: missing required field "CaseRecord.case_manager_id"`)}
	}
	if v, ok := _c.mutation.CaseManagerID(); ok {
		if err := caserecord.CaseManagerIDValidator(v); err != nil {
			return &ValidationError{Name: "case_manager_id", err: fmt.Errorf(`ent: validator failed for field "CaseRecord.case_manager_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "CaseRecord.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := caserecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "CaseRecord.student_id": %w`, err)}
		}
	}
	return nil
}

func (_c *CaseRecordCreate) sqlSave(ctx context.Context) (*CaseRecord, error) {
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

func (_c *CaseRecordCreate) createSpec() (*CaseRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &CaseRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(caserecord.Table, sqlgraph.NewFieldSpec(caserecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CaseManagerID(); ok {
		_spec.SetField(caserecord.FieldCaseManagerID, field.TypeString, value)
		_node.CaseManagerID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(caserecord.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	return _node, _spec
}

// CaseRecordCreateBulk is the builder for creating many CaseRecord entities in bulk.
type CaseRecordCreateBulk struct {
	config
	err      error
	builders []*CaseRecordCreate
}

// Save creates the CaseRecord entities in the database.
func (_c *CaseRecordCreateBulk) Save(ctx context.Context) ([]*CaseRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaseRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaseRecordMutation)
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
func (_c *CaseRecordCreateBulk) SaveX(ctx context.Context) []*CaseRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
