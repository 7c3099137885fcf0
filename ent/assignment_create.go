// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classpulse/classpulse/ent/assignment"
)

// AssignmentCreate is the builder for creating a Assignment entity.
type AssignmentCreate struct {
	config
	mutation *AssignmentMutation
	hooks    []Hook
}

// SetAssignmentID sets the "assignment_id" field.
func (_c *AssignmentCreate) SetAssignmentID(v string) *AssignmentCreate {
	_c.mutation.SetAssignmentID(v)
	return _c
}

// SetClassID sets the "class_id" field.
func (_c *AssignmentCreate) SetClassID(v string) *AssignmentCreate {
	_c.mutation.SetClassID(v)
	return _c
}

// SetNillableClassID sets the "class_id" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableClassID(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetClassID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *AssignmentCreate) SetTitle(v string) *AssignmentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableTitle(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *AssignmentCreate) SetDueAt(v time.Time) *AssignmentCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// Mutation returns the AssignmentMutation object of the builder.
func (_c *AssignmentCreate) Mutation() *AssignmentMutation {
	return _c.mutation
}

// Save creates the Assignment in the database.
func (_c *AssignmentCreate) Save(ctx context.Context) (*Assignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssignmentCreate) SaveX(ctx context.Context) *Assignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssignmentCreate) defaults() {
	if _, ok := _c.mutation.ClassID(); !ok {
		v := assignment.DefaultClassID
		_c.mutation.SetClassID(v)
	}
	if _, ok := _c.mutation.Title(); !ok {
		v := assignment.DefaultTitle
		_c.mutation.SetTitle(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssignmentCreate) check() error {
	if _, ok := _c.mutation.AssignmentID(); !ok {
		return &ValidationError{Name: "assignment_id", err: errors.New(`ent: missing required field "Assignment.assignment_id"`)}
	}
	if v, ok := _c.mutation.AssignmentID(); ok {
		if err := assignment.AssignmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_id", err: fmt.Errorf(`ent: validator failed for field "Assignment.assignment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClassID(); !ok {
		return &ValidationError{Name: "class_id", err: errors.New(`ent: missing required field "Assignment.class_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Assignment.title"`)}
	}
	if _, ok := _c.mutation.DueAt(); !ok {
		return &ValidationError{Name: "due_at", err: errors.New(`ent: missing required field "Assignment.due_at"`)}
	}
	return nil
}

func (_c *AssignmentCreate) sqlSave(ctx context.Context) (*Assignment, error) {
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

func (_c *AssignmentCreate) createSpec() (*Assignment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assignment.Table, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AssignmentID(); ok {
		_spec.SetField(assignment.FieldAssignmentID, field.TypeString, value)
		_node.AssignmentID = value
	}
	if value, ok := _c.mutation.ClassID(); ok {
		_spec.SetField(assignment.FieldClassID, field.TypeString, value)
		_node.ClassID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(assignment.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(assignment.FieldDueAt, field.TypeTime, value)
		_node.DueAt = value
	}
	return _node, _spec
}

// AssignmentCreateBulk is the builder for creating many Assignment entities in bulk.
type AssignmentCreateBulk struct {
	config
	err      error
	builders []*AssignmentCreate
}

// Save creates the Assignment entities in the database.
func (_c *AssignmentCreateBulk) Save(ctx context.Context) ([]*Assignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssignmentMutation)
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
func (_c *AssignmentCreateBulk) SaveX(ctx context.Context) []*Assignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
