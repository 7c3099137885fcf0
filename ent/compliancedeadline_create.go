// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classpulse/classpulse/ent/compliancedeadline"
)

// ComplianceDeadlineCreate is the builder for creating a ComplianceDeadline entity.
type ComplianceDeadlineCreate struct {
	config
	mutation *ComplianceDeadlineMutation
	hooks    []Hook
}

// SetDeadlineID sets the "deadline_id" field.
func (_c *ComplianceDeadlineCreate) SetDeadlineID(v string) *ComplianceDeadlineCreate {
	_c.mutation.SetDeadlineID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *ComplianceDeadlineCreate) SetStudentID(v string) *ComplianceDeadlineCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *ComplianceDeadlineCreate) SetType(v string) *ComplianceDeadlineCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *ComplianceDeadlineCreate) SetDueAt(v time.Time) *ComplianceDeadlineCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ComplianceDeadlineCreate) SetStatus(v string) *ComplianceDeadlineCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ComplianceDeadlineCreate) SetNillableStatus(v *string) *ComplianceDeadlineCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ComplianceDeadlineCreate) SetCompletedAt(v time.Time) *ComplianceDeadlineCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ComplianceDeadlineCreate) SetNillableCompletedAt(v *time.Time) *ComplianceDeadlineCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the ComplianceDeadlineMutation object of the builder.
func (_c *ComplianceDeadlineCreate) Mutation() *ComplianceDeadlineMutation {
	return _c.mutation
}

// Save creates the ComplianceDeadline in the database.
func (_c *ComplianceDeadlineCreate) Save(ctx context.Context) (*ComplianceDeadline, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ComplianceDeadlineCreate) SaveX(ctx context.Context) *ComplianceDeadline {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComplianceDeadlineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComplianceDeadlineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ComplianceDeadlineCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := compliancedeadline.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ComplianceDeadlineCreate) check() error {
	if _, ok := _c.mutation.DeadlineID(); !ok {
		return &ValidationError{Name: "deadline_id", err: errors.New(`ent: missing required field "ComplianceDeadline.deadline_id"`)}
	}
	if v, ok := _c.mutation.DeadlineID(); ok {
		if err := compliancedeadline.DeadlineIDValidator(v); err != nil {
			return &ValidationError{Name: "deadline_id", err: fmt.Errorf(`ent: validator failed for field "ComplianceDeadline.deadline_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "ComplianceDeadline.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := compliancedeadline.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ComplianceDeadline.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "ComplianceDeadline.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := compliancedeadline.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "ComplianceDeadline.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DueAt(); !ok {
		return &ValidationError{Name: "due_at", err: errors.New(`ent: missing required field "ComplianceDeadline.due_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ComplianceDeadline.status"`)}
	}
	return nil
}

func (_c *ComplianceDeadlineCreate) sqlSave(ctx context.Context) (*ComplianceDeadline, error) {
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

func (_c *ComplianceDeadlineCreate) createSpec() (*ComplianceDeadline, *sqlgraph.CreateSpec) {
	var (
		_node = &ComplianceDeadline{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(compliancedeadline.Table, sqlgraph.NewFieldSpec(compliancedeadline.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DeadlineID(); ok {
		_spec.SetField(compliancedeadline.FieldDeadlineID, field.TypeString, value)
		_node.DeadlineID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(compliancedeadline.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(compliancedeadline.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(compliancedeadline.FieldDueAt, field.TypeTime, value)
		_node.DueAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(compliancedeadline.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(compliancedeadline.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// ComplianceDeadlineCreateBulk is the builder for creating many ComplianceDeadline entities in bulk.
type ComplianceDeadlineCreateBulk struct {
	config
	err      error
	builders []*ComplianceDeadlineCreate
}

// Save creates the ComplianceDeadline entities in the database.
func (_c *ComplianceDeadlineCreateBulk) Save(ctx context.Context) ([]*ComplianceDeadline, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ComplianceDeadline, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ComplianceDeadlineMutation)
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
func (_c *ComplianceDeadlineCreateBulk) SaveX(ctx context.Context) []*ComplianceDeadline {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComplianceDeadlineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComplianceDeadlineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
