// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classpulse/classpulse/ent/compliancedeadline"
	"github.com/classpulse/classpulse/ent/predicate"
)

// ComplianceDeadlineDelete is the builder for deleting a ComplianceDeadline entity.
type ComplianceDeadlineDelete struct {
	config
	hooks    []Hook
	mutation *ComplianceDeadlineMutation
}

// Where appends a list predicates to the ComplianceDeadlineDelete builder.
func (_d *ComplianceDeadlineDelete) Where(ps ...predicate.ComplianceDeadline) *ComplianceDeadlineDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ComplianceDeadlineDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ComplianceDeadlineDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ComplianceDeadlineDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(compliancedeadline.Table, sqlgraph.NewFieldSpec(compliancedeadline.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ComplianceDeadlineDeleteOne is the builder for deleting a single ComplianceDeadline entity.
type ComplianceDeadlineDeleteOne struct {
	_d *ComplianceDeadlineDelete
}

// Where appends a list predicates to the ComplianceDeadlineDelete builder.
func (_d *ComplianceDeadlineDeleteOne) Where(ps ...predicate.ComplianceDeadline) *ComplianceDeadlineDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ComplianceDeadlineDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{compliancedeadline.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ComplianceDeadlineDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
