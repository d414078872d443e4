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
	"github.com/abhisek/drill/ent/due"
	"github.com/abhisek/drill/ent/predicate"
)

// DueUpdate is the builder for updating Due entities.
type DueUpdate struct {
	config
	hooks    []Hook
	mutation *DueMutation
}

// Where appends a list predicates to the DueUpdate builder.
func (_u *DueUpdate) Where(ps ...predicate.Due) *DueUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *DueUpdate) SetDueDate(v time.Time) *DueUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *DueUpdate) SetNillableDueDate(v *time.Time) *DueUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// Mutation returns the DueMutation object of the builder.
func (_u *DueUpdate) Mutation() *DueMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DueUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DueUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DueUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DueUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DueUpdate) check() error {
	if _u.mutation.ProblemCleared() && len(_u.mutation.ProblemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Due.problem"`)
	}
	return nil
}

func (_u *DueUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(due.Table, due.Columns, sqlgraph.NewFieldSpec(due.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(due.FieldDueDate, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{due.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DueUpdateOne is the builder for updating a single Due entity.
type DueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DueMutation
}

// SetDueDate sets the "due_date" field.
func (_u *DueUpdateOne) SetDueDate(v time.Time) *DueUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *DueUpdateOne) SetNillableDueDate(v *time.Time) *DueUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// Mutation returns the DueMutation object of the builder.
func (_u *DueUpdateOne) Mutation() *DueMutation {
	return _u.mutation
}

// Where appends a list predicates to the DueUpdate builder.
func (_u *DueUpdateOne) Where(ps ...predicate.Due) *DueUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DueUpdateOne) Select(field string, fields ...string) *DueUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Due entity.
func (_u *DueUpdateOne) Save(ctx context.Context) (*Due, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DueUpdateOne) SaveX(ctx context.Context) *Due {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DueUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DueUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DueUpdateOne) check() error {
	if _u.mutation.ProblemCleared() && len(_u.mutation.ProblemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Due.problem"`)
	}
	return nil
}

func (_u *DueUpdateOne) sqlSave(ctx context.Context) (_node *Due, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(due.Table, due.Columns, sqlgraph.NewFieldSpec(due.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Due.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, due.FieldID)
		for _, f := range fields {
			if !due.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != due.FieldID {
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
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(due.FieldDueDate, field.TypeTime, value)
	}
	_node = &Due{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{due.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
