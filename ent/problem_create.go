// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/drill/ent/due"
	"github.com/abhisek/drill/ent/problem"
	"github.com/abhisek/drill/ent/review"
)

// ProblemCreate is the builder for creating a Problem entity.
type ProblemCreate struct {
	config
	mutation *ProblemMutation
	hooks    []Hook
}

// SetCreatedDate sets the "created_date" field.
func (_c *ProblemCreate) SetCreatedDate(v time.Time) *ProblemCreate {
	_c.mutation.SetCreatedDate(v)
	return _c
}

// SetNillableCreatedDate sets the "created_date" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableCreatedDate(v *time.Time) *ProblemCreate {
	if v != nil {
		_c.SetCreatedDate(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ProblemCreate) SetName(v string) *ProblemCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSuspended sets the "suspended" field.
func (_c *ProblemCreate) SetSuspended(v bool) *ProblemCreate {
	_c.mutation.SetSuspended(v)
	return _c
}

// SetNillableSuspended sets the "suspended" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableSuspended(v *bool) *ProblemCreate {
	if v != nil {
		_c.SetSuspended(*v)
	}
	return _c
}

// SetSuspendReason sets the "suspend_reason" field.
func (_c *ProblemCreate) SetSuspendReason(v string) *ProblemCreate {
	_c.mutation.SetSuspendReason(v)
	return _c
}

// SetNillableSuspendReason sets the "suspend_reason" field if the given value is not nil.
func (_c *ProblemCreate) SetNillableSuspendReason(v *string) *ProblemCreate {
	if v != nil {
		_c.SetSuspendReason(*v)
	}
	return _c
}

// AddReviewIDs adds the "reviews" edge to the Review entity by IDs.
func (_c *ProblemCreate) AddReviewIDs(ids ...int) *ProblemCreate {
	_c.mutation.AddReviewIDs(ids...)
	return _c
}

// AddReviews adds the "reviews" edges to the Review entity.
func (_c *ProblemCreate) AddReviews(v ...*Review) *ProblemCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReviewIDs(ids...)
}

// SetDueID sets the "due" edge to the Due entity by ID.
func (_c *ProblemCreate) SetDueID(id int) *ProblemCreate {
	_c.mutation.SetDueID(id)
	return _c
}

// SetNillableDueID sets the "due" edge to the Due entity by ID if the given value is not nil.
func (_c *ProblemCreate) SetNillableDueID(id *int) *ProblemCreate {
	if id != nil {
		_c = _c.SetDueID(*id)
	}
	return _c
}

// SetDue sets the "due" edge to the Due entity.
func (_c *ProblemCreate) SetDue(v *Due) *ProblemCreate {
	return _c.SetDueID(v.ID)
}

// Mutation returns the ProblemMutation object of the builder.
func (_c *ProblemCreate) Mutation() *ProblemMutation {
	return _c.mutation
}

// Save creates the Problem in the database.
func (_c *ProblemCreate) Save(ctx context.Context) (*Problem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProblemCreate) SaveX(ctx context.Context) *Problem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProblemCreate) defaults() {
	if _, ok := _c.mutation.CreatedDate(); !ok {
		v := problem.DefaultCreatedDate()
		_c.mutation.SetCreatedDate(v)
	}
	if _, ok := _c.mutation.Suspended(); !ok {
		v := problem.DefaultSuspended
		_c.mutation.SetSuspended(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProblemCreate) check() error {
	if _, ok := _c.mutation.CreatedDate(); !ok {
		return &ValidationError{Name: "created_date", err: errors.New(`ent: missing required field "Problem.created_date"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Problem.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := problem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Problem.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Suspended(); !ok {
		return &ValidationError{Name: "suspended", err: errors.New(`ent: missing required field "Problem.suspended"`)}
	}
	return nil
}

func (_c *ProblemCreate) sqlSave(ctx context.Context) (*Problem, error) {
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

func (_c *ProblemCreate) createSpec() (*Problem, *sqlgraph.CreateSpec) {
	var (
		_node = &Problem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(problem.Table, sqlgraph.NewFieldSpec(problem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedDate(); ok {
		_spec.SetField(problem.FieldCreatedDate, field.TypeTime, value)
		_node.CreatedDate = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(problem.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Suspended(); ok {
		_spec.SetField(problem.FieldSuspended, field.TypeBool, value)
		_node.Suspended = value
	}
	if value, ok := _c.mutation.SuspendReason(); ok {
		_spec.SetField(problem.FieldSuspendReason, field.TypeString, value)
		_node.SuspendReason = &value
	}
	if nodes := _c.mutation.ReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   problem.ReviewsTable,
			Columns: []string{problem.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DueIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   problem.DueTable,
			Columns: []string{problem.DueColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(due.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProblemCreateBulk is the builder for creating many Problem entities in bulk.
type ProblemCreateBulk struct {
	config
	err      error
	builders []*ProblemCreate
}

// Save creates the Problem entities in the database.
func (_c *ProblemCreateBulk) Save(ctx context.Context) ([]*Problem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Problem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProblemMutation)
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
func (_c *ProblemCreateBulk) SaveX(ctx context.Context) []*Problem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
