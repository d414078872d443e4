// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/drill/ent/due"
	"github.com/abhisek/drill/ent/predicate"
	"github.com/abhisek/drill/ent/problem"
	"github.com/abhisek/drill/ent/review"
)

// ProblemUpdate is the builder for updating Problem entities.
type ProblemUpdate struct {
	config
	hooks    []Hook
	mutation *ProblemMutation
}

// Where appends a list predicates to the ProblemUpdate builder.
func (_u *ProblemUpdate) Where(ps ...predicate.Problem) *ProblemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProblemUpdate) SetName(v string) *ProblemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableName(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSuspended sets the "suspended" field.
func (_u *ProblemUpdate) SetSuspended(v bool) *ProblemUpdate {
	_u.mutation.SetSuspended(v)
	return _u
}

// SetNillableSuspended sets the "suspended" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableSuspended(v *bool) *ProblemUpdate {
	if v != nil {
		_u.SetSuspended(*v)
	}
	return _u
}

// SetSuspendReason sets the "suspend_reason" field.
func (_u *ProblemUpdate) SetSuspendReason(v string) *ProblemUpdate {
	_u.mutation.SetSuspendReason(v)
	return _u
}

// SetNillableSuspendReason sets the "suspend_reason" field if the given value is not nil.
func (_u *ProblemUpdate) SetNillableSuspendReason(v *string) *ProblemUpdate {
	if v != nil {
		_u.SetSuspendReason(*v)
	}
	return _u
}

// ClearSuspendReason clears the value of the "suspend_reason" field.
func (_u *ProblemUpdate) ClearSuspendReason() *ProblemUpdate {
	_u.mutation.ClearSuspendReason()
	return _u
}

// AddReviewIDs adds the "reviews" edge to the Review entity by IDs.
func (_u *ProblemUpdate) AddReviewIDs(ids ...int) *ProblemUpdate {
	_u.mutation.AddReviewIDs(ids...)
	return _u
}

// AddReviews adds the "reviews" edges to the Review entity.
func (_u *ProblemUpdate) AddReviews(v ...*Review) *ProblemUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewIDs(ids...)
}

// SetDueID sets the "due" edge to the Due entity by ID.
func (_u *ProblemUpdate) SetDueID(id int) *ProblemUpdate {
	_u.mutation.SetDueID(id)
	return _u
}

// SetNillableDueID sets the "due" edge to the Due entity by ID if the given value is not nil.
func (_u *ProblemUpdate) SetNillableDueID(id *int) *ProblemUpdate {
	if id != nil {
		_u = _u.SetDueID(*id)
	}
	return _u
}

// SetDue sets the "due" edge to the Due entity.
func (_u *ProblemUpdate) SetDue(v *Due) *ProblemUpdate {
	return _u.SetDueID(v.ID)
}

// Mutation returns the ProblemMutation object of the builder.
func (_u *ProblemUpdate) Mutation() *ProblemMutation {
	return _u.mutation
}

// ClearReviews clears all "reviews" edges to the Review entity.
func (_u *ProblemUpdate) ClearReviews() *ProblemUpdate {
	_u.mutation.ClearReviews()
	return _u
}

// RemoveReviewIDs removes the "reviews" edge to Review entities by IDs.
func (_u *ProblemUpdate) RemoveReviewIDs(ids ...int) *ProblemUpdate {
	_u.mutation.RemoveReviewIDs(ids...)
	return _u
}

// RemoveReviews removes "reviews" edges to Review entities.
func (_u *ProblemUpdate) RemoveReviews(v ...*Review) *ProblemUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewIDs(ids...)
}

// ClearDue clears the "due" edge to the Due entity.
func (_u *ProblemUpdate) ClearDue() *ProblemUpdate {
	_u.mutation.ClearDue()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProblemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProblemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := problem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Problem.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ProblemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problem.Table, problem.Columns, sqlgraph.NewFieldSpec(problem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(problem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Suspended(); ok {
		_spec.SetField(problem.FieldSuspended, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SuspendReason(); ok {
		_spec.SetField(problem.FieldSuspendReason, field.TypeString, value)
	}
	if _u.mutation.SuspendReasonCleared() {
		_spec.ClearField(problem.FieldSuspendReason, field.TypeString)
	}
	if _u.mutation.ReviewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewsIDs(); len(nodes) > 0 && !_u.mutation.ReviewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DueCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DueIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProblemUpdateOne is the builder for updating a single Problem entity.
type ProblemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProblemMutation
}

// SetName sets the "name" field.
func (_u *ProblemUpdateOne) SetName(v string) *ProblemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableName(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSuspended sets the "suspended" field.
func (_u *ProblemUpdateOne) SetSuspended(v bool) *ProblemUpdateOne {
	_u.mutation.SetSuspended(v)
	return _u
}

// SetNillableSuspended sets the "suspended" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableSuspended(v *bool) *ProblemUpdateOne {
	if v != nil {
		_u.SetSuspended(*v)
	}
	return _u
}

// SetSuspendReason sets the "suspend_reason" field.
func (_u *ProblemUpdateOne) SetSuspendReason(v string) *ProblemUpdateOne {
	_u.mutation.SetSuspendReason(v)
	return _u
}

// SetNillableSuspendReason sets the "suspend_reason" field if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableSuspendReason(v *string) *ProblemUpdateOne {
	if v != nil {
		_u.SetSuspendReason(*v)
	}
	return _u
}

// ClearSuspendReason clears the value of the "suspend_reason" field.
func (_u *ProblemUpdateOne) ClearSuspendReason() *ProblemUpdateOne {
	_u.mutation.ClearSuspendReason()
	return _u
}

// AddReviewIDs adds the "reviews" edge to the Review entity by IDs.
func (_u *ProblemUpdateOne) AddReviewIDs(ids ...int) *ProblemUpdateOne {
	_u.mutation.AddReviewIDs(ids...)
	return _u
}

// AddReviews adds the "reviews" edges to the Review entity.
func (_u *ProblemUpdateOne) AddReviews(v ...*Review) *ProblemUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewIDs(ids...)
}

// SetDueID sets the "due" edge to the Due entity by ID.
func (_u *ProblemUpdateOne) SetDueID(id int) *ProblemUpdateOne {
	_u.mutation.SetDueID(id)
	return _u
}

// SetNillableDueID sets the "due" edge to the Due entity by ID if the given value is not nil.
func (_u *ProblemUpdateOne) SetNillableDueID(id *int) *ProblemUpdateOne {
	if id != nil {
		_u = _u.SetDueID(*id)
	}
	return _u
}

// SetDue sets the "due" edge to the Due entity.
func (_u *ProblemUpdateOne) SetDue(v *Due) *ProblemUpdateOne {
	return _u.SetDueID(v.ID)
}

// Mutation returns the ProblemMutation object of the builder.
func (_u *ProblemUpdateOne) Mutation() *ProblemMutation {
	return _u.mutation
}

// ClearReviews clears all "reviews" edges to the Review entity.
func (_u *ProblemUpdateOne) ClearReviews() *ProblemUpdateOne {
	_u.mutation.ClearReviews()
	return _u
}

// RemoveReviewIDs removes the "reviews" edge to Review entities by IDs.
func (_u *ProblemUpdateOne) RemoveReviewIDs(ids ...int) *ProblemUpdateOne {
	_u.mutation.RemoveReviewIDs(ids...)
	return _u
}

// RemoveReviews removes "reviews" edges to Review entities.
func (_u *ProblemUpdateOne) RemoveReviews(v ...*Review) *ProblemUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewIDs(ids...)
}

// ClearDue clears the "due" edge to the Due entity.
func (_u *ProblemUpdateOne) ClearDue() *ProblemUpdateOne {
	_u.mutation.ClearDue()
	return _u
}

// Where appends a list predicates to the ProblemUpdate builder.
func (_u *ProblemUpdateOne) Where(ps ...predicate.Problem) *ProblemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProblemUpdateOne) Select(field string, fields ...string) *ProblemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Problem entity.
func (_u *ProblemUpdateOne) Save(ctx context.Context) (*Problem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProblemUpdateOne) SaveX(ctx context.Context) *Problem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProblemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProblemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProblemUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := problem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Problem.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ProblemUpdateOne) sqlSave(ctx context.Context) (_node *Problem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(problem.Table, problem.Columns, sqlgraph.NewFieldSpec(problem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Problem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, problem.FieldID)
		for _, f := range fields {
			if !problem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != problem.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(problem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Suspended(); ok {
		_spec.SetField(problem.FieldSuspended, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SuspendReason(); ok {
		_spec.SetField(problem.FieldSuspendReason, field.TypeString, value)
	}
	if _u.mutation.SuspendReasonCleared() {
		_spec.ClearField(problem.FieldSuspendReason, field.TypeString)
	}
	if _u.mutation.ReviewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewsIDs(); len(nodes) > 0 && !_u.mutation.ReviewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DueCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DueIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Problem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{problem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
