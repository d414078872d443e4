// Code generated by ent, DO NOT EDIT.

package problem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/drill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldID, id))
}

// CreatedDate applies equality check predicate on the "created_date" field. It's identical to CreatedDateEQ.
func CreatedDate(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldCreatedDate, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldName, v))
}

// Suspended applies equality check predicate on the "suspended" field. It's identical to SuspendedEQ.
func Suspended(v bool) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldSuspended, v))
}

// SuspendReason applies equality check predicate on the "suspend_reason" field. It's identical to SuspendReasonEQ.
func SuspendReason(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldSuspendReason, v))
}

// CreatedDateEQ applies the EQ predicate on the "created_date" field.
func CreatedDateEQ(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldCreatedDate, v))
}

// CreatedDateNEQ applies the NEQ predicate on the "created_date" field.
func CreatedDateNEQ(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldCreatedDate, v))
}

// CreatedDateIn applies the In predicate on the "created_date" field.
func CreatedDateIn(vs ...time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldCreatedDate, vs...))
}

// CreatedDateNotIn applies the NotIn predicate on the "created_date" field.
func CreatedDateNotIn(vs ...time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldCreatedDate, vs...))
}

// CreatedDateGT applies the GT predicate on the "created_date" field.
func CreatedDateGT(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldCreatedDate, v))
}

// CreatedDateGTE applies the GTE predicate on the "created_date" field.
func CreatedDateGTE(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldCreatedDate, v))
}

// CreatedDateLT applies the LT predicate on the "created_date" field.
func CreatedDateLT(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldCreatedDate, v))
}

// CreatedDateLTE applies the LTE predicate on the "created_date" field.
func CreatedDateLTE(v time.Time) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldCreatedDate, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContainsFold(FieldName, v))
}

// SuspendedEQ applies the EQ predicate on the "suspended" field.
func SuspendedEQ(v bool) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldSuspended, v))
}

// SuspendedNEQ applies the NEQ predicate on the "suspended" field.
func SuspendedNEQ(v bool) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldSuspended, v))
}

// SuspendReasonEQ applies the EQ predicate on the "suspend_reason" field.
func SuspendReasonEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEQ(FieldSuspendReason, v))
}

// SuspendReasonNEQ applies the NEQ predicate on the "suspend_reason" field.
func SuspendReasonNEQ(v string) predicate.Problem {
	return predicate.Problem(sql.FieldNEQ(FieldSuspendReason, v))
}

// SuspendReasonIn applies the In predicate on the "suspend_reason" field.
func SuspendReasonIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldIn(FieldSuspendReason, vs...))
}

// SuspendReasonNotIn applies the NotIn predicate on the "suspend_reason" field.
func SuspendReasonNotIn(vs ...string) predicate.Problem {
	return predicate.Problem(sql.FieldNotIn(FieldSuspendReason, vs...))
}

// SuspendReasonGT applies the GT predicate on the "suspend_reason" field.
func SuspendReasonGT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGT(FieldSuspendReason, v))
}

// SuspendReasonGTE applies the GTE predicate on the "suspend_reason" field.
func SuspendReasonGTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldGTE(FieldSuspendReason, v))
}

// SuspendReasonLT applies the LT predicate on the "suspend_reason" field.
func SuspendReasonLT(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLT(FieldSuspendReason, v))
}

// SuspendReasonLTE applies the LTE predicate on the "suspend_reason" field.
func SuspendReasonLTE(v string) predicate.Problem {
	return predicate.Problem(sql.FieldLTE(FieldSuspendReason, v))
}

// SuspendReasonContains applies the Contains predicate on the "suspend_reason" field.
func SuspendReasonContains(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContains(FieldSuspendReason, v))
}

// SuspendReasonHasPrefix applies the HasPrefix predicate on the "suspend_reason" field.
func SuspendReasonHasPrefix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasPrefix(FieldSuspendReason, v))
}

// SuspendReasonHasSuffix applies the HasSuffix predicate on the "suspend_reason" field.
func SuspendReasonHasSuffix(v string) predicate.Problem {
	return predicate.Problem(sql.FieldHasSuffix(FieldSuspendReason, v))
}

// SuspendReasonIsNil applies the IsNil predicate on the "suspend_reason" field.
func SuspendReasonIsNil() predicate.Problem {
	return predicate.Problem(sql.FieldIsNull(FieldSuspendReason))
}

// SuspendReasonNotNil applies the NotNil predicate on the "suspend_reason" field.
func SuspendReasonNotNil() predicate.Problem {
	return predicate.Problem(sql.FieldNotNull(FieldSuspendReason))
}

// SuspendReasonEqualFold applies the EqualFold predicate on the "suspend_reason" field.
func SuspendReasonEqualFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldEqualFold(FieldSuspendReason, v))
}

// SuspendReasonContainsFold applies the ContainsFold predicate on the "suspend_reason" field.
func SuspendReasonContainsFold(v string) predicate.Problem {
	return predicate.Problem(sql.FieldContainsFold(FieldSuspendReason, v))
}

// HasReviews applies the HasEdge predicate on the "reviews" edge.
func HasReviews() predicate.Problem {
	return predicate.Problem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReviewsTable, ReviewsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReviewsWith applies the HasEdge predicate on the "reviews" edge with a given conditions (other predicates).
func HasReviewsWith(preds ...predicate.Review) predicate.Problem {
	return predicate.Problem(func(s *sql.Selector) {
		step := newReviewsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDue applies the HasEdge predicate on the "due" edge.
func HasDue() predicate.Problem {
	return predicate.Problem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, DueTable, DueColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDueWith applies the HasEdge predicate on the "due" edge with a given conditions (other predicates).
func HasDueWith(preds ...predicate.Due) predicate.Problem {
	return predicate.Problem(func(s *sql.Selector) {
		step := newDueStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Problem) predicate.Problem {
	return predicate.Problem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Problem) predicate.Problem {
	return predicate.Problem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Problem) predicate.Problem {
	return predicate.Problem(sql.NotPredicates(p))
}
