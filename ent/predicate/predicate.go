// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Due is the predicate function for due builders.
type Due func(*sql.Selector)

// Problem is the predicate function for problem builders.
type Problem func(*sql.Selector)

// Review is the predicate function for review builders.
type Review func(*sql.Selector)
