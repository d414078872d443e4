// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/drill/ent/due"
	"github.com/abhisek/drill/ent/problem"
)

// Due is the model entity for the Due schema.
type Due struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ProblemID holds the value of the "problem_id" field.
	ProblemID int `json:"problem_id,omitempty"`
	// When the problem should next be presented
	DueDate time.Time `json:"due_date,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DueQuery when eager-loading is set.
	Edges        DueEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DueEdges holds the relations/edges for other nodes in the graph.
type DueEdges struct {
	// Problem holds the value of the problem edge.
	Problem *Problem `json:"problem,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProblemOrErr returns the Problem value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DueEdges) ProblemOrErr() (*Problem, error) {
	if e.Problem != nil {
		return e.Problem, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: problem.Label}
	}
	return nil, &NotLoadedError{edge: "problem"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Due) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case due.FieldID, due.FieldProblemID:
			values[i] = new(sql.NullInt64)
		case due.FieldDueDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Due fields.
func (_m *Due) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case due.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case due.FieldProblemID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field problem_id", values[i])
			} else if value.Valid {
				_m.ProblemID = int(value.Int64)
			}
		case due.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Due.
// This includes values selected through modifiers, order, etc.
func (_m *Due) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProblem queries the "problem" edge of the Due entity.
func (_m *Due) QueryProblem() *ProblemQuery {
	return NewDueClient(_m.config).QueryProblem(_m)
}

// Update returns a builder for updating this Due.
// Note that you need to call Due.Unwrap() before calling this method if this Due
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Due) Update() *DueUpdateOne {
	return NewDueClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Due entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Due) Unwrap() *Due {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Due is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Due) String() string {
	var builder strings.Builder
	builder.WriteString("Due(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("problem_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProblemID))
	builder.WriteString(", ")
	builder.WriteString("due_date=")
	builder.WriteString(_m.DueDate.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Dues is a parsable slice of Due.
type Dues []*Due
