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

// Problem is the model entity for the Problem schema.
type Problem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Wall-clock time the record was created
	CreatedDate time.Time `json:"created_date,omitempty"`
	// Generator kind, e.g. bytes2bits
	Name string `json:"name,omitempty"`
	// Suspended problems are never presented
	Suspended bool `json:"suspended,omitempty"`
	// SuspendReason holds the value of the "suspend_reason" field.
	SuspendReason *string `json:"suspend_reason,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProblemQuery when eager-loading is set.
	Edges        ProblemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProblemEdges holds the relations/edges for other nodes in the graph.
type ProblemEdges struct {
	// Reviews holds the value of the reviews edge.
	Reviews []*Review `json:"reviews,omitempty"`
	// Due holds the value of the due edge.
	Due *Due `json:"due,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ReviewsOrErr returns the Reviews value or an error if the edge
// was not loaded in eager-loading.
func (e ProblemEdges) ReviewsOrErr() ([]*Review, error) {
	if e.loadedTypes[0] {
		return e.Reviews, nil
	}
	return nil, &NotLoadedError{edge: "reviews"}
}

// DueOrErr returns the Due value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProblemEdges) DueOrErr() (*Due, error) {
	if e.Due != nil {
		return e.Due, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: due.Label}
	}
	return nil, &NotLoadedError{edge: "due"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Problem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case problem.FieldSuspended:
			values[i] = new(sql.NullBool)
		case problem.FieldID:
			values[i] = new(sql.NullInt64)
		case problem.FieldName, problem.FieldSuspendReason:
			values[i] = new(sql.NullString)
		case problem.FieldCreatedDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Problem fields.
func (_m *Problem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case problem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case problem.FieldCreatedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_date", values[i])
			} else if value.Valid {
				_m.CreatedDate = value.Time
			}
		case problem.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case problem.FieldSuspended:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field suspended", values[i])
			} else if value.Valid {
				_m.Suspended = value.Bool
			}
		case problem.FieldSuspendReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suspend_reason", values[i])
			} else if value.Valid {
				_m.SuspendReason = new(string)
				*_m.SuspendReason = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Problem.
// This includes values selected through modifiers, order, etc.
func (_m *Problem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReviews queries the "reviews" edge of the Problem entity.
func (_m *Problem) QueryReviews() *ReviewQuery {
	return NewProblemClient(_m.config).QueryReviews(_m)
}

// QueryDue queries the "due" edge of the Problem entity.
func (_m *Problem) QueryDue() *DueQuery {
	return NewProblemClient(_m.config).QueryDue(_m)
}

// Update returns a builder for updating this Problem.
// Note that you need to call Problem.Unwrap() before calling this method if this Problem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Problem) Update() *ProblemUpdateOne {
	return NewProblemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Problem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Problem) Unwrap() *Problem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Problem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Problem) String() string {
	var builder strings.Builder
	builder.WriteString("Problem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_date=")
	builder.WriteString(_m.CreatedDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("suspended=")
	builder.WriteString(fmt.Sprintf("%v", _m.Suspended))
	builder.WriteString(", ")
	if v := _m.SuspendReason; v != nil {
		builder.WriteString("suspend_reason=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Problems is a parsable slice of Problem.
type Problems []*Problem
