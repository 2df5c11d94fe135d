package domain

import (
	"fmt"
	"time"
)

// Op is the comparison applied by a Cond.
type Op int

const (
	// OpEq matches rows whose field equals Value. It never matches NULL.
	OpEq Op = iota
	// OpIsNull matches rows whose field is NULL. Value is ignored.
	OpIsNull
	// OpIn matches rows whose field equals any element of Value (a slice).
	OpIn
	// OpGte matches rows whose field is >= Value.
	OpGte
	// OpLt matches rows whose field is < Value.
	OpLt
)

func (o Op) String() string {
	switch o {
	case OpEq:
		return "eq"
	case OpIsNull:
		return "is_null"
	case OpIn:
		return "in"
	case OpGte:
		return "gte"
	case OpLt:
		return "lt"
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Cond is a single filter condition over a named field.
type Cond struct {
	Field string
	Op    Op
	Value any
}

// Eq builds an equality condition.
func Eq(field string, value any) Cond { return Cond{Field: field, Op: OpEq, Value: value} }

// IsNull builds a null check.
func IsNull(field string) Cond { return Cond{Field: field, Op: OpIsNull} }

// In builds a membership condition.
func In(field string, values any) Cond { return Cond{Field: field, Op: OpIn, Value: values} }

// Gte builds a lower-bound condition, typically on a timestamp.
func Gte(field string, value time.Time) Cond { return Cond{Field: field, Op: OpGte, Value: value} }

// Lt builds a strict upper-bound condition, typically on a timestamp.
func Lt(field string, value time.Time) Cond { return Cond{Field: field, Op: OpLt, Value: value} }

// EqOrNull returns IsNull(field) when value is a nil pointer and Eq otherwise.
// Equality never matches NULL, so optional key columns must go through here.
func EqOrNull[T any](field string, value *T) Cond {
	if value == nil {
		return IsNull(field)
	}
	return Eq(field, *value)
}

// Query selects records from a collection. All Conds are ANDed.
// Limit 0 means no limit.
type Query struct {
	Conds   []Cond
	OrderBy string
	Desc    bool
	Limit   int
	Offset  int
}

// Validate checks the query shape independent of any collection.
func (q Query) Validate() error {
	for _, c := range q.Conds {
		if c.Field == "" {
			return fmt.Errorf("%w: condition without field", ErrInvalidQuery)
		}
		if c.Op == OpEq && c.Value == nil {
			return fmt.Errorf("%w: %s: equality against nil, use IsNull", ErrInvalidQuery, c.Field)
		}
		if c.Op < OpEq || c.Op > OpLt {
			return fmt.Errorf("%w: %s: unknown operator %s", ErrInvalidQuery, c.Field, c.Op)
		}
	}
	if q.Limit < 0 || q.Offset < 0 {
		return fmt.Errorf("%w: negative limit or offset", ErrInvalidQuery)
	}
	return nil
}
