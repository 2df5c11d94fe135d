package postgres

import (
	"fmt"
	"reflect"

	sq "github.com/Masterminds/squirrel"

	"github.com/fordrm/the-a-team-sub000/internal/domain"
)

// Builder returns a squirrel statement builder using $N placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Columns maps the field names accepted in a domain.Query to table columns.
// Fields missing from the map are rejected.
type Columns map[string]string

// ApplyQuery adds the conditions, ordering and paging of q to b.
// Conditions are rendered in the order given; Eq never renders NULL
// comparisons because domain.Query rejects Eq with a nil value.
func ApplyQuery(b sq.SelectBuilder, q domain.Query, cols Columns) (sq.SelectBuilder, error) {
	if err := q.Validate(); err != nil {
		return b, err
	}

	for _, c := range q.Conds {
		col, ok := cols[c.Field]
		if !ok {
			return b, fmt.Errorf("unknown field %q: %w", c.Field, domain.ErrInvalidQuery)
		}
		switch c.Op {
		case domain.OpEq:
			b = b.Where(sq.Eq{col: plainValue(c.Value)})
		case domain.OpIsNull:
			b = b.Where(sq.Eq{col: nil})
		case domain.OpIn:
			values, err := plainSlice(c.Value)
			if err != nil {
				return b, fmt.Errorf("field %q: %w", c.Field, err)
			}
			if len(values) == 0 {
				// IN () matches nothing.
				b = b.Where(sq.Expr("FALSE"))
				continue
			}
			b = b.Where(sq.Eq{col: values})
		case domain.OpGte:
			b = b.Where(sq.GtOrEq{col: c.Value})
		case domain.OpLt:
			b = b.Where(sq.Lt{col: c.Value})
		default:
			return b, fmt.Errorf("op %s: %w", c.Op, domain.ErrInvalidQuery)
		}
	}

	if q.OrderBy != "" {
		col, ok := cols[q.OrderBy]
		if !ok {
			return b, fmt.Errorf("unknown order field %q: %w", q.OrderBy, domain.ErrInvalidQuery)
		}
		dir := " ASC"
		if q.Desc {
			dir = " DESC"
		}
		b = b.OrderBy(col + dir)
	}
	if q.Limit > 0 {
		b = b.Limit(uint64(q.Limit))
	}
	if q.Offset > 0 {
		b = b.Offset(uint64(q.Offset))
	}
	return b, nil
}

// plainValue turns named string types (domain enums) into plain strings so
// the driver and query mocks see the same value the column stores.
func plainValue(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String && rv.Type() != reflect.TypeOf("") {
		return rv.String()
	}
	return v
}

func plainSlice(v any) ([]any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("in requires a slice, got %T: %w", v, domain.ErrInvalidQuery)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = plainValue(rv.Index(i).Interface())
	}
	return out, nil
}
