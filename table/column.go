package table

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("input file not found")

// ErrBadColumnRef indicates a column reference that is neither a name, an
// index, nor a value sequence.
var ErrBadColumnRef = errors.New("column reference must be a name, an index, or a value sequence")

// ErrColumnNotFound indicates a name or index that matches no column.
var ErrColumnNotFound = errors.New("column not found")

type refKind int

const (
	refNone refKind = iota
	refName
	refIndex
	refValues
)

// ColumnRef identifies a single column: by name, by position, or by a
// literal sequence of already-extracted values. The zero ColumnRef is
// invalid and resolves to ErrBadColumnRef.
type ColumnRef struct {
	kind   refKind
	name   string
	index  int
	values []Value
}

// ByName references a column by its header name.
func ByName(name string) ColumnRef {
	return ColumnRef{kind: refName, name: name}
}

// ByIndex references a column by its zero-based position.
func ByIndex(i int) ColumnRef {
	return ColumnRef{kind: refIndex, index: i}
}

// FromValues wraps an already-extracted value sequence as a reference.
func FromValues(values []Value) ColumnRef {
	return ColumnRef{kind: refValues, values: values}
}

// Resolve returns the referenced cells and the column's display name.
func (t *Table) Resolve(ref ColumnRef) ([]Value, string, error) {
	switch ref.kind {
	case refName:
		i, ok := t.ColumnIndex(ref.name)
		if !ok {
			return nil, "", fmt.Errorf("%w: %q", ErrColumnNotFound, ref.name)
		}
		return t.Column(i), ref.name, nil
	case refIndex:
		if ref.index < 0 || ref.index >= len(t.names) {
			return nil, "", fmt.Errorf("%w: index %d", ErrColumnNotFound, ref.index)
		}
		return t.Column(ref.index), t.names[ref.index], nil
	case refValues:
		cells := make([]Value, len(ref.values))
		copy(cells, ref.values)
		return cells, "values", nil
	default:
		return nil, "", ErrBadColumnRef
	}
}

// Numeric resolves ref and coerces every cell to a float64. Cells that
// cannot be converted become NaN, so the result keeps the column's length
// and row order. The second return is the column's display name.
func (t *Table) Numeric(ref ColumnRef) ([]float64, string, error) {
	cells, name, err := t.Resolve(ref)
	if err != nil {
		return nil, "", err
	}
	series := make([]float64, len(cells))
	for i, v := range cells {
		series[i] = coerce(v)
	}
	return series, name, nil
}

// coerce converts one cell to a float64, NaN when not possible.
func coerce(v Value) float64 {
	switch v.Kind {
	case KindNumber:
		return v.Num
	case KindString:
		s := strings.TrimSpace(v.Str)
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return math.NaN()
}
