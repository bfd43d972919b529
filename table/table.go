package table

import (
	"strconv"
	"strings"
	"time"
)

// Kind identifies the runtime type of a cell value.
type Kind int

const (
	// KindMissing marks a cell that is absent or not coercible.
	KindMissing Kind = iota
	// KindNumber marks a numeric cell.
	KindNumber
	// KindString marks a textual cell.
	KindString
	// KindTime marks a cell parsed as a calendar timestamp.
	KindTime
)

// Value is a single cell of a Table. The zero Value is missing.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	Time time.Time
}

// Number creates a numeric cell value.
func Number(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// String creates a textual cell value.
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Timestamp creates a calendar timestamp cell value.
func Timestamp(t time.Time) Value {
	return Value{Kind: KindTime, Time: t}
}

// Table is an ordered collection of named columns. All columns share the
// same row count. A Table is built once by a loader and not mutated
// afterwards, except for the date-parsing transform applied at load time.
type Table struct {
	names []string
	cols  [][]Value
}

// New creates an empty table with the given column names.
func New(names []string) *Table {
	t := &Table{
		names: make([]string, len(names)),
		cols:  make([][]Value, len(names)),
	}
	copy(t.names, names)
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0])
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, n := range t.names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// Column returns a copy of the column at position i.
func (t *Table) Column(i int) []Value {
	if i < 0 || i >= len(t.cols) {
		return nil
	}
	col := make([]Value, len(t.cols[i]))
	copy(col, t.cols[i])
	return col
}

// AppendRow adds one row of cells. Short rows are padded with missing
// values; extra cells are dropped.
func (t *Table) AppendRow(cells []Value) {
	for i := range t.cols {
		if i < len(cells) {
			t.cols[i] = append(t.cols[i], cells[i])
		} else {
			t.cols[i] = append(t.cols[i], Value{})
		}
	}
}

// ParseDates reparses the named columns as calendar timestamps. Cells that
// cannot be parsed become missing rather than failing the transform.
// Columns that do not exist are ignored.
func (t *Table) ParseDates(names ...string) {
	for _, name := range names {
		i, ok := t.ColumnIndex(name)
		if !ok {
			continue
		}
		col := t.cols[i]
		for j, v := range col {
			if ts, ok := parseTime(cellText(v)); ok {
				col[j] = Timestamp(ts)
			} else {
				col[j] = Value{}
			}
		}
	}
}

// Times reads the named column as timestamps, parsing textual cells on the
// fly. The returned slice is row-aligned with zero times for cells that did
// not parse; n is the count that did. A missing column yields (nil, 0).
func (t *Table) Times(name string) ([]time.Time, int) {
	i, ok := t.ColumnIndex(name)
	if !ok {
		return nil, 0
	}
	times := make([]time.Time, len(t.cols[i]))
	n := 0
	for j, v := range t.cols[i] {
		if v.Kind == KindTime {
			times[j] = v.Time
			n++
			continue
		}
		if ts, ok := parseTime(cellText(v)); ok {
			times[j] = ts
			n++
		}
	}
	return times, n
}

// dateFormats are tried in order when parsing timestamps.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
	"2006",
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// cellText renders a cell back to its textual form for reparsing.
func cellText(v Value) string {
	switch v.Kind {
	case KindString:
		return strings.TrimSpace(v.Str)
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	default:
		return ""
	}
}
