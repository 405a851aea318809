package table

import (
	"errors"
	"fmt"
)

// ErrRowWidth indicates a row whose field count does not match the table's
// column count.
var ErrRowWidth = errors.New("row width mismatch")

// Table is an in-memory delimited table: an ordered list of named columns and
// rows of typed cells.
//
// Create instances with [New], [Reader.ReadTable], or by unmarshaling the
// JSON form.
type Table struct {
	labels []string
	rows   [][]Value
}

// New creates an empty table with the given column labels.
func New(labels ...string) *Table {
	return &Table{labels: append([]string(nil), labels...)}
}

// Columns returns the column labels in order. The returned slice is a copy.
func (t *Table) Columns() []string {
	return append([]string(nil), t.labels...)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.labels)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Append adds a row of cells. The row must have exactly one cell per column.
func (t *Table) Append(row ...Value) error {
	if len(row) != len(t.labels) {
		return fmt.Errorf("%w: got %d fields, want %d", ErrRowWidth, len(row), len(t.labels))
	}

	t.rows = append(t.rows, append([]Value(nil), row...))

	return nil
}

// Cell returns the cell at the given row and column indices.
func (t *Table) Cell(row, col int) Value {
	return t.rows[row][col]
}

// SetCell replaces the cell at the given row and column indices.
func (t *Table) SetCell(row, col int, v Value) {
	t.rows[row][col] = v
}

// Row returns the cells of the given row. The returned slice is a copy.
func (t *Table) Row(i int) []Value {
	return append([]Value(nil), t.rows[i]...)
}

// Rename renames columns according to mapping. Labels without a mapping entry
// are left unchanged, so renaming with an empty mapping is a no-op. Calling
// Rename on a nil table is also a no-op.
func (t *Table) Rename(mapping map[string]string) {
	if t == nil {
		return
	}

	for i, label := range t.labels {
		if name, ok := mapping[label]; ok {
			t.labels[i] = name
		}
	}
}

// Mask replaces every cell for which match returns true with the null cell,
// across all columns.
func (t *Table) Mask(match func(Value) bool) {
	for _, row := range t.rows {
		for i, v := range row {
			if match(v) {
				row[i] = Null()
			}
		}
	}
}

// Equal reports whether two tables have identical labels and cells.
func (t *Table) Equal(other *Table) bool {
	if t.NumCols() != other.NumCols() || t.NumRows() != other.NumRows() {
		return false
	}

	for i, label := range t.labels {
		if other.labels[i] != label {
			return false
		}
	}

	for i, row := range t.rows {
		for j, v := range row {
			if other.rows[i][j] != v {
				return false
			}
		}
	}

	return true
}
