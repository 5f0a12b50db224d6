package labels

import (
	"slices"

	"github.com/agentstation/labelkit/pkg/errors"
)

// Column is a labeled column of cell values.
type Column struct {
	Label  string
	Values []any
}

// Table is an ordered set of labeled columns. Labels are expected to be unique;
// AddColumn enforces it, Rename does not.
type Table struct {
	// Name is informational, e.g. the file the table was loaded from.
	Name    string
	columns []Column
}

// NewTable creates a table from the given columns in order.
func NewTable(columns ...Column) (*Table, error) {
	t := &Table{}
	for _, c := range columns {
		if err := t.AddColumn(c.Label, c.Values...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// MustTable is like NewTable but panics on duplicate labels.
func MustTable(columns ...Column) *Table {
	t, err := NewTable(columns...)
	if err != nil {
		panic(err)
	}
	return t
}

// AddColumn appends a column. The values slice is copied.
func (t *Table) AddColumn(label string, values ...any) error {
	if slices.Contains(t.Columns(), label) {
		return errors.NewValidationError("column", label, "duplicate column label "+label)
	}
	t.columns = append(t.columns, Column{Label: label, Values: slices.Clone(values)})
	return nil
}

// Columns returns a copy of the column labels in order.
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.Label
	}
	return out
}

// Labels implements Labeler.
func (t *Table) Labels() []string {
	return t.Columns()
}

// Column returns the values of the first column with the given label.
func (t *Table) Column(label string) ([]any, bool) {
	if t == nil {
		return nil, false
	}
	for _, c := range t.columns {
		if c.Label == label {
			return c.Values, true
		}
	}
	return nil, false
}

// Width returns the number of columns.
func (t *Table) Width() int {
	if t == nil {
		return 0
	}
	return len(t.columns)
}

// Len returns the number of rows, i.e. the length of the longest column.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, c := range t.columns {
		n = max(n, len(c.Values))
	}
	return n
}

// Row returns the cells of row i. Cells past the end of a short column are nil.
func (t *Table) Row(i int) []any {
	if t == nil {
		return nil
	}
	row := make([]any, len(t.columns))
	for j, c := range t.columns {
		if i < len(c.Values) {
			row[j] = c.Values[i]
		}
	}
	return row
}

// Rename relabels columns in place. All lookups use the labels as they were
// before the call, so swaps behave. Columns absent from the mapping are left
// alone. It returns the number of renamed columns.
func (t *Table) Rename(m Mapping) int {
	if t == nil {
		return 0
	}
	n := 0
	for i := range t.columns {
		if to, ok := m[t.columns[i].Label]; ok {
			t.columns[i].Label = to
			n++
		}
	}
	return n
}

// Copy returns a copy of the table that shares no column storage with t.
// Cell values themselves are copied shallowly.
func (t *Table) Copy() *Table {
	if t == nil {
		return nil
	}
	c := &Table{Name: t.Name, columns: make([]Column, len(t.columns))}
	for i, col := range t.columns {
		c.columns[i] = Column{Label: col.Label, Values: slices.Clone(col.Values)}
	}
	return c
}

// Records returns every row rendered with FormatCell. Missing values are
// written as constants.NullCell; cells past the end of a short column are empty.
func (t *Table) Records() [][]string {
	rows := t.Len()
	records := make([][]string, rows)
	for i := range rows {
		record := make([]string, len(t.columns))
		for j, c := range t.columns {
			if i >= len(c.Values) {
				continue
			}
			record[j] = renderCell(c.Values[i])
		}
		records[i] = record
	}
	return records
}
