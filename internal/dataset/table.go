package dataset

// Row holds the cells of a single record keyed by column name. A missing key
// means the row has no value for that column.
type Row map[string]string

// Table is an ordered set of named columns over an ordered sequence of rows.
// All cell values are strings; numeric-looking identifiers such as clause
// numbers are matched as opaque strings, never parsed.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// NewTable creates an empty table with the given column schema.
func NewTable(columns ...string) Table {
	return Table{Columns: append([]string(nil), columns...), Rows: []Row{}}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table schema contains the named column.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the table. Transformations operate on clones
// so callers' tables are never mutated.
func (t Table) Clone() Table {
	out := Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, 0, len(t.Rows)),
	}
	for _, r := range t.Rows {
		out.Rows = append(out.Rows, r.Clone())
	}
	return out
}

// Clone returns a copy of the row.
func (r Row) Clone() Row {
	c := make(Row, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// Append adds a row to the table.
func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r)
}

// Values returns the cell values of a column in row order. Rows without a
// value contribute an empty string. An absent column yields nil.
func (t Table) Values(column string) []string {
	if !t.HasColumn(column) {
		return nil
	}
	vals := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		vals = append(vals, r[column])
	}
	return vals
}

// Select returns a new table restricted to the named columns, in the given
// order, keeping only those actually present. Row order is preserved.
func (t Table) Select(columns ...string) Table {
	kept := make([]string, 0, len(columns))
	for _, c := range columns {
		if t.HasColumn(c) {
			kept = append(kept, c)
		}
	}
	out := Table{Columns: kept, Rows: make([]Row, 0, len(t.Rows))}
	for _, r := range t.Rows {
		nr := make(Row, len(kept))
		for _, c := range kept {
			if v, ok := r[c]; ok {
				nr[c] = v
			}
		}
		out.Rows = append(out.Rows, nr)
	}
	return out
}

// DropColumns returns a new table with the named columns removed from the
// schema and from every row. Names not present are ignored.
func (t Table) DropColumns(names ...string) Table {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	kept := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if !drop[c] {
			kept = append(kept, c)
		}
	}
	out := Table{Columns: kept, Rows: make([]Row, 0, len(t.Rows))}
	for _, r := range t.Rows {
		nr := make(Row, len(kept))
		for _, c := range kept {
			if v, ok := r[c]; ok {
				nr[c] = v
			}
		}
		out.Rows = append(out.Rows, nr)
	}
	return out
}

// AddColumn returns a new table with an extra column whose cell for row i is
// values[i]. Missing trailing values become empty strings. If the column
// already exists its values are replaced.
func (t Table) AddColumn(name string, values []string) Table {
	out := t.Clone()
	if !out.HasColumn(name) {
		out.Columns = append(out.Columns, name)
	}
	for i := range out.Rows {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		out.Rows[i][name] = v
	}
	return out
}
