package grid

// Row is a single data record. Identity is the ID, never the position in
// the row sequence; reordering must not change which record an ID refers to.
type Row struct {
	ID     string
	Fields map[string]Value
}

// Field returns the value stored under name, or null if absent.
func (r Row) Field(name string) Value {
	if v, ok := r.Fields[name]; ok {
		return v
	}
	return Null()
}

// Column describes one dynamic column: a unique ID, a display label, the
// row field it reads, and an optional cell renderer. The fixed selection
// column is owned by the view layer and never appears in a Column sequence.
type Column struct {
	ID     string
	Title  string
	Field  string
	Render func(Value) string
}

// Cell renders the column's value for the given row.
func (c Column) Cell(r Row) string {
	v := r.Field(c.Field)
	if c.Render != nil {
		return c.Render(v)
	}
	return v.String()
}

// IndexOfRow resolves a row ID to its position, or -1 if absent.
func IndexOfRow(rows []Row, id string) int {
	for i := range rows {
		if rows[i].ID == id {
			return i
		}
	}
	return -1
}

// IndexOfColumn resolves a column ID to its position, or -1 if absent.
func IndexOfColumn(cols []Column, id string) int {
	for i := range cols {
		if cols[i].ID == id {
			return i
		}
	}
	return -1
}

// RowIDs returns the IDs of rows in sequence order.
func RowIDs(rows []Row) []string {
	ids := make([]string, len(rows))
	for i := range rows {
		ids[i] = rows[i].ID
	}
	return ids
}
