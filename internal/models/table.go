package models

// Vertical layout column headers.
const (
	KeyColumn   = "Key"
	ValueColumn = "Value"
)

// Cell is one table cell: either absent, or a Leaf. An absent cell marks
// a path a record never had; a present LeafNull cell is an explicit JSON
// null. Spreadsheet containers collapse the two, but keeping them apart
// here makes in-memory table round trips exact.
//
// A cell read back from a real sheet is raw: its leaf is the untyped
// cell text, still awaiting coercion. A typed cell produced by a layout
// adapter is already exact and must never be re-coerced, or a genuine
// string "true" would come back as a boolean.
type Cell struct {
	leaf    Leaf
	present bool
	raw     bool
}

// AbsentCell returns the absent cell.
func AbsentCell() Cell {
	return Cell{}
}

// LeafCell returns a present cell holding the already-typed l.
func LeafCell(l Leaf) Cell {
	return Cell{leaf: l, present: true}
}

// RawCell returns a present cell holding uninterpreted sheet text.
func RawCell(text string) Cell {
	return Cell{leaf: StringLeaf(text), present: true, raw: true}
}

// Absent reports whether the cell holds nothing.
func (c Cell) Absent() bool {
	return !c.present
}

// Raw reports whether the cell holds uninterpreted sheet text.
func (c Cell) Raw() bool {
	return c.raw
}

// Leaf returns the cell's leaf; the null leaf when absent.
func (c Cell) Leaf() Leaf {
	return c.leaf
}

// Text renders the cell for key lookup and sizing; absent cells render
// as the empty string.
func (c Cell) Text() string {
	if !c.present {
		return ""
	}
	return c.leaf.Text()
}

// Table is an in-memory sheet: named, with ordered columns and rows.
// Vertical tables have exactly the Key and Value columns.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]Cell
}

// IsVertical reports whether the table carries the two-column Key/Value
// layout.
func (t Table) IsVertical() bool {
	return len(t.Columns) == 2 && t.Columns[0] == KeyColumn && t.Columns[1] == ValueColumn
}
