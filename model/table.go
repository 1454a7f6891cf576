package model

import "strings"

// Alignment is the horizontal justification of a column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// String returns a string representation of the alignment
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Column is a vertical band of horizontally aligned fragments inferred
// from a window of lines.
type Column struct {
	X1, X2    float64
	FirstY    float64
	LastY     float64
	Alignment Alignment

	// Fragments that produced the column, in window order.
	Fragments []Fragment
}

// Rect returns the column's bounds.
func (c Column) Rect() Rect {
	return Rect{X1: c.X1, Y1: c.FirstY, X2: c.X2, Y2: c.LastY}
}

// LeadingFragment returns the first originating fragment.
func (c Column) LeadingFragment() (Fragment, bool) {
	if len(c.Fragments) == 0 {
		return Fragment{}, false
	}
	return c.Fragments[0], true
}

// SampleText joins the originating fragment texts.
func (c Column) SampleText() string {
	parts := make([]string, len(c.Fragments))
	for i, f := range c.Fragments {
		parts[i] = f.Text
	}
	return strings.Join(parts, " ")
}

// Table is an ordered set of columns and the spaces between them.
type Table struct {
	Columns []Column          // Sorted by X1
	Spaces  []HorizontalSpace // Spaces[i] lies between Columns[i] and Columns[i+1]
}

// NewTable creates a table from sorted columns.
func NewTable(columns []Column) *Table {
	return &Table{
		Columns: columns,
		Spaces:  SpacesBetween(columns),
	}
}

// IsEmpty returns true if the table has no columns
func (t *Table) IsEmpty() bool {
	return t == nil || len(t.Columns) == 0
}

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int {
	if t == nil {
		return 0
	}
	return len(t.Columns)
}

// SpacesBetween derives the space between each adjacent pair of columns.
func SpacesBetween(columns []Column) []HorizontalSpace {
	if len(columns) < 2 {
		return nil
	}
	spaces := make([]HorizontalSpace, 0, len(columns)-1)
	for i := 1; i < len(columns); i++ {
		spaces = append(spaces, HorizontalSpace{X1: columns[i-1].X2, X2: columns[i].X1})
	}
	return spaces
}
