package tables

import (
	"sort"

	"github.com/tsawler/rowscan/model"
)

// ColumnDetector infers candidate columns from fragments that share a left
// or right edge across a window of lines.
type ColumnDetector struct {
	// Minimum fragments sharing an edge
	MinimumRepeatingLines int

	// Minimum qualifying edges for any column to be returned
	MinimumColumns int
}

// NewColumnDetector creates a column detector from the configuration.
func NewColumnDetector(config Config) *ColumnDetector {
	return &ColumnDetector{
		MinimumRepeatingLines: config.MinimumRepeatingLines,
		MinimumColumns:        config.MinimumColumns,
	}
}

// edgeGroup is a set of fragments sharing one edge coordinate.
type edgeGroup struct {
	edge      float64
	fragments []model.Fragment
}

// Detect returns the candidate columns sorted by X1, or nil when fewer than
// MinimumColumns edges repeat. A right edge whose first fragment starts on a
// qualifying left edge is not counted again.
func (d *ColumnDetector) Detect(fragments []model.Fragment) []model.Column {
	if len(fragments) == 0 {
		return nil
	}

	// Step 1: Qualifying left edges
	leftEdges := make(map[float64]bool)
	var columns []model.Column
	for _, g := range groupByEdge(fragments, func(f model.Fragment) float64 { return f.X1 }) {
		if len(g.fragments) < d.MinimumRepeatingLines {
			continue
		}
		leftEdges[g.edge] = true
		if col, ok := leftColumn(g); ok {
			columns = append(columns, col)
		}
	}

	// Step 2: Qualifying right edges not already counted as left columns
	for _, g := range groupByEdge(fragments, func(f model.Fragment) float64 { return f.X2 }) {
		if len(g.fragments) < d.MinimumRepeatingLines {
			continue
		}
		if leftEdges[g.fragments[0].X1] {
			continue
		}
		if col, ok := rightColumn(g); ok {
			columns = append(columns, col)
		}
	}

	if len(columns) < d.MinimumColumns {
		return nil
	}

	// Step 3: Left to right; ties keep left columns first
	sort.SliceStable(columns, func(i, j int) bool {
		return columns[i].X1 < columns[j].X1
	})

	return columns
}

// groupByEdge groups fragments by an edge coordinate. Groups are returned
// in ascending edge order; members keep their input order.
func groupByEdge(fragments []model.Fragment, edge func(model.Fragment) float64) []edgeGroup {
	index := make(map[float64]int)
	var groups []edgeGroup
	for _, f := range fragments {
		e := edge(f)
		i, ok := index[e]
		if !ok {
			i = len(groups)
			index[e] = i
			groups = append(groups, edgeGroup{edge: e})
		}
		groups[i].fragments = append(groups[i].fragments, f)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].edge < groups[j].edge
	})
	return groups
}

// leftColumn builds a left-aligned column. Its right bound is the widest
// member's right edge.
func leftColumn(g edgeGroup) (model.Column, bool) {
	x2 := g.fragments[0].X2
	for _, f := range g.fragments[1:] {
		if f.X2 > x2 {
			x2 = f.X2
		}
	}
	if x2 <= g.edge {
		return model.Column{}, false
	}

	col := model.Column{
		X1:        g.edge,
		X2:        x2,
		Alignment: model.AlignLeft,
		Fragments: g.fragments,
	}
	col.FirstY, col.LastY = verticalExtent(g.fragments)
	return col, true
}

// rightColumn builds a right-aligned column. Its left bound is the widest
// member's left edge.
func rightColumn(g edgeGroup) (model.Column, bool) {
	x1 := g.fragments[0].X1
	for _, f := range g.fragments[1:] {
		if f.X1 < x1 {
			x1 = f.X1
		}
	}
	if x1 >= g.edge {
		return model.Column{}, false
	}

	col := model.Column{
		X1:        x1,
		X2:        g.edge,
		Alignment: model.AlignRight,
		Fragments: g.fragments,
	}
	col.FirstY, col.LastY = verticalExtent(g.fragments)
	return col, true
}

// verticalExtent returns the smallest Y1 and the largest Y2.
func verticalExtent(fragments []model.Fragment) (first, last float64) {
	first, last = fragments[0].Y1, fragments[0].Y2
	for _, f := range fragments[1:] {
		if f.Y1 < first {
			first = f.Y1
		}
		if f.Y2 > last {
			last = f.Y2
		}
	}
	return first, last
}
