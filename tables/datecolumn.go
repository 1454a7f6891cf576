package tables

import (
	"github.com/tsawler/rowscan/dates"
	"github.com/tsawler/rowscan/model"
)

// DateColumnHeuristic looks for dates in the leftmost columns.
type DateColumnHeuristic struct {
	// Number of leftmost columns inspected
	Reach int

	// IsDate recognizes a date string. Defaults to dates.IsDate.
	IsDate func(string) bool
}

// NewDateColumnHeuristic creates a heuristic from the configuration.
func NewDateColumnHeuristic(config Config) *DateColumnHeuristic {
	return &DateColumnHeuristic{
		Reach:  config.DateColumnReach,
		IsDate: dates.IsDate,
	}
}

// HasDateColumn reports whether one of the first Reach columns starts with
// a date. A column is judged by its first originating fragment.
func (h *DateColumnHeuristic) HasDateColumn(columns []model.Column) bool {
	isDate := h.IsDate
	if isDate == nil {
		isDate = dates.IsDate
	}

	for i := 0; i < len(columns) && i < h.Reach; i++ {
		frag, ok := columns[i].LeadingFragment()
		if ok && isDate(frag.Text) {
			return true
		}
	}
	return false
}
