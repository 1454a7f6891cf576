package tables

import "github.com/tsawler/rowscan/model"

// ContiguityChecker validates a column gap by requiring it to stay empty on
// a run of consecutive lines.
type ContiguityChecker struct {
	MinimumContiguousLines int
}

// NewContiguityChecker creates a contiguity checker from the configuration.
func NewContiguityChecker(config Config) *ContiguityChecker {
	return &ContiguityChecker{MinimumContiguousLines: config.MinimumContiguousLines}
}

// IsContiguous scans the window top to bottom. The gap is accepted as soon
// as MinimumContiguousLines lines have left it empty. A crossing line seen
// after the run has started rejects it; crossing lines before the run
// starts are skipped. Running out of lines first is a rejection.
func (c *ContiguityChecker) IsContiguous(space model.HorizontalSpace, window []model.Line) bool {
	count := 0
	for _, line := range window {
		if space.CrossedByAny(line.Fragments) {
			if count > 0 {
				return false
			}
			continue
		}

		count++
		if count >= c.MinimumContiguousLines {
			return true
		}
	}
	return false
}
