package layout

import "github.com/tsawler/rowscan/model"

// DefaultWindowSize is the number of lines in a classification window.
const DefaultWindowSize = 10

// WindowSelector picks the neighborhood of lines around a target line.
type WindowSelector struct {
	size int
}

// NewWindowSelector creates a selector for windows of the given size.
// Sizes below 1 are treated as 1.
func NewWindowSelector(size int) *WindowSelector {
	if size < 1 {
		size = 1
	}
	return &WindowSelector{size: size}
}

// Size returns the configured window size
func (w *WindowSelector) Size() int {
	return w.size
}

// Bounds returns the first and last line numbers of the window around the
// target. The window is centred on the target where possible and slides
// inwards at the top and bottom of the page. lines must be non-empty and
// ordered by number.
func (w *WindowSelector) Bounds(target model.Line, lines []model.Line) (start, end int) {
	first := lines[0].Number
	last := lines[len(lines)-1].Number

	start = target.Number - w.size/2
	if start < first {
		start = first
	}

	end = start + w.size - 1
	if end > last {
		end = last
		start = end - w.size + 1
		if start < first {
			start = first
		}
	}

	return start, end
}

// Select returns the contiguous run of lines whose numbers fall inside the
// window bounds. The result shares memory with lines and holds
// min(size, len(lines)) lines.
func (w *WindowSelector) Select(target model.Line, lines []model.Line) []model.Line {
	if len(lines) == 0 {
		return nil
	}

	start, end := w.Bounds(target, lines)

	lo, hi := -1, -1
	for i, l := range lines {
		if l.Number < start || l.Number > end {
			continue
		}
		if lo < 0 {
			lo = i
		}
		hi = i
	}
	if lo < 0 {
		return nil
	}

	return lines[lo : hi+1 : hi+1]
}
