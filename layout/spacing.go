package layout

import "github.com/tsawler/rowscan/model"

// DefaultPitchTolerance is the share of line pitches that must agree for a
// window to count as evenly spaced.
const DefaultPitchTolerance = 0.8

// SpacingChecker measures height and pitch regularity.
type SpacingChecker struct {
	// Tolerance is the ratio the most frequent pitch must exceed.
	Tolerance float64
}

// NewSpacingChecker creates a checker with the given pitch tolerance.
func NewSpacingChecker(tolerance float64) *SpacingChecker {
	return &SpacingChecker{Tolerance: tolerance}
}

// UniformHeight returns the height shared by every fragment of the line.
// It reports false for a line without fragments or with mixed heights.
func (c *SpacingChecker) UniformHeight(line model.Line) (float64, bool) {
	if len(line.Fragments) == 0 {
		return 0, false
	}

	height := line.Fragments[0].Height
	for _, frag := range line.Fragments[1:] {
		if frag.Height != height {
			return 0, false
		}
	}
	return height, true
}

// PitchRatio returns the share of adjacent line pairs in the window whose
// pitch equals the most frequent pitch. The pitch of a pair is the next
// line's baseline minus the height of its first fragment. Windows with
// fewer than two lines, or containing a line without fragments, give 0.
func (c *SpacingChecker) PitchRatio(window []model.Line) float64 {
	if len(window) < 2 {
		return 0
	}

	distribution := make(map[float64]int)
	topCount := 0
	for _, next := range window[1:] {
		if len(next.Fragments) == 0 {
			return 0
		}
		pitch := next.Y - next.Fragments[0].Height
		distribution[pitch]++
		if distribution[pitch] > topCount {
			topCount = distribution[pitch]
		}
	}

	return float64(topCount) / float64(len(window)-1)
}

// UniformPitch reports whether the pitch ratio exceeds the tolerance.
func (c *SpacingChecker) UniformPitch(window []model.Line) bool {
	return c.PitchRatio(window) > c.Tolerance
}
