package layout

import (
	"sort"

	"github.com/tsawler/rowscan/model"
	"github.com/tsawler/rowscan/text"
)

// LineBuilder groups raw fragments into page lines.
type LineBuilder struct{}

// NewLineBuilder creates a new line builder
func NewLineBuilder() *LineBuilder {
	return &LineBuilder{}
}

// Build converts a raw page into a page of numbered lines.
func (b *LineBuilder) Build(page text.Page) *model.Page {
	p := model.NewPage(page.Number, page.Width, page.Height)
	p.Lines = b.BuildLines(page.Fragments, page.Height)
	return p
}

// BuildLines groups fragments by baseline, sorts each line left to right and
// orders the lines from the top of the page. Fragments with non-finite
// coordinates are dropped.
func (b *LineBuilder) BuildLines(fragments []text.Fragment, pageHeight float64) []model.Line {
	if len(fragments) == 0 {
		return nil
	}

	// Step 1: Group by exact baseline, remembering first-seen order
	groups := make(map[float64][]text.Fragment)
	var baselines []float64
	for _, frag := range fragments {
		if !frag.IsFinite() {
			continue
		}
		if _, ok := groups[frag.Y]; !ok {
			baselines = append(baselines, frag.Y)
		}
		groups[frag.Y] = append(groups[frag.Y], frag)
	}

	// Step 2: Top of page first (higher baseline in PDF space)
	sort.Sort(sort.Reverse(sort.Float64Slice(baselines)))

	// Step 3: Build lines and number them
	lines := make([]model.Line, 0, len(baselines))
	for i, y := range baselines {
		group := groups[y]
		sort.SliceStable(group, func(a, c int) bool {
			return group[a].X < group[c].X
		})

		line := model.Line{
			Number:    i + 1,
			Y:         y,
			Fragments: make([]model.Fragment, len(group)),
		}
		for j, frag := range group {
			line.Fragments[j] = toFragment(frag, pageHeight)
		}
		lines = append(lines, line)
	}

	return lines
}

// toFragment flips a baseline-positioned raw fragment into top-left space.
func toFragment(frag text.Fragment, pageHeight float64) model.Fragment {
	y1 := pageHeight - frag.Y
	return model.Fragment{
		X1:     frag.X,
		Y1:     y1,
		X2:     frag.X + frag.Width,
		Y2:     y1 + frag.Height,
		Width:  frag.Width,
		Height: frag.Height,
		Text:   frag.Text,
	}
}
