package pdftext

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/rowscan/text"
)

// DefaultGapFactor is the largest gap, as a multiple of the font size,
// that still joins two characters into one run.
const DefaultGapFactor = 0.6

// fallbackGap is used for characters without a font size.
const fallbackGap = 3.0

// Merger joins PDF characters into text runs.
type Merger struct {
	GapFactor float64
}

// NewMerger creates a merger with the default gap factor.
func NewMerger() *Merger {
	return &Merger{GapFactor: DefaultGapFactor}
}

// run is a text run being assembled.
type run struct {
	x, y     float64
	right    float64
	fontSize float64
	font     string
	text     strings.Builder
}

func (r *run) fragment() (text.Fragment, bool) {
	s := strings.TrimSpace(r.text.String())
	if s == "" {
		return text.Fragment{}, false
	}
	return text.Fragment{
		Text:     s,
		X:        r.x,
		Y:        r.y,
		Width:    r.right - r.x,
		Height:   r.fontSize,
		FontName: r.font,
		FontSize: r.fontSize,
	}, true
}

// Merge groups characters by baseline, orders each baseline left to right
// and joins neighbouring characters into fragments. Whitespace-only runs
// are dropped.
func (m *Merger) Merge(chars []pdf.Text) []text.Fragment {
	if len(chars) == 0 {
		return nil
	}

	// Step 1: Group by exact baseline
	rows := make(map[float64][]pdf.Text)
	var baselines []float64
	for _, c := range chars {
		if _, ok := rows[c.Y]; !ok {
			baselines = append(baselines, c.Y)
		}
		rows[c.Y] = append(rows[c.Y], c)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(baselines)))

	// Step 2: Merge within each baseline
	var fragments []text.Fragment
	for _, y := range baselines {
		row := rows[y]
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].X < row[j].X
		})

		var cur *run
		for _, c := range row {
			if cur != nil && c.X-cur.right <= m.threshold(cur.fontSize) {
				cur.text.WriteString(c.S)
				if right := c.X + c.W; right > cur.right {
					cur.right = right
				}
				continue
			}

			if cur != nil {
				if f, ok := cur.fragment(); ok {
					fragments = append(fragments, f)
				}
			}
			cur = &run{x: c.X, y: c.Y, right: c.X + c.W, fontSize: c.FontSize, font: c.Font}
			cur.text.WriteString(c.S)
		}
		if cur != nil {
			if f, ok := cur.fragment(); ok {
				fragments = append(fragments, f)
			}
		}
	}

	return fragments
}

func (m *Merger) threshold(fontSize float64) float64 {
	if fontSize <= 0 {
		return fallbackGap
	}
	return m.GapFactor * fontSize
}
