package tables

import (
	"github.com/tsawler/rowscan/layout"
	"github.com/tsawler/rowscan/model"
)

// Classifier marks lines that are possibly part of a date-led table.
// A Classifier holds no per-page state and is safe for concurrent use.
type Classifier struct {
	config Config

	windows    *layout.WindowSelector
	spacing    *layout.SpacingChecker
	columns    *ColumnDetector
	contiguity *ContiguityChecker
	dates      *DateColumnHeuristic

	sink        Sink
	cacheTables bool
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithSink emits every diagnostic to the sink.
func WithSink(sink Sink) Option {
	return func(c *Classifier) {
		c.sink = sink
	}
}

// WithTableCache reuses the table found for a window when another line of
// the same page has the same window. Results are unchanged.
func WithTableCache() Option {
	return func(c *Classifier) {
		c.cacheTables = true
	}
}

// WithDateMatcher replaces the date recognizer used on leading columns.
func WithDateMatcher(isDate func(string) bool) Option {
	return func(c *Classifier) {
		c.dates.IsDate = isDate
	}
}

// NewClassifier creates a classifier. The configuration is not validated;
// call Config.Validate first when it comes from user input.
func NewClassifier(config Config, opts ...Option) *Classifier {
	c := &Classifier{
		config:     config,
		windows:    layout.NewWindowSelector(config.WindowSize),
		spacing:    layout.NewSpacingChecker(config.PitchTolerance),
		columns:    NewColumnDetector(config),
		contiguity: NewContiguityChecker(config),
		dates:      NewDateColumnHeuristic(config),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the classifier configuration.
func (c *Classifier) Config() Config {
	return c.config
}

// windowKey identifies a window by its first and last line numbers.
type windowKey struct {
	start, end int
}

// foundTable is a memoized FindTable result.
type foundTable struct {
	table      *model.Table
	rejections []Rejection
}

// ClassifyPage classifies every line of the page in order, sets each line's
// PossiblyPartOfTable field and returns one diagnostic per line.
func (c *Classifier) ClassifyPage(page *model.Page) []Diagnostic {
	if page == nil || len(page.Lines) == 0 {
		return nil
	}

	var cache map[windowKey]foundTable
	if c.cacheTables {
		cache = make(map[windowKey]foundTable)
	}

	diagnostics := make([]Diagnostic, 0, len(page.Lines))
	for i := range page.Lines {
		window := c.windows.Select(page.Lines[i], page.Lines)

		d := c.classify(page.Lines[i], window, cache)
		d.Page = page.Number
		page.Lines[i].PossiblyPartOfTable = d.PartOfTable

		c.emit(d)
		diagnostics = append(diagnostics, d)
	}

	return diagnostics
}

// Window returns the window used for the line.
func (c *Classifier) Window(line model.Line, lines []model.Line) []model.Line {
	return c.windows.Select(line, lines)
}

// ClassifyLine classifies one line against an explicit window. The line is
// not modified.
func (c *Classifier) ClassifyLine(line model.Line, window []model.Line) Diagnostic {
	d := c.classify(line, window, nil)
	c.emit(d)
	return d
}

func (c *Classifier) classify(line model.Line, window []model.Line, cache map[windowKey]foundTable) Diagnostic {
	d := Diagnostic{Line: line.Number}
	if len(window) > 0 {
		d.WindowStart = window[0].Number
		d.WindowEnd = window[len(window)-1].Number
	}

	// Step 1: Spacing signals
	d.PitchRatio = c.spacing.PitchRatio(window)
	d.LineSpacingUniform = d.PitchRatio > c.spacing.Tolerance
	d.Height, d.UniformHeight = c.spacing.UniformHeight(line)

	// Step 2: Column structure of the window
	var found foundTable
	key := windowKey{d.WindowStart, d.WindowEnd}
	if cached, ok := cache[key]; ok {
		found = cached
	} else {
		found.table, found.rejections = c.FindTable(window)
		if cache != nil {
			cache[key] = found
		}
	}
	d.Rejections = found.rejections
	d.HasTable = !found.table.IsEmpty()
	d.ColumnCount = found.table.ColumnCount()

	// Step 3: Spill and date column
	if d.HasTable {
		d.HasTextInGap = spillsIntoGap(line.Fragments, found.table.Spaces)
		d.HasDateColumn = c.dates.HasDateColumn(found.table.Columns)
	}

	d.PartOfTable = d.UniformHeight && d.HasTable && d.HasDateColumn && !d.HasTextInGap
	return d
}

// FindTable infers the columns of a window and keeps those whose bounding
// gap is contiguous. The leftmost column is validated with a one-unit probe
// just left of it; every other column with the gap to its left neighbor.
// The returned table is nil when no candidate columns exist and may be
// empty when every candidate was rejected.
func (c *Classifier) FindTable(window []model.Line) (*model.Table, []Rejection) {
	candidates := c.columns.Detect(model.Fragments(window))
	if len(candidates) == 0 {
		return nil, nil
	}

	var kept []model.Column
	var rejections []Rejection

	first := candidates[0]
	probe := model.HorizontalSpace{X1: first.X1 - 1, X2: first.X1}
	if c.contiguity.IsContiguous(probe, window) {
		kept = append(kept, first)
	} else {
		rejections = append(rejections, rejectionFor(first))
	}

	for _, space := range model.SpacesBetween(candidates) {
		col := columnStartingAt(candidates, space.X2)
		if c.contiguity.IsContiguous(space, window) {
			kept = append(kept, col)
		} else {
			rejections = append(rejections, rejectionFor(col))
		}
	}

	return model.NewTable(kept), rejections
}

// columnStartingAt returns the first candidate whose left bound is x. The
// gap's right edge always belongs to a candidate.
func columnStartingAt(candidates []model.Column, x float64) model.Column {
	for _, col := range candidates {
		if col.X1 == x {
			return col
		}
	}
	return model.Column{}
}

func rejectionFor(col model.Column) Rejection {
	return Rejection{
		Edge:      col.X1,
		Alignment: col.Alignment.String(),
		Text:      col.SampleText(),
	}
}

// spillsIntoGap reports whether any fragment crosses any of the gaps.
func spillsIntoGap(fragments []model.Fragment, spaces []model.HorizontalSpace) bool {
	for _, space := range spaces {
		if space.CrossedByAny(fragments) {
			return true
		}
	}
	return false
}

func (c *Classifier) emit(d Diagnostic) {
	if c.sink != nil {
		c.sink.Emit(d)
	}
}
