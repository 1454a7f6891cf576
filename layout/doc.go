// Package layout turns raw positioned fragments into numbered page lines and
// provides the line-level geometry used by the table classifier.
//
// # Lines
//
// [LineBuilder] groups fragments by exact baseline equality. There is no
// tolerance: two fragments whose baselines differ by a fraction of a unit
// land on separate lines.
//
//	page := layout.NewLineBuilder().Build(rawPage)
//
// # Windows
//
// [WindowSelector] picks a page-clamped run of consecutive lines around a
// target line:
//
//	window := layout.NewWindowSelector(10).Select(line, page.Lines)
//
// # Spacing
//
// [SpacingChecker] reports whether a line's fragments share one height and
// whether the vertical pitch across a window is regular.
package layout
