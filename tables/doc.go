// Package tables classifies page lines as possibly belonging to a
// transaction table, one whose leftmost columns hold dates.
//
// The classification only looks at geometry: where fragments start and end,
// how tall they are, and whether the gaps between inferred columns stay
// empty down the page. The text of the leading column is checked for a date.
//
// # Classification
//
// For every line the [Classifier] takes a window of neighboring lines and:
//
//  1. Checks that the line's fragments share one height
//  2. Measures line pitch regularity (advisory, never decisive)
//  3. Infers candidate columns from repeated left and right edges ([ColumnDetector])
//  4. Keeps only columns whose bounding gap is empty on enough consecutive lines ([ContiguityChecker])
//  5. Rejects the line if one of its fragments spills into a kept gap
//  6. Requires a date in one of the first columns ([DateColumnHeuristic])
//
//	classifier := tables.NewClassifier(tables.DefaultConfig())
//	diagnostics := classifier.ClassifyPage(page)
//
// # Configuration
//
// Thresholds live in [Config]. [LoadConfig] reads them from YAML:
//
//	window_size: 10
//	minimum_repeating_lines: 2
//	minimum_columns: 3
//	minimum_contiguous_lines: 5
//	pitch_tolerance: 0.8
//	date_column_reach: 2
//
// # Diagnostics
//
// Each classified line yields a [Diagnostic] carrying every intermediate
// signal. Diagnostics are returned and, when configured, emitted to a
// [Sink] such as [SlogSink].
package tables
