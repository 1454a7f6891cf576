// Package model provides the data model shared by the line classifier and
// its input and output adapters.
//
// Coordinates use a top-left page origin: Y grows downwards. Input adapters
// supply bottom-left-origin baselines (see package text); the conversion
// happens once, when lines are built.
//
// # Lines and Pages
//
// A [Page] owns an ordered sequence of [Line] values numbered 1..N from the
// top of the page. Each line holds its [Fragment] values sorted left to
// right. The only field mutated after construction is
// [Line.PossiblyPartOfTable], written once by the classifier.
//
// # Columns and Tables
//
// [Column], [Table] and [HorizontalSpace] are ephemeral: they are computed
// for one window of lines and discarded after the line is classified.
//
//	table := &model.Table{Columns: columns}
//	table.Spaces = model.SpacesBetween(columns)
package model
