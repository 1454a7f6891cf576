// Package report writes classified pages as text, JSON, CSV or an annotated
// PDF.
//
// The text report lists every line as line=N followed by its text, framed
// by start and end markers per page, and marks the lines classified as
// possibly part of a table. The annotated PDF redraws every fragment at its
// position and shades table lines so the verdicts can be checked by eye.
package report
