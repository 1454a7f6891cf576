// Package dates recognizes date strings in the handful of layouts used by
// transaction tables on statements and invoices.
//
// Layouts are tried in order:
//
//   - day/month/year   12/05/2021
//   - month/day/year   05/12/2021
//   - year-month-day   2021-05-12
//   - day month year   12 May 2021, 12 September 2021, 12-May-2021
//
// Leading and trailing space is ignored. A cell whose text starts with a
// date followed by other words ("12/05/2021 Opening balance") also counts.
package dates

import (
	"strings"
	"time"
)

// Layout is one recognized date layout.
type Layout struct {
	Name   string
	Format string // time.Parse reference layout
	Fields int    // whitespace-separated fields the layout spans
}

// Layouts are the recognized layouts, in the order they are tried.
var Layouts = []Layout{
	{Name: "day/month/year", Format: "2/1/2006", Fields: 1},
	{Name: "month/day/year", Format: "1/2/2006", Fields: 1},
	{Name: "year-month-day", Format: "2006-1-2", Fields: 1},
	{Name: "day month year", Format: "2 Jan 2006", Fields: 3},
	{Name: "day month year", Format: "2 January 2006", Fields: 3},
	{Name: "day-month-year", Format: "2-Jan-2006", Fields: 1},
}

// Parse returns the first successful interpretation of s and the layout
// that produced it.
func Parse(s string) (time.Time, Layout, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return time.Time{}, Layout{}, false
	}

	for _, layout := range Layouts {
		if len(fields) < layout.Fields {
			continue
		}
		candidate := strings.Join(fields[:layout.Fields], " ")
		if t, err := time.Parse(layout.Format, candidate); err == nil {
			return t, layout, true
		}
	}

	return time.Time{}, Layout{}, false
}

// IsDate reports whether s starts with a recognized date.
func IsDate(s string) bool {
	_, _, ok := Parse(s)
	return ok
}
