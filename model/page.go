package model

import "strings"

// Fragment is one positioned run of text. It is immutable once built.
type Fragment struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
	Height float64
	Text   string
}

// Rect returns the fragment's rectangle.
func (f Fragment) Rect() Rect {
	return Rect{X1: f.X1, Y1: f.Y1, X2: f.X2, Y2: f.Y2}
}

// Line is a set of fragments sharing one baseline.
type Line struct {
	Number    int        // 1-based, top to bottom
	Y         float64    // Baseline as supplied (bottom-left origin)
	Fragments []Fragment // Sorted by X1

	// PossiblyPartOfTable is set by the classifier.
	PossiblyPartOfTable bool
}

// Text joins the fragment texts with single spaces.
func (l Line) Text() string {
	parts := make([]string, len(l.Fragments))
	for i, f := range l.Fragments {
		parts[i] = f.Text
	}
	return strings.Join(parts, " ")
}

// BoundingRect returns the union of the fragment rectangles.
func (l Line) BoundingRect() Rect {
	var r Rect
	for _, f := range l.Fragments {
		r = r.Union(f.Rect())
	}
	return r
}

// Page represents a single page and owns its lines.
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points
	Height float64 // Page height in points
	Lines  []Line  // Ordered top to bottom
}

// NewPage creates a new page with given dimensions
func NewPage(number int, width, height float64) *Page {
	return &Page{
		Number: number,
		Width:  width,
		Height: height,
		Lines:  make([]Line, 0),
	}
}

// LineCount returns the number of lines
func (p *Page) LineCount() int {
	return len(p.Lines)
}

// Line returns the line with the given number, or nil.
func (p *Page) Line(number int) *Line {
	for i := range p.Lines {
		if p.Lines[i].Number == number {
			return &p.Lines[i]
		}
	}
	return nil
}

// TableLines returns the lines classified as possibly part of a table.
func (p *Page) TableLines() []Line {
	var lines []Line
	for _, l := range p.Lines {
		if l.PossiblyPartOfTable {
			lines = append(lines, l)
		}
	}
	return lines
}

// Fragments returns every fragment of the given lines in line order.
func Fragments(lines []Line) []Fragment {
	n := 0
	for _, l := range lines {
		n += len(l.Fragments)
	}
	all := make([]Fragment, 0, n)
	for _, l := range lines {
		all = append(all, l.Fragments...)
	}
	return all
}
