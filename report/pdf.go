package report

import (
	"bytes"
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/tsawler/rowscan/model"
)

// Font size bounds for redrawn fragments
const (
	minFontSize = 4
	maxFontSize = 48
)

// WritePDF writes an annotated PDF with one page per result. Each fragment
// is redrawn at its position and lines classified as possibly part of a
// table are shaded, with their line number in the left margin.
func WritePDF(w io.Writer, results []PageResult) error {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	latin1 := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())

	for _, r := range results {
		if r.Page == nil {
			continue
		}
		drawPage(doc, r.Page, latin1)
	}

	if doc.PageCount() == 0 {
		doc.AddPage()
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return fmt.Errorf("failed to generate PDF: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func drawPage(doc *fpdf.Fpdf, page *model.Page, latin1 *encoding.Encoder) {
	width, height := page.Width, page.Height
	if width <= 0 || height <= 0 {
		width, height = 612, 792
	}
	doc.AddPageFormat("P", fpdf.SizeType{Wd: width, Ht: height})

	// Table lines first so text draws over the shading
	doc.SetFillColor(200, 235, 200)
	for _, line := range page.Lines {
		if !line.PossiblyPartOfTable {
			continue
		}
		box := lineBox(line)
		doc.Rect(box.X1, box.Y1, box.Width(), box.Height(), "F")
	}

	for _, line := range page.Lines {
		if line.PossiblyPartOfTable {
			doc.SetTextColor(0, 110, 0)
			doc.SetFont("Helvetica", "B", 6)
			box := lineBox(line)
			doc.Text(2, box.Y2, fmt.Sprintf("%d", line.Number))
		}

		doc.SetTextColor(0, 0, 0)
		for _, f := range line.Fragments {
			doc.SetFont("Helvetica", "", clamp(f.Height, minFontSize, maxFontSize))
			s, err := latin1.String(f.Text)
			if err != nil {
				continue
			}
			doc.Text(f.X1, f.Y1, s)
		}
	}
}

// lineBox returns the glyph area of a line in top-left page coordinates.
// Fragment Y1 is the baseline's distance from the top of the page.
func lineBox(line model.Line) model.Rect {
	var box model.Rect
	for _, f := range line.Fragments {
		box = box.Union(model.Rect{X1: f.X1, Y1: f.Y1 - f.Height, X2: f.X2, Y2: f.Y1})
	}
	return box
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
