package report

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tsawler/rowscan/model"
	"github.com/tsawler/rowscan/tables"
)

// PageResult is a classified page and its per-line diagnostics.
type PageResult struct {
	Page        *model.Page
	Diagnostics []tables.Diagnostic
}

// Format defines the available report formats
type Format int

const (
	// FormatText is the human-readable line listing
	FormatText Format = iota
	// FormatJSON is a JSON document of pages, lines and diagnostics
	FormatJSON
	// FormatCSV has one row per line
	FormatCSV
	// FormatPDF is an annotated PDF
	FormatPDF
)

// String returns a human-readable representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	case FormatPDF:
		return "pdf"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatCSV:
		return ".csv"
	case FormatPDF:
		return ".pdf"
	default:
		return ".txt"
	}
}

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return FormatText, fmt.Errorf("unknown report format %q", name)
	}
}

// TextOptions controls the text report.
type TextOptions struct {
	// Diagnostics adds the full diagnostic below each line
	Diagnostics bool
	// TableOnly lists only lines classified as part of a table
	TableOnly bool
}

// Write writes the results in the given format.
func Write(w io.Writer, results []PageResult, format Format) error {
	switch format {
	case FormatText:
		return WriteText(w, results, TextOptions{})
	case FormatJSON:
		return WriteJSON(w, results)
	case FormatCSV:
		return WriteCSV(w, results)
	case FormatPDF:
		return WritePDF(w, results)
	default:
		return fmt.Errorf("unsupported report format: %v", format)
	}
}

// WriteText writes the line listing.
func WriteText(w io.Writer, results []PageResult, opts TextOptions) error {
	bw := bufio.NewWriter(w)

	for _, r := range results {
		if r.Page == nil {
			continue
		}
		fmt.Fprintf(bw, "***** start of page %d *****\n", r.Page.Number)

		for i, line := range r.Page.Lines {
			if opts.TableOnly && !line.PossiblyPartOfTable {
				continue
			}
			marker := " "
			if line.PossiblyPartOfTable {
				marker = "T"
			}
			fmt.Fprintf(bw, "%s line=%d %s\n", marker, line.Number, line.Text())

			if opts.Diagnostics && i < len(r.Diagnostics) {
				d := r.Diagnostics[i]
				for _, rej := range d.Rejections {
					fmt.Fprintf(bw, "    %s\n", rej)
				}
				fmt.Fprintf(bw, "    %s\n", d)
			}
		}

		fmt.Fprintf(bw, "***** end of page %d *****\n", r.Page.Number)
	}

	return bw.Flush()
}

type jsonReport struct {
	Pages []jsonPage `json:"pages"`
}

type jsonPage struct {
	Number int        `json:"number"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Lines  []jsonLine `json:"lines"`
}

type jsonLine struct {
	Number              int                `json:"number"`
	Y                   float64            `json:"y"`
	Text                string             `json:"text"`
	PossiblyPartOfTable bool               `json:"possibly_part_of_table"`
	Diagnostic          *tables.Diagnostic `json:"diagnostic,omitempty"`
}

// WriteJSON writes pages, lines, verdicts and diagnostics as indented JSON.
func WriteJSON(w io.Writer, results []PageResult) error {
	out := jsonReport{Pages: make([]jsonPage, 0, len(results))}

	for _, r := range results {
		if r.Page == nil {
			continue
		}
		page := jsonPage{
			Number: r.Page.Number,
			Width:  r.Page.Width,
			Height: r.Page.Height,
			Lines:  make([]jsonLine, 0, len(r.Page.Lines)),
		}
		for i, line := range r.Page.Lines {
			jl := jsonLine{
				Number:              line.Number,
				Y:                   line.Y,
				Text:                line.Text(),
				PossiblyPartOfTable: line.PossiblyPartOfTable,
			}
			if i < len(r.Diagnostics) {
				d := r.Diagnostics[i]
				jl.Diagnostic = &d
			}
			page.Lines = append(page.Lines, jl)
		}
		out.Pages = append(out.Pages, page)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteCSV writes one row per line with its page, number, verdict and text.
func WriteCSV(w io.Writer, results []PageResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"page", "line", "possibly_part_of_table", "text"}); err != nil {
		return err
	}
	for _, r := range results {
		if r.Page == nil {
			continue
		}
		for _, line := range r.Page.Lines {
			record := []string{
				strconv.Itoa(r.Page.Number),
				strconv.Itoa(line.Number),
				strconv.FormatBool(line.PossiblyPartOfTable),
				line.Text(),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
