// Package rowscan marks the lines of a document that are possibly part of a
// date-led table, such as the transaction list of a bank statement.
//
// Basic usage:
//
//	results, warnings, err := rowscan.Open("statement.pdf").Scan()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", rowscan.FormatWarnings(warnings))
//	}
//	for _, r := range results {
//	    for _, line := range r.Page.TableLines() {
//	        fmt.Println(line.Text())
//	    }
//	}
//
// With options:
//
//	results, _, err := rowscan.Open("statement.pdf").
//	    Pages(1, 2).
//	    WindowSize(8).
//	    WithLogger(logger).
//	    Scan()
//
// PDF, hOCR and JSON fragment files are read directly. Images are run
// through OCR, which needs the ocr build tag. For fragments from another
// source, implement text.Source and use FromSource.
package rowscan

import (
	"github.com/tsawler/rowscan/format"
	"github.com/tsawler/rowscan/report"
	"github.com/tsawler/rowscan/text"
)

// PageResult is a classified page and its per-line diagnostics.
type PageResult = report.PageResult

// Open returns a Scanner for the named file. The format is detected from
// the file content, falling back to the extension. The file is opened
// lazily by the first terminal operation.
//
// Example:
//
//	results, warnings, err := rowscan.Open("statement.pdf").Scan()
func Open(filename string) *Scanner {
	return &Scanner{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates a Scanner over an already-opened text source.
// Note: The caller is responsible for closing the source.
func FromSource(src text.Source) *Scanner {
	return &Scanner{
		source:       src,
		sourceOpened: true,
		options:      defaultOptions(),
	}
}

// FromPages creates a Scanner over raw pages held in memory. Pages with a
// zero Number are numbered by position.
//
// Example:
//
//	results, _, err := rowscan.FromPages(pages...).Scan()
func FromPages(pages ...text.Page) *Scanner {
	s := FromSource(text.NewMemorySource(pages...))
	s.format = format.JSON
	return s
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := rowscan.Must(rowscan.Open("statement.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustScan is a helper that wraps a call to Scan() and panics if the error
// is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	results := rowscan.MustScan(rowscan.Open("statement.pdf").Scan())
func MustScan[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
