package rowscan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/tsawler/rowscan/format"
	"github.com/tsawler/rowscan/hocr"
	"github.com/tsawler/rowscan/layout"
	"github.com/tsawler/rowscan/model"
	"github.com/tsawler/rowscan/ocr"
	"github.com/tsawler/rowscan/pdftext"
	"github.com/tsawler/rowscan/tables"
	"github.com/tsawler/rowscan/text"
)

// Scanner provides a fluent interface for classifying the lines of PDF,
// hOCR, JSON and image documents. Each configuration method returns a new
// Scanner instance, making it safe for concurrent use and allowing method
// chaining.
type Scanner struct {
	// Input
	filename string
	format   format.Format

	// Lifecycle
	source       text.Source
	ownsSource   bool // true if we opened the source and should close it
	sourceOpened bool // true if source has been opened

	// Configuration
	options ScanOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Scanner with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (s *Scanner) clone() *Scanner {
	return &Scanner{
		filename:     s.filename,
		format:       s.format,
		source:       s.source,
		ownsSource:   s.ownsSource,
		sourceOpened: s.sourceOpened,
		options:      s.options.clone(),
		err:          s.err,
		warnings:     append([]Warning(nil), s.warnings...),
	}
}

// open returns a copy of the Scanner for one terminal operation, with its
// source opened. Closing the copy releases only what it opened.
func (s *Scanner) open() (*Scanner, error) {
	run := s.clone()
	run.warnings = nil
	if err := run.ensureSource(); err != nil {
		return nil, err
	}
	return run, nil
}

// ensureSource opens the source if not already open.
func (s *Scanner) ensureSource() error {
	if s.sourceOpened {
		return nil
	}
	if s.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	if s.format == format.Unknown {
		f, err := detectFormat(s.filename)
		if err != nil {
			return err
		}
		s.format = f
	}

	var src text.Source
	switch s.format {
	case format.PDF:
		ps, err := pdftext.Open(s.filename)
		if err != nil {
			return err
		}
		src = ps

	case format.HOCR:
		pages, err := hocr.Open(s.filename)
		if err != nil {
			return err
		}
		src = text.NewMemorySource(pages...)

	case format.JSON:
		file, err := os.Open(s.filename)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()
		pages, err := text.ReadJSON(file)
		if err != nil {
			return err
		}
		src = text.NewMemorySource(pages...)

	case format.Image:
		data, err := os.ReadFile(s.filename)
		if err != nil {
			return fmt.Errorf("failed to read image: %w", err)
		}
		page, err := ocr.Recognize(data, s.options.language)
		if err != nil {
			return fmt.Errorf("failed to recognize image: %w", err)
		}
		src = text.NewMemorySource(page)

	default:
		return fmt.Errorf("unsupported file format: %s", s.format)
	}

	s.source = src
	s.ownsSource = true
	s.sourceOpened = true
	return nil
}

// detectFormat inspects the file content, falling back to its extension.
func detectFormat(filename string) (format.Format, error) {
	file, err := os.Open(filename)
	if err != nil {
		return format.Unknown, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return format.DetectFile(filename, file)
}

// Close releases a source opened by this Scanner. Terminal operations
// close what they open, so a Scanner from Open holds nothing between
// calls. It is safe to call Close multiple times.
func (s *Scanner) Close() error {
	if s.ownsSource && s.source != nil {
		err := s.source.Close()
		s.source = nil
		s.ownsSource = false
		s.sourceOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Scanner instance)
// ============================================================================

// Pages specifies which pages to scan (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	results, _, err := rowscan.Open("statement.pdf").Pages(1, 3).Scan()
func (s *Scanner) Pages(pages ...int) *Scanner {
	newScanner := s.clone()
	newScanner.options.pages = append(newScanner.options.pages, pages...)
	return newScanner
}

// PageRange specifies a range of pages to scan (1-indexed, inclusive).
//
// Example:
//
//	results, _, err := rowscan.Open("statement.pdf").PageRange(2, 4).Scan()
func (s *Scanner) PageRange(start, end int) *Scanner {
	newScanner := s.clone()
	if start > end {
		newScanner.err = fmt.Errorf("invalid page range %d-%d", start, end)
		return newScanner
	}
	for i := start; i <= end; i++ {
		newScanner.options.pages = append(newScanner.options.pages, i)
	}
	return newScanner
}

// Format overrides format detection.
func (s *Scanner) Format(f format.Format) *Scanner {
	newScanner := s.clone()
	if !newScanner.sourceOpened {
		newScanner.format = f
	}
	return newScanner
}

// WithConfig replaces the classifier thresholds. An invalid configuration
// fails every later terminal operation.
//
// Example:
//
//	cfg := tables.DefaultConfig()
//	cfg.MinimumColumns = 4
//	results, _, err := rowscan.Open("statement.pdf").WithConfig(cfg).Scan()
func (s *Scanner) WithConfig(config tables.Config) *Scanner {
	newScanner := s.clone()
	if err := config.Validate(); err != nil {
		newScanner.err = err
		return newScanner
	}
	newScanner.options.config = config
	return newScanner
}

// WindowSize sets the number of lines considered around each line.
func (s *Scanner) WindowSize(size int) *Scanner {
	config := s.options.config
	config.WindowSize = size
	return s.WithConfig(config)
}

// WithSink sends every line diagnostic to the sink.
func (s *Scanner) WithSink(sink tables.Sink) *Scanner {
	newScanner := s.clone()
	newScanner.options.sink = sink
	return newScanner
}

// WithLogger logs progress and line diagnostics at debug level.
func (s *Scanner) WithLogger(logger *slog.Logger) *Scanner {
	newScanner := s.clone()
	newScanner.options.logger = logger
	return newScanner
}

// Language sets the OCR language(s) for image input, e.g. "eng+deu".
func (s *Scanner) Language(lang string) *Scanner {
	newScanner := s.clone()
	newScanner.options.language = lang
	return newScanner
}

// WithTableCache reuses the table found for a window when several lines of
// a page share that window. Results are unchanged.
func (s *Scanner) WithTableCache() *Scanner {
	newScanner := s.clone()
	newScanner.options.tableCache = true
	return newScanner
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Scan classifies every selected page. This is a terminal operation. A
// file opened for the scan is closed before Scan returns; the Scanner
// itself is not modified, so it may be scanned again or from several
// goroutines at once.
//
// Pages that cannot be read are skipped and reported as warnings. Failing
// to open the input or an invalid page selection is an error.
//
// Example:
//
//	results, warnings, err := rowscan.Open("statement.pdf").Scan()
func (s *Scanner) Scan() ([]PageResult, []Warning, error) {
	if s.err != nil {
		return nil, nil, s.err
	}

	run, err := s.open()
	if err != nil {
		return nil, nil, err
	}
	defer run.Close()

	pageIndices, err := run.resolvePages()
	if err != nil {
		return nil, nil, err
	}

	logger := run.logger()
	classifier := run.classifier()
	builder := layout.NewLineBuilder()

	results := make([]PageResult, 0, len(pageIndices))
	for _, idx := range pageIndices {
		raw, err := run.source.Page(idx)
		if err != nil {
			run.warnings = append(run.warnings, Warning{Page: idx + 1, Message: err.Error()})
			logger.Debug("skipping page", slog.Int("page", idx+1), slog.Any("error", err))
			continue
		}

		page := builder.Build(raw)
		diagnostics := classifier.ClassifyPage(page)

		logger.Debug("page classified",
			slog.Int("page", page.Number),
			slog.Int("lines", page.LineCount()),
			slog.Int("table_lines", len(page.TableLines())),
		)

		results = append(results, PageResult{Page: page, Diagnostics: diagnostics})
	}

	return results, run.warnings, nil
}

// TableLine is a line classified as possibly part of a table.
type TableLine struct {
	Page int
	Line model.Line
}

// TableLines returns only the lines classified as possibly part of a
// table, in page order. This is a terminal operation.
//
// Example:
//
//	lines, _, err := rowscan.Open("statement.pdf").TableLines()
//	for _, tl := range lines {
//	    fmt.Printf("%d:%d %s\n", tl.Page, tl.Line.Number, tl.Line.Text())
//	}
func (s *Scanner) TableLines() ([]TableLine, []Warning, error) {
	results, warnings, err := s.Scan()
	if err != nil {
		return nil, nil, err
	}

	var lines []TableLine
	for _, r := range results {
		for _, line := range r.Page.TableLines() {
			lines = append(lines, TableLine{Page: r.Page.Number, Line: line})
		}
	}
	return lines, warnings, nil
}

// PageCount returns the number of pages in the document. A file opened to
// count the pages is closed again.
//
// Example:
//
//	count, err := rowscan.Open("statement.pdf").PageCount()
func (s *Scanner) PageCount() (int, error) {
	if s.err != nil {
		return 0, s.err
	}

	run, err := s.open()
	if err != nil {
		return 0, err
	}
	defer run.Close()

	return run.source.PageCount()
}

// ============================================================================
// Internal helpers
// ============================================================================

// resolvePages converts 1-indexed page numbers to 0-indexed and validates them.
// If no pages specified, returns all pages.
func (s *Scanner) resolvePages() ([]int, error) {
	pageCount, err := s.source.PageCount()
	if err != nil {
		return nil, fmt.Errorf("failed to get page count: %w", err)
	}

	// If no pages specified, use all pages
	if len(s.options.pages) == 0 {
		pageIndices := make([]int, pageCount)
		for i := 0; i < pageCount; i++ {
			pageIndices[i] = i
		}
		return pageIndices, nil
	}

	// Convert 1-indexed to 0-indexed and validate
	seen := make(map[int]bool)
	var pageIndices []int
	for _, p := range s.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d): %w", p, pageCount, text.ErrPageOutOfRange)
		}
		zeroIndexed := p - 1
		if !seen[zeroIndexed] {
			seen[zeroIndexed] = true
			pageIndices = append(pageIndices, zeroIndexed)
		}
	}

	// Sort pages in order
	sort.Ints(pageIndices)
	return pageIndices, nil
}

// classifier builds the line classifier for this configuration.
func (s *Scanner) classifier() *tables.Classifier {
	var opts []tables.Option

	var sinks multiSink
	if s.options.sink != nil {
		sinks = append(sinks, s.options.sink)
	}
	if s.options.logger != nil {
		sinks = append(sinks, tables.NewSlogSink(s.options.logger))
	}
	switch len(sinks) {
	case 0:
	case 1:
		opts = append(opts, tables.WithSink(sinks[0]))
	default:
		opts = append(opts, tables.WithSink(sinks))
	}

	if s.options.tableCache {
		opts = append(opts, tables.WithTableCache())
	}

	return tables.NewClassifier(s.options.config, opts...)
}

// logger returns the configured logger, or one that drops everything.
func (s *Scanner) logger() *slog.Logger {
	if s.options.logger != nil {
		return s.options.logger
	}
	return slog.New(discardHandler{})
}

// multiSink fans diagnostics out to several sinks.
type multiSink []tables.Sink

func (m multiSink) Emit(d tables.Diagnostic) {
	for _, sink := range m {
		sink.Emit(d)
	}
}

// discardHandler is a slog.Handler that drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool { return false }

func (discardHandler) Handle(context.Context, slog.Record) error { return nil }

func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler { return d }

func (d discardHandler) WithGroup(string) slog.Handler { return d }
