package rowscan

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"codeberg.org/go-pdf/fpdf"

	"github.com/tsawler/rowscan/format"
	"github.com/tsawler/rowscan/tables"
	"github.com/tsawler/rowscan/text"
)

// ledgerPage builds a raw page of n date-led rows in four columns.
func ledgerPage(number, n int) text.Page {
	page := text.Page{Number: number, Width: 612, Height: 792}
	for i := 0; i < n; i++ {
		y := 700 - float64(i)*12
		page.Fragments = append(page.Fragments,
			text.Fragment{Text: "12/03/2024", X: 10, Y: y, Width: 85, Height: 10},
			text.Fragment{Text: "Card payment", X: 100, Y: y, Width: 95, Height: 10},
			text.Fragment{Text: "REF0001", X: 200, Y: y, Width: 95, Height: 10},
			text.Fragment{Text: "12.50", X: 300, Y: y, Width: 50, Height: 10},
		)
	}
	return page
}

// proseLine appends a single-fragment line to a raw page.
func proseLine(page text.Page, txt string, y float64) text.Page {
	page.Fragments = append(page.Fragments, text.Fragment{Text: txt, X: 10, Y: y, Width: 300, Height: 14})
	return page
}

// ============================================================================
// Scan Tests
// ============================================================================

func TestScan_FromPages(t *testing.T) {
	results, warnings, err := FromPages(ledgerPage(1, 6)).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	page := results[0].Page
	if page.LineCount() != 6 {
		t.Fatalf("Expected 6 lines, got %d", page.LineCount())
	}
	for _, line := range page.Lines {
		if !line.PossiblyPartOfTable {
			t.Errorf("line %d should be part of a table", line.Number)
		}
	}
	if len(results[0].Diagnostics) != 6 {
		t.Errorf("Expected 6 diagnostics, got %d", len(results[0].Diagnostics))
	}
}

func TestScan_ProseOnly(t *testing.T) {
	page := text.Page{Width: 612, Height: 792}
	for i := 0; i < 8; i++ {
		page = proseLine(page, "Thank you for banking with us.", 700-float64(i)*16)
	}

	lines, _, err := FromPages(page).TableLines()
	if err != nil {
		t.Fatalf("TableLines failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Expected no table lines, got %d", len(lines))
	}
}

func TestScan_MultiplePages(t *testing.T) {
	pages := []text.Page{ledgerPage(1, 6), proseLine(text.Page{Width: 612, Height: 792}, "Summary", 700), ledgerPage(3, 7)}

	results, _, err := FromPages(pages...).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	if results[1].Page.Number != 2 {
		t.Errorf("unnumbered page should be numbered 2, got %d", results[1].Page.Number)
	}

	lines, _, err := FromPages(pages...).TableLines()
	if err != nil {
		t.Fatalf("TableLines failed: %v", err)
	}
	if len(lines) != 13 {
		t.Errorf("Expected 13 table lines, got %d", len(lines))
	}
	if lines[len(lines)-1].Page != 3 {
		t.Errorf("last table line on page %d, want 3", lines[len(lines)-1].Page)
	}
}

func TestScan_PageSelection(t *testing.T) {
	sc := FromPages(ledgerPage(1, 6), ledgerPage(2, 6), ledgerPage(3, 6))

	results, _, err := sc.Pages(3, 1, 3).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(results) != 2 || results[0].Page.Number != 1 || results[1].Page.Number != 3 {
		t.Errorf("selected pages = %v", pageNumbers(results))
	}

	results, _, err = sc.PageRange(2, 3).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(results) != 2 || results[0].Page.Number != 2 {
		t.Errorf("range pages = %v", pageNumbers(results))
	}
}

func TestScan_PageOutOfRange(t *testing.T) {
	_, _, err := FromPages(ledgerPage(1, 6)).Pages(2).Scan()
	if !errors.Is(err, text.ErrPageOutOfRange) {
		t.Errorf("Scan() error = %v, want ErrPageOutOfRange", err)
	}

	_, _, err = FromPages(ledgerPage(1, 6)).PageRange(3, 1).Scan()
	if err == nil {
		t.Error("expected error for inverted page range")
	}
}

func TestScan_InvalidConfig(t *testing.T) {
	_, _, err := FromPages(ledgerPage(1, 6)).WindowSize(0).Scan()
	if !errors.Is(err, tables.ErrInvalidConfig) {
		t.Errorf("Scan() error = %v, want ErrInvalidConfig", err)
	}
}

func TestScan_WithConfig(t *testing.T) {
	cfg := tables.DefaultConfig()
	cfg.MinimumColumns = 5

	results, _, err := FromPages(ledgerPage(1, 6)).WithConfig(cfg).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if n := len(results[0].Page.TableLines()); n != 0 {
		t.Errorf("four columns should not satisfy a minimum of five, got %d table lines", n)
	}
}

func TestScan_ImmutableChain(t *testing.T) {
	base := FromPages(ledgerPage(1, 6), ledgerPage(2, 6))
	_ = base.Pages(2)

	results, _, err := base.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("configuring a derived scanner changed the base: %d results", len(results))
	}
}

// failingSource serves one good page and one broken page.
type failingSource struct{}

func (failingSource) PageCount() (int, error) { return 2, nil }

func (failingSource) Page(index int) (text.Page, error) {
	if index == 1 {
		return text.Page{}, errors.New("corrupt content stream")
	}
	return ledgerPage(1, 6), nil
}

func (failingSource) Close() error { return nil }

func TestScan_UnreadablePageWarns(t *testing.T) {
	results, warnings, err := FromSource(failingSource{}).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("Expected 1 result, got %d", len(results))
	}
	if len(warnings) != 1 || warnings[0].Page != 2 {
		t.Fatalf("warnings = %v", warnings)
	}
	if !strings.Contains(FormatWarnings(warnings), "page 2: corrupt content stream") {
		t.Errorf("FormatWarnings() = %q", FormatWarnings(warnings))
	}
}

func TestScan_RepeatedScanDoesNotRepeatWarnings(t *testing.T) {
	sc := FromSource(failingSource{})

	for i := 0; i < 2; i++ {
		_, warnings, err := sc.Scan()
		if err != nil {
			t.Fatalf("Scan %d failed: %v", i+1, err)
		}
		if len(warnings) != 1 {
			t.Errorf("Scan %d returned %d warnings, want 1", i+1, len(warnings))
		}
	}
}

func TestScan_ConcurrentOnOneScanner(t *testing.T) {
	var buf bytes.Buffer
	if err := text.WriteJSON(&buf, []text.Page{ledgerPage(1, 6), ledgerPage(2, 6)}); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "ledger.json")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	sc := Open(path).WithTableCache()

	const workers = 8
	var wg sync.WaitGroup
	counts := make([]int, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			lines, _, err := sc.TableLines()
			counts[i], errs[i] = len(lines), err
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Errorf("worker %d: %v", i, errs[i])
		}
		if counts[i] != 12 {
			t.Errorf("worker %d found %d table lines, want 12", i, counts[i])
		}
	}

	// The shared Scanner is still usable afterwards
	if n, err := sc.PageCount(); err != nil || n != 2 {
		t.Errorf("PageCount() = %d, %v; want 2", n, err)
	}
}

func TestScan_SinkAndLogger(t *testing.T) {
	sink := &tables.CollectSink{}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _, err := FromPages(ledgerPage(1, 6)).WithSink(sink).WithLogger(logger).WithTableCache().Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if n := len(sink.Diagnostics()); n != 6 {
		t.Errorf("sink received %d diagnostics, want 6", n)
	}
	out := buf.String()
	if !strings.Contains(out, "line classified") || !strings.Contains(out, "page classified") {
		t.Errorf("log output missing entries:\n%s", out)
	}
}

// ============================================================================
// File Input Tests
// ============================================================================

func TestOpen_NonExistent(t *testing.T) {
	_, _, err := Open("nonexistent.pdf").Scan()
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestOpen_Unsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Open(path).Scan()
	if err == nil || !strings.Contains(err.Error(), "unsupported file format") {
		t.Errorf("Scan() error = %v, want unsupported format", err)
	}
}

func TestOpen_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := text.WriteJSON(&buf, []text.Page{ledgerPage(1, 6)}); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "fragments.json")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, _, err := Open(path).TableLines()
	if err != nil {
		t.Fatalf("TableLines failed: %v", err)
	}
	if len(lines) != 6 {
		t.Errorf("Expected 6 table lines, got %d", len(lines))
	}
}

func TestOpen_HOCR(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`<html><body><div class="ocr_page" title="bbox 0 0 1000 1000">`)
	for i := 0; i < 6; i++ {
		top := 100 + i*30
		sb.WriteString(`<span class="ocr_line" title="bbox 50 ` + strconv.Itoa(top) + ` 900 ` + strconv.Itoa(top+20) + `">`)
		sb.WriteString(`<span class="ocrx_word" title="bbox 50 ` + strconv.Itoa(top) + ` 200 ` + strconv.Itoa(top+20) + `">12/03/2024</span>`)
		sb.WriteString(`<span class="ocrx_word" title="bbox 300 ` + strconv.Itoa(top) + ` 450 ` + strconv.Itoa(top+20) + `">Transfer</span>`)
		sb.WriteString(`<span class="ocrx_word" title="bbox 600 ` + strconv.Itoa(top) + ` 700 ` + strconv.Itoa(top+20) + `">REF</span>`)
		sb.WriteString(`<span class="ocrx_word" title="bbox 800 ` + strconv.Itoa(top) + ` 900 ` + strconv.Itoa(top+20) + `">10.00</span>`)
		sb.WriteString(`</span>`)
	}
	sb.WriteString(`</div></body></html>`)

	path := filepath.Join(t.TempDir(), "scan.hocr")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, _, err := Open(path).TableLines()
	if err != nil {
		t.Fatalf("TableLines failed: %v", err)
	}
	if len(lines) != 6 {
		t.Errorf("Expected 6 table lines, got %d", len(lines))
	}
}

func TestOpen_PDF(t *testing.T) {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetFont("Helvetica", "", 10)
	for i := 0; i < 2; i++ {
		doc.AddPage()
		doc.Text(72, 100, "Statement")
		doc.Text(72, 120, "Closing balance")
	}
	path := filepath.Join(t.TempDir(), "statement.pdf")
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatal(err)
	}

	if n, err := Open(path).PageCount(); err != nil || n != 2 {
		t.Errorf("PageCount() = %d, %v; want 2", n, err)
	}

	results, _, err := Open(path).Pages(2).Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(results) != 1 || results[0].Page.Number != 2 {
		t.Fatalf("results = %v", pageNumbers(results))
	}
	if results[0].Page.LineCount() != 2 {
		t.Errorf("Expected 2 lines, got %d", results[0].Page.LineCount())
	}
}

func TestFormatOverride(t *testing.T) {
	// A JSON document with a misleading extension
	var buf bytes.Buffer
	if err := text.WriteJSON(&buf, []text.Page{ledgerPage(1, 6)}); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "fragments.dat")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	count, err := Open(path).Format(format.JSON).PageCount()
	if err != nil || count != 1 {
		t.Errorf("PageCount() = %d, %v; want 1", count, err)
	}
}

func TestMust(t *testing.T) {
	count := Must(FromPages(ledgerPage(1, 6)).PageCount())
	if count != 1 {
		t.Errorf("Must(PageCount()) = %d, want 1", count)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustScan should panic on error")
		}
	}()
	MustScan(FromPages().Pages(1).Scan())
}

func TestWarning_String(t *testing.T) {
	if got := (Warning{Message: "general"}).String(); got != "general" {
		t.Errorf("String() = %q", got)
	}
	if got := (Warning{Page: 4, Message: "bad"}).String(); got != "page 4: bad" {
		t.Errorf("String() = %q", got)
	}
}

func pageNumbers(results []PageResult) []int {
	nums := make([]int, len(results))
	for i, r := range results {
		nums[i] = r.Page.Number
	}
	return nums
}
