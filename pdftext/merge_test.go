package pdftext

import (
	"testing"

	"github.com/ledongthuc/pdf"
)

// chars lays out s one character per 5 points starting at x.
func chars(s string, x, y, size float64) []pdf.Text {
	var out []pdf.Text
	for i, r := range s {
		out = append(out, pdf.Text{
			Font:     "Helvetica",
			FontSize: size,
			X:        x + float64(i)*5,
			Y:        y,
			W:        5,
			S:        string(r),
		})
	}
	return out
}

func TestMerger_Empty(t *testing.T) {
	if frags := NewMerger().Merge(nil); frags != nil {
		t.Errorf("Expected nil, got %v", frags)
	}
}

func TestMerger_JoinsWords(t *testing.T) {
	frags := NewMerger().Merge(chars("Opening balance", 10, 700, 10))
	if len(frags) != 1 {
		t.Fatalf("Expected 1 fragment, got %d", len(frags))
	}

	f := frags[0]
	if f.Text != "Opening balance" {
		t.Errorf("Text = %q, want %q", f.Text, "Opening balance")
	}
	if f.X != 10 || f.Y != 700 {
		t.Errorf("Position = (%v, %v), want (10, 700)", f.X, f.Y)
	}
	if f.Width != 75 {
		t.Errorf("Width = %v, want 75", f.Width)
	}
	if f.Height != 10 || f.FontSize != 10 || f.FontName != "Helvetica" {
		t.Errorf("font fields = %v %v %q", f.Height, f.FontSize, f.FontName)
	}
}

func TestMerger_SplitsOnColumnGap(t *testing.T) {
	var in []pdf.Text
	in = append(in, chars("12/03/2024", 10, 700, 10)...)
	in = append(in, chars("Rent", 100, 700, 10)...)
	in = append(in, chars("500.00", 200, 700, 10)...)

	frags := NewMerger().Merge(in)
	if len(frags) != 3 {
		t.Fatalf("Expected 3 fragments, got %d", len(frags))
	}
	want := []string{"12/03/2024", "Rent", "500.00"}
	for i, w := range want {
		if frags[i].Text != w {
			t.Errorf("fragment %d = %q, want %q", i, frags[i].Text, w)
		}
	}
	if frags[1].X != 100 {
		t.Errorf("second fragment X = %v, want 100", frags[1].X)
	}
}

func TestMerger_OrdersBaselinesAndCharacters(t *testing.T) {
	lower := chars("second", 10, 688, 10)
	upper := chars("first", 10, 700, 10)
	// Reverse the upper characters to check sorting by X
	for i, j := 0, len(upper)-1; i < j; i, j = i+1, j-1 {
		upper[i], upper[j] = upper[j], upper[i]
	}

	frags := NewMerger().Merge(append(lower, upper...))
	if len(frags) != 2 {
		t.Fatalf("Expected 2 fragments, got %d", len(frags))
	}
	if frags[0].Text != "first" || frags[1].Text != "second" {
		t.Errorf("fragments = %q, %q", frags[0].Text, frags[1].Text)
	}
}

func TestMerger_DropsWhitespaceRuns(t *testing.T) {
	in := chars("   ", 10, 700, 10)
	in = append(in, chars("text", 100, 700, 10)...)

	frags := NewMerger().Merge(in)
	if len(frags) != 1 || frags[0].Text != "text" {
		t.Errorf("fragments = %+v, want only \"text\"", frags)
	}
}

func TestMerger_GapFactor(t *testing.T) {
	in := chars("ab", 10, 700, 10)
	in = append(in, chars("cd", 24, 700, 10)...) // 4 point gap

	if n := len((&Merger{GapFactor: 0.6}).Merge(in)); n != 1 {
		t.Errorf("gap 4 with threshold 6: got %d fragments, want 1", n)
	}
	if n := len((&Merger{GapFactor: 0.2}).Merge(in)); n != 2 {
		t.Errorf("gap 4 with threshold 2: got %d fragments, want 2", n)
	}
}

func TestMerger_ZeroFontSize(t *testing.T) {
	in := chars("ab", 10, 700, 0)
	in = append(in, chars("cd", 22, 700, 0)...) // 2 point gap

	if n := len(NewMerger().Merge(in)); n != 1 {
		t.Errorf("fallback gap should join characters, got %d fragments", n)
	}
}
