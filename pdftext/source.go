package pdftext

import (
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/rowscan/text"
)

// Source serves the pages of a PDF document as raw fragments.
type Source struct {
	file   io.Closer
	reader *pdf.Reader
	merger *Merger
}

// Open opens a PDF file.
func Open(filename string) (*Source, error) {
	file, reader, err := pdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &Source{file: file, reader: reader, merger: NewMerger()}, nil
}

// NewSource reads a PDF from r. The caller keeps ownership of r.
func NewSource(r io.ReaderAt, size int64) (*Source, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}
	return &Source{reader: reader, merger: NewMerger()}, nil
}

// SetGapFactor changes how far apart characters may be and still join.
func (s *Source) SetGapFactor(factor float64) {
	s.merger.GapFactor = factor
}

// PageCount returns the number of pages.
func (s *Source) PageCount() (int, error) {
	return s.reader.NumPage(), nil
}

// Page returns the fragments of the page at the zero-based index.
func (s *Source) Page(index int) (page text.Page, err error) {
	count := s.reader.NumPage()
	if index < 0 || index >= count {
		return text.Page{}, fmt.Errorf("page index %d of %d: %w", index, count, text.ErrPageOutOfRange)
	}

	p := s.reader.Page(index + 1)
	if p.V.IsNull() {
		return text.Page{}, fmt.Errorf("page %d: missing page object", index+1)
	}

	// The content parser panics on malformed streams
	defer func() {
		if r := recover(); r != nil {
			page = text.Page{}
			err = fmt.Errorf("page %d: malformed content: %v", index+1, r)
		}
	}()

	width, height := mediaBox(p.V)
	content := p.Content()

	return text.Page{
		Number:    index + 1,
		Width:     width,
		Height:    height,
		Fragments: s.merger.Merge(content.Text),
	}, nil
}

// Close closes the underlying file, if the source opened one.
func (s *Source) Close() error {
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// US Letter, used when no MediaBox can be found
const (
	defaultWidth  = 612
	defaultHeight = 792
)

// mediaBox returns the page dimensions, following the Parent chain for an
// inherited MediaBox.
func mediaBox(v pdf.Value) (width, height float64) {
	for depth := 0; depth < 32 && !v.IsNull(); depth++ {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() >= 4 {
			return box.Index(2).Float64() - box.Index(0).Float64(),
				box.Index(3).Float64() - box.Index(1).Float64()
		}
		v = v.Key("Parent")
	}
	return defaultWidth, defaultHeight
}

var _ text.Source = (*Source)(nil)
