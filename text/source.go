package text

import (
	"errors"
	"fmt"
)

// ErrPageOutOfRange is returned when a page index does not exist.
var ErrPageOutOfRange = errors.New("page out of range")

// Source yields the raw pages of a document.
type Source interface {
	// PageCount returns the number of pages.
	PageCount() (int, error)

	// Page returns the page at the zero-based index.
	Page(index int) (Page, error)

	// Close releases resources held by the source.
	Close() error
}

// MemorySource serves pages that are already in memory.
type MemorySource struct {
	pages []Page
}

// NewMemorySource creates a source over the given pages. Pages with a zero
// Number are numbered by position.
func NewMemorySource(pages ...Page) *MemorySource {
	src := &MemorySource{pages: make([]Page, len(pages))}
	for i, p := range pages {
		if p.Number == 0 {
			p.Number = i + 1
		}
		src.pages[i] = p
	}
	return src
}

// PageCount returns the number of pages.
func (s *MemorySource) PageCount() (int, error) {
	return len(s.pages), nil
}

// Page returns the page at the zero-based index.
func (s *MemorySource) Page(index int) (Page, error) {
	if index < 0 || index >= len(s.pages) {
		return Page{}, fmt.Errorf("page index %d: %w", index, ErrPageOutOfRange)
	}
	return s.pages[index], nil
}

// Close is a no-op.
func (s *MemorySource) Close() error {
	return nil
}
