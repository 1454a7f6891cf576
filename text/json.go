package text

import (
	"encoding/json"
	"fmt"
	"io"
)

// document is the JSON envelope for a list of pages.
type document struct {
	Pages []Page `json:"pages"`
}

// ReadJSON decodes a JSON page document.
func ReadJSON(r io.Reader) ([]Page, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode fragments: %w", err)
	}
	for i := range doc.Pages {
		if doc.Pages[i].Number == 0 {
			doc.Pages[i].Number = i + 1
		}
		if doc.Pages[i].Height < 0 || doc.Pages[i].Width < 0 {
			return nil, fmt.Errorf("page %d: negative dimensions", doc.Pages[i].Number)
		}
	}
	return doc.Pages, nil
}

// WriteJSON encodes pages as a JSON page document.
func WriteJSON(w io.Writer, pages []Page) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Pages: pages}); err != nil {
		return fmt.Errorf("encode fragments: %w", err)
	}
	return nil
}
