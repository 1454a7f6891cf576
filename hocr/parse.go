package hocr

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"

	"github.com/tsawler/rowscan/text"
)

// ErrNoPages is returned when a document has no ocr_page elements.
var ErrNoPages = errors.New("no ocr_page elements found in hOCR data")

// BBox is an hOCR bounding box in pixels with a top-left origin.
type BBox struct {
	X1, Y1, X2, Y2 float64
}

// Width returns the box width
func (b BBox) Width() float64 { return b.X2 - b.X1 }

// Height returns the box height
func (b BBox) Height() float64 { return b.Y2 - b.Y1 }

// lineClasses are the hOCR classes Tesseract uses for text lines.
var lineClasses = []string{"ocr_line", "ocr_header", "ocr_caption", "ocr_textfloat"}

// Open reads and parses an hOCR file.
func Open(filename string) ([]text.Page, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read hOCR: %w", err)
	}
	return Parse(data)
}

// ParseReader parses hOCR from r.
func ParseReader(r io.Reader) ([]text.Page, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read hOCR: %w", err)
	}
	return Parse(data)
}

// NewSource parses hOCR data into an in-memory page source.
func NewSource(data []byte) (*text.MemorySource, error) {
	pages, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return text.NewMemorySource(pages...), nil
}

// Parse converts hOCR data into pages of fragments, one per ocr_page.
func Parse(data []byte) ([]text.Page, error) {
	decoded, err := decode(data)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(bytes.NewReader(decoded))
	if err != nil {
		return nil, fmt.Errorf("failed to parse hOCR: %w", err)
	}

	var pages []text.Page
	var findPages func(*html.Node)
	findPages = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocr_page") {
			pages = append(pages, processPage(n, len(pages)+1))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findPages(c)
		}
	}
	findPages(doc)

	if len(pages) == 0 {
		return nil, ErrNoPages
	}
	return pages, nil
}

// decode converts a legacy single-byte document to UTF-8 based on its
// declared charset.
func decode(data []byte) ([]byte, error) {
	cm := charsetOf(data)
	if cm == nil {
		return data, nil
	}
	decoded, err := cm.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", cm, err)
	}
	return decoded, nil
}

// charsetOf returns the charmap for a declared legacy charset, or nil for
// UTF-8 and undeclared documents.
func charsetOf(data []byte) *charmap.Charmap {
	head := strings.ToLower(string(data[:min(len(data), 2048)]))
	i := strings.Index(head, "charset=")
	if i < 0 {
		return nil
	}
	enc := strings.FieldsFunc(head[i+len("charset="):], func(r rune) bool {
		return r == '"' || r == ';' || r == '\'' || r == '>' || r == ' ' || r == '/'
	})
	if len(enc) == 0 {
		return nil
	}

	switch enc[0] {
	case "utf-8", "utf8":
		return nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252
	case "iso-8859-15", "latin-9":
		return charmap.ISO8859_15
	default:
		return charmap.ISO8859_1
	}
}

func processPage(n *html.Node, number int) text.Page {
	bbox, _ := bboxOf(n)
	page := text.Page{
		Number: number,
		Width:  bbox.Width(),
		Height: bbox.Height(),
	}

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && isLine(node) {
			page.Fragments = append(page.Fragments, lineFragments(node, bbox)...)
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}

	return page
}

// lineFragments converts the words of a line. Words without text or
// without a bounding box are skipped.
func lineFragments(n *html.Node, page BBox) []text.Fragment {
	line, ok := bboxOf(n)
	if !ok {
		return nil
	}
	baseline := page.Y2 - line.Y2

	var frags []text.Fragment
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && hasClass(node, "ocrx_word") {
			word, ok := bboxOf(node)
			txt := textContent(node)
			if ok && txt != "" {
				frags = append(frags, text.Fragment{
					Text:   txt,
					X:      word.X1 - page.X1,
					Y:      baseline,
					Width:  word.Width(),
					Height: line.Height(),
				})
			}
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return frags
}

// ParseTitle breaks down an hOCR title attribute into its properties.
// Example input: "bbox 100 200 300 400; x_wconf 95"
func ParseTitle(title string) map[string][]string {
	result := make(map[string][]string)
	for _, part := range strings.Split(title, ";") {
		items := strings.Fields(part)
		if len(items) > 0 {
			result[items[0]] = items[1:]
		}
	}
	return result
}

func bboxOf(n *html.Node) (BBox, bool) {
	props := ParseTitle(attr(n, "title"))
	values, ok := props["bbox"]
	if !ok || len(values) < 4 {
		return BBox{}, false
	}

	var coords [4]float64
	for i := range coords {
		v, err := strconv.ParseFloat(values[i], 64)
		if err != nil {
			return BBox{}, false
		}
		coords[i] = v
	}
	return BBox{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]}, true
}

func isLine(n *html.Node) bool {
	for _, class := range lineClasses {
		if hasClass(n, class) {
			return true
		}
	}
	return false
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textContent gets all text from a node and its children
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data)
	}

	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return strings.TrimSpace(sb.String())
}
