package ocr

import (
	"errors"
	"fmt"

	"github.com/tsawler/rowscan/hocr"
	"github.com/tsawler/rowscan/text"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "eng"

// PageSegMode represents page segmentation modes for OCR.
// These control how Tesseract analyzes the page layout.
type PageSegMode int

// Page segmentation modes, numbered as Tesseract numbers them.
const (
	PSM_OSD_ONLY               PageSegMode = 0  // Orientation and script detection only
	PSM_AUTO_OSD               PageSegMode = 1  // Automatic with OSD
	PSM_AUTO_ONLY              PageSegMode = 2  // Automatic, no OSD or OCR
	PSM_AUTO                   PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_COLUMN          PageSegMode = 4  // Single column of variable sizes
	PSM_SINGLE_BLOCK_VERT_TEXT PageSegMode = 5  // Single uniform block of vertically aligned text
	PSM_SINGLE_BLOCK           PageSegMode = 6  // Single uniform block of text
	PSM_SINGLE_LINE            PageSegMode = 7  // Single text line
	PSM_SINGLE_WORD            PageSegMode = 8  // Single word
	PSM_CIRCLE_WORD            PageSegMode = 9  // Single word in a circle
	PSM_SINGLE_CHAR            PageSegMode = 10 // Single character
	PSM_SPARSE_TEXT            PageSegMode = 11 // Find as much text as possible
	PSM_SPARSE_TEXT_OSD        PageSegMode = 12 // Sparse text with OSD
	PSM_RAW_LINE               PageSegMode = 13 // Treat image as single text line
)

// Recognize runs OCR over one image and returns its words as a page of
// fragments. The image is checked with Probe before Tesseract sees it.
func Recognize(imageData []byte, language string) (text.Page, error) {
	if _, err := Probe(imageData); err != nil {
		return text.Page{}, err
	}

	client, err := New()
	if err != nil {
		return text.Page{}, err
	}
	defer client.Close()

	if language == "" {
		language = DefaultLanguage
	}
	if err := client.SetLanguage(language); err != nil {
		return text.Page{}, fmt.Errorf("failed to set language %q: %w", language, err)
	}

	doc, err := client.RecognizeHOCR(imageData)
	if err != nil {
		return text.Page{}, err
	}

	pages, err := hocr.Parse([]byte(doc))
	if err != nil {
		return text.Page{}, fmt.Errorf("failed to read OCR output: %w", err)
	}
	return pages[0], nil
}
