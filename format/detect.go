// Package format provides input format detection for the rowscan library.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// HOCR indicates an hOCR document produced by an OCR engine.
	HOCR
	// JSON indicates positioned fragments serialized as JSON.
	JSON
	// Image indicates a raster image that needs OCR.
	Image
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case HOCR:
		return "hOCR"
	case JSON:
		return "JSON"
	case Image:
		return "Image"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case HOCR:
		return ".hocr"
	case JSON:
		return ".json"
	case Image:
		return ".png"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".hocr", ".html", ".htm", ".xhtml":
		return HOCR
	case ".json":
		return JSON
	case ".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff", ".bmp", ".webp":
		return Image
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format.
// This provides more reliable detection than extension-based detection.
// Returns Unknown if the format cannot be determined from the bytes given.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}

	if detectImageMagic(data) {
		return Image
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return JSON
	}

	if detectHOCRMagic(trimmed) {
		return HOCR
	}

	return Unknown
}

// detectImageMagic checks the signatures of the image formats the OCR
// adapter can decode.
func detectImageMagic(data []byte) bool {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return true
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return true
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return true
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return true
	case bytes.HasPrefix(data, []byte("BM")):
		return true
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && string(data[8:12]) == "WEBP":
		return true
	}
	return false
}

// detectHOCRMagic checks if the data looks like HTML carrying hOCR markup.
func detectHOCRMagic(data []byte) bool {
	head := strings.ToLower(string(data[:min(len(data), 4096)]))
	if !strings.HasPrefix(head, "<!doctype html") &&
		!strings.HasPrefix(head, "<html") &&
		!strings.HasPrefix(head, "<?xml") {
		return false
	}
	return strings.Contains(head, "ocr_page") ||
		strings.Contains(head, "ocr-system") ||
		strings.Contains(head, "ocr-capabilities")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// DetectFromReader inspects the content to determine format.
func DetectFromReader(r io.ReaderAt) (Format, error) {
	magic := make([]byte, 4096)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// DetectFile combines content and extension detection. Content wins when it
// is conclusive.
func DetectFile(filename string, r io.ReaderAt) (Format, error) {
	f, err := DetectFromReader(r)
	if err != nil {
		return Unknown, err
	}
	if f != Unknown {
		return f, nil
	}
	return Detect(filename), nil
}
