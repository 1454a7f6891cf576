//go:build ocr

// Package ocr turns scanned statements into positioned fragments.
//
// Recognition runs Tesseract through gosseract, so the tesseract library
// and its language data must be installed (tesseract-ocr on Debian and
// Ubuntu, tesseract on Homebrew). Without the "ocr" build tag every call
// returns ErrOCRNotEnabled.
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client runs Tesseract over statement images. A Client holds native
// resources and is not safe for concurrent use; Close it when done.
type Client struct {
	tess *gosseract.Client
}

// New creates a client. Interword spaces are preserved so that runs of
// blanks between table cells survive into the hOCR output.
func New() (*Client, error) {
	tess := gosseract.NewClient()
	if err := tess.SetVariable("preserve_interword_spaces", "1"); err != nil {
		tess.Close()
		return nil, fmt.Errorf("failed to configure tesseract: %w", err)
	}
	return &Client{tess: tess}, nil
}

// Close releases the Tesseract handle. A nil client is accepted.
func (c *Client) Close() error {
	if c == nil || c.tess == nil {
		return nil
	}
	return c.tess.Close()
}

// RecognizeImage returns the plain text of a scan, trimmed. It has no
// positions and is meant for inspecting what Tesseract read.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.load(imageData); err != nil {
		return "", err
	}
	out, err := c.tess.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// RecognizeHOCR returns the scan as an hOCR document. Its ocr_line and
// ocrx_word boxes are what hocr.Parse turns into fragments.
func (c *Client) RecognizeHOCR(imageData []byte) (string, error) {
	if err := c.load(imageData); err != nil {
		return "", err
	}
	out, err := c.tess.HOCRText()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return out, nil
}

// SetLanguage selects the trained data, e.g. "eng" or "eng+deu".
func (c *Client) SetLanguage(lang string) error {
	return c.tess.SetLanguage(strings.Split(lang, "+")...)
}

// SetPageSegMode changes how Tesseract splits the page. Statements usually
// read best with PSM_AUTO or PSM_SPARSE_TEXT.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.tess.SetPageSegMode(gosseract.PageSegMode(mode))
}

func (c *Client) load(imageData []byte) error {
	if err := c.tess.SetImageFromBytes(imageData); err != nil {
		return fmt.Errorf("failed to set image: %w", err)
	}
	return nil
}
