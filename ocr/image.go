package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedImage is returned for image data no registered decoder
// recognizes.
var ErrUnsupportedImage = errors.New("unsupported image format")

// ImageInfo describes an image without decoding its pixels.
type ImageInfo struct {
	Format string
	Width  int
	Height int
}

// Probe reads the image header to find its format and dimensions.
func Probe(data []byte) (ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return ImageInfo{}, ErrUnsupportedImage
		}
		return ImageInfo{}, fmt.Errorf("failed to read image header: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return ImageInfo{}, fmt.Errorf("empty %s image", format)
	}
	return ImageInfo{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}
