package rowscan

import (
	"log/slog"

	"github.com/tsawler/rowscan/tables"
)

// ScanOptions holds configuration for scanning.
type ScanOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Classifier thresholds
	config tables.Config

	// Diagnostics
	sink   tables.Sink
	logger *slog.Logger

	// OCR language for image input
	language string

	// Reuse window tables within a page
	tableCache bool
}

// defaultOptions returns the default scan options.
func defaultOptions() ScanOptions {
	return ScanOptions{
		pages:  nil, // nil means all pages
		config: tables.DefaultConfig(),
	}
}

// clone creates a deep copy of ScanOptions.
func (o ScanOptions) clone() ScanOptions {
	newOpts := ScanOptions{
		config:     o.config,
		sink:       o.sink,
		logger:     o.logger,
		language:   o.language,
		tableCache: o.tableCache,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
