// Command rowscan marks the lines of bank statements and similar documents
// that are possibly part of a date-led table.
//
// Usage:
//
//	rowscan classify statement.pdf
//	rowscan classify scan.hocr --format json --output report.json
//	rowscan classify statement.pdf --annotate annotated.pdf --pages 1-3
//	rowscan config --config rowscan.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
