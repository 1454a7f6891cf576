package rowscan

import (
	"fmt"
	"strings"
)

// Warning is a non-fatal problem met while scanning, such as a page that
// could not be read. Page is 0 when the warning is not tied to a page.
type Warning struct {
	Page    int
	Message string
}

// String returns a string representation of the warning
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
