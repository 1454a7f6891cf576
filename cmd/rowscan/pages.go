package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parsePageRange parses page selections like "1-5" or "1,3,5-7" into page
// numbers.
func parsePageRange(pages string) ([]int, error) {
	var result []int
	for _, part := range strings.Split(pages, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.Contains(part, "-") {
			rangeParts := strings.Split(part, "-")
			if len(rangeParts) != 2 {
				return nil, fmt.Errorf("invalid range format: %s", part)
			}
			start, err1 := strconv.Atoi(strings.TrimSpace(rangeParts[0]))
			end, err2 := strconv.Atoi(strings.TrimSpace(rangeParts[1]))
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("invalid page numbers in range: %s", part)
			}
			if start > end {
				return nil, fmt.Errorf("invalid page range: start (%d) > end (%d)", start, end)
			}
			if start < 1 {
				return nil, fmt.Errorf("page numbers must be positive: %s", part)
			}
			for p := start; p <= end; p++ {
				result = append(result, p)
			}
			continue
		}

		pageNum, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid page number: %s", part)
		}
		if pageNum < 1 {
			return nil, fmt.Errorf("page number must be positive: %d", pageNum)
		}
		result = append(result, pageNum)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("no pages in %q", pages)
	}
	return result, nil
}
