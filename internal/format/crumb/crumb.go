// Package crumb renders breadcrumb headers from menu item traces.
package crumb

import (
	"strings"

	"github.com/muesli/reflow/truncate"
)

const separator = " → "

// Join renders the path segments as a single breadcrumb line, truncated
// to width with an ellipsis when too long. A width of zero disables
// truncation.
func Join(segments []string, width int) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		parts = append(parts, segment)
	}
	line := strings.Join(parts, separator)
	if width <= 0 {
		return line
	}
	return truncate.StringWithTail(line, uint(width), "…")
}
