// Package report writes the human-readable lines produced by the pattern
// client code.
package report

import (
	"fmt"
	"io"
)

// WriteLines writes each line followed by a newline and stops at the first
// write error, wrapping it with the offending line index.
func WriteLines(w io.Writer, lines ...string) error {
	for i, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("report: line %d: %w", i, err)
		}
	}

	return nil
}
