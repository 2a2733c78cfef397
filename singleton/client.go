package singleton

import (
	"fmt"
	"io"

	"github.com/katalvlaran/creational/internal/report"
)

// ClientCode fetches the instance twice and reports whether both accesses
// carry the same id.
func ClientCode() string {
	s1 := Instance()
	s2 := Instance()

	if s1.ID() == s2.ID() {
		return fmt.Sprintf("Both instances have the same id: %s", s1.ID())
	}

	return fmt.Sprintf("Both instances have different ids: %s and %s", s1.ID(), s2.ID())
}

// Demo runs ClientCode twice; both runs report the same id.
func Demo(w io.Writer) error {
	return report.WriteLines(w, ClientCode(), ClientCode())
}
