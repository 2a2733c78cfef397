package factorymethod

import (
	"fmt"
	"io"

	"github.com/katalvlaran/creational/internal/report"
)

// ClientCode works with any Creator. A non-zero where is appended to the
// announcement as "at ConcreteCreator<where>".
func ClientCode(c Creator, where int) []string {
	announcement := "CLIENT: inside client code"
	if where != 0 {
		announcement += fmt.Sprintf(" at ConcreteCreator%d", where)
	}

	return []string{announcement, SomeOperation(c)}
}

// Demo runs ClientCode against both creator variants and writes the lines to w.
func Demo(w io.Writer) error {
	lines := ClientCode(ConcreteCreator1{}, 1)
	lines = append(lines, ClientCode(ConcreteCreator2{}, 2)...)

	return report.WriteLines(w, lines...)
}
