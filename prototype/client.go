package prototype

import (
	"io"
	"time"

	"github.com/katalvlaran/creational/internal/report"
)

// demoPrimitive is the primitive value used by the demo.
const demoPrimitive = 456

// ClientCode clones src and reports, line by line, whether each clone
// guarantee holds ("Yay!") or not ("Booo!").
func ClientCode(src *Prototype) ([]string, error) {
	clone, err := src.Clone()
	if err != nil {
		return nil, err
	}

	return Verdicts(src, clone), nil
}

// Verdicts compares a source and its clone field by field. A missing
// companion on the clone counts as neither cloned nor linked.
func Verdicts(src, clone *Prototype) []string {
	lines := make([]string, 0, 4)

	if src.Primitive == clone.Primitive {
		lines = append(lines, "Primitive field values have been carried over to a clone. Yay!")
	} else {
		lines = append(lines, "Primitive field values have not been copied. Booo!")
	}
	if src.Component == clone.Component {
		lines = append(lines, "Simple component has not been cloned. Booo!")
	} else {
		lines = append(lines, "Simple component has been cloned. Yay!")
	}
	if clone.CircularReference == nil || src.CircularReference == clone.CircularReference {
		lines = append(lines, "Component with back reference has not been cloned. Booo!")
	} else {
		lines = append(lines, "Component with back reference has been cloned. Yay!")
	}
	if clone.CircularReference.Prototype() != clone {
		lines = append(lines, "Component with back reference is linked to original object. Booo!")
	} else {
		lines = append(lines, "Component with back reference is linked to the clone. Yay!")
	}

	return lines
}

// Demo clones a freshly built prototype and writes the verdicts to w.
func Demo(w io.Writer) error {
	src := New(demoPrimitive, NewComponent(time.Now()))
	lines, err := ClientCode(src)
	if err != nil {
		return err
	}

	return report.WriteLines(w, lines...)
}
