package abstractfactory

import (
	"io"

	"github.com/katalvlaran/creational/internal/report"
)

// ClientCode works only with the abstract types: it creates both products
// from f and reports B alone, then B collaborating with A.
func ClientCode(f Factory) []string {
	productA := f.CreateProductA()
	productB := f.CreateProductB()

	return []string{
		productB.UsefulFunctionB(),
		productB.AnotherUsefulFunctionB(productA),
	}
}

// Demo runs ClientCode for both families and writes the lines to w.
func Demo(w io.Writer) error {
	lines := []string{"CLIENT: with first CONCRETE FACTORY"}
	lines = append(lines, ClientCode(ConcreteFactory1{})...)
	lines = append(lines, "", "CLIENT: with second CONCRETE FACTORY")
	lines = append(lines, ClientCode(ConcreteFactory2{})...)

	return report.WriteLines(w, lines...)
}
