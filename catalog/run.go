package catalog

import (
	"fmt"
	"io"

	"github.com/katalvlaran/creational/abstractfactory"
	"github.com/katalvlaran/creational/builder"
	"github.com/katalvlaran/creational/factorymethod"
	"github.com/katalvlaran/creational/internal/report"
	"github.com/katalvlaran/creational/prototype"
	"github.com/katalvlaran/creational/singleton"
)

// DemoFunc writes one pattern's demonstration to w.
type DemoFunc func(w io.Writer) error

// demos maps every Pattern to its package demo.
var demos = map[Pattern]DemoFunc{
	FactoryMethod:   factorymethod.Demo,
	AbstractFactory: abstractfactory.Demo,
	Builder:         builder.Demo,
	Prototype:       prototype.Demo,
	Singleton:       singleton.Demo,
}

// Demo returns the demo for p, or false if p is not a known pattern.
func Demo(p Pattern) (DemoFunc, bool) {
	fn, ok := demos[p]
	return fn, ok
}

// Run validates cfg and writes each selected demo to w, separating demos
// with a blank line. The first failing demo aborts the run.
func Run(w io.Writer, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	for i, p := range cfg.Patterns {
		var header []string
		if i > 0 {
			header = append(header, "")
		}
		if cfg.Banner {
			header = append(header, fmt.Sprintf("== %s ==", p))
		}
		if err := report.WriteLines(w, header...); err != nil {
			return fmt.Errorf("Run(%s): %w", p, err)
		}
		fn, _ := Demo(p)
		if err := fn(w); err != nil {
			return fmt.Errorf("Run(%s): %w", p, err)
		}
	}

	return nil
}
