// SPDX-License-Identifier: MIT
// Package: creational/builder
//
// client.go — demonstration code driving ConcreteBuilder with and without a Director.

package builder

import (
	"io"

	"github.com/katalvlaran/creational/internal/report"
)

// ClientCodeWithoutDirector drives a fresh ConcreteBuilder by hand through
// all three steps and returns the printed lines.
func ClientCodeWithoutDirector() []string {
	b := NewConcreteBuilder()
	b.ProducePartA()
	b.ProducePartB()
	b.ProducePartC()

	return []string{
		"Listing parts without Director:",
		b.Product().String(),
	}
}

// ClientCodeWithDirector lets a Director run the MVP and full policies over
// one shared builder, retrieving the product after each policy.
func ClientCodeWithDirector() ([]string, error) {
	b := NewConcreteBuilder()
	d := NewDirector()
	d.SetBuilder(b)

	lines := []string{"Listing MVP with Director:"}
	if err := d.BuildMVP(); err != nil {
		return nil, err
	}
	lines = append(lines, b.Product().String(), "Listing full product with Director:")
	if err := d.BuildFullProduct(); err != nil {
		return nil, err
	}
	lines = append(lines, b.Product().String())

	return lines, nil
}

// Demo writes both client runs to w, separated by a blank line.
func Demo(w io.Writer) error {
	withDirector, err := ClientCodeWithDirector()
	if err != nil {
		return err
	}
	lines := append(ClientCodeWithoutDirector(), "")

	return report.WriteLines(w, append(lines, withDirector...)...)
}
