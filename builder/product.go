// SPDX-License-Identifier: MIT
// Package: creational/builder
//
// product.go — the multi-part value assembled by a Builder.

package builder

import "strings"

// Part labels appended by ConcreteBuilder.
const (
	PartA = "PartA"
	PartB = "PartB"
	PartC = "PartC"
)

// partSeparator joins parts in ListParts.
const partSeparator = ", "

// Product is an ordered sequence of part labels. Order reflects the build
// sequence and is semantically meaningful.
type Product struct {
	parts []string
}

// Parts returns a copy of the parts in insertion order.
// Complexity: O(n).
func (p *Product) Parts() []string {
	out := make([]string, len(p.parts))
	copy(out, p.parts)
	return out
}

// Len reports how many parts have been appended.
func (p *Product) Len() int { return len(p.parts) }

// ListParts renders the parts comma-joined, e.g. "PartA, PartB, PartC".
// An empty product lists as "".
func (p *Product) ListParts() string {
	return strings.Join(p.parts, partSeparator)
}

// String renders the human-readable listing printed by the client code.
func (p *Product) String() string {
	return "Product parts: " + p.ListParts()
}

func (p *Product) add(part string) {
	p.parts = append(p.parts, part)
}
