// SPDX-License-Identifier: MIT
// Package: creational/builder
//
// api.go — the Builder capability and its concrete variant.
//
// Design contract:
//   - Builder declares only the construction steps; retrieval is variant-specific.
//   - ConcreteBuilder owns exactly one in-progress Product at a time.
//   - Product() hands the in-progress value out and resets in one critical section.

package builder

import "sync"

// Builder is the capability every concrete builder satisfies. Each step
// appends one fixed part label to the in-progress product. Steps may be
// called in any order and any number of times.
type Builder interface {
	ProducePartA()
	ProducePartB()
	ProducePartC()
}

var _ Builder = (*ConcreteBuilder)(nil)

// ConcreteBuilder builds Products out of the fixed labels PartA, PartB, PartC.
//
// mu guards product; the zero value is ready to use and starts empty.
type ConcreteBuilder struct {
	mu      sync.Mutex
	product *Product
}

// NewConcreteBuilder returns a builder with an empty in-progress product.
// Complexity: O(1).
func NewConcreteBuilder() *ConcreteBuilder {
	b := &ConcreteBuilder{}
	b.Reset()
	return b
}

// Reset discards the in-progress product and starts a new empty one.
func (b *ConcreteBuilder) Reset() {
	b.mu.Lock()
	b.product = &Product{}
	b.mu.Unlock()
}

// ProducePartA appends PartA.
func (b *ConcreteBuilder) ProducePartA() { b.addPart(PartA) }

// ProducePartB appends PartB.
func (b *ConcreteBuilder) ProducePartB() { b.addPart(PartB) }

// ProducePartC appends PartC.
func (b *ConcreteBuilder) ProducePartC() { b.addPart(PartC) }

// Product returns the in-progress product and resets the builder, so the
// returned value is the only reference to the parts appended since the
// previous reset or retrieval. A second call with no intervening appends
// returns an empty Product.
//
// Complexity: O(1).
func (b *ConcreteBuilder) Product() *Product {
	b.mu.Lock()
	defer b.mu.Unlock()
	result := b.product
	if result == nil {
		result = &Product{}
	}
	b.product = &Product{}

	return result
}

func (b *ConcreteBuilder) addPart(part string) {
	b.mu.Lock()
	if b.product == nil {
		b.product = &Product{}
	}
	b.product.add(part)
	b.mu.Unlock()
}
