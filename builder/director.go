// SPDX-License-Identifier: MIT
// Package: creational/builder
//
// director.go — canned build policies over a replaceable Builder.
//
// Design:
//   • The Director holds no product state; everything lives in the builder.
//   • The builder reference is read once per policy call, never cached across calls.
//   • SetBuilder may be called at any time, including between policy calls.

package builder

import "sync"

// Director runs fixed sequences of Builder steps.
// mu guards builder only; the steps themselves run outside the lock.
type Director struct {
	mu      sync.RWMutex
	builder Builder
}

// NewDirector creates a Director and applies opts in order.
// Without WithBuilder the Director starts detached and every policy
// returns ErrNoBuilder until SetBuilder is called.
func NewDirector(opts ...DirectorOption) *Director {
	d := &Director{}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// SetBuilder replaces the builder used by subsequent policy calls.
// Panics on nil, like WithBuilder.
func (d *Director) SetBuilder(b Builder) {
	if b == nil {
		panic("builder: SetBuilder(nil)")
	}
	d.mu.Lock()
	d.builder = b
	d.mu.Unlock()
}

// Builder returns the currently attached builder, or nil.
func (d *Director) Builder() Builder {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.builder
}

// BuildMVP runs the minimal policy: PartA.
//
// Errors:
//   - ErrNoBuilder (wrapped as "BuildMVP: ...") when no builder is attached.
func (d *Director) BuildMVP() error {
	b := d.Builder()
	if b == nil {
		return wrapf(MethodBuildMVP, ErrNoBuilder)
	}
	b.ProducePartA()

	return nil
}

// BuildFullProduct runs the full policy: PartA, PartB, PartC in that order.
//
// Errors:
//   - ErrNoBuilder (wrapped as "BuildFullProduct: ...") when no builder is attached.
func (d *Director) BuildFullProduct() error {
	b := d.Builder()
	if b == nil {
		return wrapf(MethodBuildFullProduct, ErrNoBuilder)
	}
	b.ProducePartA()
	b.ProducePartB()
	b.ProducePartC()

	return nil
}
