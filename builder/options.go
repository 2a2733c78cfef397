// SPDX-License-Identifier: MIT
// Package: creational/builder
//
// options.go — functional options for Director.
//
// Contract:
//   • Options are functional (type DirectorOption func(*Director)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Later options override earlier ones.

package builder

// DirectorOption customizes a Director at construction time.
// Complexity: applying N options costs O(N) time, O(1) space.
type DirectorOption func(*Director)

// WithBuilder attaches the builder the Director drives.
// Panics on nil to surface programmer error early.
func WithBuilder(b Builder) DirectorOption {
	if b == nil {
		panic("builder: WithBuilder(nil)")
	}
	return func(d *Director) {
		d.builder = b
	}
}
