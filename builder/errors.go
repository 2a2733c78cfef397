// SPDX-License-Identifier: MIT
// Package: creational/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Director policies attach their method name with %w wrapping.
//   • Option constructors (WithX) panic on meaningless input; policies never do.

package builder

import (
	"errors"
	"fmt"
)

// ErrNoBuilder indicates that a Director policy was invoked before any
// Builder was attached via WithBuilder or SetBuilder.
// Usage: if errors.Is(err, ErrNoBuilder) { /* attach a builder first */ }.
var ErrNoBuilder = errors.New("builder: director has no builder")

// Method tokens used as error context.
const (
	MethodBuildMVP         = "BuildMVP"
	MethodBuildFullProduct = "BuildFullProduct"
)

// wrapf prefixes err with the given method context, keeping errors.Is intact.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
