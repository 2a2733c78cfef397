// File: prototype.go
// Role: the cloneable Prototype and its back-referencing companion.
// AI-HINT (file):
//   - Clone builds the container first and wires CircularReference last, so the
//     companion can only ever see the clone.

package prototype

import "errors"

// ErrCloneFailed indicates a nested value could not be copied.
var ErrCloneFailed = errors.New("prototype: clone failed")

// Prototype holds a primitive, a nested value and a companion that points back.
type Prototype struct {
	// Primitive is copied by value.
	Primitive int

	// Component is deep-copied by Clone; may be nil.
	Component *Component

	// CircularReference is owned by this Prototype and points back at it.
	CircularReference *ComponentWithBackRef
}

// ComponentWithBackRef is a companion that keeps a link to its owner.
type ComponentWithBackRef struct {
	prototype *Prototype
}

// NewComponentWithBackRef links a new companion to owner.
func NewComponentWithBackRef(owner *Prototype) *ComponentWithBackRef {
	return &ComponentWithBackRef{prototype: owner}
}

// Prototype returns the owner this companion points back to.
// A nil companion has no owner and returns nil.
func (c *ComponentWithBackRef) Prototype() *Prototype {
	if c == nil {
		return nil
	}
	return c.prototype
}

// New creates a Prototype with its companion already wired back to it.
func New(primitive int, component *Component) *Prototype {
	p := &Prototype{Primitive: primitive, Component: component}
	p.CircularReference = NewComponentWithBackRef(p)

	return p
}

// Clone returns a copy of p:
//   - Primitive equal to p.Primitive;
//   - Component a distinct deep copy (nil stays nil);
//   - CircularReference a new companion pointing at the clone.
//
// Errors:
//   - ErrCloneFailed (wrapped) if the Component cannot be copied.
//
// Complexity: O(size of Component).
func (p *Prototype) Clone() (*Prototype, error) {
	component, err := p.Component.Clone()
	if err != nil {
		return nil, err
	}
	clone := &Prototype{
		Primitive: p.Primitive,
		Component: component,
	}
	// Companion is created only once the clone exists.
	clone.CircularReference = NewComponentWithBackRef(clone)

	return clone, nil
}
