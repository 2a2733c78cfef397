// Package prototype shows the Prototype pattern: an object that knows how to
// clone itself, including a nested value and a component that points back
// at its owner.
//
// Types:
//
//	Prototype             – Primitive int, Component *Component,
//	                        CircularReference *ComponentWithBackRef
//	Component             – nested value (timestamp + labels)
//	ComponentWithBackRef  – companion holding a back-reference to its Prototype
//
// Clone guarantees (see Prototype.Clone):
//
//   - Primitive is copied by value (value-equal to the source).
//   - Component is a new instance with equal contents (deep copy).
//   - CircularReference is a new companion whose back-reference points to
//     the clone, never to the source. It is created after the clone exists
//     and assigned last.
//
// Cycles
//
//	Prototype ↔ ComponentWithBackRef is a plain pointer cycle. The Go garbage
//	collector reclaims cycles, so no weak handle is needed; the companion is
//	still treated as owned by its Prototype and is never shared between
//	clones.
package prototype
