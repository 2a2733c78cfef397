// Package factorymethod shows the Factory Method pattern: a Creator defers
// the choice of concrete Product to its variant, while the shared template
// step (SomeOperation) only ever sees the Product capability.
//
// What
//
//   - Product:  capability with one operation, Operation() string.
//   - Creator:  capability with one construction step, FactoryMethod() Product.
//   - SomeOperation(c): the template step; builds a product through c and
//     reports "CREATOR: init product with <Operation()>".
//   - Variants: ConcreteCreator1 → ConcreteProduct1,
//     ConcreteCreator2 → ConcreteProduct2.
//
// Why
//
//	Go has no abstract base classes. The overridable step becomes an
//	interface method and the template step a plain function over that
//	interface; the caller picks the variant explicitly at construction time.
//
// Invariant
//
//	A creator always produces the product variant it was specialized for,
//	so SomeOperation never mixes up variant descriptions.
package factorymethod
