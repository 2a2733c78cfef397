// Package builder separates the stepwise construction of a multi-part
// Product from the policy that decides which steps to run.
//
// The package offers the following key components:
//
//   - Product: an ordered list of part labels plus ListParts, which renders
//     them comma-joined in insertion order ("PartA, PartB, PartC").
//   - Builder: the capability interface – ProducePartA/B/C, each appending one
//     fixed label to the in-progress product.
//   - ConcreteBuilder: the single shipped Builder variant. Beyond the three
//     steps it exposes:
//     – Reset:   discard the in-progress product and start an empty one.
//     – Product: return the in-progress product AND reset, so the returned
//     value is the only reference to the parts appended since the last
//     reset/retrieval.
//   - Director: holds a replaceable Builder and runs canned policies:
//     – BuildMVP:         PartA.
//     – BuildFullProduct: PartA, PartB, PartC (fixed order).
//
// Guarantees:
//
//   - Insertion order is preserved; the same call sequence always lists the
//     same parts.
//   - Retrieval resets: calling Product twice without intervening appends
//     yields an empty listing the second time.
//   - The Director keeps no product state and re-reads its builder on every
//     policy call, so swapping builders between calls is legal.
//   - Running a policy with no builder set returns ErrNoBuilder; option
//     constructors (WithBuilder) panic on nil, algorithms never panic.
//   - ConcreteBuilder is safe for concurrent use; Product swaps the
//     in-progress value under the same lock that guards appends.
//
// Quick example:
//
//	b := builder.NewConcreteBuilder()
//	d := builder.NewDirector(builder.WithBuilder(b))
//	_ = d.BuildFullProduct()
//	fmt.Println(b.Product().ListParts()) // PartA, PartB, PartC
package builder
