// Package creational is a small, runnable catalog of the classic creational
// design patterns, written the way you would actually write them in Go.
//
// 🚀 What is inside?
//
//	Five self-contained packages, each pairing a minimal implementation with
//	client code that prints what the pattern guarantees:
//		• Factory Method:   a Creator defers product construction to a variant
//		• Abstract Factory: families of products that collaborate, never mix
//		• Builder:          stepwise construction driven by a Director
//		• Prototype:        cloning with a nested value and a back-reference
//		• Singleton:        one lazily created instance per process
//
// ✨ Why Go-flavored?
//
//   - Virtual dispatch becomes a capability interface + explicit variants.
//   - Fallible steps return sentinel errors; only option constructors panic.
//   - Shared state (Singleton, ConcreteBuilder) is safe under goroutines.
//
// Under the hood, everything is organized under these subpackages:
//
//	factorymethod/   — Creator, Product, ConcreteCreator1/2
//	abstractfactory/ — Factory, ProductA/ProductB, families 1 and 2
//	builder/         — Product, Builder, ConcreteBuilder, Director
//	prototype/       — Prototype, Component, ComponentWithBackRef
//	singleton/       — Instance() with sync.Once and a UUID id
//	catalog/         — Pattern names, YAML run config, Run dispatcher
//
// Run every demo from the command line:
//
//	go run ./cmd/creational -pattern builder,prototype
package creational
