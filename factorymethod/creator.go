package factorymethod

import "fmt"

// ConcreteCreator1 always creates ConcreteProduct1.
type ConcreteCreator1 struct{}

// FactoryMethod returns a new ConcreteProduct1.
func (ConcreteCreator1) FactoryMethod() Product { return ConcreteProduct1{} }

// ConcreteCreator2 always creates ConcreteProduct2.
type ConcreteCreator2 struct{}

// FactoryMethod returns a new ConcreteProduct2.
func (ConcreteCreator2) FactoryMethod() Product { return ConcreteProduct2{} }

// SomeOperation is the template step shared by every Creator: it obtains a
// product through c.FactoryMethod and composes the report around it.
// Complexity: O(1) plus the cost of the variant's FactoryMethod.
func SomeOperation(c Creator) string {
	product := c.FactoryMethod()
	return fmt.Sprintf("CREATOR: init product with %s", product.Operation())
}
