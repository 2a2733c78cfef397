package factorymethod

// Product is the capability every product variant satisfies.
type Product interface {
	// Operation returns a fixed, variant-specific description.
	Operation() string
}

// Creator produces Products through an overridable construction step.
type Creator interface {
	FactoryMethod() Product
}

// Fixed product descriptions.
const (
	Product1Description = "ConcreteProduct1"
	Product2Description = "ConcreteProduct2"
)

// ConcreteProduct1 is the product made by ConcreteCreator1.
type ConcreteProduct1 struct{}

// Operation returns Product1Description.
func (ConcreteProduct1) Operation() string { return Product1Description }

// ConcreteProduct2 is the product made by ConcreteCreator2.
type ConcreteProduct2 struct{}

// Operation returns Product2Description.
func (ConcreteProduct2) Operation() string { return Product2Description }

// Compile-time interface checks.
var (
	_ Product = ConcreteProduct1{}
	_ Product = ConcreteProduct2{}
	_ Creator = ConcreteCreator1{}
	_ Creator = ConcreteCreator2{}
)
