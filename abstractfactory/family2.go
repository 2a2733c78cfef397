package abstractfactory

import "fmt"

// ConcreteProductA2 is family 2's ProductA.
type ConcreteProductA2 struct{}

func (ConcreteProductA2) UsefulFunctionA() string {
	return "The result of the product A2."
}

// ConcreteProductB2 is family 2's ProductB.
type ConcreteProductB2 struct{}

func (ConcreteProductB2) UsefulFunctionB() string {
	return "The result of the product B2"
}

func (ConcreteProductB2) AnotherUsefulFunctionB(collaborator ProductA) string {
	return fmt.Sprintf("The result of the B2 collaborating with %s", collaborator.UsefulFunctionA())
}

// ConcreteFactory2 produces family 2.
type ConcreteFactory2 struct{}

func (ConcreteFactory2) CreateProductA() ProductA { return ConcreteProductA2{} }

func (ConcreteFactory2) CreateProductB() ProductB { return ConcreteProductB2{} }
