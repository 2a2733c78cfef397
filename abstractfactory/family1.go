package abstractfactory

import "fmt"

// ConcreteProductA1 is family 1's ProductA.
type ConcreteProductA1 struct{}

func (ConcreteProductA1) UsefulFunctionA() string {
	return "The result of the product A1."
}

// ConcreteProductB1 is family 1's ProductB.
type ConcreteProductB1 struct{}

func (ConcreteProductB1) UsefulFunctionB() string {
	return "The result of the product B1"
}

func (ConcreteProductB1) AnotherUsefulFunctionB(collaborator ProductA) string {
	return fmt.Sprintf("The result of the B1 collaborating with %s", collaborator.UsefulFunctionA())
}

// ConcreteFactory1 produces family 1.
type ConcreteFactory1 struct{}

func (ConcreteFactory1) CreateProductA() ProductA { return ConcreteProductA1{} }

func (ConcreteFactory1) CreateProductB() ProductB { return ConcreteProductB1{} }
