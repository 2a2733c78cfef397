// Package abstractfactory shows the Abstract Factory pattern: a Factory
// creates a whole family of related products, and products of one family
// collaborate only with each other.
//
// Products:
//
//	ProductA  – UsefulFunctionA() string
//	ProductB  – UsefulFunctionB() string
//	            AnotherUsefulFunctionB(collaborator ProductA) string
//
// Families:
//
//	ConcreteFactory1 → ConcreteProductA1 + ConcreteProductB1
//	ConcreteFactory2 → ConcreteProductA2 + ConcreteProductB2
//
// Client code depends only on Factory, ProductA and ProductB; the family is
// chosen once, by passing a concrete factory.
package abstractfactory
