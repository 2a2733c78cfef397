package abstractfactory

// ProductA is the first independently varying product capability.
type ProductA interface {
	UsefulFunctionA() string
}

// ProductB is the second product capability. AnotherUsefulFunctionB
// combines its own description with the collaborator's.
type ProductB interface {
	UsefulFunctionB() string
	AnotherUsefulFunctionB(collaborator ProductA) string
}

// Factory creates one matching ProductA and ProductB per family.
type Factory interface {
	CreateProductA() ProductA
	CreateProductB() ProductB
}

var (
	_ Factory = ConcreteFactory1{}
	_ Factory = ConcreteFactory2{}
)
