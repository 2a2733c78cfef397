package catalog

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Pattern identifies one creational pattern demo.
type Pattern int

const (
	// FactoryMethod is the factorymethod package.
	FactoryMethod Pattern = iota
	// AbstractFactory is the abstractfactory package.
	AbstractFactory
	// Builder is the builder package.
	Builder
	// Prototype is the prototype package.
	Prototype
	// Singleton is the singleton package.
	Singleton
)

// Canonical string forms.
const (
	FactoryMethodStr   = "factory-method"
	AbstractFactoryStr = "abstract-factory"
	BuilderStr         = "builder"
	PrototypeStr       = "prototype"
	SingletonStr       = "singleton"
)

const patternTypeName = "Pattern"

// All returns every Pattern in catalog order.
func All() []Pattern {
	return []Pattern{FactoryMethod, AbstractFactory, Builder, Prototype, Singleton}
}

// String returns the canonical kebab-case name, or "unknown".
func (p Pattern) String() string {
	switch p {
	case FactoryMethod:
		return FactoryMethodStr
	case AbstractFactory:
		return AbstractFactoryStr
	case Builder:
		return BuilderStr
	case Prototype:
		return PrototypeStr
	case Singleton:
		return SingletonStr
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the declared constants.
func (p Pattern) Valid() bool {
	return p >= FactoryMethod && p <= Singleton
}

// ParsePattern resolves a pattern name. Surrounding whitespace is ignored.
func ParsePattern(str string) (Pattern, error) {
	switch strings.TrimSpace(str) {
	case FactoryMethodStr, "factory_method", "FactoryMethod":
		return FactoryMethod, nil
	case AbstractFactoryStr, "abstract_factory", "AbstractFactory":
		return AbstractFactory, nil
	case BuilderStr, "Builder":
		return Builder, nil
	case PrototypeStr, "Prototype":
		return Prototype, nil
	case SingletonStr, "Singleton":
		return Singleton, nil
	default:
		return FactoryMethod, &ParseError{Type: patternTypeName, Value: str}
	}
}

// ParsePatternList parses a comma-separated list such as "builder,prototype".
// Empty elements are skipped; an empty list yields nil.
func ParsePatternList(list string) ([]Pattern, error) {
	var out []Pattern
	for _, field := range strings.Split(list, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		p, err := ParsePattern(field)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &MarshalError{Type: patternTypeName, Value: int(p)}
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pattern) UnmarshalText(text []byte) error {
	parsed, err := ParsePattern(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Pattern) MarshalYAML() (any, error) {
	if !p.Valid() {
		return nil, &MarshalError{Type: patternTypeName, Value: int(p)}
	}
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler; only string scalars are accepted.
func (p *Pattern) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &ParseError{Type: patternTypeName, Value: node.Value}
	}
	return p.UnmarshalText([]byte(str))
}
