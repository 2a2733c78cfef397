package catalog

import (
	"errors"
	"strconv"
)

// Sentinel errors for configuration validation.
var (
	// ErrDuplicatePattern indicates a pattern is listed more than once.
	ErrDuplicatePattern = errors.New("catalog: duplicate pattern")

	// ErrInvalidConfig indicates a configuration document could not be used.
	ErrInvalidConfig = errors.New("catalog: invalid config")
)

// ParseError is returned when a string does not name a known Pattern.
type ParseError struct {
	// Type is the logical name of the type being parsed.
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

func (e *ParseError) Error() string {
	return "catalog: invalid " + e.Type + " value: " + strconv.Quote(e.Value)
}

// MarshalError is returned when an out-of-range Pattern is marshaled.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the numeric value that matches no known constant.
	Value int
}

func (e *MarshalError) Error() string {
	return "catalog: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}
