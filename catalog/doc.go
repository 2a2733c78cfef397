// Package catalog names the patterns shipped by this module and runs their
// demonstrations.
//
// # Pattern names
//
// Pattern is an enum-like type with a canonical kebab-case spelling
// ("factory-method", "abstract-factory", "builder", "prototype",
// "singleton"). ParsePattern also accepts snake_case and CamelCase
// spellings. Pattern implements encoding.TextMarshaler/TextUnmarshaler and
// yaml.Marshaler/Unmarshaler, so it can be used directly in flags and YAML.
//
// # Configuration
//
// Config selects which demos to run and whether to print a banner before
// each one. It is loaded from YAML:
//
//	patterns: [builder, prototype]
//	banner: false
//
// Omitted fields keep their defaults (all patterns, banner on). Unknown
// keys, unknown pattern names and duplicates are rejected.
//
// # Running
//
// Run writes every selected demo to an io.Writer in the configured order.
package catalog
