package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config selects and formats the demos run by Run.
type Config struct {
	// Patterns lists the demos to run, in order.
	Patterns []Pattern `yaml:"patterns"`

	// Banner prints "== <pattern> ==" before each demo.
	Banner bool `yaml:"banner"`
}

// DefaultConfig runs every pattern in catalog order with banners.
func DefaultConfig() Config {
	return Config{Patterns: All(), Banner: true}
}

// Validate rejects empty selections, invalid values and duplicates.
func (c Config) Validate() error {
	if len(c.Patterns) == 0 {
		return fmt.Errorf("%w: no patterns selected", ErrInvalidConfig)
	}
	seen := make(map[Pattern]struct{}, len(c.Patterns))
	for _, p := range c.Patterns {
		if !p.Valid() {
			return fmt.Errorf("%w: invalid pattern %d", ErrInvalidConfig, int(p))
		}
		if _, ok := seen[p]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePattern, p)
		}
		seen[p] = struct{}{}
	}

	return nil
}

// ParseConfig decodes a YAML document on top of DefaultConfig and validates
// the result. An empty document yields the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("catalog: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
