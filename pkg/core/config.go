package core

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is an order-preserving configuration object: a mapping from string
// key to arbitrary value that remembers insertion order. Order matters to the
// applier because later keys can overwrite earlier merge results.
type Config struct {
	keys   []string
	values map[string]any
}

// NewConfig returns an empty Config.
func NewConfig() *Config {
	return &Config{values: make(map[string]any)}
}

// Set stores value under key and returns the Config for chaining. Re-setting
// an existing key replaces its value but keeps its original position.
func (c *Config) Set(key string, value any) *Config {
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
	return c
}

// Get returns the value stored under key.
func (c *Config) Get(key string) (any, bool) {
	value, ok := c.values[key]
	return value, ok
}

// Delete removes key, if present.
func (c *Config) Delete(key string) {
	if _, ok := c.values[key]; !ok {
		return
	}
	delete(c.values, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			return
		}
	}
}

// Len returns the number of keys.
func (c *Config) Len() int {
	return len(c.keys)
}

// Keys returns the keys in insertion order. The slice is shared with the
// Config; callers must not mutate it.
func (c *Config) Keys() []string {
	return c.keys
}

// Each calls fn for every key/value pair in insertion order, stopping at the
// first error.
func (c *Config) Each(fn func(key string, value any) error) error {
	for _, key := range c.keys {
		if err := fn(key, c.values[key]); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalYAML decodes a YAML mapping into the Config, preserving document
// order. Nested mappings decode to map[string]any and sequences to []any.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("configuration must be a mapping, got %s", yamlKindName(node.Kind))
	}
	if c.values == nil {
		c.values = make(map[string]any)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("configuration key at line %d: %w", node.Content[i].Line, err)
		}
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("configuration value for %q: %w", key, err)
		}
		c.Set(key, value)
	}
	return nil
}

func yamlKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
