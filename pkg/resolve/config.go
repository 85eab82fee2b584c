// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package resolve

import (
	"slices"

	"github.com/luxfi/interactive/pkg/options"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Config is the resolved configuration. It is immutable: accessors hand out
// copies, and the key order is fixed at construction. The zero Config is
// empty.
type Config struct {
	m *orderedmap.OrderedMap[string, any]
}

type builder struct {
	c Config
}

func newBuilder() *builder {
	return &builder{c: Config{m: orderedmap.New[string, any]()}}
}

func (b *builder) set(key string, v any) {
	b.c.m.Set(key, cloneValue(v))
}

func (c Config) Lookup(key string) (any, bool) {
	if c.m == nil {
		return nil, false
	}
	v, ok := c.m.Get(key)
	if !ok {
		return nil, false
	}
	return cloneValue(v), true
}

// Get returns the value for key, nil when absent.
func (c Config) Get(key string) any {
	v, _ := c.Lookup(key)
	return v
}

// Keys returns the keys in resolution order: options in declaration order,
// then the reserved keys.
func (c Config) Keys() []string {
	keys := make([]string, 0, c.Len())
	if c.m == nil {
		return keys
	}
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (c Config) Len() int {
	if c.m == nil {
		return 0
	}
	return c.m.Len()
}

func (c Config) Positionals() []string {
	p, _ := c.Get(options.KeyPositional).([]string)
	return p
}

func (c Config) Program() string {
	s, _ := c.Get(options.KeyProgram).(string)
	return s
}

func (c Config) Help() bool        { return c.boolValue(options.KeyHelp) }
func (c Config) Version() bool     { return c.boolValue(options.KeyVersion) }
func (c Config) Interactive() bool { return c.boolValue(options.KeyInteractive) }

func (c Config) boolValue(key string) bool {
	b, _ := c.Get(key).(bool)
	return b
}

// Map returns a copy of the configuration as a plain map.
func (c Config) Map() map[string]any {
	m := make(map[string]any, c.Len())
	if c.m == nil {
		return m
	}
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		m[pair.Key] = cloneValue(pair.Value)
	}
	return m
}

// MarshalJSON encodes the configuration as an object, keys in resolution
// order.
func (c Config) MarshalJSON() ([]byte, error) {
	if c.m == nil {
		return []byte("{}"), nil
	}
	return c.m.MarshalJSON()
}

// MarshalYAML encodes the configuration as a mapping, keys in resolution
// order.
func (c Config) MarshalYAML() (any, error) {
	if c.m == nil {
		return map[string]any{}, nil
	}
	return c.m.MarshalYAML()
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []string:
		return slices.Clone(t)
	case []any:
		return slices.Clone(t)
	default:
		return v
	}
}
