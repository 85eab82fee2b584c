// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package argv

import (
	"maps"
	"slices"

	"github.com/luxfi/interactive/pkg/options"
)

// Arguments is the parser output: option name to supplied value, plus the
// reserved keys. An option key is present only when the flag was given on
// the command line.
type Arguments map[string]any

// Lookup returns the value supplied for name.
func (a Arguments) Lookup(name string) (any, bool) {
	v, ok := a[name]
	return v, ok
}

// Positionals returns the non-flag arguments.
func (a Arguments) Positionals() []string {
	switch v := a[options.KeyPositional].(type) {
	case []string:
		return slices.Clone(v)
	default:
		return []string{}
	}
}

// Program returns the invoked program name.
func (a Arguments) Program() string {
	s, _ := a[options.KeyProgram].(string)
	return s
}

// Bool returns the boolean stored under name, false when absent or not a
// bool.
func (a Arguments) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

func (a Arguments) Clone() Arguments {
	c := maps.Clone(a)
	if c == nil {
		c = Arguments{}
	}
	if p, ok := c[options.KeyPositional].([]string); ok {
		c[options.KeyPositional] = slices.Clone(p)
	}
	return c
}
