// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package policy decides whether an invocation is interactive and which
// options must be prompted for. Everything here is a pure function of the
// normalized spec and the parsed arguments.
package policy

import (
	"fmt"
	"math"
	"reflect"

	"github.com/luxfi/interactive/pkg/argv"
	"github.com/luxfi/interactive/pkg/options"
)

// Mode reports whether interactive mode is active. An explicit --interactive
// argument always wins over the spec-declared interactive default.
func Mode(n *options.Normalized, args argv.Arguments) bool {
	if v, ok := args.Lookup(options.KeyInteractive); ok {
		return options.Truthy(v)
	}
	if n != nil && n.InteractiveDefault != nil {
		return *n.InteractiveDefault
	}
	return false
}

// ShouldPrompt applies the prompt policy of a single option. It assumes
// interactive mode is active.
func ShouldPrompt(e options.Entry, args argv.Arguments) bool {
	v, supplied := args.Lookup(e.Name)
	switch e.Policy {
	case options.Never:
		return false
	case options.Always:
		return true
	case options.IfEmpty:
		return !supplied || IsEmpty(v)
	case options.IfNoArg:
		return !supplied
	default:
		panic(fmt.Sprintf("option %q: unhandled prompt policy %s", e.Name, e.Policy))
	}
}

// Select returns the options to prompt for, in declaration order. It is
// empty whenever interactive mode is inactive.
func Select(n *options.Normalized, args argv.Arguments) []string {
	if n == nil || !Mode(n, args) {
		return nil
	}
	var names []string
	for _, e := range n.Entries {
		if ShouldPrompt(e, args) {
			names = append(names, e.Name)
		}
	}
	return names
}

// IsEmpty reports whether a supplied value counts as empty: nil, false, the
// empty string, numeric zero and empty collections.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
