// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package options describes the option schema handed to the interactive
// resolver and normalizes it into the canonical form the rest of the
// pipeline works on.
package options

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Reserved result keys. They are owned by the argument parser and can never
// be declared as options.
const (
	KeyPositional  = "_"
	KeyProgram     = "$0"
	KeyVersion     = "version"
	KeyHelp        = "help"
	KeyInteractive = "interactive"
)

var reservedKeys = map[string]struct{}{
	KeyPositional:  {},
	KeyProgram:     {},
	KeyVersion:     {},
	KeyHelp:        {},
	KeyInteractive: {},
}

// IsReserved reports whether name is one of the parser-owned result keys.
func IsReserved(name string) bool {
	_, ok := reservedKeys[name]
	return ok
}

// Type is a rendering hint for the prompt collaborator. The resolver never
// interprets it beyond choosing a flag kind.
type Type string

const (
	TypeInput    Type = "input"
	TypeConfirm  Type = "confirm"
	TypeList     Type = "list"
	TypeCheckbox Type = "checkbox"
	TypePassword Type = "password"
	TypeNumber   Type = "number"
	TypeEditor   Type = "editor"
)

// Option is a caller supplied, possibly partial, option declaration.
type Option struct {
	Type Type
	// Default is only honoured when HasDefault is set, so that a nil or
	// zero default can still be declared.
	Default    any
	HasDefault bool
	Describe   string
	Choices    []string
	// Prompt is the raw prompt policy: always, never, if-empty or
	// if-no-arg. Empty means if-no-arg.
	Prompt string
}

// WithDefault returns a copy of o carrying the given default.
func (o Option) WithDefault(v any) Option {
	o.Default = v
	o.HasDefault = true
	return o
}

// Spec is the insertion ordered option map. Declaration order is prompt
// order.
type Spec struct {
	m *orderedmap.OrderedMap[string, Option]
}

func NewSpec() *Spec {
	return &Spec{m: orderedmap.New[string, Option]()}
}

// Set declares or replaces an option. Replacing keeps the original position.
func (s *Spec) Set(name string, opt Option) *Spec {
	s.m.Set(name, opt)
	return s
}

func (s *Spec) Get(name string) (Option, bool) {
	if s == nil {
		return Option{}, false
	}
	return s.m.Get(name)
}

func (s *Spec) Len() int {
	if s == nil {
		return 0
	}
	return s.m.Len()
}

// Names returns the option names in declaration order.
func (s *Spec) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, s.m.Len())
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Each calls fn for every option in declaration order and stops at the
// first error.
func (s *Spec) Each(fn func(name string, opt Option) error) error {
	if s == nil {
		return nil
	}
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		if err := fn(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}
