// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package options

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cast"
)

// ErrInvalidSpec is matched by every InvalidSpecError.
var ErrInvalidSpec = errors.New("invalid option spec")

// InvalidSpecError reports an option declaration that cannot be normalized.
type InvalidSpecError struct {
	Name   string
	Reason string
}

func (e *InvalidSpecError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidSpec, e.Reason)
	}
	return fmt.Sprintf("%s: option %q: %s", ErrInvalidSpec, e.Name, e.Reason)
}

func (*InvalidSpecError) Is(target error) bool {
	return target == ErrInvalidSpec
}

// Entry is a normalized option.
type Entry struct {
	Name       string
	Type       Type
	Default    any
	HasDefault bool
	Describe   string
	Choices    []string
	Policy     PromptPolicy
}

// Normalized is the canonical, validated form of a Spec.
type Normalized struct {
	Entries []Entry
	// InteractiveDefault is the default of an "interactive" declaration, if
	// the spec carried one. It switches interactive mode on without the
	// --interactive flag.
	InteractiveDefault *bool

	index map[string]int
}

// Lookup returns the entry named name.
func (n *Normalized) Lookup(name string) (Entry, bool) {
	if n == nil {
		return Entry{}, false
	}
	i, ok := n.index[name]
	if !ok {
		return Entry{}, false
	}
	return n.Entries[i], true
}

// Names returns the option names in declaration order.
func (n *Normalized) Names() []string {
	if n == nil {
		return nil
	}
	names := make([]string, len(n.Entries))
	for i, e := range n.Entries {
		names[i] = e.Name
	}
	return names
}

// Normalize validates spec and fills unspecified prompt policies with
// IfNoArg. A nil spec normalizes to an empty result.
func Normalize(spec *Spec) (*Normalized, error) {
	n := &Normalized{index: map[string]int{}}
	err := spec.Each(func(name string, opt Option) error {
		if name == "" {
			return &InvalidSpecError{Reason: "option name must not be empty"}
		}
		if name == KeyInteractive {
			if opt.HasDefault {
				v := Truthy(opt.Default)
				n.InteractiveDefault = &v
			}
			return nil
		}
		if IsReserved(name) {
			return &InvalidSpecError{Name: name, Reason: "name is reserved by the argument parser"}
		}
		policy := IfNoArg
		if opt.Prompt != "" {
			p, err := ParsePromptPolicy(opt.Prompt)
			if err != nil {
				return &InvalidSpecError{Name: name, Reason: err.Error()}
			}
			policy = p
		}
		typ := opt.Type
		if typ == "" {
			typ = TypeInput
		}
		n.index[name] = len(n.Entries)
		n.Entries = append(n.Entries, Entry{
			Name:       name,
			Type:       typ,
			Default:    opt.Default,
			HasDefault: opt.HasDefault,
			Describe:   opt.Describe,
			Choices:    slices.Clone(opt.Choices),
			Policy:     policy,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Truthy mirrors the loose truthiness the interactive switch has always had:
// anything but nil, false, "", "false", "0" and numeric zero turns it on.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != "" && t != "false" && t != "0"
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return true
	}
	return b
}
