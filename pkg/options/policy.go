// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package options

import "fmt"

// PromptPolicy governs when an option is prompted for once interactive mode
// is active. The zero value is not a valid policy.
type PromptPolicy int

const (
	policyUnset PromptPolicy = iota
	Always
	Never
	IfEmpty
	IfNoArg
)

const (
	alwaysName  = "always"
	neverName   = "never"
	ifEmptyName = "if-empty"
	ifNoArgName = "if-no-arg"
)

// ParsePromptPolicy maps the textual policy to its enum value.
func ParsePromptPolicy(s string) (PromptPolicy, error) {
	switch s {
	case alwaysName:
		return Always, nil
	case neverName:
		return Never, nil
	case ifEmptyName:
		return IfEmpty, nil
	case ifNoArgName:
		return IfNoArg, nil
	default:
		return policyUnset, fmt.Errorf("unknown prompt policy %q", s)
	}
}

func (p PromptPolicy) String() string {
	switch p {
	case Always:
		return alwaysName
	case Never:
		return neverName
	case IfEmpty:
		return ifEmptyName
	case IfNoArg:
		return ifNoArgName
	default:
		return fmt.Sprintf("PromptPolicy(%d)", int(p))
	}
}

// Valid reports whether p is one of the four recognized policies.
func (p PromptPolicy) Valid() bool {
	return p >= Always && p <= IfNoArg
}

func (p PromptPolicy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid prompt policy %d", int(p))
	}
	return []byte(p.String()), nil
}
