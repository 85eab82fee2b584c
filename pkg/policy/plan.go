// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package policy

import (
	"github.com/luxfi/interactive/pkg/argv"
	"github.com/luxfi/interactive/pkg/options"
)

// Decision explains the outcome of the evaluator for one option.
type Decision struct {
	Name     string               `json:"name" yaml:"name"`
	Policy   options.PromptPolicy `json:"policy" yaml:"policy"`
	Supplied bool                 `json:"supplied" yaml:"supplied"`
	Empty    bool                 `json:"empty" yaml:"empty"`
	Prompt   bool                 `json:"prompt" yaml:"prompt"`
	Reason   string               `json:"reason" yaml:"reason"`
}

// Plan evaluates every option without prompting, for diagnostics.
func Plan(n *options.Normalized, args argv.Arguments) (bool, []Decision) {
	if n == nil {
		return Mode(n, args), nil
	}
	interactive := Mode(n, args)
	decisions := make([]Decision, 0, len(n.Entries))
	for _, e := range n.Entries {
		v, supplied := args.Lookup(e.Name)
		d := Decision{
			Name:     e.Name,
			Policy:   e.Policy,
			Supplied: supplied,
			Empty:    supplied && IsEmpty(v),
		}
		if interactive {
			d.Prompt = ShouldPrompt(e, args)
		}
		d.Reason = reason(interactive, d)
		decisions = append(decisions, d)
	}
	return interactive, decisions
}

func reason(interactive bool, d Decision) string {
	if !interactive {
		return "interactive mode is off"
	}
	switch d.Policy {
	case options.Never:
		return "policy never prompts"
	case options.Always:
		return "policy always prompts"
	case options.IfEmpty:
		switch {
		case !d.Supplied:
			return "no argument given"
		case d.Empty:
			return "argument is empty"
		default:
			return "argument is set"
		}
	case options.IfNoArg:
		if d.Supplied {
			return "argument given"
		}
		return "no argument given"
	default:
		return ""
	}
}
