// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package resolve merges parsed arguments, declared defaults and prompt
// answers into the final configuration.
package resolve

import (
	"github.com/luxfi/interactive/pkg/argv"
	"github.com/luxfi/interactive/pkg/options"
	"github.com/luxfi/interactive/pkg/session"
)

// Merge resolves every declared option with the precedence answer, then
// argument, then declared default. Options with none of the three are
// omitted. Reserved keys come from args, except "interactive", which
// reports the effective interactive mode.
func Merge(n *options.Normalized, args argv.Arguments, answers session.Answers, interactive bool) Config {
	b := newBuilder()
	if n != nil {
		for _, e := range n.Entries {
			if v, ok := answers[e.Name]; ok {
				b.set(e.Name, v)
				continue
			}
			if v, ok := args.Lookup(e.Name); ok {
				b.set(e.Name, v)
				continue
			}
			if e.HasDefault {
				b.set(e.Name, e.Default)
			}
		}
	}
	copyReserved(b, args)
	b.set(options.KeyInteractive, interactive)
	return b.c
}

// FromArguments is the plain parser output: reserved keys only, no
// "interactive" unless it was supplied.
func FromArguments(args argv.Arguments) Config {
	b := newBuilder()
	copyReserved(b, args)
	if v, ok := args.Lookup(options.KeyInteractive); ok {
		b.set(options.KeyInteractive, v)
	}
	return b.c
}

func copyReserved(b *builder, args argv.Arguments) {
	b.set(options.KeyPositional, args.Positionals())
	b.set(options.KeyProgram, args.Program())
	for _, k := range []string{options.KeyHelp, options.KeyVersion} {
		if v, ok := args.Lookup(k); ok {
			b.set(k, v)
		}
	}
}
