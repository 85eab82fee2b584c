// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package interactive is the public entry point: a chained builder that
// parses command-line arguments and, when interactive mode is on, prompts
// for the options that still need a value.
//
//	pending, err := interactive.New().
//		Usage("$0 <command> [args]").
//		Version("1.0.0").
//		Help().
//		Interactive(ctx, spec)
//	if err != nil {
//		return err
//	}
//	cfg, err := pending.Wait()
package interactive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/luxfi/interactive/pkg/argv"
	"github.com/luxfi/interactive/pkg/options"
	"github.com/luxfi/interactive/pkg/policy"
	"github.com/luxfi/interactive/pkg/prompts"
	"github.com/luxfi/interactive/pkg/resolve"
	"github.com/luxfi/interactive/pkg/session"
	luxlog "github.com/luxfi/log"
)

// Builder accumulates parser configuration. Every setter returns a new
// Builder, so a partially configured Builder can be reused.
type Builder struct {
	args    []string
	program string
	usage   string

	help        bool
	version     bool
	versionText string

	renderer session.Renderer
	log      luxlog.Logger
	out      io.Writer
}

// New returns a Builder over args. Without args the process arguments
// (os.Args[1:]) are used.
func New(args ...string) *Builder {
	b := &Builder{
		program: filepath.Base(os.Args[0]),
		log:     luxlog.NewNoOpLogger(),
		out:     os.Stdout,
	}
	if len(args) > 0 {
		b.args = slices.Clone(args)
	} else {
		b.args = slices.Clone(os.Args[1:])
	}
	return b
}

// Args replaces the arguments to parse. Unlike New, an empty list means no
// arguments at all.
func (b *Builder) Args(args ...string) *Builder {
	c := b.clone()
	c.args = append([]string{}, args...)
	return c
}

func (b *Builder) clone() *Builder {
	c := *b
	c.args = slices.Clone(b.args)
	return &c
}

// Usage sets the usage line. "$0" is replaced by the program name.
func (b *Builder) Usage(usage string) *Builder {
	c := b.clone()
	c.usage = usage
	return c
}

// Version enables --version and sets the text printed for it.
func (b *Builder) Version(version string) *Builder {
	c := b.clone()
	c.version = true
	c.versionText = version
	return c
}

// Help enables --help.
func (b *Builder) Help() *Builder {
	c := b.clone()
	c.help = true
	return c
}

// Program overrides the name reported under "$0".
func (b *Builder) Program(name string) *Builder {
	c := b.clone()
	c.program = name
	return c
}

func (b *Builder) WithRenderer(r session.Renderer) *Builder {
	c := b.clone()
	c.renderer = r
	return c
}

func (b *Builder) WithLogger(log luxlog.Logger) *Builder {
	c := b.clone()
	if log == nil {
		log = luxlog.NewNoOpLogger()
	}
	c.log = log
	return c
}

// WithOutput sets where help and version text is written.
func (b *Builder) WithOutput(w io.Writer) *Builder {
	c := b.clone()
	if w == nil {
		w = io.Discard
	}
	c.out = w
	return c
}

func (b *Builder) parser(n *options.Normalized, interactive bool) *argv.Parser {
	return argv.NewParser(argv.Options{
		Program:     b.program,
		Usage:       b.usage,
		Spec:        n,
		Help:        b.help,
		Version:     b.version,
		Interactive: interactive,
	})
}

// Argv parses the arguments without any option spec and without
// prompting. The result carries no "interactive" key.
func (b *Builder) Argv() (resolve.Config, error) {
	p := b.parser(nil, false)
	args, err := p.Parse(b.args)
	if err != nil {
		return resolve.Config{}, err
	}
	if err := b.writeInfo(p, args); err != nil {
		return resolve.Config{}, err
	}
	return resolve.FromArguments(args), nil
}

// Interactive resolves spec against the arguments. Spec and argument
// errors are returned directly; prompting happens in the background and
// its outcome is delivered through the returned Pending, even when no
// prompt is needed.
func (b *Builder) Interactive(ctx context.Context, spec *options.Spec) (*Pending, error) {
	n, err := options.Normalize(spec)
	if err != nil {
		return nil, err
	}
	p := b.parser(n, true)
	args, err := p.Parse(b.args)
	if err != nil {
		return nil, err
	}
	if err := b.writeInfo(p, args); err != nil {
		return nil, err
	}

	mode := policy.Mode(n, args)
	var names []string
	// --help and --version skip prompting.
	if !args.Bool(options.KeyHelp) && !args.Bool(options.KeyVersion) {
		names = policy.Select(n, args)
	}
	b.log.Debug("resolving options",
		"interactive", mode,
		"prompt", names,
	)

	renderer := b.renderer
	if renderer == nil && len(names) > 0 {
		renderer = prompts.NewPrompterForMode(false, b.log)
	}
	runner := session.NewRunner(renderer, session.WithLogger(b.log))

	return start(ctx, func(ctx context.Context) (resolve.Config, error) {
		answers, err := runner.Run(ctx, n, names)
		if err != nil {
			return resolve.Config{}, err
		}
		return resolve.Merge(n, args, answers, mode), nil
	}), nil
}

func (b *Builder) writeInfo(p *argv.Parser, args argv.Arguments) error {
	if args.Bool(options.KeyHelp) {
		if _, err := io.WriteString(b.out, p.Usage()); err != nil {
			return fmt.Errorf("failed to write usage: %w", err)
		}
	}
	if args.Bool(options.KeyVersion) {
		if _, err := fmt.Fprintln(b.out, b.versionText); err != nil {
			return fmt.Errorf("failed to write version: %w", err)
		}
	}
	return nil
}

// Plan reports, without prompting, whether interactive mode is on and what
// would happen to every option of spec.
func (b *Builder) Plan(spec *options.Spec) (bool, []policy.Decision, error) {
	n, err := options.Normalize(spec)
	if err != nil {
		return false, nil, err
	}
	args, err := b.parser(n, true).Parse(b.args)
	if err != nil {
		return false, nil, err
	}
	mode, decisions := policy.Plan(n, args)
	return mode, decisions, nil
}
