// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package argv turns raw command-line arguments into Arguments using pflag,
// with one flag registered per declared option.
package argv

import (
	"fmt"
	"io"
	"strings"

	"github.com/luxfi/interactive/pkg/options"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
)

// Options configures a Parser.
type Options struct {
	// Program is reported under "$0" and substituted into Usage.
	Program string
	Usage   string
	Spec    *options.Normalized

	// Help, Version and Interactive register the corresponding boolean
	// flags and, for Help and Version, always report their key.
	Help        bool
	Version     bool
	Interactive bool
}

// Parser is immutable. Every Parse call builds its own flag set, so a Parser
// can be shared between goroutines.
type Parser struct {
	opts Options
}

func NewParser(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Parse parses args. Unknown flags are ignored. Malformed values for
// declared flags are returned as errors.
func (p *Parser) Parse(args []string) (Arguments, error) {
	fs := p.flagSet()
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}

	out := Arguments{
		options.KeyPositional: append([]string{}, fs.Args()...),
		options.KeyProgram:    p.opts.Program,
	}
	if p.opts.Help {
		out[options.KeyHelp], _ = fs.GetBool(options.KeyHelp)
	}
	if p.opts.Version {
		out[options.KeyVersion], _ = fs.GetBool(options.KeyVersion)
	}
	if p.opts.Interactive && fs.Changed(options.KeyInteractive) {
		out[options.KeyInteractive], _ = fs.GetBool(options.KeyInteractive)
	}

	if p.opts.Spec == nil {
		return out, nil
	}
	for _, e := range p.opts.Spec.Entries {
		if !fs.Changed(e.Name) {
			continue
		}
		v, err := flagValue(fs, e)
		if err != nil {
			return nil, fmt.Errorf("failed to read --%s: %w", e.Name, err)
		}
		out[e.Name] = v
	}
	return out, nil
}

// Usage renders the usage line followed by the flag table.
func (p *Parser) Usage() string {
	var b strings.Builder
	if p.opts.Usage != "" {
		b.WriteString(strings.ReplaceAll(p.opts.Usage, "$0", p.opts.Program))
		b.WriteString("\n\n")
	}
	b.WriteString("Options:\n")
	b.WriteString(p.flagSet().FlagUsages())
	return b.String()
}

func (p *Parser) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(p.opts.Program, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false
	fs.ParseErrorsWhitelist.UnknownFlags = true

	if p.opts.Spec != nil {
		for _, e := range p.opts.Spec.Entries {
			registerFlag(fs, e)
		}
	}

	// help is always known to the flag set, otherwise pflag reports
	// ErrHelp for a bare --help; it is only shown when enabled.
	fs.BoolP(options.KeyHelp, "h", false, "Show help")
	if !p.opts.Help {
		_ = fs.MarkHidden(options.KeyHelp)
	}
	if p.opts.Version {
		fs.Bool(options.KeyVersion, false, "Show version number")
	}
	if p.opts.Interactive {
		fs.BoolP(options.KeyInteractive, "i", false, "Prompt for missing values")
	}
	return fs
}

func registerFlag(fs *pflag.FlagSet, e options.Entry) {
	usage := e.Describe
	switch e.Type {
	case options.TypeConfirm:
		fs.Bool(e.Name, cast.ToBool(e.Default), usage)
	case options.TypeNumber:
		fs.Float64(e.Name, cast.ToFloat64(e.Default), usage)
	case options.TypeCheckbox:
		fs.StringSlice(e.Name, cast.ToStringSlice(e.Default), usage)
	default:
		fs.String(e.Name, displayDefault(e), usage)
	}
}

func displayDefault(e options.Entry) string {
	if !e.HasDefault || e.Default == nil {
		return ""
	}
	return cast.ToString(e.Default)
}

func flagValue(fs *pflag.FlagSet, e options.Entry) (any, error) {
	switch e.Type {
	case options.TypeConfirm:
		return fs.GetBool(e.Name)
	case options.TypeNumber:
		return fs.GetFloat64(e.Name)
	case options.TypeCheckbox:
		return fs.GetStringSlice(e.Name)
	default:
		return fs.GetString(e.Name)
	}
}
