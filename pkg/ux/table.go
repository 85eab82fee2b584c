// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/luxfi/interactive/pkg/options"
	"github.com/luxfi/interactive/pkg/policy"
	"github.com/luxfi/interactive/pkg/resolve"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cast"
)

// DefaultTable creates a left aligned table with the given headers.
func DefaultTable(w io.Writer, headers ...string) *tablewriter.Table {
	table := tablewriter.NewTable(w)
	table.Configure(func(config *tablewriter.Config) {
		config.Row.Alignment.Global = tw.AlignLeft
	})
	anyHeaders := make([]any, len(headers))
	for i, h := range headers {
		anyHeaders[i] = h
	}
	table.Header(anyHeaders...)
	return table
}

// PrintConfig writes a resolved configuration in the requested format.
func PrintConfig(w io.Writer, cfg resolve.Config, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, cfg)
	case FormatYAML:
		return writeYAML(w, cfg)
	}
	table := DefaultTable(w, "Key", "Value")
	for _, k := range cfg.Keys() {
		if err := table.Append([]string{k, FormatValue(cfg.Get(k))}); err != nil {
			return err
		}
	}
	return table.Render()
}

type planReport struct {
	Interactive bool              `json:"interactive" yaml:"interactive"`
	Options     []policy.Decision `json:"options" yaml:"options"`
}

// PrintPlan writes the evaluator decisions in the requested format.
func PrintPlan(w io.Writer, interactive bool, decisions []policy.Decision, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, planReport{Interactive: interactive, Options: decisions})
	case FormatYAML:
		return writeYAML(w, planReport{Interactive: interactive, Options: decisions})
	}
	if _, err := fmt.Fprintf(w, "Interactive mode: %s\n", yesNo(interactive)); err != nil {
		return err
	}
	table := DefaultTable(w, "Option", "Policy", "Supplied", "Prompt", "Reason")
	for _, d := range decisions {
		row := []string{d.Name, d.Policy.String(), yesNo(d.Supplied), yesNo(d.Prompt), d.Reason}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// PrintSpec lists the options of a normalized spec.
func PrintSpec(w io.Writer, n *options.Normalized) error {
	if n.InteractiveDefault != nil {
		if _, err := fmt.Fprintf(w, "Interactive by default: %s\n", yesNo(*n.InteractiveDefault)); err != nil {
			return err
		}
	}
	table := DefaultTable(w, "Option", "Type", "Policy", "Default", "Choices", "Description")
	for _, e := range n.Entries {
		def := ""
		if e.HasDefault {
			def = FormatValue(e.Default)
		}
		row := []string{e.Name, string(e.Type), e.Policy.String(), def, strings.Join(e.Choices, ", "), e.Describe}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// FormatValue renders a configuration value for a table cell.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case []string:
		return strings.Join(t, ", ")
	case []any:
		return strings.Join(cast.ToStringSlice(t), ", ")
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		s, err := cast.ToStringE(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return s
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
