// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"slices"

	"github.com/luxfi/interactive/pkg/ux"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Long: `List all configuration values with their effective values and whether
they are set explicitly.`,
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, _ []string) error {
	keys := make([]string, 0, len(settable))
	for k := range settable {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	table := ux.DefaultTable(cmd.OutOrStdout(), "Key", "Value", "Set")
	for _, k := range keys {
		set := "no"
		if app.Conf.ConfigValueIsSet(k) {
			set = "yes"
		}
		if err := table.Append([]string{k, app.Conf.GetConfigStringValue(k), set}); err != nil {
			return err
		}
	}
	return table.Render()
}
