// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"

	"github.com/luxfi/interactive/pkg/ux"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get a configuration value, showing the effective value after merging
flags, environment variables and the config file.

Examples:
  interactive config get output`,
		Args: cobra.ExactArgs(1),
		RunE: runGet,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if _, ok := settable[key]; !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	ux.New(app.Log, cmd.OutOrStdout()).PrintToUser("%s = %s", key, app.Conf.GetConfigStringValue(key))
	return nil
}
