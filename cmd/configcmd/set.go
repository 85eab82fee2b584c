// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"

	"github.com/luxfi/interactive/pkg/ux"
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the config file. The file is created when
it does not exist yet.

Examples:
  interactive config set output yaml
  interactive config set spec ./app.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]
	check, ok := settable[key]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	value, err := check(raw)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if err := app.Conf.SetConfigValue(key, value, app.GetConfigPath()); err != nil {
		return err
	}
	ux.New(app.Log, cmd.OutOrStdout()).PrintToUser("Set %s = %s in %s", key, raw, app.Conf.GetConfigPath())
	return nil
}
