// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luxfi/interactive/pkg/application"
	"github.com/luxfi/interactive/pkg/constants"
	"github.com/luxfi/interactive/pkg/ux"
	"github.com/spf13/cast"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/cobra"
)

var app *application.Lux

var errEmptyValue = errors.New("value must not be empty")

// settable lists the keys `config set` accepts with their value check.
// Every check rejects empty values.
var settable = map[string]func(string) (any, error){
	constants.ConfigSpecKey: func(v string) (any, error) {
		if strings.TrimSpace(v) == "" {
			return nil, errEmptyValue
		}
		return v, nil
	},
	constants.ConfigOutputKey: func(v string) (any, error) {
		if v == "" {
			return nil, errEmptyValue
		}
		if _, err := ux.ParseFormat(v, nil); err != nil {
			return nil, err
		}
		return v, nil
	},
	constants.ConfigNonInteractiveKey: func(v string) (any, error) {
		if v == "" {
			return nil, errEmptyValue
		}
		return cast.ToBoolE(v)
	},
	constants.ConfigLogLevelKey: func(v string) (any, error) {
		if v == "" {
			return nil, errEmptyValue
		}
		if _, err := luxlog.ToLevel(strings.ToUpper(v)); err != nil {
			return nil, err
		}
		return v, nil
	},
}

func NewCmd(injectedApp *application.Lux) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Modify configuration for the interactive CLI",
		Long: `Read and write the CLI configuration file (default $HOME/.lux/interactive.json).

Keys:
  spec             default option spec file (env LUX_INTERACTIVE_SPEC)
  output           default output format: table, json, yaml (env LUX_INTERACTIVE_OUTPUT)
  non-interactive  never prompt (env LUX_NON_INTERACTIVE)
  log-level        debug, info, warn or error`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newListCmd())
	return cmd
}
