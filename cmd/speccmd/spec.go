// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package speccmd

import (
	"fmt"

	"github.com/luxfi/interactive/pkg/application"
	"github.com/luxfi/interactive/pkg/options"
	"github.com/spf13/cobra"
)

var app *application.Lux

func NewCmd(injectedApp *application.Lux) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spec",
		Short: "Validate and inspect option spec files",
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}
	app = injectedApp
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newShowCmd())
	return cmd
}

func load(path string) (*options.Normalized, error) {
	f, err := app.LoadSpecFile(path)
	if err != nil {
		return nil, err
	}
	return options.Normalize(f.Spec)
}
