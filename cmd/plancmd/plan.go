// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package plancmd

import (
	"github.com/luxfi/interactive/pkg/application"
	"github.com/luxfi/interactive/pkg/constants"
	"github.com/luxfi/interactive/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	app *application.Lux

	specFile string
	output   string
)

func NewCmd(injectedApp *application.Lux) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [--spec FILE] [-- ARGS...]",
		Short: "Show which options would be prompted for",
		Long: `Evaluate the prompt policy of every option in a spec file against ARGS
and print the decision with its reason. Nothing is prompted.

Examples:
  interactive plan --spec app.yaml -- -i --projectName=`,
		RunE: runPlan,
	}
	app = injectedApp
	cmd.Flags().StringVar(&specFile, constants.ConfigSpecKey, "", "option spec file (yaml or json)")
	cmd.Flags().StringVarP(&output, constants.ConfigOutputKey, "o", "", "output format: table, json or yaml")
	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	for _, key := range []string{constants.ConfigSpecKey, constants.ConfigOutputKey} {
		if err := app.Conf.BindFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return err
		}
	}
	format, err := ux.ParseFormat(app.Conf.OutputFormat(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	path, err := app.SpecPath("")
	if err != nil {
		return err
	}
	f, err := app.LoadSpecFile(path)
	if err != nil {
		return err
	}
	mode, decisions, err := app.NewBuilder(path, f, args, cmd.OutOrStdout()).Plan(f.Spec)
	if err != nil {
		return err
	}
	return ux.PrintPlan(cmd.OutOrStdout(), mode, decisions, format)
}
