// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package runcmd

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
		Use:   "run [--spec FILE] [-- ARGS...]",
		Short: "Resolve an option spec against arguments",
		Long: `Resolve every option declared in a spec file against ARGS and print the
resulting configuration.

Values come from prompt answers first, then arguments, then declared
defaults. Prompts only happen in interactive mode: pass --interactive (or
-i) after the separator, or declare an "interactive" option defaulting to
true in the spec. --help and --version after the separator print the
spec's usage or version instead.

Examples:
  interactive run --spec app.yaml -- --directory=src
  interactive run --spec app.yaml --output yaml -- -i`,
		RunE: runResolve,
	}
	app = injectedApp
	cmd.Flags().StringVar(&specFile, constants.ConfigSpecKey, "", "option spec file (yaml or json)")
	cmd.Flags().StringVarP(&output, constants.ConfigOutputKey, "o", "", "output format: table, json or yaml (default table on a terminal, json otherwise)")
	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
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

	pending, err := app.NewBuilder(path, f, args, cmd.OutOrStdout()).Interactive(cmd.Context(), f.Spec)
	if err != nil {
		return err
	}
	cfg, err := pending.Wait()
	if err != nil {
		return err
	}
	app.Log.Info("resolved options", "keys", cfg.Keys())
	if cfg.Help() || cfg.Version() {
		return nil
	}
	return ux.PrintConfig(cmd.OutOrStdout(), cfg, format)
}
