// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package speccmd

import (
	"github.com/luxfi/interactive/pkg/ux"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check that spec files are well formed",
		Long: `Parse and normalize each spec file. Reserved option names (_, $0, help,
version) and unknown prompt policies are reported as errors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	ul := ux.New(app.Log, cmd.OutOrStdout())
	var failed error
	for _, path := range args {
		n, err := load(path)
		if err != nil {
			ul.RedXToUser("%v", err)
			if failed == nil {
				failed = err
			}
			continue
		}
		ul.GreenCheckmarkToUser("%s: %d options", path, len(n.Entries))
	}
	return failed
}
