// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package speccmd

import (
	"github.com/luxfi/interactive/pkg/ux"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print the options of a spec file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := load(args[0])
			if err != nil {
				return err
			}
			return ux.PrintSpec(cmd.OutOrStdout(), n)
		},
	}
}
