// SPDX-License-Identifier: MIT

package main

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/matrix"
)

func newIdentityCmd(ctx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "identity <n>",
		Short: "print the n x n identity matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "identity size %q", args[0])
			}
			id, err := matrix.NewIdentity(n)
			if err != nil {
				return err
			}
			ctx.logger.Debug("identity", "n", n)

			return matrix.Render(cmd.OutOrStdout(), id, ctx.renderOptions(cmd)...)
		},
	}
}
