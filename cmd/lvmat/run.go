// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/scenario"
)

func newRunCmd(ctx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "evaluate a scenario document",
		Long: `
Load a YAML scenario, build its matrices and execute its steps in order.
Print steps write to stdout; the first failing step aborts the run.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := scenario.LoadFile(args[0])
			if err != nil {
				return err
			}
			ev := scenario.NewEvaluator(cmd.OutOrStdout(),
				scenario.WithLogger(ctx.logger.With("scenario", args[0])),
				scenario.WithRenderOptions(ctx.renderOptions(cmd)...),
			)
			_, err = ev.Run(doc)
			return err
		},
	}
}
