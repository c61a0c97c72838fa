// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/matrix"
)

func newDemoCmd(ctx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "multiply two fixed matrices and take a dot product",
		Long: `
Multiply the 2x3 matrix [[1 2 3] [4 5 6]] by the 3x2 matrix [[1 2] [3 4] [5 6]],
then print the product, its first row, the element at (0,1) and the dot
product of the row vectors [4 5 6] and [1 2 3].
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), ctx, ctx.renderOptions(cmd))
		},
	}
}

func runDemo(w io.Writer, ctx *cliContext, opts []matrix.RenderOption) error {
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		return err
	}
	b, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	if err != nil {
		return err
	}
	u, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}})
	if err != nil {
		return err
	}
	v, err := matrix.NewDenseFromRows([][]float64{{4, 5, 6}})
	if err != nil {
		return err
	}

	c, err := a.Mul(b)
	if err != nil {
		return errors.Wrap(err, "demo product")
	}
	dp, err := v.Dot(u)
	if err != nil {
		return errors.Wrap(err, "demo dot")
	}
	ctx.logger.Debug("demo", "product", fmt.Sprintf("%dx%d", c.Rows(), c.Cols()), "dot", dp)

	if err = matrix.Render(w, c, opts...); err != nil {
		return err
	}
	// Row is a view onto c; NewDenseFromRows copies it into a 1×n matrix.
	view, err := c.Row(0)
	if err != nil {
		return err
	}
	first, err := matrix.NewDenseFromRows([][]float64{view})
	if err != nil {
		return err
	}
	if err = matrix.Render(w, first, opts...); err != nil {
		return err
	}
	x, err := c.At(0, 1)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n%s\n", matrix.FormatValue(x, opts...), matrix.FormatValue(dp, opts...))

	return err
}
