// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/scenario"
)

// Proxy to allow overrides in tests.
var isTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func newRenderCmd(ctx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "render [matrix.yaml]",
		Short: "render one matrix declaration",
		Long: `
Read a single matrix declaration from the named file, or from stdin when no
file is given, and print it. The declaration uses the scenario syntax: a
nested row literal such as [[1, 2], [3, 4]] or a factory mapping such as
{identity: 3}.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				m   *matrix.Dense
				err error
			)
			if len(args) == 1 {
				m, err = renderFile(args[0])
			} else {
				in := cmd.InOrStdin()
				if isTerminal(in) {
					return errors.New("no input: pass a file or pipe a matrix on stdin")
				}
				m, err = scenario.LoadMatrix(in)
			}
			if err != nil {
				return err
			}
			ctx.logger.Debug("render", "rows", m.Rows(), "cols", m.Cols())

			return matrix.Render(cmd.OutOrStdout(), m, ctx.renderOptions(cmd)...)
		},
	}
}

func renderFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open matrix %q", path)
	}
	defer f.Close()

	m, err := scenario.LoadMatrix(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load matrix %q", path)
	}
	return m, nil
}
