// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/matrix"
)

// cliContext holds the values bound to the persistent flags of one root
// command, plus the logger built from them before any subcommand runs.
type cliContext struct {
	precision int
	separator string
	logLevel  string

	logger *slog.Logger
}

// newCLIContext returns a cliContext with default values.
func newCLIContext() *cliContext {
	ctx := &cliContext{}
	ctx.initDefaults()
	return ctx
}

// initDefaults resets every flag-bound field.
func (ctx *cliContext) initDefaults() {
	ctx.precision = matrix.DefaultPrecision
	ctx.separator = matrix.DefaultSeparator
	ctx.logLevel = slog.LevelWarn.String()
	ctx.logger = nil
}

// init validates the flags and builds the stderr logger.
// Render options panic on invalid values, so they are rejected here first.
func (ctx *cliContext) init(stderr io.Writer) error {
	if ctx.precision < matrix.DefaultPrecision {
		return errors.Newf("--precision must be >= %d, got %d", matrix.DefaultPrecision, ctx.precision)
	}
	if ctx.separator == "" {
		return errors.New("--separator must not be empty")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(ctx.logLevel)); err != nil {
		return errors.Wrapf(err, "--log-level %q", ctx.logLevel)
	}
	ctx.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return nil
}

// renderOptions converts the flags into matrix render options. Precision is
// only forwarded when set on the command line, so a scenario document's own
// precision still applies otherwise.
func (ctx *cliContext) renderOptions(cmd *cobra.Command) []matrix.RenderOption {
	opts := []matrix.RenderOption{matrix.WithSeparator(ctx.separator)}
	if f := cmd.Flag("precision"); f != nil && f.Changed {
		opts = append(opts, matrix.WithPrecision(ctx.precision))
	}
	return opts
}

// newRootCmd assembles a fresh command tree with its own cliContext.
func newRootCmd() *cobra.Command {
	ctx := newCLIContext()

	root := &cobra.Command{
		Use:   "lvmat",
		Short: "dense matrix toolkit",
		Long: `
Multiply, add, scale and render dense float64 matrices, either through the
built-in walkthrough or through YAML scenario documents.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return ctx.init(cmd.ErrOrStderr())
		},
	}
	initFlags(root, ctx)

	root.AddCommand(
		newDemoCmd(ctx),
		newRunCmd(ctx),
		newIdentityCmd(ctx),
		newRenderCmd(ctx),
	)

	return root
}
