// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var flagUsage = map[string]string{
	"precision": `
Number of digits after the decimal point. The default of -1 prints the
shortest representation that reads back to the same float64.
`,
	"separator": `
String placed between the values of a row.
`,
	"log-level": `
Minimum level of the diagnostics written to stderr: debug, info, warn or
error. Scenario steps are logged at debug.
`,
}

// usage returns the trimmed help text of a registered flag.
func usage(name string) string {
	s, ok := flagUsage[name]
	if !ok {
		panic(fmt.Sprintf("flag usage not defined for %q", name))
	}
	return strings.TrimSpace(s)
}

func initFlags(root *cobra.Command, ctx *cliContext) {
	f := root.PersistentFlags()
	f.IntVar(&ctx.precision, "precision", ctx.precision, usage("precision"))
	f.StringVar(&ctx.separator, "separator", ctx.separator, usage("separator"))
	f.StringVar(&ctx.logLevel, "log-level", ctx.logLevel, usage("log-level"))
}
