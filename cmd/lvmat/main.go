// SPDX-License-Identifier: MIT

// Command lvmat is a small front end to the matrix package: it reproduces
// the reference product/dot walkthrough, evaluates YAML scenario documents
// and renders matrices from the command line.
//
// Usage:
//
//	lvmat demo
//	lvmat run pipeline.yaml --log-level=debug
//	lvmat identity 3 --precision=1
//	lvmat render matrix.yaml --separator=,
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
