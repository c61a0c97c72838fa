// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/scenario"
)

// execute runs a fresh command tree and returns stdout and stderr.
func execute(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	if stdin != nil {
		root.SetIn(stdin)
	}
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDemo(t *testing.T) {
	out, _, err := execute(t, nil, "demo")
	require.NoError(t, err)
	require.Equal(t, "22 28\n49 64\n22 28\n28\n32\n", out)

	out, _, err = execute(t, nil, "demo", "--precision=1", "--separator=\t")
	require.NoError(t, err)
	require.Equal(t, "22.0\t28.0\n49.0\t64.0\n22.0\t28.0\n28.0\n32.0\n", out)
}

func TestDemo_DebugLog(t *testing.T) {
	_, logs, err := execute(t, nil, "demo", "--log-level=debug")
	require.NoError(t, err)
	require.Contains(t, logs, "product=2x2")
	require.Contains(t, logs, "dot=32")

	_, logs, err = execute(t, nil, "demo")
	require.NoError(t, err)
	require.Empty(t, logs)
}

func TestFlagValidation(t *testing.T) {
	testCases := []struct {
		args     []string
		expected string
	}{
		{[]string{"demo", "--precision=-2"}, "--precision must be >= -1"},
		{[]string{"demo", "--separator="}, "--separator must not be empty"},
		{[]string{"demo", "--log-level=loud"}, "--log-level"},
		{[]string{"identity", "three"}, "identity size"},
		{[]string{"identity", "--", "-1"}, "invalid dimensions"},
		{[]string{"identity", "65536"}, "invalid dimensions"},
		{[]string{"demo", "extra"}, "unknown command"},
	}
	for _, c := range testCases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			_, _, err := execute(t, nil, c.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), c.expected)
		})
	}
}

func TestIdentity(t *testing.T) {
	out, _, err := execute(t, nil, "identity", "3")
	require.NoError(t, err)
	require.Equal(t, "1 0 0\n0 1 0\n0 0 1\n", out)

	out, _, err = execute(t, nil, "identity", "0")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestRun(t *testing.T) {
	path := writeFile(t, "pipeline.yaml", `
matrices:
  A: [[1, 2, 3], [4, 5, 6]]
  B: [[1, 2], [3, 4], [5, 6]]
  u: [[1, 2, 3]]
  v: [[4, 5, 6]]
steps:
  - {name: C, op: mul, args: [A, B]}
  - {name: H, op: scale, args: [C], scalar: 0.5}
  - {name: d, op: dot, args: [v, u]}
  - {op: print, args: [H, d]}
precision: 1
`)
	out, _, err := execute(t, nil, "run", path)
	require.NoError(t, err)
	require.Equal(t, "11.0 14.0\n24.5 32.0\n32.0\n", out)

	// an explicit flag overrides the document precision
	out, _, err = execute(t, nil, "run", path, "--precision=-1", "--separator=,")
	require.NoError(t, err)
	require.Equal(t, "11,14\n24.5,32\n32\n", out)
}

func TestRun_Errors(t *testing.T) {
	mismatch := writeFile(t, "mismatch.yaml", `
matrices: {A: [[1, 2, 3]], B: [[1, 2, 3]]}
steps: [{name: C, op: mul, args: [A, B]}]
`)
	_, _, err := execute(t, nil, "run", mismatch)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	broken := writeFile(t, "broken.yaml", "steps: [{op: fly}]\n")
	_, _, err = execute(t, nil, "run", broken)
	require.True(t, errors.Is(err, scenario.ErrUnknownOp), "%+v", err)

	_, _, err = execute(t, nil, "run", filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, nil, "run")
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	out, _, err := execute(t, strings.NewReader("[[1.5, -2], [0.25, 1e21]]\n"), "render")
	require.NoError(t, err)
	require.Equal(t, "1.5 -2\n0.25 1e+21\n", out)

	path := writeFile(t, "ones.yaml", "{ones: [2, 3]}\n")
	out, _, err = execute(t, nil, "render", path, "--separator= | ")
	require.NoError(t, err)
	require.Equal(t, "1 | 1 | 1\n1 | 1 | 1\n", out)

	_, _, err = execute(t, strings.NewReader("[[1, 2], [3]]\n"), "render")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = execute(t, strings.NewReader(""), "render")
	require.True(t, errors.Is(err, scenario.ErrInvalidDocument), "%+v", err)
}

func TestRender_Terminal(t *testing.T) {
	defer func(f func(io.Reader) bool) { isTerminal = f }(isTerminal)
	isTerminal = func(io.Reader) bool { return true }

	_, _, err := execute(t, strings.NewReader("[[1]]"), "render")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no input")
}
