// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/matrix"
)

// 1) TestRenderOptions_Defaults verifies that no options means the documented defaults.
func TestRenderOptions_Defaults(t *testing.T) {
	m := MustRows(t, [][]float64{{0.1, 22}})
	got, err := matrix.Format(m)
	require.NoError(t, err)
	require.Equal(t, "0.1"+matrix.DefaultSeparator+"22\n", got)
}

// 2) TestRenderOptions_LastWins ensures later setters override earlier ones.
func TestRenderOptions_LastWins(t *testing.T) {
	m := MustRows(t, [][]float64{{1.25, 2}})
	got, err := matrix.Format(m,
		matrix.WithPrecision(3), matrix.WithSeparator(";"),
		matrix.WithPrecision(matrix.DefaultPrecision), matrix.WithSeparator(", "),
	)
	require.NoError(t, err)
	require.Equal(t, "1.25, 2\n", got)
}

// 3) TestRenderOptions_NilIgnored checks that a nil option is skipped.
func TestRenderOptions_NilIgnored(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}})
	got, err := matrix.Format(m, nil, matrix.WithPrecision(0))
	require.NoError(t, err)
	require.Equal(t, "1 2\n", got)
}
