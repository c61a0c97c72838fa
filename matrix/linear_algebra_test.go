// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the arithmetic kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestMul_Concrete(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	Compare(t, [][]float64{{22, 28}, {49, 64}}, c)

	// method form and alias agree
	viaMethod, err := a.Mul(b)
	require.NoError(t, err)
	require.True(t, c.Equal(viaMethod))
	viaAlias, err := matrix.Product(a, b)
	require.NoError(t, err)
	require.True(t, c.Equal(viaAlias))
}

func TestMul_DimensionMismatch(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 2, 2)

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_NilOperand(t *testing.T) {
	a := MustDense(t, 2, 2)
	var nilDense *matrix.Dense

	_, err := matrix.Mul(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(nilDense, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_OperandsUntouched(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{5, 6}, {7, 8}})
	aCopy, bCopy := a.Clone(), b.Clone()

	_, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, a.Equal(aCopy))
	require.True(t, b.Equal(bCopy))
}

func TestMul_EmptyInner(t *testing.T) {
	a := MustDense(t, 2, 0)
	b := MustDense(t, 0, 3)

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	Compare(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, c)
}

// TestMul_InfPropagation: 0*Inf must not be skipped; the cell becomes NaN.
func TestMul_InfPropagation(t *testing.T) {
	a := MustRows(t, [][]float64{{0, 1}})
	b := MustRows(t, [][]float64{{math.Inf(1)}, {2}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	v, err := c.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
}

// TestMul_GenericPathBitwise checks that the At/Set fallback reproduces the
// *Dense fast path exactly (same k-innermost summation order).
func TestMul_GenericPathBitwise(t *testing.T) {
	a := RandomDense(t, 7, 5, 1)
	b := RandomDense(t, 5, 6, 2)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slowA, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	slowB, err := matrix.Mul(a, hide{b})
	require.NoError(t, err)

	require.True(t, fast.Equal(slowA))
	require.True(t, fast.Equal(slowB))
}

func TestMul_IdentityLaw(t *testing.T) {
	a := RandomDense(t, 4, 3, 42)

	right, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	left, err := matrix.NewIdentity(4)
	require.NoError(t, err)

	ai, err := matrix.Mul(a, right)
	require.NoError(t, err)
	require.True(t, a.Equal(ai))

	ia, err := matrix.Mul(left, a)
	require.NoError(t, err)
	require.True(t, a.Equal(ia))
}

func TestMul_Associativity(t *testing.T) {
	a := RandomDense(t, 4, 6, 7)
	b := RandomDense(t, 6, 5, 8)
	c := RandomDense(t, 5, 3, 9)

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	abc1, err := matrix.Mul(ab, c)
	require.NoError(t, err)

	bc, err := matrix.Mul(b, c)
	require.NoError(t, err)
	abc2, err := matrix.Mul(a, bc)
	require.NoError(t, err)

	ok, err := matrix.AllClose(abc1, abc2, 1e-9, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAdd_Succeeds(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{6, 5, 4}, {3, 2, 1}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	Compare(t, [][]float64{{7, 7, 7}, {7, 7, 7}}, sum)

	generic, err := matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	require.True(t, sum.Equal(generic))
}

func TestAdd_DimensionMismatch(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Add(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSub_Succeeds(t *testing.T) {
	a := MustRows(t, [][]float64{{5, 4}, {3, 2}, {1, 0}})
	b, err := matrix.NewOnes(3, 2)
	require.NoError(t, err)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	Compare(t, [][]float64{{4, 3}, {2, 1}, {0, -1}}, diff)

	generic, err := matrix.Sub(hide{a}, b)
	require.NoError(t, err)
	require.True(t, diff.Equal(generic))
}

func TestSub_DimensionMismatch(t *testing.T) {
	_, err := matrix.Sub(MustDense(t, 1, 2), MustDense(t, 2, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAddSub_AdditiveInverse(t *testing.T) {
	a := RandomDense(t, 5, 4, 100)
	b := RandomDense(t, 5, 4, 200)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	back, err := matrix.Sub(sum, b)
	require.NoError(t, err)

	ok, err := matrix.AllClose(back, a, 1e-12, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestScale(t *testing.T) {
	a := MustRows(t, [][]float64{{1, -2}, {3, 0}})

	s, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	Compare(t, [][]float64{{2, -4}, {6, 0}}, s)

	z, err := a.Scale(0)
	require.NoError(t, err)
	for _, v := range z.RawData() {
		require.Equal(t, 0.0, math.Abs(v))
	}

	// Inf and NaN scalars propagate without error.
	inf, err := matrix.Scale(a, math.Inf(1))
	require.NoError(t, err)
	v, _ := inf.At(0, 0)
	require.True(t, math.IsInf(v, 1))
	v, _ = inf.At(0, 1)
	require.True(t, math.IsInf(v, -1))
	v, _ = inf.At(1, 1)
	require.True(t, math.IsNaN(v)) // 0 * Inf

	nan, err := matrix.Scale(hide{a}, math.NaN())
	require.NoError(t, err)
	for _, v := range nan.RawData() {
		require.True(t, math.IsNaN(v))
	}
}

func TestDivide(t *testing.T) {
	a := MustRows(t, [][]float64{{2, -4}, {0, 9}})

	d, err := matrix.Divide(a, 2)
	require.NoError(t, err)
	Compare(t, [][]float64{{1, -2}, {0, 4.5}}, d)

	// Division by zero is not an error.
	z, err := a.Divide(0)
	require.NoError(t, err)
	v, _ := z.At(0, 0)
	require.True(t, math.IsInf(v, 1))
	v, _ = z.At(0, 1)
	require.True(t, math.IsInf(v, -1))
	v, _ = z.At(1, 0)
	require.True(t, math.IsNaN(v)) // 0/0

	// True division, not multiplication by a rounded reciprocal.
	third, err := matrix.Divide(MustRows(t, [][]float64{{1}}), 3)
	require.NoError(t, err)
	v, _ = third.At(0, 0)
	require.Equal(t, 1.0/3.0, v)
}

func TestScaleDivide_NilMatrix(t *testing.T) {
	_, err := matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Divide(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDot(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}})
	b := MustRows(t, [][]float64{{4, 5, 6}})

	d, err := matrix.Dot(a, b)
	require.NoError(t, err)
	require.Equal(t, 32.0, d)

	d, err = a.Dot(hide{b})
	require.NoError(t, err)
	require.Equal(t, 32.0, d)

	d, err = matrix.DotRowVectors(MustDense(t, 1, 0), MustDense(t, 1, 0))
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
}

func TestDot_DimensionMismatch(t *testing.T) {
	cases := []struct {
		name string
		a, b *matrix.Dense
	}{
		{"left not row vector", MustDense(t, 2, 3), MustDense(t, 1, 3)},
		{"right not row vector", MustDense(t, 1, 3), MustDense(t, 3, 1)},
		{"length differs", MustDense(t, 1, 3), MustDense(t, 1, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Dot(tc.a, tc.b)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		})
	}
}

func TestTranspose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	Compare(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr)

	generic, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	require.True(t, tr.Equal(generic))

	viaMethod, err := a.T()
	require.NoError(t, err)
	require.True(t, tr.Equal(viaMethod))
}

func TestHadamard(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{2, 0}, {-1, 0.5}})

	h, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	Compare(t, [][]float64{{2, 0}, {-3, 2}}, h)

	_, err = matrix.Hadamard(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVec(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	y, err = matrix.MatVec(hide{a}, []float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{6, 15}, y)

	_, err = matrix.MatVec(a, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
