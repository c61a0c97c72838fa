// SPDX-License-Identifier: MIT

// Package matrix provides a dense, real-valued matrix with bounds-checked access
// and a small set of deterministic linear-algebra kernels.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix. Element (i,j) lives at offset i*cols + j
//     of a single flat buffer whose length is always rows*cols.
//   - Constructors: NewDense (zero-filled), NewFilledDense, NewDenseFromRows
//     (nested literal form; ragged input is rejected with ErrDimensionMismatch).
//   - Factories: NewZeros, NewOnes, NewFilled, NewIdentity, ZerosLike, IdentityLike.
//   - Kernels: Mul, Add, Sub, Scale, Divide, Dot, plus Transpose, Hadamard, MatVec
//     and AllClose. Every kernel validates shapes first, never mutates its operands
//     and returns a freshly allocated *Dense.
//   - Render / String: one line per row, values separated by a single space.
//
// Errors:
//
// Shape violations return ErrDimensionMismatch, coordinate violations return
// ErrIndexOutOfRange. Both are wrapped with call-site context and must be matched
// with errors.Is. Numeric edge cases (division by zero, NaN, ±Inf) are not errors:
// they follow IEEE-754 and flow through every kernel unchanged.
//
// Determinism:
//
// Mul accumulates each output cell as sum_{k=0..n-1} A[i,k]*B[k,j] with k as the
// innermost loop and a zero-initialized accumulator, so results are bitwise
// reproducible across runs and across the *Dense and generic code paths.
//
// Concurrency:
//
// A *Dense is not safe for concurrent mutation. Distinct values never share
// storage, so independent matrices may be read from many goroutines. Slices
// returned by Row alias the owner's buffer.
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
//	c, _ := matrix.Mul(a, b) // [[22 28] [49 64]]
package matrix
