// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with call-site context and
// tests MUST check them via errors.Is. No kernel panics on user input.

package matrix

import "github.com/cockroachdb/errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." to keep logs greppable.
// Wrap at the detection site with errors.Wrapf(ErrX, "<Op>(...)"); callers
// still match the sentinel with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> invalid dimensions -> dimension mismatch -> index out of range.

var (
	// ErrDimensionMismatch indicates incompatible operand shapes: Mul with
	// a.Cols != b.Rows, Add/Sub/Hadamard on different shapes, Dot on anything
	// but two equal-length row vectors, or a ragged nested literal.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIndexOutOfRange indicates that a row or column index is outside
	// [0, Rows()) or [0, Cols()). At, Set and Row return it instead of panicking.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions is returned when a constructor receives a negative
	// row or column count, or a shape holding more than MaxElements values.
	// Zero is legal and yields an empty matrix.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidTolerance is returned by AllClose when rtol or atol is NaN or ±Inf.
	ErrInvalidTolerance = errors.New("matrix: tolerance must be finite")
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return errors.Wrapf(err, "%s", tag)
}

// denseErrorf wraps err with the Dense method name and the offending coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return errors.Wrapf(err, "Dense.%s(%d,%d)", method, row, col)
}
