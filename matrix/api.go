// SPDX-License-Identifier: MIT
// Package matrix - public factories & facades.
//
// Purpose:
//   - Provide named convenience builders layered over the Dense constructors.
//   - Avoid logic duplication: every factory delegates to NewDense/NewFilledDense.
//
// Determinism & Policy:
//   - Factories introduce no invariants beyond those of Dense.
//   - Facades never change the loop orders of the underlying kernels.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewOnes returns a rows×cols *Dense with every element equal to 1.0.
// Complexity: O(r*c).
func NewOnes(rows, cols int) (*Dense, error) {
	return NewFilledDense(rows, cols, 1.0)
}

// NewFilled returns a rows×cols *Dense with every element equal to v.
// Complexity: O(r*c).
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	return NewFilledDense(rows, cols, v)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: NewIdentity(0) is the legal empty 0×0 matrix.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	// Diagonal offset i*n + i advances by n+1 per row.
	for i := 0; i < n; i++ {
		id.data[i*(n+1)] = 1.0
	}

	return id, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(r*c).
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Errors: ErrNilMatrix.
func CloneMatrix(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CloneMatrix", err)
	}

	return m.Clone(), nil
}

// ---------- Aliases (discoverability; 1:1 with kernels) ----------

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// ScaleBy is an alias for Scale: m*alpha.
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// DotRowVectors is an alias for Dot.
func DotRowVectors(a, b Matrix) (float64, error) { return Dot(a, b) }

// ---------- Numeric compare ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances return ErrInvalidTolerance.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests (associativity).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
