// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, scalar scaling
// and division, row-vector dot product, transpose, Hadamard product and MatVec.
// All functions perform fail-fast validation and return clear errors on
// dimension mismatches.
//
// Purpose:
//   - Canonical linear-algebra kernels used across the package.
//   - Operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel has a *Dense fast path over the flat buffer and a generic
//     At/Set fallback. Both paths use the same loop order, so they agree bitwise.
//   - Kernels never mutate their operands and always return a fresh *Dense.

package matrix

import "github.com/cockroachdb/errors"

// ZeroSum is the initial accumulator for products and dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opDivide    = "Divide"
	opDot       = "Dot"
	opTranspose = "Transpose"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
)

// accessErrorf reports an At/Set failure inside the generic fallback of a kernel.
// Shapes are validated before the loops run, so this only fires for a Matrix
// implementation whose At/Set disagree with its own Rows/Cols.
func accessErrorf(tag, method string, i, j int, err error) error {
	return errors.Wrapf(err, "%s: %s(%d,%d)", tag, method, i, j)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Notes:
//   - a + (-1)*b equals a - b exactly under IEEE-754, including ±Inf and NaN.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, accessErrorf(opTag, "At", i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, accessErrorf(opTag, "At", i, j, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// MAIN DESCRIPTION:
//   - Naive triple loop with a fixed floating-point summation order.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: For each (i,j) in row-major order, acc = 0 then
//     acc += A[i,k]*B[k,j] for k = 0..n-1 (k innermost); store acc.
//
// Behavior highlights:
//   - No zero-skipping: 0*Inf must still produce NaN, so every term is evaluated.
//   - The *Dense path walks A's row i contiguously and B's column j with stride c.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c). n == 0 yields an all-zero r×c result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Identical summation order on both paths, so results agree bitwise.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		acc     float64
	)

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*inner + k; db.data layout: k*bCols + j.
			var rowA, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * inner
				rowR = i * bCols
				for j = 0; j < bCols; j++ {
					acc = ZeroSum
					for k = 0; k < inner; k++ {
						acc += da.data[rowA+k] * db.data[k*bCols+j]
					}
					res.data[rowR+j] = acc
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop, same i→j→k order.
	var av, bv float64
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, accessErrorf(opMul, "At", i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, accessErrorf(opMul, "At", k, j, err)
				}
				acc += av * bv
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// scalarOp applies f(v, alpha) to every element of m into a fresh Dense.
// Shared by Scale and Divide; f receives the scalar untouched so Divide keeps
// true division instead of multiplying by a rounded reciprocal.
func scalarOp(m Matrix, alpha float64, opTag string, f func(v, alpha float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = f(v, alpha)
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, accessErrorf(opTag, "At", i, j, err)
			}
			res.data[i*cols+j] = f(v, alpha)
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are m[i,j] * alpha.
// MAIN DESCRIPTION:
//   - Eager elementwise scalar multiply; the input is never mutated.
//
// Behavior highlights:
//   - Never fails on the scalar: alpha may be 0, ±Inf or NaN, and IEEE-754
//     propagation applies per element (0*Inf = NaN, etc).
//
// Errors:
//   - ErrNilMatrix only.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	return scalarOp(m, alpha, opScale, func(v, s float64) float64 { return v * s })
}

// Divide returns a new matrix whose elements are m[i,j] / alpha.
// Division by zero is not an error: x/0 yields ±Inf for x≠0 and NaN for x==0
// or x==NaN, exactly as IEEE-754 prescribes.
//
// Errors: ErrNilMatrix only. Complexity: Time O(r*c), Space O(r*c).
func Divide(m Matrix, alpha float64) (*Dense, error) {
	return scalarOp(m, alpha, opDivide, func(v, s float64) float64 { return v / s })
}

// Dot returns sum_i a[0,i]*b[0,i] for two row vectors of equal length.
// MAIN DESCRIPTION:
//   - Row-vector dot product with a left-to-right accumulation order.
//
// Errors:
//   - ErrNilMatrix (nil input).
//   - ErrDimensionMismatch unless a.Rows()==1, b.Rows()==1 and a.Cols()==b.Cols().
//
// Complexity:
//   - Time O(n), Space O(1).
//
// AI-Hints:
//   - Two 1×0 vectors are legal and give 0.
func Dot(a, b Matrix) (float64, error) {
	if err := ValidateRowVectors(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	n := a.Cols()
	acc := ZeroSum
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < n; i++ {
				acc += da.data[i] * db.data[i]
			}

			return acc, nil
		}
	}

	var av, bv float64
	var err error
	for i := 0; i < n; i++ {
		if av, err = a.At(0, i); err != nil {
			return 0, accessErrorf(opDot, "At", 0, i, err)
		}
		if bv, err = b.At(0, i); err != nil {
			return 0, accessErrorf(opDot, "At", 0, i, err)
		}
		acc += av * bv
	}

	return acc, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, accessErrorf(opTranspose, "At", i, j, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Hadamard is not matrix multiplication; use Mul for A×B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, accessErrorf(opHadamard, "At", i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, accessErrorf(opHadamard, "At", i, j, err)
			}
			res.data[i*cols+j] = av * bv
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order, accumulator starts at ZeroSum.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	var acc float64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, accessErrorf(opMatVec, "At", i, j, err)
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// ---------- Method forms on *Dense (operator syntax replacement) ----------

// Mul returns m × b. See the package-level Mul.
func (m *Dense) Mul(b Matrix) (*Dense, error) { return Mul(m, b) }

// Add returns m + b. See the package-level Add.
func (m *Dense) Add(b Matrix) (*Dense, error) { return Add(m, b) }

// Sub returns m - b. See the package-level Sub.
func (m *Dense) Sub(b Matrix) (*Dense, error) { return Sub(m, b) }

// Scale returns m * alpha. See the package-level Scale.
func (m *Dense) Scale(alpha float64) (*Dense, error) { return Scale(m, alpha) }

// Divide returns m / alpha. See the package-level Divide.
func (m *Dense) Divide(alpha float64) (*Dense, error) { return Divide(m, alpha) }

// Dot returns the dot product of two row vectors. See the package-level Dot.
func (m *Dense) Dot(b Matrix) (float64, error) { return Dot(m, b) }

// T returns mᵀ.
func (m *Dense) T() (*Dense, error) { return Transpose(m) }
