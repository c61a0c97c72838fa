// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Private element-wise comparison kernels (ew*) behind the public facades.
//   - Keep loops deterministic with a Dense fast path.

package matrix

import "math"

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// closeEnough implements the |a-b| ≤ atol + rtol*|b| relation.
// Equal infinities compare close; NaN never does.
func closeEnough(av, bv, rtol, atol float64) bool {
	if av == bv {
		return true
	}
	if isNonFinite(av) || isNonFinite(bv) {
		return false
	}

	return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
}

// ewAllClose backs AllClose.
// Time: O(r*c). Space: O(1). Early-exits on the first violation in row-major order.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrInvalidTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx, av := range da.data {
				if !closeEnough(av, db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, accessErrorf("AllClose", "At", i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, accessErrorf("AllClose", "At", i, j, err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}
