// SPDX-License-Identifier: MIT

// Package lvmat is a compact dense-matrix toolkit: a row-major float64
// matrix with checked access, the core arithmetic kernels, named factories
// and a plain-text rendering, plus a YAML scenario runner and a CLI on top.
//
// 🚀 What is inside?
//
//	matrix/     - Dense storage, At/Set/Row, Mul/Add/Sub/Scale/Divide/Dot,
//	              Zeros/Ones/Filled/Identity, Render/Format
//	scenario/   - YAML documents: named matrices + an ordered pipeline of ops
//	cmd/lvmat/  - `lvmat demo | run | identity | render`
//
// ✨ Guarantees
//
//   - Every kernel returns a fresh *Dense; operands are never mutated.
//   - Shape and index violations are errors (ErrDimensionMismatch,
//     ErrIndexOutOfRange), never panics, and match with errors.Is.
//   - Loop orders are fixed, so results are bit-for-bit reproducible.
//
// Quick start:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
//	c, err := matrix.Mul(a, b)
//	if err != nil {
//		return err
//	}
//	fmt.Print(c) // 22 28
//	             // 49 64
//
// See the matrix package for the full operation table and error policy.
package lvmat
