// SPDX-License-Identifier: MIT

// Package scenario evaluates small YAML documents that declare named matrices
// and a pipeline of matrix operations over them.
//
// A document has three parts:
//
//	matrices:
//	  A: [[1, 2, 3], [4, 5, 6]]      # nested literal, ragged rows rejected
//	  B: [[1, 2], [3, 4], [5, 6]]
//	  E: [[22, 28], [49, 64]]
//	  I: {identity: 2}               # factories: identity, zeros, ones, filled(+value)
//	steps:
//	  - {name: C, op: mul, args: [A, B]}
//	  - {name: CI, op: mul, args: [C, I]}
//	  - {op: assert, args: [CI, E], tolerance: 0}
//	  - {op: print, args: [C]}
//	precision: 3                     # optional; -1 = shortest round-trip
//
// Steps run in order. Every step that produces a value must have a fresh name;
// later steps refer to it like any declared matrix. Dot produces a scalar.
//
// Errors from the matrix package (ErrDimensionMismatch, ErrIndexOutOfRange)
// surface unchanged under errors.Is, wrapped with the step index and op.
package scenario
