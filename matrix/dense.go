// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep value semantics: constructors and Clone always allocate a fresh buffer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone: O(r*c); NewDenseFromRows: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxNew      = "NewDense"
	ctxNewFill  = "NewFilledDense"
	ctxFromRows = "NewDenseFromRows"
)

// MaxElements caps rows*cols for every constructor: 2^31-1 values
// (16 GiB of float64), which also keeps the length inside int on 32-bit
// platforms.
const MaxElements = math.MaxInt32

// checkedLen validates a shape and returns rows*cols without overflowing.
func checkedLen(tag string, rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, errors.Wrapf(ErrInvalidDimensions, "%s(%d,%d): negative size", tag, rows, cols)
	}
	if cols != 0 && rows > MaxElements/cols {
		return 0, errors.Wrapf(ErrInvalidDimensions,
			"%s(%d,%d): more than %d elements", tag, rows, cols, MaxElements)
	}

	return rows * cols, nil
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>= 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0, cols>=0 and rows*cols <= MaxElements.
//   - Stage 2: allocate a zero-filled buffer of length rows*cols.
//
// Behavior highlights:
//   - Zero rows or zero cols is legal and yields an empty matrix (IsEmpty()==true).
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols, or more than MaxElements values).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	n, err := checkedLen(ctxNew, rows, cols)
	if err != nil {
		return nil, err
	}
	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, n)}, nil
}

// NewFilledDense creates an r×c matrix with every element set to v.
// NaN and ±Inf are stored as given.
// Complexity: Time O(r*c), Space O(r*c).
func NewFilledDense(rows, cols int, v float64) (*Dense, error) {
	n, err := checkedLen(ctxNewFill, rows, cols)
	if err != nil {
		return nil, err
	}
	m := &Dense{r: rows, c: cols, data: make([]float64, n)}
	if v != 0 {
		for idx := range m.data {
			m.data[idx] = v
		}
	}

	return m, nil
}

// NewDenseFromRows builds a matrix from a nested literal, one inner slice per row.
// MAIN DESCRIPTION:
//   - Copies rows into a fresh row-major buffer; the input is never retained.
//
// Implementation:
//   - Stage 1: empty input ⇒ 0×0 matrix.
//   - Stage 2: cols = len(rows[0]); every row must have exactly cols values.
//   - Stage 3: copy each row into data[i*cols : (i+1)*cols].
//
// Errors:
//   - ErrDimensionMismatch when any row length differs from the first row.
//   - ErrInvalidDimensions when the rows hold more than MaxElements values.
//
// Determinism:
//   - The first offending row (lowest index) is reported.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - The literal {{1,2,3},{4,5}} is rejected; it never produces a ragged shape.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{data: make([]float64, 0)}, nil
	}
	r, c := len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, errors.Wrapf(ErrDimensionMismatch,
				"%s: row %d has %d values, want %d", ctxFromRows, i, len(rows[i]), c)
		}
	}

	n, err := checkedLen(ctxFromRows, r, c)
	if err != nil {
		return nil, err
	}
	m := &Dense{r: r, c: c, data: make([]float64, n)}
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of stored elements (rows*cols).
func (m *Dense) Len() int { return len(m.data) }

// IsEmpty reports whether the matrix holds no elements (rows==0 or cols==0).
func (m *Dense) IsEmpty() bool { return len(m.data) == 0 }

// indexOf computes the row-major offset or returns ErrIndexOutOfRange.
// Public methods wrap the sentinel with their own method tag.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfRange.
// Any float64 is accepted, including NaN and ±Inf.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns the cols contiguous elements of row i without copying.
// MAIN DESCRIPTION:
//   - Non-owning window onto the receiver's buffer; writes through it mutate m.
//
// Implementation:
//   - Stage 1: bounds-check 0 ≤ i < Rows().
//   - Stage 2: return data[i*c : (i+1)*c : (i+1)*c].
//
// Behavior highlights:
//   - Capacity is capped at the row end, so append on the window reallocates
//     instead of overwriting row i+1.
//
// Errors:
//   - ErrIndexOutOfRange for an invalid row.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The window aliases m. Use RowCopy when the result must be independent.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "Dense.%s(%d)", ctxRow, i)
	}
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi], nil
}

// RowCopy returns an independent copy of row i.
func (m *Dense) RowCopy(i int) ([]float64, error) {
	view, err := m.Row(i)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(view))
	copy(out, view)

	return out, nil
}

// RawData returns a copy of the row-major buffer.
func (m *Dense) RawData() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy; mutations of either value never affect the other.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the concrete-typed Clone used by the package internals.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether o has the same shape and bitwise-equal values
// under ==. NaN never equals anything, so a matrix holding NaN is not Equal
// to itself; use AllClose for tolerance-based comparison.
// A nil receiver or a nil o is never Equal to anything.
func (m *Dense) Equal(o Matrix) bool {
	if m == nil || ValidateNotNil(o) != nil || m.r != o.Rows() || m.c != o.Cols() {
		return false
	}
	if d, ok := o.(*Dense); ok {
		for idx, v := range m.data {
			if v != d.data[idx] {
				return false
			}
		}
		return true
	}

	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, err := o.At(i, j)
			if err != nil || v != m.data[i*m.c+j] {
				return false
			}
		}
	}

	return true
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, in row-major order.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// String renders the matrix with the default render options: one line per row,
// values separated by a single space, shortest round-trip number format.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	// strings.Builder never fails on Write.
	_ = renderDense(&b, m, defaultRenderOptions())

	return b.String()
}
