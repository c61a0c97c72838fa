// SPDX-License-Identifier: MIT

package matrix

import (
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

const opRender = "Render"

// rowTerminator ends every rendered row, including the last.
const rowTerminator = '\n'

// Render writes m to w: one line per row, values joined by the separator
// (a single space by default), each line terminated by '\n', no trailing
// separator. A 0×c matrix writes nothing; an r×0 matrix writes r empty lines.
//
// Numbers use shortest round-trip formatting unless WithPrecision is given.
// NaN and ±Inf render as "NaN", "+Inf" and "-Inf".
//
// Errors: ErrNilMatrix, or the first error returned by w (wrapped).
// Complexity: Time O(r*c); one write per row.
func Render(w io.Writer, m Matrix, opts ...RenderOption) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opRender, err)
	}
	o := gatherRenderOptions(opts...)
	if d, ok := m.(*Dense); ok {
		return renderDense(w, d, o)
	}

	rows, cols := m.Rows(), m.Cols()
	line := make([]byte, 0, 16*cols+1)
	for i := 0; i < rows; i++ {
		line = line[:0]
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return accessErrorf(opRender, "At", i, j, err)
			}
			line = appendValue(line, j, v, o)
		}
		line = append(line, rowTerminator)
		if _, err := w.Write(line); err != nil {
			return errors.Wrapf(err, "%s: row %d", opRender, i)
		}
	}

	return nil
}

// Format renders m into a string. See Render.
func Format(m Matrix, opts ...RenderOption) (string, error) {
	var b strings.Builder
	if err := Render(&b, m, opts...); err != nil {
		return "", err
	}

	return b.String(), nil
}

// FormatValue formats a single scalar with the same rules Render applies to elements.
func FormatValue(v float64, opts ...RenderOption) string {
	return string(appendNumber(nil, v, gatherRenderOptions(opts...)))
}

// renderDense is the flat-buffer path shared by Render and (*Dense).String.
func renderDense(w io.Writer, m *Dense, o renderOptions) error {
	line := make([]byte, 0, 16*m.c+1)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		line = line[:0]
		base = i * m.c
		for j = 0; j < m.c; j++ {
			line = appendValue(line, j, m.data[base+j], o)
		}
		line = append(line, rowTerminator)
		if _, err := w.Write(line); err != nil {
			return errors.Wrapf(err, "%s: row %d", opRender, i)
		}
	}

	return nil
}

// appendValue appends the separator (for every column but the first) and v.
func appendValue(dst []byte, col int, v float64, o renderOptions) []byte {
	if col > 0 {
		dst = append(dst, o.separator...)
	}

	return appendNumber(dst, v, o)
}

// appendNumber formats v per the precision policy.
func appendNumber(dst []byte, v float64, o renderOptions) []byte {
	if o.precision == DefaultPrecision {
		return strconv.AppendFloat(dst, v, 'g', -1, 64)
	}

	return strconv.AppendFloat(dst, v, 'f', o.precision, 64)
}
