// SPDX-License-Identifier: MIT

package scenario

import (
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvmat/matrix"
)

// Env holds every value defined while running a document.
type Env struct {
	Matrices map[string]*matrix.Dense
	Scalars  map[string]float64
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger used for per-step debug records.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) { e.logger = l }
}

// WithRenderOptions sets render options for print steps. They are applied
// after the document's own precision, so they take priority.
func WithRenderOptions(opts ...matrix.RenderOption) Option {
	return func(e *Evaluator) { e.render = append(e.render, opts...) }
}

// Evaluator runs documents and writes print output to out.
// An Evaluator holds no per-run state and may be reused sequentially.
type Evaluator struct {
	out    io.Writer
	logger *slog.Logger
	render []matrix.RenderOption
}

// NewEvaluator returns an Evaluator writing to out. Without WithLogger it
// logs nowhere.
func NewEvaluator(out io.Writer, opts ...Option) *Evaluator {
	e := &Evaluator{
		out:    out,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run validates doc, builds its matrices and executes its steps in order.
// The first failing step aborts the run; its error wraps the underlying
// matrix or scenario sentinel.
func (e *Evaluator) Run(doc *Document) (*Env, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	env := &Env{
		Matrices: make(map[string]*matrix.Dense, len(doc.Matrices)),
		Scalars:  make(map[string]float64),
	}
	for _, name := range doc.sortedMatrixNames() {
		m, err := doc.Matrices[name].Build()
		if err != nil {
			return nil, errors.Wrapf(err, "matrix %q", name)
		}
		env.Matrices[name] = m
		e.logger.Debug("matrix", "name", name, "rows", m.Rows(), "cols", m.Cols())
	}

	render := make([]matrix.RenderOption, 0, len(e.render)+1)
	if doc.Precision != nil {
		render = append(render, matrix.WithPrecision(*doc.Precision))
	}
	render = append(render, e.render...)

	for i, st := range doc.Steps {
		if err := e.step(env, st, render); err != nil {
			return nil, errors.Wrapf(err, "step %d (%s)", i, st.Op)
		}
	}

	return env, nil
}

// step executes one operation against env.
func (e *Evaluator) step(env *Env, st Step, render []matrix.RenderOption) error {
	switch st.Op {
	case OpPrint:
		return e.print(env, st.Args, render)
	case OpAssert:
		return assertClose(env, st.Args[0], st.Args[1], st.Tolerance)
	case OpDot:
		a, b, err := env.lookupPair(st.Args)
		if err != nil {
			return err
		}
		d, err := matrix.Dot(a, b)
		if err != nil {
			return err
		}
		env.Scalars[st.Name] = d
		e.logger.Debug("step", "op", st.Op, "name", st.Name, "value", d)

		return nil
	}

	m, err := e.compute(env, st)
	if err != nil {
		return err
	}
	env.Matrices[st.Name] = m
	e.logger.Debug("step", "op", st.Op, "name", st.Name, "rows", m.Rows(), "cols", m.Cols())

	return nil
}

// compute dispatches the matrix-valued ops.
func (e *Evaluator) compute(env *Env, st Step) (*matrix.Dense, error) {
	switch st.Op {
	case OpScale, OpDivide, OpTranspose, OpRow:
		m, err := env.lookup(st.Args[0])
		if err != nil {
			return nil, err
		}
		switch st.Op {
		case OpScale:
			return matrix.Scale(m, *st.Scalar)
		case OpDivide:
			return matrix.Divide(m, *st.Scalar)
		case OpTranspose:
			return matrix.Transpose(m)
		default:
			row, err := m.RowCopy(*st.Index)
			if err != nil {
				return nil, err
			}
			return matrix.NewDenseFromRows([][]float64{row})
		}
	}

	a, b, err := env.lookupPair(st.Args)
	if err != nil {
		return nil, err
	}
	switch st.Op {
	case OpMul:
		return matrix.Mul(a, b)
	case OpAdd:
		return matrix.Add(a, b)
	case OpSub:
		return matrix.Sub(a, b)
	case OpHadamard:
		return matrix.Hadamard(a, b)
	}

	return nil, errors.Wrapf(ErrUnknownOp, "%q", st.Op)
}

// print renders each argument in order: matrices via matrix.Render, scalars
// as a single formatted line.
func (e *Evaluator) print(env *Env, names []string, render []matrix.RenderOption) error {
	for _, name := range names {
		if v, ok := env.Scalars[name]; ok {
			if _, err := io.WriteString(e.out, matrix.FormatValue(v, render...)+"\n"); err != nil {
				return errors.Wrapf(err, "print %q", name)
			}
			continue
		}
		m, err := env.lookup(name)
		if err != nil {
			return err
		}
		if err = matrix.Render(e.out, m, render...); err != nil {
			return errors.Wrapf(err, "print %q", name)
		}
	}

	return nil
}

// assertClose compares two matrices or two scalars with AllClose at
// atol=tol, rtol=0. Scalars go through 1×1 matrices so both kinds share the
// tolerance rules: |tol| is used, NaN or ±Inf tol is ErrInvalidTolerance.
func assertClose(env *Env, left, right string, tol float64) error {
	a, b, err := env.assertOperands(left, right)
	if err != nil {
		return err
	}
	ok, err := matrix.AllClose(a, b, 0, tol)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(ErrAssertionFailed, "%s != %s within %g", left, right, tol)
	}

	return nil
}

// assertOperands resolves both sides of an assert as matrices, lifting a
// scalar pair to 1×1 matrices. Mixing a scalar and a matrix is ErrKind.
func (env *Env) assertOperands(left, right string) (*matrix.Dense, *matrix.Dense, error) {
	x, lok := env.Scalars[left]
	y, rok := env.Scalars[right]
	switch {
	case lok && rok:
		a, err := matrix.NewFilled(1, 1, x)
		if err != nil {
			return nil, nil, err
		}
		b, err := matrix.NewFilled(1, 1, y)
		if err != nil {
			return nil, nil, err
		}
		return a, b, nil
	case lok:
		return nil, nil, errors.Wrapf(ErrKind, "%q is a scalar, %q is not", left, right)
	case rok:
		return nil, nil, errors.Wrapf(ErrKind, "%q is a scalar, %q is not", right, left)
	}

	return env.lookupPair([]string{left, right})
}

// lookup looks up a matrix-valued name.
func (env *Env) lookup(name string) (*matrix.Dense, error) {
	if m, ok := env.Matrices[name]; ok {
		return m, nil
	}
	if _, ok := env.Scalars[name]; ok {
		return nil, errors.Wrapf(ErrKind, "%q is a scalar", name)
	}

	return nil, errors.Wrapf(ErrUndefined, "%q", name)
}

// lookupPair looks up two matrix-valued names.
func (env *Env) lookupPair(names []string) (*matrix.Dense, *matrix.Dense, error) {
	a, err := env.lookup(names[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := env.lookup(names[1])
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}
