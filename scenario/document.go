// SPDX-License-Identifier: MIT

package scenario

import (
	"io"
	"os"
	"sort"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmat/matrix"
)

// Op names a step operation.
type Op string

// Supported ops.
const (
	OpMul       Op = "mul"
	OpAdd       Op = "add"
	OpSub       Op = "sub"
	OpScale     Op = "scale"
	OpDivide    Op = "divide"
	OpDot       Op = "dot"
	OpTranspose Op = "transpose"
	OpHadamard  Op = "hadamard"
	OpRow       Op = "row"
	OpPrint     Op = "print"
	OpAssert    Op = "assert"
)

// opArity is the exact operand count per op; -1 means "one or more".
var opArity = map[Op]int{
	OpMul:       2,
	OpAdd:       2,
	OpSub:       2,
	OpScale:     1,
	OpDivide:    1,
	OpDot:       2,
	OpTranspose: 1,
	OpHadamard:  2,
	OpRow:       1,
	OpPrint:     -1,
	OpAssert:    2,
}

// producesValue reports whether the op stores a result under the step name.
func (op Op) producesValue() bool { return op != OpPrint && op != OpAssert }

// Document is a parsed scenario.
type Document struct {
	Matrices  map[string]MatrixSpec `yaml:"matrices"`
	Steps     []Step                `yaml:"steps"`
	Precision *int                  `yaml:"precision,omitempty"`
}

// Step is one pipeline operation.
type Step struct {
	Name      string   `yaml:"name,omitempty"`
	Op        Op       `yaml:"op"`
	Args      []string `yaml:"args"`
	Scalar    *float64 `yaml:"scalar,omitempty"`    // scale, divide
	Index     *int     `yaml:"index,omitempty"`     // row
	Tolerance float64  `yaml:"tolerance,omitempty"` // assert
}

// MatrixSpec declares one input matrix, either as a nested literal or
// through exactly one factory.
type MatrixSpec struct {
	Rows     [][]float64
	Identity *int
	Zeros    []int
	Ones     []int
	Filled   []int
	Value    float64
}

// matrixSpecFields is the mapping form of MatrixSpec.
type matrixSpecFields struct {
	Rows     [][]float64 `yaml:"rows"`
	Identity *int        `yaml:"identity"`
	Zeros    []int       `yaml:"zeros"`
	Ones     []int       `yaml:"ones"`
	Filled   []int       `yaml:"filled"`
	Value    float64     `yaml:"value"`
}

// matrixSpecKeys is the closed key set of the mapping form.
var matrixSpecKeys = map[string]bool{
	"rows": true, "identity": true, "zeros": true, "ones": true, "filled": true, "value": true,
}

// UnmarshalYAML accepts either a sequence of rows or a factory mapping.
// node.Decode does not inherit the strict mode of the outer decoder, so the
// mapping keys are checked here: unknown keys fail, and value requires filled.
func (s *MatrixSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		return node.Decode(&s.Rows)
	}
	if node.Kind == yaml.MappingNode {
		seen := make(map[string]bool, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if !matrixSpecKeys[key.Value] {
				return errors.Wrapf(ErrInvalidDocument, "line %d: unknown matrix field %q", key.Line, key.Value)
			}
			seen[key.Value] = true
		}
		if seen["value"] && !seen["filled"] {
			return errors.Wrapf(ErrInvalidDocument, "line %d: value is only valid with filled", node.Line)
		}
	}
	var f matrixSpecFields
	if err := node.Decode(&f); err != nil {
		return err
	}
	*s = MatrixSpec(f)

	return nil
}

// Build materializes the declaration as a fresh *matrix.Dense.
func (s MatrixSpec) Build() (*matrix.Dense, error) {
	set := 0
	for _, present := range []bool{
		s.Rows != nil, s.Identity != nil, s.Zeros != nil, s.Ones != nil, s.Filled != nil,
	} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, errors.Wrapf(ErrInvalidDocument, "matrix declaration must use exactly one form, got %d", set)
	}
	if s.Value != 0 && s.Filled == nil {
		return nil, errors.Wrap(ErrInvalidDocument, "value is only valid with filled")
	}

	switch {
	case s.Rows != nil:
		return matrix.NewDenseFromRows(s.Rows)
	case s.Identity != nil:
		return matrix.NewIdentity(*s.Identity)
	}

	var shape []int
	switch {
	case s.Zeros != nil:
		shape = s.Zeros
	case s.Ones != nil:
		shape = s.Ones
	default:
		shape = s.Filled
	}
	if len(shape) != 2 {
		return nil, errors.Wrapf(ErrInvalidDocument, "shape must be [rows, cols], got %v", shape)
	}

	switch {
	case s.Zeros != nil:
		return matrix.NewZeros(shape[0], shape[1])
	case s.Ones != nil:
		return matrix.NewOnes(shape[0], shape[1])
	default:
		return matrix.NewFilled(shape[0], shape[1], s.Value)
	}
}

// Load decodes a document strictly (unknown top-level or step fields fail)
// and validates its structure.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrInvalidDocument, "empty document")
		}
		return nil, errors.Wrap(errors.Mark(err, ErrInvalidDocument), "decode scenario")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// LoadMatrix decodes a single matrix declaration, either a nested row
// literal or a factory mapping, and builds it.
func LoadMatrix(r io.Reader) (*matrix.Dense, error) {
	var spec MatrixSpec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrInvalidDocument, "empty matrix")
		}
		return nil, errors.Wrap(errors.Mark(err, ErrInvalidDocument), "decode matrix")
	}

	return spec.Build()
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open scenario %q", path)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load scenario %q", path)
	}

	return doc, nil
}

// Validate checks ops, arity, required fields and name uniqueness without
// evaluating anything. References are checked in declaration order.
func (d *Document) Validate() error {
	defined := make(map[string]bool, len(d.Matrices)+len(d.Steps))
	for name := range d.Matrices {
		if name == "" {
			return errors.Wrap(ErrInvalidDocument, "empty matrix name")
		}
		defined[name] = true
	}
	if d.Precision != nil && *d.Precision < matrix.DefaultPrecision {
		return errors.Wrapf(ErrInvalidDocument, "precision %d < %d", *d.Precision, matrix.DefaultPrecision)
	}

	for i, st := range d.Steps {
		arity, ok := opArity[st.Op]
		if !ok {
			return errors.Wrapf(ErrUnknownOp, "step %d: %q", i, st.Op)
		}
		if (arity < 0 && len(st.Args) == 0) || (arity >= 0 && len(st.Args) != arity) {
			return errors.Wrapf(ErrInvalidDocument, "step %d (%s): got %d args", i, st.Op, len(st.Args))
		}
		for _, arg := range st.Args {
			if !defined[arg] {
				return errors.Wrapf(ErrUndefined, "step %d (%s): %q", i, st.Op, arg)
			}
		}
		if (st.Op == OpScale || st.Op == OpDivide) && st.Scalar == nil {
			return errors.Wrapf(ErrInvalidDocument, "step %d (%s): missing scalar", i, st.Op)
		}
		if st.Op == OpRow && st.Index == nil {
			return errors.Wrapf(ErrInvalidDocument, "step %d (%s): missing index", i, st.Op)
		}
		if !st.Op.producesValue() {
			continue
		}
		if st.Name == "" {
			return errors.Wrapf(ErrInvalidDocument, "step %d (%s): missing name", i, st.Op)
		}
		if defined[st.Name] {
			return errors.Wrapf(ErrDuplicateName, "step %d (%s): %q", i, st.Op, st.Name)
		}
		defined[st.Name] = true
	}

	return nil
}

// sortedMatrixNames returns declared matrix names in lexical order so that
// construction errors are reported deterministically.
func (d *Document) sortedMatrixNames() []string {
	names := make([]string, 0, len(d.Matrices))
	for name := range d.Matrices {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
