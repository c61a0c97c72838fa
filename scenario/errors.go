// SPDX-License-Identifier: MIT

package scenario

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidDocument reports a structural problem in a scenario document.
	ErrInvalidDocument = errors.New("scenario: invalid document")

	// ErrUnknownOp reports a step whose op is not recognised.
	ErrUnknownOp = errors.New("scenario: unknown op")

	// ErrUndefined reports a reference to a name that is not defined yet.
	ErrUndefined = errors.New("scenario: undefined name")

	// ErrDuplicateName reports a step or matrix reusing an existing name.
	ErrDuplicateName = errors.New("scenario: duplicate name")

	// ErrKind reports a matrix used where a scalar is required, or vice versa.
	ErrKind = errors.New("scenario: wrong value kind")

	// ErrAssertionFailed reports an assert step whose operands differ.
	ErrAssertionFailed = errors.New("scenario: assertion failed")
)
