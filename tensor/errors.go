// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "fmt"

// Kind identifies the category of a structured Error.
type Kind uint8

const (
	// ShapeMismatch covers a binary op with non-broadcastable shapes, or
	// matmul with incompatible inner dimensions.
	ShapeMismatch Kind = iota
	// DivisionByZero covers a zero divisor passed to scalar division.
	DivisionByZero
	// NonScalarBackwardRoot covers backward() called on a tensor whose
	// shape is not exactly one element.
	NonScalarBackwardRoot
	// BackwardOnLeafRequiringNoGrad covers backward() called on a tensor
	// whose requires_grad is false.
	BackwardOnLeafRequiringNoGrad
	// ExpiredReference covers an input that is no longer resolvable
	// during backward. Recoverable: the affected branch is skipped.
	ExpiredReference
	// InvalidInput covers NaN or infinity encountered where finite data
	// was required.
	InvalidInput
)

func (k Kind) String() string {
	switch k {
	case ShapeMismatch:
		return "ShapeMismatch"
	case DivisionByZero:
		return "DivisionByZero"
	case NonScalarBackwardRoot:
		return "NonScalarBackwardRoot"
	case BackwardOnLeafRequiringNoGrad:
		return "BackwardOnLeafRequiringNoGrad"
	case ExpiredReference:
		return "ExpiredReference"
	case InvalidInput:
		return "InvalidInput"
	default:
		return "Unknown"
	}
}

// Error is the structured error type surfaced to callers by every
// shape-checked operation in Helix. Kind supports errors.Is comparisons
// against the sentinel Kind values above via Is.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, tensor.ErrKind(tensor.ShapeMismatch)).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// ErrKind builds a bare sentinel for use with errors.Is, e.g.
// errors.Is(err, tensor.ErrKind(tensor.DivisionByZero)).
func ErrKind(k Kind) error {
	return &Error{Kind: k}
}

func newError(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}
