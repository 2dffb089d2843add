// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
//
// Every message is prefixed with "sparse: ..." so it is easy to grep. Callers
// match with errors.Is; operations wrap the sentinels with the call-site name
// through sparseErrorf.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested dimension is negative.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates that a row, column or vector index is outside
	// valid bounds. Set and the constructors return it instead of panicking.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand lengths.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilOperand indicates a nil matrix, vector or function argument.
	ErrNilOperand = errors.New("sparse: nil operand")

	// ErrExecutor wraps a panic recovered inside an executor grain.
	ErrExecutor = errors.New("sparse: executor failure")

	// ErrReleased is returned by operations scheduled on a released Handle.
	ErrReleased = errors.New("sparse: backend handle released")

	// ErrAliased is returned when an output vector is also an input that the
	// operation reads at positions other than the one being written.
	ErrAliased = errors.New("sparse: output aliases input")
)

// sparseErrorf wraps err with the name of the failing operation.
func sparseErrorf(op string, err error) error {
	return fmt.Errorf("sparse.%s: %w", op, err)
}
