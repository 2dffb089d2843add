// SPDX-License-Identifier: MIT
// Package mtx: sentinel error set.

package mtx

import (
	"errors"
	"fmt"
)

var (
	// ErrIO is the class of failures opening, mapping or reading input.
	ErrIO = errors.New("mtx: i/o failure")

	// ErrFormat is the class of syntactic failures.
	ErrFormat = errors.New("mtx: malformed input")

	// ErrValidation is the class of well-formed but semantically invalid input.
	ErrValidation = errors.New("mtx: invalid input")

	// ErrNonSquare is returned when the header declares rows != cols.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrFormat)

	// ErrVertexRange is returned for an index outside [1, n].
	ErrVertexRange = fmt.Errorf("%w: vertex index out of range", ErrValidation)

	// ErrBadWeight is returned for a weight that is not finite or not > 0.
	ErrBadWeight = fmt.Errorf("%w: weight must be finite and positive", ErrValidation)
)

// lineErrorf decorates err with the 1-based line number it was found on.
func lineErrorf(line int, err error, format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", line, err, fmt.Sprintf(format, args...))
}
