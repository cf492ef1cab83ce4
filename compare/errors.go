// SPDX-License-Identifier: MIT
// Package compare: sentinel error set and the operand-tagged InputError.
//
// Every failure returned by Compare matches exactly one of the four sentinels
// below via errors.Is. Failures that concern a single operand are additionally
// wrapped in *InputError so callers can tell which matrix to fix (errors.As).

package compare

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when the two matrices differ in shape, or
	// when an operand is not square.
	ErrShapeMismatch = errors.New("compare: shape mismatch")

	// ErrAsymmetricMatrix is returned when an operand is not equal to its own
	// transpose within the configured tolerances.
	ErrAsymmetricMatrix = errors.New("compare: matrix is not symmetric")

	// ErrInsufficientSize is returned when the matrices are too small (n ≤ 1)
	// to have any off-diagonal pair.
	ErrInsufficientSize = errors.New("compare: matrix has no off-diagonal pairs")

	// ErrDegenerateMean is returned when the overall mean distance is zero
	// (or NaN), which leaves the relative percentage undefined.
	ErrDegenerateMean = errors.New("compare: overall mean distance is degenerate")
)

// Operand names one of the two inputs of Compare.
type Operand string

const (
	// OperandA is the first matrix argument.
	OperandA Operand = "A"
	// OperandB is the second matrix argument.
	OperandB Operand = "B"
)

// InputError reports a validation failure attributable to one operand.
type InputError struct {
	Operand Operand
	Err     error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("compare: matrix %s: %v", e.Operand, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// inputErrorf builds an *InputError whose chain contains both the compare
// sentinel and the underlying cause (typically a matrix validator error).
func inputErrorf(op Operand, sentinel, cause error) error {
	return &InputError{Operand: op, Err: fmt.Errorf("%w: %w", sentinel, cause)}
}
