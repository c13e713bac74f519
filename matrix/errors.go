// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered conditions;
// panics are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add/Sub on different shapes, Mul where a.Cols != b.Rows,
	// or a square-only operation on a rectangular input.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was
	// used where a concrete matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilVector indicates that a nil []float64 was passed where a
	// right-hand side or workspace vector is required.
	ErrNilVector = errors.New("matrix: nil vector")

	// ErrSingular is returned when a zero pivot is encountered during
	// LU/Inverse in the non-pivoting scheme (intentional for determinism).
	ErrSingular = errors.New("matrix: singular matrix")
)
