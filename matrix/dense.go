// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Bridge to/from plain [][]float64 rows (FromRows, ToRows) for callers
//     that build matrices from literals.
//
// Complexity quicksheet:
//   - NewDense/FromRows: O(r*c); At/Set: O(1); Clone/ToRows: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// Matrix is the minimal read/write contract every kernel in this package
// accepts. Concrete implementations must keep At/Set bounds-safe (return
// ErrOutOfRange, never panic) and Clone must produce an independent copy.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At returns the element at (row, col) or ErrOutOfRange.
	At(row, col int) (float64, error)
	// Set assigns v at (row, col) or returns ErrOutOfRange.
	Set(row, col int, v float64) error
	// Clone returns a deep, independent copy.
	Clone() Matrix
}

// denseErrorf wraps a sentinel with a uniform Dense context and callsite
// indices, e.g. "Dense.At(3,0): matrix: index out of range".
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order
//     (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0 at the public surface)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled contiguous buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// FromRows builds a Dense from row-major [][]float64 data.
//
// Implementation:
//   - Stage 1: validate the slice is non-empty and rectangular.
//   - Stage 2: allocate via NewDense and copy row by row in fixed order.
//
// Errors:
//   - ErrNilVector          (rows slice or any row is nil).
//   - ErrInvalidDimensions  (zero rows or zero columns).
//   - ErrDimensionMismatch  (ragged rows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). Input is copied, never aliased.
func FromRows(rows [][]float64) (*Dense, error) {
	// Reject nil outright; an empty literal is a shape error below.
	if rows == nil {
		return nil, fmt.Errorf("FromRows: %w", ErrNilVector)
	}
	r := len(rows)
	if r == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimensions)
	}
	c := len(rows[0])
	if c == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimensions)
	}

	// Validate rectangularity before any allocation (fail fast).
	var i int
	for i = 0; i < r; i++ {
		if rows[i] == nil {
			return nil, fmt.Errorf("FromRows: row %d: %w", i, ErrNilVector)
		}
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d: %w", i, ErrDimensionMismatch)
		}
	}

	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	// Copy in fixed row order; each copy is contiguous.
	for i = 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// wrapped with the caller's method tag. Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
//
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the flat buffer.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
//
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into the flat buffer.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// ToRows exports the matrix as freshly allocated [][]float64 rows.
// The result never aliases the internal buffer.
// Complexity: O(r*c) time and memory.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		b.WriteString(fmtRowOpen)
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			b.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				b.WriteString(fmtSep)
			}
		}
		b.WriteString(fmtRowClose)
	}

	return b.String()
}
