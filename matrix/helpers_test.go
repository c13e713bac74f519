// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for the kernels.
//   - Keep all data finite and well-formed.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matcache/matrix"
)

// tol is the absolute tolerance for floating-point comparisons in tests.
const tol = 1e-9

// hide wraps any Matrix to mask its concrete type from type assertions,
// forcing kernels onto the generic At/Set fallback path. Wrap ONLY the
// operand you want to de-opt to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from row data or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// MustSet writes (i,j)=v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareClose asserts got ≈ want element-wise within tol.
func CompareClose(t *testing.T, want [][]float64, got matrix.Matrix) {
	t.Helper()
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d",
			len(want), len(want[0]), got.Rows(), got.Cols())
	}
	var i, j int
	var v float64
	for i = 0; i < got.Rows(); i++ {
		for j = 0; j < got.Cols(); j++ {
			v = MustAt(t, got, i, j)
			if math.Abs(v-want[i][j]) > tol {
				t.Fatalf("element [%d,%d]: want %g, got %g", i, j, want[i][j], v)
			}
		}
	}
}

// AssertIdentity asserts that m ≈ I_n within tol.
func AssertIdentity(t *testing.T, m matrix.Matrix) {
	t.Helper()
	if m.Rows() != m.Cols() {
		t.Fatalf("identity check on %dx%d matrix", m.Rows(), m.Cols())
	}
	n := m.Rows()
	var i, j int
	var v, want float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want = 0.0
			if i == j {
				want = 1.0
			}
			v = MustAt(t, m, i, j)
			if math.Abs(v-want) > tol {
				t.Fatalf("identity element [%d,%d]: want %g, got %g", i, j, want, v)
			}
		}
	}
}
