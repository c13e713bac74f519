// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.

package matrix_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcache/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			// immediately after creation all elements should be 0
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					require.Zero(t, MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 2},
		{2, -1},
	} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestFromRows_RoundTrip(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 3}, {2, 4}}
	m := MustFromRows(t, rows)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, rows, m.ToRows())
}

func TestFromRows_CopiesInput(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2}, {3, 4}}
	m := MustFromRows(t, rows)

	// Mutating the source rows must not reach the matrix.
	rows[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	// Mutating the export must not reach the matrix either.
	out := m.ToRows()
	out[1][1] = -7
	require.Equal(t, 4.0, MustAt(t, m, 1, 1))
}

func TestFromRows_Invalid(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrNilVector)

	_, err = matrix.FromRows([][]float64{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]float64{{1, 2}, nil})
	require.ErrorIs(t, err, matrix.ErrNilVector)

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_AtSet_Bounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)

	for _, tc := range []struct{ i, j int }{
		{-1, 0},
		{0, -1},
		{2, 0},
		{0, 3},
	} {
		_, err := m.At(tc.i, tc.j)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(tc.i, tc.j, 1.0), matrix.ErrOutOfRange)
	}
}

func TestDense_Clone_Independent(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()

	MustSet(t, m, 0, 0, 42)
	require.Equal(t, 1.0, MustAt(t, c, 0, 0))
	require.Equal(t, 42.0, MustAt(t, m, 0, 0))
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	s := m.String()
	require.True(t, strings.Contains(s, "[1, 2]"))
	require.True(t, strings.Contains(s, "[3, 4]"))
}
