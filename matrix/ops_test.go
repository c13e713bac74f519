// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the universal kernels
// (Add/Sub/Mul/Transpose/Scale), covering fast-path and fallback.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcache/matrix"
)

// ---------- Add / Sub ----------

func TestAdd_FastPath_Correctness(t *testing.T) {
	t.Parallel()

	const rows, cols = 4, 4
	var i, j int

	a := MustDense(t, rows, cols)
	b := MustDense(t, rows, cols)

	// A[i,j] = i+j; B[i,j] = 10 - (i+j); sum is constant 10.
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			MustSet(t, a, i, j, float64(i+j))
			MustSet(t, b, i, j, float64(10-(i+j)))
		}
	}

	s, err := matrix.Add(a, b)
	require.NoError(t, err)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			require.Equal(t, 10.0, MustAt(t, s, i, j))
		}
	}
}

func TestAdd_Fallback_MatchesFastPath(t *testing.T) {
	t.Parallel()

	const rows, cols = 3, 5
	var i, j int

	base := MustDense(t, rows, cols)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			MustSet(t, base, i, j, float64(2*i-3*j))
		}
	}

	fast, err := matrix.Add(base, base)
	require.NoError(t, err)
	slow, err := matrix.Add(hide{base}, base) // force fallback
	require.NoError(t, err)

	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			require.Equal(t, MustAt(t, fast, i, j), MustAt(t, slow, i, j))
		}
	}
}

func TestSub_Correctness(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{5, 7}, {9, 11}})
	b := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	d, err := matrix.Sub(a, b)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{4, 5}, {6, 7}}, d)
}

func TestAddSub_Errors(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 3, 4)
	b := MustDense(t, 4, 3)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Mul ----------

func TestMul_FastPath_Known2x2(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{2, 0}, {1, 2}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{4, 4}, {10, 8}}, p)
}

func TestMul_Fallback_MatchesFastPath(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)

	var i, j int
	for i = 0; i < fast.Rows(); i++ {
		for j = 0; j < fast.Cols(); j++ {
			require.Equal(t, MustAt(t, fast, i, j), MustAt(t, slow, i, j))
		}
	}
}

func TestMul_InnerDimensionMismatch(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 3)
	b := MustDense(t, 2, 3)
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_IdentityIsNeutral(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 3}, {2, 4}})
	identity, err := matrix.IdentityLike(m)
	require.NoError(t, err)

	p, err := matrix.Mul(m, identity)
	require.NoError(t, err)
	CompareClose(t, m.ToRows(), p)
}

// ---------- Transpose / Scale ----------

func TestTranspose_Correctness(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, mt)

	// Fallback path agrees.
	mtSlow, err := matrix.Transpose(hide{m})
	require.NoError(t, err)
	CompareClose(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, mtSlow)
}

func TestScale_Correctness(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, -2}, {0, 4}})

	s, err := matrix.Scale(m, 2.5)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{2.5, -5}, {0, 10}}, s)

	z, err := matrix.Scale(m, 0)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{0, 0}, {0, 0}}, z)
}

// ---------- Facades ----------

func TestFacades_DelegateToKernels(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{4, 3}, {2, 1}})

	s, err := matrix.Sum(a, b)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{5, 5}, {5, 5}}, s)

	d, err := matrix.Diff(a, b)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{-3, -1}, {1, 3}}, d)

	p, err := matrix.Product(a, b)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{8, 5}, {20, 13}}, p)

	mt, err := matrix.T(a)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{1, 3}, {2, 4}}, mt)

	sc, err := matrix.ScaleBy(a, 2)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{2, 4}, {6, 8}}, sc)
}

func TestNewIdentity_And_ZerosLike(t *testing.T) {
	t.Parallel()

	identity, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	AssertIdentity(t, identity)

	z, err := matrix.ZerosLike(identity)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, z)

	rect := MustDense(t, 2, 3)
	_, err = matrix.IdentityLike(rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	zeros, err := matrix.NewZeros(2, 2)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{0, 0}, {0, 0}}, zeros)

	clone := matrix.CloneMatrix(identity)
	AssertIdentity(t, clone)
}
