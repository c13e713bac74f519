// SPDX-License-Identifier: MIT
// Package matrix: Doolittle LU factorization, triangular solves and the
// inverse built on top of them.
//
// Purpose:
//   - LU: deterministic A = L*U with unit diagonal on L (no pivoting).
//   - SolveLU: forward/backward substitution for a single right-hand side.
//   - Inverse: solve-against-identity, one canonical basis column at a time.
//
// Determinism:
//   - No pivoting and fixed loop orders by design: identical inputs give
//     identical outputs. Numerical stability for ill-conditioned inputs is
//     the caller's concern (precondition or scale upstream).

package matrix

import "fmt"

// LU computes the Doolittle factorization A = L*U with unit diagonal on L
// (no pivoting).
//
// Implementation:
//   - Stage 1: validate m (not nil, square); allocate Dense L,U; diag(L)=1.
//   - Stage 2: for i=0..n-1, build row i of U and column i of L in fixed
//     order, guarding every pivot.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (zero pivot U[i,i]).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (Matrix, Matrix, error) {
	// Validate input non-nil and square.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Allocate L and U.
	n := m.Rows()
	lRaw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	uRaw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Initialize L diagonal to 1 (unit lower triangular).
	for i := 0; i < n; i++ {
		lRaw.data[i*n+i] = 1.0
	}

	// Detect fast path on *Dense input.
	mRaw, useFast := m.(*Dense)
	var i, j, k int // loop iterators
	var sum, pivot float64
	if useFast {
		// Fast path: operate directly on flat slices.
		var baseI, baseJ int
		for i = 0; i < n; i++ {
			// Compute U[i][j] for j >= i.
			baseI = i * n
			for j = i; j < n; j++ {
				sum = ZeroSum
				for k = 0; k < i; k++ {
					sum += lRaw.data[baseI+k] * uRaw.data[k*n+j]
				}
				uRaw.data[baseI+j] = mRaw.data[baseI+j] - sum
			}

			// Zero-pivot guard (deterministic singularity detection).
			if uRaw.data[baseI+i] == ZeroPivot {
				return nil, nil, matrixErrorf(opLU, ErrSingular)
			}

			// Compute L[j][i] for j > i.
			pivot = uRaw.data[baseI+i]
			for j = i + 1; j < n; j++ {
				sum = ZeroSum
				baseJ = j * n
				for k = 0; k < i; k++ {
					sum += lRaw.data[baseJ+k] * uRaw.data[k*n+i]
				}
				lRaw.data[baseJ+i] = (mRaw.data[baseJ+i] - sum) / pivot
			}
		}

		return lRaw, uRaw, nil
	}

	// Fallback: generic interface version.
	var a, l, u float64
	for i = 0; i < n; i++ {
		// Compute U[i][j] for j >= i.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				l, err = lRaw.At(i, k)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				u, err = uRaw.At(k, j)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				sum += l * u
			}
			a, err = m.At(i, j)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = uRaw.Set(i, j, a-sum); err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}

		// Zero-pivot guard (generic path).
		pivot, err = uRaw.At(i, i)
		if err != nil {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Compute L[j][i] for j > i.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				l, err = lRaw.At(j, k)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", j, k, err))
				}
				u, err = uRaw.At(k, i)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", k, i, err))
				}
				sum += l * u
			}
			a, err = m.At(j, i)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", j, i, err))
			}
			if err = lRaw.Set(j, i, (a-sum)/pivot); err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return lRaw, uRaw, nil
}

// SolveLU solves L*U*x = b for one right-hand side via forward then
// backward substitution. L must be unit lower triangular and U upper
// triangular, exactly as produced by LU; neither property is re-verified
// beyond shape checks.
//
// Implementation:
//   - Stage 1: validate L and U (not nil, square, same shape) and b
//     (len == n).
//   - Stage 2: forward solve L*y = b top-down (unit diagonal, no division),
//     then backward solve U*x = y bottom-up with a zero-pivot guard.
//
// Errors:
//   - ErrNilMatrix, ErrNilVector, ErrDimensionMismatch,
//     ErrSingular (U[i,i] == 0 during back-substitution).
//
// Complexity:
//   - Time O(n^2), Space O(n) for y and x.
func SolveLU(l, u Matrix, b []float64) ([]float64, error) {
	// Validate factors and right-hand side.
	if err := ValidateSquareNonNil(l); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	if err := ValidateSquareNonNil(u); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	if err := ValidateSameShape(l, u); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	n := l.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}

	var (
		i, k       int // loop iterators
		sum, pivot float64
		y          = make([]float64, n) // forward substitution workspace
		x          = make([]float64, n) // backward substitution result
	)

	// Fast path: both factors are *Dense with row-major flat storage.
	ld, okL := l.(*Dense)
	ud, okU := u.(*Dense)
	if okL && okU {
		var base int
		// Forward substitution: L*y = b (top-down, unit diagonal).
		for i = 0; i < n; i++ {
			sum = ZeroSum
			base = i * n
			for k = 0; k < i; k++ {
				sum += ld.data[base+k] * y[k]
			}
			y[i] = b[i] - sum
		}
		// Backward substitution: U*x = y (bottom-up).
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			base = i * n
			for k = i + 1; k < n; k++ {
				sum += ud.data[base+k] * x[k]
			}
			pivot = ud.data[base+i]
			if pivot == ZeroPivot {
				return nil, matrixErrorf(opSolveLU, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}

		return x, nil
	}

	// Fallback: generic interface version.
	var v float64
	var err error
	// Forward substitution: L*y = b.
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			v, err = l.At(i, k)
			if err != nil {
				return nil, matrixErrorf(opSolveLU, fmt.Errorf("At(%d,%d): %w", i, k, err))
			}
			sum += v * y[k]
		}
		y[i] = b[i] - sum
	}
	// Backward substitution: U*x = y.
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			v, err = u.At(i, k)
			if err != nil {
				return nil, matrixErrorf(opSolveLU, fmt.Errorf("At(%d,%d): %w", i, k, err))
			}
			sum += v * x[k]
		}
		pivot, err = u.At(i, i)
		if err != nil {
			return nil, matrixErrorf(opSolveLU, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		if pivot == ZeroPivot {
			return nil, matrixErrorf(opSolveLU, ErrSingular)
		}
		x[i] = (y[i] - sum) / pivot
	}

	return x, nil
}

// Inverse computes A^{-1} by solving A*x = e_col against every canonical
// basis column through the LU factors. The input must be non-nil and
// square; it is never mutated.
//
// Implementation:
//   - Stage 1: validate, factorize via LU(m) → L (unit lower), U (upper).
//   - Stage 2: for each basis column e_col, SolveLU(L, U, e_col) and write
//     the solution into column col of the result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (zero pivot during
//     factorization or back-substitution), allocation errors.
//
// Complexity:
//   - Time O(n^3): the factorization is O(n^3) and n triangular solves are
//     O(n^2) each. Space O(n^2).
//
// Notes:
//   - If you only need A^{-1}*b, factor once and call SolveLU directly;
//     forming the full inverse is a last resort.
func Inverse(m Matrix) (Matrix, error) {
	// Validate input non-nil and square.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// LU decomposition (Doolittle).
	lMat, uMat, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Prepare the result container and the shared basis-column workspace.
	n := m.Rows()
	invDense, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i int
		e      = make([]float64, n) // canonical basis column e_col
		x      []float64
	)
	for col = 0; col < n; col++ {
		// Build e_col: reset the previous column's 1, set the current one.
		if col > 0 {
			e[col-1] = 0.0
		}
		e[col] = 1.0

		// Solve A*x = e_col through the triangular factors.
		x, err = SolveLU(lMat, uMat, e)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}

		// Write x into column col of the inverse.
		for i = 0; i < n; i++ {
			invDense.data[i*n+col] = x[i]
		}
	}

	return invDense, nil
}
