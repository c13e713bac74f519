// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks.
//   - Avoid logic duplication — each facade delegates to the canonical
//     implementation.
//   - Keep function names explicit and intention-revealing.
//
// Determinism & Policy:
//   - Facades never change the loop orders or validation policy of the
//     underlying kernels; validation happens in the kernels.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// A thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init by the runtime.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros
// elsewhere). Deterministic: fixed i-loop, one write per diagonal cell.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	identity, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		identity.data[i*n+i] = 1.0
	}

	return identity, nil
}

// CloneMatrix returns a structural clone of m (same concrete type if m is
// *Dense). Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c).
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers. Complexity: O(r*c).
func ZerosLike(m Matrix) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates squareness via the central validator.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err) // wrap with call-site tag
	}

	return NewIdentity(m.Rows())
}

// ---------- Linear Algebra aliases (map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b. Complexity: O(rc).
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b. Complexity: O(rc).
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b. Complexity: O(r*n*c).
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ. Complexity: O(rc).
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m. Complexity: O(rc).
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }
