// Package matrix provides the dense linear-algebra kernel behind matcache.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-safe At/Set accessors
//     and [][]float64 ingestion/export (FromRows, ToRows).
//   - Element-wise and product kernels (Add, Sub, Mul, Transpose, Scale)
//     with strict fail-fast validation and clear errors on mismatches.
//   - Doolittle LU factorization without pivoting, triangular solves
//     (SolveLU) and matrix inversion (Inverse) built on top of them.
//
// All public operations return sentinel errors (matched via errors.Is)
// instead of panicking, and every kernel keeps fixed, deterministic loop
// orders so identical inputs always produce identical outputs.
//
// Kernels carry a fast path operating directly on the flat backing slice
// of *Dense operands and a generic At/Set fallback for any other Matrix
// implementation.
package matrix
