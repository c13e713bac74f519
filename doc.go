// Package matcache memoizes matrix inversion for a single mutable matrix,
// so repeated requests for the inverse never pay for recomputation while
// the underlying matrix stays unchanged.
//
// 🚀 What is matcache?
//
//	A small, deterministic library built from two packages:
//		• matrix/ — dense row-major storage plus the linear-algebra kernel
//		  (Add/Sub/Mul/Transpose/Scale, Doolittle LU, triangular solves,
//		  Inverse) with strict validation and sentinel errors
//		• memo/   — CachedMatrix, a one-entry invalidate-on-write cache for
//		  the inverse, and CacheInverse, the compute-or-fetch entry point
//
// ✨ Why choose matcache?
//
//   - One rule, enforced everywhere – any write to the matrix clears the
//     cached inverse, so a present cache entry is always the true inverse
//   - Rock-solid guarantees – per-instance locking makes the hit/miss
//     decision atomic relative to writers
//   - Deterministic numerics – fixed loop orders, no pivoting, no
//     randomness; identical inputs give identical results
//   - Observable – cache hits announce themselves through apex/log, so a
//     misbehaving caller shows up in the logs, not in the results
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]float64{{1, 3}, {2, 4}})
//	cm, _ := memo.NewCachedMatrix(m)
//
//	inv, _ := memo.CacheInverse(cm) // computes and caches
//	inv, _ = memo.CacheInverse(cm)  // cache hit: logged, no recomputation
//
//	m2, _ := matrix.FromRows([][]float64{{11, 13}, {12, 14}})
//	_ = cm.SetValue(m2) // invalidates; next CacheInverse recomputes
//	_ = inv
//
// See matrix/doc.go and memo/doc.go for the full contracts.
package matcache
