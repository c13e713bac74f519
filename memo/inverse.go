// SPDX-License-Identifier: MIT

// Package memo: the compute-or-fetch entry point.

package memo

import (
	"fmt"

	"github.com/katalvlaran/matcache/matrix"
)

// noticeCacheHit is the diagnostic message emitted on every cache hit.
// Kept as a constant so tests and log pipelines match one exact string.
const noticeCacheHit = "getting cached inverse matrix"

// CacheInverse returns the inverse of the matrix held by cm, using the
// cached value when present.
//
// Implementation:
//   - Stage 1: gather options (inverter, logger) and lock cm for the whole
//     read-check-compute-store sequence, making it atomic relative to
//     SetValue.
//   - Stage 2 (hit): emit the cache-hit notice through the logger and
//     return the cached inverse - no recomputation, no mutation.
//   - Stage 3 (miss): run the inverter on the current value, store the
//     result and return it. Nothing is cached on failure.
//
// Behavior highlights:
//   - Terminal in one call: the only branching is hit/miss.
//   - The matrix is assumed invertible (square, non-singular); there is no
//     pre-validation here. A violation surfaces as the inverter's own
//     error (matrix.ErrSingular, matrix.ErrDimensionMismatch with the
//     default inverter), propagated unchanged - no retry, no translation.
//   - The returned matrix is the cached instance; treat it as read-only.
//
// Errors:
//   - ErrNilCache (nil container), plus whatever the inverter returns.
//
// Complexity:
//   - Hit O(1); miss is the inverter's cost (O(n^3) for matrix.Inverse).
func CacheInverse(cm *CachedMatrix, opts ...Option) (matrix.Matrix, error) {
	if cm == nil {
		return nil, fmt.Errorf("CacheInverse: %w", ErrNilCache)
	}
	o := gatherOptions(opts...)

	// One critical section covers the hit/miss decision and the store, so
	// a SetValue landing mid-computation cannot leave a stale inverse.
	cm.mu.Lock()
	defer cm.mu.Unlock()

	// Cache hit: announce and return without touching anything.
	if cm.inverse != nil {
		o.logger.Info(noticeCacheHit)

		return cm.inverse, nil
	}

	// Cache miss: compute, store, return.
	inv, err := o.inverter(cm.value)
	if err != nil {
		return nil, err // inverter failures pass through unmodified
	}
	cm.inverse = inv

	return inv, nil
}
