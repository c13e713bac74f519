// Package memo memoizes the inverse of a single mutable matrix.
//
// The memo package provides:
//
//   - CachedMatrix, a container holding a matrix value together with an
//     optional cached inverse. Any write to the value unconditionally
//     discards the cached inverse (invalidate-on-write), so a present
//     cache entry is always the true inverse of the current value.
//   - CacheInverse, the compute-or-fetch entry point: it returns the
//     cached inverse when present (announcing the hit through the
//     configured logger) and otherwise computes, stores and returns it.
//
// The inversion routine itself is pluggable through WithInverter and
// defaults to matrix.Inverse; auxiliary inversion parameters are captured
// by the supplied closure. Inversion failures (matrix.ErrSingular,
// matrix.ErrDimensionMismatch) propagate to the caller unchanged and
// nothing is cached on failure.
//
// A per-instance mutex makes the hit/miss decision and the resulting
// store atomic relative to SetValue, so concurrent readers and a writer
// can share one CachedMatrix without caching a stale inverse.
package memo
