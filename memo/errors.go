// SPDX-License-Identifier: MIT
// Package memo: sentinel error set.
// Kernel-level inversion failures are NOT translated here; CacheInverse
// propagates matrix package sentinels unchanged so callers keep matching
// them via errors.Is against the matrix package.

package memo

import "errors"

// ErrNilCache indicates that a nil *CachedMatrix was passed where a
// constructed container is required.
var ErrNilCache = errors.New("memo: nil CachedMatrix")
