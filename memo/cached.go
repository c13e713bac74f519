// SPDX-License-Identifier: MIT

// Package memo - CachedMatrix container & invalidate-on-write discipline.
//
// Purpose:
//   - Own exactly one matrix value and at most one cached inverse.
//   - Couple every value write to clearing the cached inverse, so the
//     container invariant holds without provenance checks:
//     inverse != nil ⟹ inverse is the true inverse of value.
//
// Ownership model:
//   - CachedMatrix exclusively owns both fields; no other component holds
//     independent state. The per-instance mutex guards all access, and
//     CacheInverse holds it across its whole read-check-compute-store
//     sequence so a concurrent SetValue cannot slip a stale inverse in.

package memo

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/matcache/matrix"
)

// CachedMatrix holds a matrix value and an optional cached inverse.
//   - value is the current matrix (never nil after construction).
//   - inverse is nil when absent: never computed, or invalidated by a write.
type CachedMatrix struct {
	mu      sync.Mutex
	value   matrix.Matrix
	inverse matrix.Matrix
}

// NewCachedMatrix creates a container around the initial matrix value.
// The cached inverse starts absent.
//
// Errors:
//   - matrix.ErrNilMatrix when m is nil.
//
// Complexity: O(1); the matrix is referenced, not copied.
func NewCachedMatrix(m matrix.Matrix) (*CachedMatrix, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("NewCachedMatrix: %w", err)
	}

	return &CachedMatrix{value: m}, nil
}

// SetValue replaces the stored matrix and unconditionally clears the
// cached inverse - even when m equals the previous value. This single rule
// maintains the container invariant.
//
// Errors:
//   - matrix.ErrNilMatrix when m is nil (the previous value is kept).
//
// Complexity: O(1).
func (c *CachedMatrix) SetValue(m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("SetValue: %w", err)
	}

	c.mu.Lock()
	c.value = m
	c.inverse = nil // invalidate-on-write
	c.mu.Unlock()

	return nil
}

// Value returns the current matrix. Never fails; no side effects.
// Complexity: O(1).
func (c *CachedMatrix) Value() matrix.Matrix {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.value
}

// SetCachedInverse stores inv as the cached inverse, overwriting any prior
// cached value. Passing nil clears the cache entry.
//
// Trust boundary: the argument is NOT validated against the current value.
// Intended for CacheInverse; callers storing a matrix that is not the true
// inverse of the current value silently break the container invariant.
// Complexity: O(1).
func (c *CachedMatrix) SetCachedInverse(inv matrix.Matrix) {
	c.mu.Lock()
	c.inverse = inv
	c.mu.Unlock()
}

// CachedInverse returns the cached inverse, or nil when absent (never
// computed, or invalidated by SetValue). Never fails; no side effects.
// Complexity: O(1).
func (c *CachedMatrix) CachedInverse() matrix.Matrix {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.inverse
}
