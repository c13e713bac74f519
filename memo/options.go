// SPDX-License-Identifier: MIT

// Package memo: functional configuration for CacheInverse.
//
// Design goals:
//   - Deterministic behavior: no global state beyond the process logger
//     default; no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error); runtime failures stay on the error path.
//
// Notes:
//   - The inverter option is the Go-native mapping of "extra parameters
//     forwarded verbatim to the inversion routine": auxiliary parameters
//     are captured by the supplied closure (e.g. an inverter built around
//     matrix.SolveLU with a preconditioned factorization).

package memo

import (
	"github.com/apex/log"

	"github.com/katalvlaran/matcache/matrix"
)

// InverterFunc computes the mathematical inverse of m, or fails when m is
// singular or not square. Implementations must not mutate m.
type InverterFunc func(m matrix.Matrix) (matrix.Matrix, error)

// Option mutates the CacheInverse configuration.
type Option func(*options)

// options is the internal configuration state; fields are unexported and
// public APIs consume ...Option.
type options struct {
	inverter InverterFunc  // inversion routine for cache misses
	logger   log.Interface // diagnostic-notice channel for cache hits
}

// defaultOptions returns the documented defaults: the package's own LU
// inverter and the process-wide apex logger.
func defaultOptions() options {
	return options{
		inverter: matrix.Inverse,
		logger:   log.Log,
	}
}

// gatherOptions folds opts over the defaults in call order.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithInverter selects the inversion routine used on a cache miss.
// Panics if fn is nil (programmer error).
func WithInverter(fn InverterFunc) Option {
	if fn == nil {
		panic("memo: WithInverter called with nil InverterFunc")
	}

	return func(o *options) { o.inverter = fn }
}

// WithLogger selects the logger that carries the cache-hit notice.
// Panics if l is nil (programmer error).
func WithLogger(l log.Interface) Option {
	if l == nil {
		panic("memo: WithLogger called with nil logger")
	}

	return func(o *options) { o.logger = l }
}
