// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the iterative and
// tolerance-driven kernels (GramSchmidt, QR, Eigenvalues, Diagonalize,
// IsDiagonalizable).
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Defaults reproduce the documented engine policy exactly; options only
//     exist so tests and callers can state the policy explicitly.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"math"

	"github.com/katalvlaran/lvlinalg/scalar"
)

// ---------- Defaults (single source of truth) ----------

const (
	// MaxDim is the hard cap on rows and columns of every public matrix.
	MaxDim = 5

	// DefaultQRIterations is the fixed budget of unshifted QR iterations used
	// by Eigenvalues for n ≠ 2. No convergence check is performed.
	DefaultQRIterations = 30

	// DefaultDedupTolerance merges eigenvalues closer than this before
	// eigenvectors are gathered in Diagonalize.
	DefaultDedupTolerance = 1e-4

	// DefaultComponentThreshold is the minimum |x_i| used when re-deriving an
	// eigenvalue from A·x = λx (avoids dividing by a near-zero component).
	DefaultComponentThreshold = 0.1

	// DefaultMaxDenominator bounds the rational snapping of square roots
	// (Gram-Schmidt norms, 2×2 eigenvalues) in the exact field.
	DefaultMaxDenominator = scalar.DefaultMaxDenominator
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicQRIterationsInvalid       = "matrix: WithQRIterations: iterations must be >= 0"
	panicDedupToleranceInvalid     = "matrix: WithDedupTolerance: tol must be finite, non-negative"
	panicComponentThresholdInvalid = "matrix: WithComponentThreshold: threshold must be finite, positive"
	panicMaxDenominatorInvalid     = "matrix: WithMaxDenominator: maxDen must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	qrIterations       int     // >= 0; DefaultQRIterations
	dedupTol           float64 // >= 0; DefaultDedupTolerance
	componentThreshold float64 // > 0; DefaultComponentThreshold
	maxDenominator     int64   // >= 1; DefaultMaxDenominator
}

// WithQRIterations sets the number of unshifted QR iterations for n ≠ 2.
// Implementation:
//   - Stage 1: validate iterations ≥ 0.
//   - Stage 2: return a setter that writes the budget into Options.
//
// Notes:
//   - Zero iterations returns the diagonal of the input unchanged.
//
// AI-Hints:
//   - More iterations only help matrices with distinct, well-separated real eigenvalues.
func WithQRIterations(iterations int) Option {
	if iterations < 0 {
		panic(panicQRIterationsInvalid)
	}

	return func(o *Options) { o.qrIterations = iterations }
}

// WithDedupTolerance sets the tolerance under which two eigenvalues are
// considered the same in Diagonalize.
func WithDedupTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicDedupToleranceInvalid)
	}

	return func(o *Options) { o.dedupTol = tol }
}

// WithComponentThreshold sets the minimum eigenvector component magnitude
// used to re-derive an eigenvalue in Diagonalize.
func WithComponentThreshold(threshold float64) Option {
	if isNonFinite(threshold) || threshold <= 0 {
		panic(panicComponentThresholdInvalid)
	}

	return func(o *Options) { o.componentThreshold = threshold }
}

// WithMaxDenominator bounds the denominator used when a floating
// intermediate (a square root) re-enters the exact field. Ignored for Float.
func WithMaxDenominator(maxDen int64) Option {
	if maxDen < 1 {
		panic(panicMaxDenominatorInvalid)
	}

	return func(o *Options) { o.maxDenominator = maxDen }
}

// defaultOptions returns the documented engine policy.
func defaultOptions() Options {
	return Options{
		qrIterations:       DefaultQRIterations,
		dedupTol:           DefaultDedupTolerance,
		componentThreshold: DefaultComponentThreshold,
		maxDenominator:     DefaultMaxDenominator,
	}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
