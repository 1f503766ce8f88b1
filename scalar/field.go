// SPDX-License-Identifier: MIT
// Package scalar: the Field capability set and shared numeric policy.
//
// Purpose:
//   - Declare the generic constraint every matrix/statistics algorithm is written against.
//   - Keep numeric constants (tolerances, continued-fraction bounds) in one place.

package scalar

// Numeric policy.
const (
	// DefaultEpsilon is the absolute tolerance used by Float for zero and
	// equality tests (|v| ≤ eps counts as zero).
	DefaultEpsilon = 1e-9

	// DefaultMaxDenominator bounds the denominator produced by
	// RationalFromFloat64 when snapping floating values back to fractions.
	DefaultMaxDenominator int64 = 10000

	// MaxContinuedFractionTerms bounds the continued-fraction expansion.
	MaxContinuedFractionTerms = 20

	// SnapTolerance is the threshold below which a floating value (or a
	// continued-fraction remainder) is treated as exactly zero.
	SnapTolerance = 1e-10
)

// Field is the capability set of a scalar field element.
//
// Contract:
//   - Values are immutable; every operation returns a new value.
//   - Div returns ErrDivisionByZero instead of producing Inf/NaN or panicking.
//   - Equal and IsZero apply the field's own equality policy
//     (exact for Rational, tolerance-based for Float).
//   - FromFloat64 and FromInt64 ignore their receiver: they are the field's
//     constructors, callable on the zero value (var z T; z.FromInt64(1)).
//   - Exact reports whether arithmetic is exact; algorithms that have distinct
//     policies per representation (IsDiagonalizable, display) branch on it.
type Field[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) (T, error)
	Neg() T
	Equal(T) bool
	Less(T) bool
	IsZero() bool
	Float64() float64
	String() string
	FromFloat64(float64) T
	FromInt64(int64) T
	Exact() bool
}

// Zero returns the additive identity of the field T.
func Zero[T Field[T]]() T {
	var z T
	return z.FromInt64(0)
}

// One returns the multiplicative identity of the field T.
func One[T Field[T]]() T {
	var z T
	return z.FromInt64(1)
}

// Compile-time assertions: both representations satisfy Field.
var (
	_ Field[Rational] = Rational{}
	_ Field[Float]    = Float(0)
)
