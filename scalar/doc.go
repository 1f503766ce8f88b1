// SPDX-License-Identifier: MIT

// Package scalar provides the two numeric fields the lvlinalg engine runs on.
//
// What & Why:
//
//	Rational is an exact, always-reduced fraction of two int64 values.
//	Float is a float64 whose equality and zero tests use an absolute
//	tolerance (DefaultEpsilon) to absorb accumulated rounding.
//	Both satisfy Field[T], the capability set the generic matrix engine
//	and the statistics package are written against, so every algorithm
//	exists exactly once.
//
// Precision boundary:
//
//	Square roots and eigenvalues are irrational in general. Wherever such a
//	floating intermediate must re-enter the exact field, it is snapped to a
//	best rational approximation with RationalFromFloat64 (continued
//	fractions, at most 20 terms, denominator ≤ DefaultMaxDenominator).
//
// Errors:
//
//	ErrDivisionByZero - zero denominator on construction, zero divisor on Div.
//	ErrSyntax         - malformed textual input to the parsers.
package scalar
