// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set.
// All constructors and arithmetic return these sentinels (possibly wrapped
// with context via %w); callers match them with errors.Is.

package scalar

import "errors"

var (
	// ErrDivisionByZero is returned when a zero denominator is supplied to a
	// Rational constructor or when Div is called with a zero divisor.
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrSyntax indicates that a textual number could not be parsed.
	ErrSyntax = errors.New("scalar: invalid number syntax")
)
