// SPDX-License-Identifier: MIT
// Package scalar - Rational: exact, canonical fractions.
//
// Purpose:
//   - Provide an immutable fraction type whose invariant (den > 0, gcd(|num|, den) == 1)
//     is re-established after every operation.
//   - Keep the zero value usable: Rational{} is 0/1 (a stored den of 0 reads as 1,
//     the same convention math/big.Rat uses).
//
// Overflow policy:
//   - Arithmetic runs on int64 with explicit overflow checks.
//   - On overflow the operation is recomputed with math/big and reduced.
//   - A reduced result that still does not fit int64 is snapped with
//     RationalFromFloat64 (DefaultMaxDenominator). This is the same precision
//     boundary the engine already accepts for square roots.

package scalar

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	ctxNewRational   = "NewRational"
	ctxParseRational = "ParseRational"
	ctxDiv           = "Rational.Div"
)

// Rational is an exact fraction num/den kept in lowest terms with den > 0.
type Rational struct {
	num int64 // signed numerator
	den int64 // positive denominator; 0 only in the zero value, read as 1
}

// NewRational returns num/den reduced to lowest terms with a positive denominator.
// Returns ErrDivisionByZero when den == 0.
// Complexity: O(log min(|num|, |den|)) for the gcd.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%s(%d,%d): %w", ctxNewRational, num, den, ErrDivisionByZero)
	}

	return normalize(num, den), nil
}

// MustRational is NewRational that panics on a zero denominator.
// Intended for literals in tests and examples.
func MustRational(num, den int64) Rational {
	r, err := NewRational(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// Int returns the integer n as a Rational (n/1).
func Int(n int64) Rational { return Rational{num: n, den: 1} }

// Num returns the reduced numerator.
func (r Rational) Num() int64 { return r.num }

// Den returns the reduced, strictly positive denominator.
func (r Rational) Den() int64 {
	if r.den == 0 {
		return 1
	}

	return r.den
}

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	rd, od := r.Den(), o.Den()
	a, okA := mul64(r.num, od)
	b, okB := mul64(o.num, rd)
	n, okN := add64(a, b)
	d, okD := mul64(rd, od)
	if okA && okB && okN && okD {
		return normalize(n, d)
	}

	return RationalFromBig(new(big.Rat).Add(r.big(), o.big()))
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	rd, od := r.Den(), o.Den()
	a, okA := mul64(r.num, od)
	b, okB := mul64(o.num, rd)
	n, okN := sub64(a, b)
	d, okD := mul64(rd, od)
	if okA && okB && okN && okD {
		return normalize(n, d)
	}

	return RationalFromBig(new(big.Rat).Sub(r.big(), o.big()))
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	n, okN := mul64(r.num, o.num)
	d, okD := mul64(r.Den(), o.Den())
	if okN && okD {
		return normalize(n, d)
	}

	return RationalFromBig(new(big.Rat).Mul(r.big(), o.big()))
}

// Div returns r / o, or ErrDivisionByZero when o is zero.
func (r Rational) Div(o Rational) (Rational, error) {
	if o.num == 0 {
		return Rational{}, fmt.Errorf("%s(%s,%s): %w", ctxDiv, r, o, ErrDivisionByZero)
	}
	n, okN := mul64(r.num, o.Den())
	d, okD := mul64(r.Den(), o.num)
	if okN && okD {
		return normalize(n, d), nil
	}

	return RationalFromBig(new(big.Rat).Quo(r.big(), o.big())), nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	if r.num == math.MinInt64 {
		return RationalFromBig(new(big.Rat).Neg(r.big()))
	}

	return Rational{num: -r.num, den: r.Den()}
}

// Equal reports r == o. Both sides are canonical, so fields compare directly.
func (r Rational) Equal(o Rational) bool {
	return r.num == o.num && r.Den() == o.Den()
}

// Less reports r < o.
func (r Rational) Less(o Rational) bool {
	a, okA := mul64(r.num, o.Den())
	b, okB := mul64(o.num, r.Den())
	if okA && okB {
		return a < b
	}

	return r.big().Cmp(o.big()) < 0
}

// IsZero reports whether r is exactly zero.
func (r Rational) IsZero() bool { return r.num == 0 }

// Float64 returns the nearest float64 approximation of r.
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

// String returns "num" when the denominator is 1, else "num/den".
func (r Rational) String() string {
	if r.Den() == 1 {
		return strconv.FormatInt(r.num, 10)
	}

	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}

// FromFloat64 snaps v to a Rational with DefaultMaxDenominator. The receiver is ignored.
func (Rational) FromFloat64(v float64) Rational {
	return RationalFromFloat64(v, DefaultMaxDenominator)
}

// FromInt64 returns n/1. The receiver is ignored.
func (Rational) FromInt64(n int64) Rational { return Int(n) }

// Exact reports true: Rational arithmetic is exact.
func (Rational) Exact() bool { return true }

// big converts r to a math/big value for the overflow slow path.
func (r Rational) big() *big.Rat {
	return new(big.Rat).SetFrac64(r.num, r.Den())
}

// RationalFromBig converts an arbitrary-precision rational. Values that do not
// fit int64 after reduction are snapped with RationalFromFloat64.
func RationalFromBig(x *big.Rat) Rational {
	if x.Num().IsInt64() && x.Denom().IsInt64() {
		// big.Rat is always normalized: positive denominator, lowest terms.
		return Rational{num: x.Num().Int64(), den: x.Denom().Int64()}
	}
	f, _ := x.Float64()

	return RationalFromFloat64(f, DefaultMaxDenominator)
}

// RationalFromFloat64 returns a best-effort rational approximation of v.
//
// Implementation:
//   - Stage 1: |v| < SnapTolerance (or NaN) → 0. Split integer and fractional parts;
//     a fractional part below SnapTolerance yields the integer.
//   - Stage 2: expand the fractional part as a continued fraction with the
//     recurrence hₙ = aₙhₙ₋₁ + hₙ₋₂ (same for kₙ), seeded h₋₁=1, h₋₂=0, k₋₁=0, k₋₂=1.
//   - Stage 3: stop after MaxContinuedFractionTerms terms, when the next
//     denominator would exceed maxDen (keeping the last valid convergent),
//     or when the remainder is within SnapTolerance of the current term.
//   - Stage 4: recombine with the integer part and restore the sign.
//
// Notes:
//   - |v| beyond the int64 range saturates to ±MaxInt64.
//   - maxDen < 1 is treated as 1 (integer rounding toward zero).
//
// Complexity: O(MaxContinuedFractionTerms).
func RationalFromFloat64(v float64, maxDen int64) Rational {
	if maxDen < 1 {
		maxDen = 1
	}
	if math.IsNaN(v) || math.Abs(v) < SnapTolerance {
		return Rational{}
	}

	neg := v < 0
	v = math.Abs(v)
	if v >= math.MaxInt64 {
		if neg {
			return Int(-math.MaxInt64)
		}
		return Int(math.MaxInt64)
	}

	intPart := int64(v)
	frac := v - float64(intPart)
	if frac < SnapTolerance {
		if neg {
			return Int(-intPart)
		}
		return Int(intPart)
	}

	var (
		h, hPrev int64 = 1, 0 // h₋₁, h₋₂
		k, kPrev int64 = 0, 1 // k₋₁, k₋₂
		a        int64
		x        = frac
	)
	for i := 0; i < MaxContinuedFractionTerms && k < maxDen; i++ {
		a = int64(x)
		hNext := a*h + hPrev
		kNext := a*k + kPrev
		if kNext > maxDen {
			break // keep the last valid convergent
		}
		hPrev, h = h, hNext
		kPrev, k = k, kNext
		if math.Abs(x-float64(a)) < SnapTolerance {
			break
		}
		x = 1.0 / (x - float64(a))
	}

	scaled, okS := mul64(intPart, k)
	n, okN := add64(scaled, h)
	if !okS || !okN {
		n, k = intPart, 1 // fraction is below float64 resolution at this magnitude
	}
	if neg {
		n = -n
	}

	return normalize(n, k)
}

// ParseRational parses "n", "n/d" or a finite decimal such as "-0.125" into
// an exact Rational.
//
// Errors:
//   - ErrDivisionByZero for "n/0".
//   - ErrSyntax for anything else that is not a valid number or does not fit int64.
func ParseRational(s string) (Rational, error) {
	text := strings.TrimSpace(s)
	if numText, denText, isFrac := strings.Cut(text, "/"); isFrac {
		n, err := strconv.ParseInt(strings.TrimSpace(numText), 10, 64)
		if err != nil {
			return Rational{}, fmt.Errorf("%s(%q): %w", ctxParseRational, s, ErrSyntax)
		}
		d, err := strconv.ParseInt(strings.TrimSpace(denText), 10, 64)
		if err != nil {
			return Rational{}, fmt.Errorf("%s(%q): %w", ctxParseRational, s, ErrSyntax)
		}

		return NewRational(n, d)
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Int(n), nil
	}

	// Decimal notation is parsed exactly (0.1 is 1/10, not the float64 nearest to it).
	x, ok := new(big.Rat).SetString(text)
	if !ok || !x.Num().IsInt64() || !x.Denom().IsInt64() {
		return Rational{}, fmt.Errorf("%s(%q): %w", ctxParseRational, s, ErrSyntax)
	}

	return Rational{num: x.Num().Int64(), den: x.Denom().Int64()}, nil
}

// normalize reduces num/den (den != 0) to canonical form.
func normalize(num, den int64) Rational {
	if num == math.MinInt64 || den == math.MinInt64 {
		return RationalFromBig(new(big.Rat).SetFrac(big.NewInt(num), big.NewInt(den)))
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := int64(gcd(abs64(num), uint64(den))) // g ≥ 1 because den > 0

	return Rational{num: num / g, den: den / g}
}

// gcd returns the greatest common divisor (Euclid); gcd(0, b) == b.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// abs64 returns |x| for x != MinInt64.
func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}

	return uint64(x)
}

// mul64 returns a*b and false on int64 overflow.
func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}

	return c, true
}

// add64 returns a+b and false on int64 overflow.
func add64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}

	return c, true
}

// sub64 returns a-b and false on int64 overflow.
func sub64(a, b int64) (int64, bool) {
	c := a - b
	if (c < a) != (b > 0) {
		return 0, false
	}

	return c, true
}
