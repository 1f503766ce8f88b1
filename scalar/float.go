// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	ctxParseFloat = "ParseFloat"
	ctxFloatDiv   = "Float.Div"
)

// Float is a float64 field element. Zero and equality tests use the absolute
// tolerance DefaultEpsilon; arithmetic itself is plain IEEE-754.
type Float float64

// Add returns f + o.
func (f Float) Add(o Float) Float { return f + o }

// Sub returns f - o.
func (f Float) Sub(o Float) Float { return f - o }

// Mul returns f * o.
func (f Float) Mul(o Float) Float { return f * o }

// Div returns f / o. Only an exact zero divisor fails (ErrDivisionByZero);
// tiny divisors are the caller's numeric policy, not an arithmetic error.
func (f Float) Div(o Float) (Float, error) {
	if o == 0 {
		return 0, fmt.Errorf("%s(%g,%g): %w", ctxFloatDiv, float64(f), float64(o), ErrDivisionByZero)
	}

	return f / o, nil
}

// Neg returns -f.
func (f Float) Neg() Float { return -f }

// Equal reports |f - o| ≤ DefaultEpsilon.
func (f Float) Equal(o Float) bool { return math.Abs(float64(f-o)) <= DefaultEpsilon }

// Less reports f < o (strict, no tolerance).
func (f Float) Less(o Float) bool { return f < o }

// IsZero reports |f| ≤ DefaultEpsilon.
func (f Float) IsZero() bool { return math.Abs(float64(f)) <= DefaultEpsilon }

// Float64 returns f as a float64.
func (f Float) Float64() float64 { return float64(f) }

// String formats f with %g.
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// FromFloat64 returns v. The receiver is ignored.
func (Float) FromFloat64(v float64) Float { return Float(v) }

// FromInt64 returns float64(n). The receiver is ignored.
func (Float) FromInt64(n int64) Float { return Float(n) }

// Exact reports false: Float comparisons are tolerance-based.
func (Float) Exact() bool { return false }

// ParseFloat parses a single finite decimal token. Fractions ("1/2") are
// rejected: the floating representation expects one decimal per cell.
func ParseFloat(s string) (Float, error) {
	text := strings.TrimSpace(s)
	if strings.Contains(text, "/") {
		return 0, fmt.Errorf("%s(%q): fractions are not accepted: %w", ctxParseFloat, s, ErrSyntax)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s(%q): %w", ctxParseFloat, s, ErrSyntax)
	}

	return Float(v), nil
}
