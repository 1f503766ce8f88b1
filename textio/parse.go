package textio

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
)

var (
	// ErrUnsupportedField is returned when a parser is instantiated with a
	// scalar type other than scalar.Rational or scalar.Float.
	ErrUnsupportedField = errors.New("textio: unsupported scalar field")

	// ErrEmptyVector is returned when a vector literal has no cells.
	ErrEmptyVector = errors.New("textio: empty vector")
)

// Axis selects a row or a column of a matrix.
type Axis int

const (
	// AxisRow selects a row.
	AxisRow Axis = iota
	// AxisCol selects a column.
	AxisCol
)

// String returns "row" or "column".
func (a Axis) String() string {
	if a == AxisCol {
		return "column"
	}

	return "row"
}

// NormalizeToken applies NFKC, maps the fraction slash (U+2044) to '/' and
// the minus sign (U+2212) to '-', and trims surrounding space.
func NormalizeToken(s string) string {
	s = norm.NFKC.String(s)
	s = strings.NewReplacer("⁄", "/", "−", "-").Replace(s)

	return strings.TrimSpace(s)
}

// ParseToken parses one cell token into the field T.
//
// Errors:
//   - scalar.ErrSyntax for malformed tokens (and any '/' in floating mode).
//   - scalar.ErrDivisionByZero for "n/0" in exact mode.
//   - ErrUnsupportedField for other instantiations.
func ParseToken[T scalar.Field[T]](tok string) (T, error) {
	var zero T
	text := NormalizeToken(tok)
	switch any(zero).(type) {
	case scalar.Rational:
		v, err := scalar.ParseRational(text)
		if err != nil {
			return zero, fmt.Errorf("token %q: %w", tok, err)
		}

		return any(v).(T), nil
	case scalar.Float:
		v, err := scalar.ParseFloat(text)
		if err != nil {
			return zero, fmt.Errorf("token %q: %w", tok, err)
		}

		return any(v).(T), nil
	default:
		return zero, fmt.Errorf("token %q: %w", tok, ErrUnsupportedField)
	}
}

// isCellSeparator reports whitespace, ',' and the ignored bracket characters.
func isCellSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == '[' || r == ']'
}

// splitRows splits a literal on ';' and newlines, dropping blank rows.
func splitRows(literal string) []string {
	raw := strings.FieldsFunc(literal, func(r rune) bool { return r == ';' || r == '\n' || r == '\r' })
	rows := make([]string, 0, len(raw))
	for _, row := range raw {
		if len(strings.FieldsFunc(row, isCellSeparator)) > 0 {
			rows = append(rows, row)
		}
	}

	return rows
}

// ParseMatrix parses a matrix literal such as "1 2; 3 4" or "1/2, 0\n0, 1".
//
// Errors:
//   - token errors from ParseToken (wrapped with the cell position).
//   - matrix.ErrInvalidDimensions for empty, ragged or oversized literals.
func ParseMatrix[T scalar.Field[T]](literal string) (*matrix.Dense[T], error) {
	rows := splitRows(norm.NFKC.String(literal))
	data := make([][]T, len(rows))
	for i, row := range rows {
		cells := strings.FieldsFunc(row, isCellSeparator)
		data[i] = make([]T, len(cells))
		for j, cell := range cells {
			v, err := ParseToken[T](cell)
			if err != nil {
				return nil, fmt.Errorf("ParseMatrix: cell (%d,%d): %w", i+1, j+1, err)
			}
			data[i][j] = v
		}
	}
	m, err := matrix.NewDenseFromRows(data)
	if err != nil {
		return nil, fmt.Errorf("ParseMatrix: %w", err)
	}

	return m, nil
}

// ParseVector parses a flat list of cells separated by whitespace, ',' or ';'.
// Vectors are not bounded by the matrix size cap.
//
// Errors: token errors from ParseToken; ErrEmptyVector for no cells.
func ParseVector[T scalar.Field[T]](literal string) ([]T, error) {
	cells := strings.FieldsFunc(norm.NFKC.String(literal), func(r rune) bool {
		return isCellSeparator(r) || r == ';'
	})
	if len(cells) == 0 {
		return nil, ErrEmptyVector
	}
	out := make([]T, len(cells))
	for i, cell := range cells {
		v, err := ParseToken[T](cell)
		if err != nil {
			return nil, fmt.Errorf("ParseVector: cell %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

// SelectVector extracts a row or column using a 1-based index, as users
// count them.
//
// Errors: matrix.ErrOutOfRange when index1 is outside [1, n].
func SelectVector[T scalar.Field[T]](m *matrix.Dense[T], axis Axis, index1 int) ([]T, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("SelectVector: %w", err)
	}
	var (
		v   []T
		err error
	)
	if axis == AxisCol {
		v, err = m.Col(index1 - 1)
	} else {
		v, err = m.Row(index1 - 1)
	}
	if err != nil {
		return nil, fmt.Errorf("SelectVector: %s %d: %w", axis, index1, err)
	}

	return v, nil
}
