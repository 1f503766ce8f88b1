package textio

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
)

const (
	rowOpen  = "  [ "
	rowClose = " ]\n"
	cellSep  = "  "
)

// FormatCell renders one value right-aligned: %8s of the text form for exact
// fields, %10.4f for floating fields.
func FormatCell[T scalar.Field[T]](v T) string {
	if v.Exact() {
		return fmt.Sprintf("%8s", v.String())
	}

	return fmt.Sprintf("%10.4f", v.Float64())
}

// FormatScalar renders a standalone value: the text form for exact fields,
// four decimals for floating fields.
func FormatScalar[T scalar.Field[T]](v T) string {
	if v.Exact() {
		return v.String()
	}

	return fmt.Sprintf("%.4f", v.Float64())
}

// FormatVector renders xs as a single bracketed row.
func FormatVector[T scalar.Field[T]](xs []T) string {
	var sb strings.Builder
	writeRow(&sb, xs)

	return sb.String()
}

// Format renders m as bracketed rows, one per line.
func Format[T scalar.Field[T]](m *matrix.Dense[T]) string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	for _, row := range m.RowsData() {
		writeRow(&sb, row)
	}

	return sb.String()
}

func writeRow[T scalar.Field[T]](sb *strings.Builder, xs []T) {
	sb.WriteString(rowOpen)
	for j, v := range xs {
		if j > 0 {
			sb.WriteString(cellSep)
		}
		sb.WriteString(FormatCell(v))
	}
	sb.WriteString(rowClose)
}
