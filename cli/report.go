package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
	"github.com/katalvlaran/lvlinalg/textio"
)

// Report is the result of one command: a titled list of matrices, vectors
// and values. Text output renders the sections in order; JSON output
// serializes the same structure with cells as strings.
type Report struct {
	Command  string    `json:"command"`
	Mode     string    `json:"mode"`
	Sections []Section `json:"sections"`
}

// Section is one titled item of a Report. Exactly one of Matrix, Vector or
// Value is set.
type Section struct {
	Title  string     `json:"title"`
	Matrix [][]string `json:"matrix,omitempty"`
	Vector []string   `json:"vector,omitempty"`
	Value  string     `json:"value,omitempty"`

	text string
}

// String renders the text form of the report.
func (r *Report) String() string {
	var sb strings.Builder
	for _, s := range r.Sections {
		sb.WriteString(s.text)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func (r *Report) add(sections ...Section) *Report {
	r.Sections = append(r.Sections, sections...)
	return r
}

func matrixSection[T scalar.Field[T]](title string, m *matrix.Dense[T]) Section {
	rows := m.RowsData()
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = cellStrings(row)
	}

	return Section{Title: title, Matrix: cells, text: title + ":\n" + textio.Format(m)}
}

func vectorSection[T scalar.Field[T]](title string, xs []T) Section {
	return Section{Title: title, Vector: cellStrings(xs), text: title + ":\n" + textio.FormatVector(xs)}
}

func valueSection(title, value string) Section {
	return Section{Title: title, Value: value, text: title + ": " + value + "\n"}
}

// scalarSection renders a field value; non-integer exact values also show
// their decimal approximation in text output.
func scalarSection[T scalar.Field[T]](title string, v T) Section {
	s := valueSection(title, textio.FormatScalar(v))
	if v.Exact() && strings.Contains(s.Value, "/") {
		s.text = fmt.Sprintf("%s: %s (%.4f)\n", title, s.Value, v.Float64())
	}

	return s
}

func intSection(title string, n int) Section {
	return valueSection(title, strconv.Itoa(n))
}

func boolSection(title string, ok bool) Section {
	if ok {
		return valueSection(title, "yes")
	}

	return valueSection(title, "no")
}

func cellStrings[T scalar.Field[T]](xs []T) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = textio.FormatScalar(x)
	}

	return out
}
