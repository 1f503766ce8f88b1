// Package cli implements the lvlinalg command tree.
//
// Every matrix operation of the engine is one subcommand (add, sub, mul,
// scale, transpose, ref, rref, det, rank, inverse, trace, gram-schmidt, qr,
// eigen, eigenvectors, diag, symmetric, basis) plus covariance, correlation
// and stats. Operands are
// matrix literals or @name references into a YAML session file. The scalar
// field is chosen per invocation with --mode; each operation is written
// once as a generic function and instantiated for scalar.Rational and
// scalar.Float.
//
// Output is a Report rendered as fixed-width text (package textio) or as a
// JSON CLIResponse. Diagnostics go through log/slog on stderr, at Debug
// level when --verbose is set.
package cli
