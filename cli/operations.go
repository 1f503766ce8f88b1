package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
	"github.com/katalvlaran/lvlinalg/stats"
	"github.com/katalvlaran/lvlinalg/textio"
)

// opFlags holds the command-local flags shared by the operation table.
type opFlags struct {
	By     string // scale factor
	Lambda string // eigenvalue for eigenvectors
}

// opEnv is what an operation sees besides its parsed operands.
type opEnv struct {
	root  *RootOptions
	flags *opFlags
}

// opFunc runs one operation over matrices of the field T.
type opFunc[T scalar.Field[T]] func(env *opEnv, ms []*matrix.Dense[T]) (*Report, error)

// operation describes one subcommand; exact and float are the same generic
// function instantiated per field.
type operation struct {
	name     string
	short    string
	operands int
	exact    opFunc[scalar.Rational]
	float    opFunc[scalar.Float]
	bind     func(cmd *cobra.Command, f *opFlags)
}

func operations() []operation {
	return []operation{
		{name: "add", short: "Add two matrices (A + B)", operands: 2, exact: opAdd[scalar.Rational], float: opAdd[scalar.Float]},
		{name: "sub", short: "Subtract two matrices (A - B)", operands: 2, exact: opSub[scalar.Rational], float: opSub[scalar.Float]},
		{name: "mul", short: "Multiply two matrices (A * B)", operands: 2, exact: opMul[scalar.Rational], float: opMul[scalar.Float]},
		{name: "scale", short: "Multiply a matrix by a scalar", operands: 1, exact: opScale[scalar.Rational], float: opScale[scalar.Float], bind: bindBy},
		{name: "transpose", short: "Transpose a matrix", operands: 1, exact: opTranspose[scalar.Rational], float: opTranspose[scalar.Float]},
		{name: "ref", short: "Row echelon form", operands: 1, exact: opREF[scalar.Rational], float: opREF[scalar.Float]},
		{name: "rref", short: "Reduced row echelon form, with linear independence", operands: 1, exact: opRREF[scalar.Rational], float: opRREF[scalar.Float]},
		{name: "det", short: "Determinant of a square matrix", operands: 1, exact: opDet[scalar.Rational], float: opDet[scalar.Float]},
		{name: "rank", short: "Rank (dimension of the row span)", operands: 1, exact: opRank[scalar.Rational], float: opRank[scalar.Float]},
		{name: "inverse", short: "Inverse of a square matrix", operands: 1, exact: opInverse[scalar.Rational], float: opInverse[scalar.Float]},
		{name: "trace", short: "Trace of a square matrix", operands: 1, exact: opTrace[scalar.Rational], float: opTrace[scalar.Float]},
		{name: "gram-schmidt", short: "Orthonormalize the columns of a matrix", operands: 1, exact: opGramSchmidt[scalar.Rational], float: opGramSchmidt[scalar.Float]},
		{name: "qr", short: "QR decomposition", operands: 1, exact: opQR[scalar.Rational], float: opQR[scalar.Float]},
		{name: "eigen", short: "Eigenvalues (real, approximate for n > 2)", operands: 1, exact: opEigen[scalar.Rational], float: opEigen[scalar.Float]},
		{name: "eigenvectors", short: "Eigenvectors for one eigenvalue", operands: 1, exact: opEigenvectors[scalar.Rational], float: opEigenvectors[scalar.Float], bind: bindLambda},
		{name: "diag", short: "Diagonalizability and P, D, P^-1", operands: 1, exact: opDiag[scalar.Rational], float: opDiag[scalar.Float]},
		{name: "symmetric", short: "Check whether a matrix is symmetric", operands: 1, exact: opSymmetric[scalar.Rational], float: opSymmetric[scalar.Float]},
		{name: "basis", short: "Basis of the row space", operands: 1, exact: opBasis[scalar.Rational], float: opBasis[scalar.Float]},
		{name: "covariance", short: "Sample covariance of the columns (rows are observations)", operands: 1, exact: opCovariance[scalar.Rational], float: opCovariance[scalar.Float]},
		{name: "correlation", short: "Pearson correlation of the columns (rows are observations)", operands: 1, exact: opCorrelation[scalar.Rational], float: opCorrelation[scalar.Float]},
	}
}

func bindBy(cmd *cobra.Command, f *opFlags) {
	cmd.Flags().StringVar(&f.By, "by", "", "scale factor (e.g. 3, -1/2, 0.25)")
	_ = cmd.MarkFlagRequired("by")
}

func bindLambda(cmd *cobra.Command, f *opFlags) {
	cmd.Flags().StringVar(&f.Lambda, "lambda", "", "eigenvalue whose eigenspace to compute")
	_ = cmd.MarkFlagRequired("lambda")
}

// newOperationCommand wires one operation into a cobra command.
func newOperationCommand(rootOpts *RootOptions, op operation) *cobra.Command {
	flags := &opFlags{}
	use := op.name + " <matrix>"
	if op.operands == 2 {
		use = op.name + " <matrix-a> <matrix-b>"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: op.short,
		Args:  exactOperands(op.operands),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := &opEnv{root: rootOpts, flags: flags}
			formatter := rootOpts.formatter(cmd)

			var (
				rep *Report
				err error
			)
			if rootOpts.mode == textio.ModeFloat {
				rep, err = runOperation(env, args, op.float)
			} else {
				rep, err = runOperation(env, args, op.exact)
			}
			if err != nil {
				rootOpts.logger.Debug("operation failed", "command", op.name, "err", err)
				return reportError(formatter, op.name+" failed", err)
			}
			rep.Command = op.name
			rep.Mode = string(rootOpts.mode)

			return formatter.Success(rep)
		},
	}
	if op.bind != nil {
		op.bind(cmd, flags)
	}

	return cmd
}

// exactOperands is cobra.ExactArgs reporting a usage exit code.
func exactOperands(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return WrapExitError(ExitCommandError,
				fmt.Sprintf("%s takes %d matrix operand(s), got %d", cmd.Name(), n, len(args)), errUsage)
		}
		return nil
	}
}

// runOperation parses the operands in the field T and runs fn over them.
// Parse failures come back as usage ExitErrors; engine errors are returned as-is.
func runOperation[T scalar.Field[T]](env *opEnv, args []string, fn opFunc[T]) (*Report, error) {
	ms, err := parseOperands[T](env.root, args)
	if err != nil {
		return nil, err
	}
	env.root.logger.Debug("operands parsed", "count", len(ms))

	return fn(env, ms)
}

// resolveLiteral returns the literal for arg, reading "@name" from the session.
func (o *RootOptions) resolveLiteral(arg string) (string, error) {
	name, ok := strings.CutPrefix(arg, "@")
	if !ok {
		return arg, nil
	}
	lit, err := o.session.Literal(name)
	if err != nil {
		return "", WrapExitError(ExitCommandError, "resolving operand", err)
	}

	return lit, nil
}

func parseOperands[T scalar.Field[T]](o *RootOptions, args []string) ([]*matrix.Dense[T], error) {
	ms := make([]*matrix.Dense[T], len(args))
	for i, arg := range args {
		lit, err := o.resolveLiteral(arg)
		if err != nil {
			return nil, err
		}
		m, err := textio.ParseMatrix[T](lit)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("parsing operand %d", i+1), err)
		}
		ms[i] = m
	}

	return ms, nil
}

// parseFlagScalar parses a scalar flag value as a usage error on failure.
func parseFlagScalar[T scalar.Field[T]](flag, value string) (T, error) {
	v, err := textio.ParseToken[T](value)
	if err != nil {
		var zero T
		return zero, WrapExitError(ExitCommandError, "--"+flag, err)
	}

	return v, nil
}

// ---------- Operations ----------

func binary[T scalar.Field[T]](ms []*matrix.Dense[T], title string,
	fn func(a, b *matrix.Dense[T]) (*matrix.Dense[T], error)) (*Report, error) {
	c, err := fn(ms[0], ms[1])
	if err != nil {
		return nil, err
	}

	return new(Report).add(
		matrixSection("Matrix A", ms[0]),
		matrixSection("Matrix B", ms[1]),
		matrixSection(title, c),
	), nil
}

func opAdd[T scalar.Field[T]](_ *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	return binary(ms, "Result (A + B)", matrix.Add[T])
}

func opSub[T scalar.Field[T]](_ *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	return binary(ms, "Result (A - B)", matrix.Sub[T])
}

func opMul[T scalar.Field[T]](_ *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	return binary(ms, "Result (A * B)", matrix.Mul[T])
}

func opScale[T scalar.Field[T]](env *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	k, err := parseFlagScalar[T]("by", env.flags.By)
	if err != nil {
		return nil, err
	}
	out, err := matrix.Scale(ms[0], k)
	if err != nil {
		return nil, err
	}

	return new(Report).add(
		matrixSection("Matrix", ms[0]),
		matrixSection(fmt.Sprintf("Result (%s * A)", textio.FormatScalar(k)), out),
	), nil
}

// unary runs a matrix-to-matrix operation under "Original Matrix".
func unary[T scalar.Field[T]](ms []*matrix.Dense[T], title string,
	fn func(*matrix.Dense[T]) (*matrix.Dense[T], error)) (*Report, error) {
	out, err := fn(ms[0])
	if err != nil {
		return nil, err
	}

	return new(Report).add(
		matrixSection("Original Matrix", ms[0]),
		matrixSection(title, out),
	), nil
}

func opTranspose[T scalar.Field[T]](_ *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	return unary(ms, "Transpose", matrix.Transpose[T])
}

func opREF[T scalar.Field[T]](_ *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	return unary(ms, "REF", matrix.REF[T])
}

func opRREF[T scalar.Field[T]](_ *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	rep, err := unary(ms, "RREF", matrix.RREF[T])
	if err != nil {
		return nil, err
	}
	independent, err := matrix.IsLinearlyIndependent(ms[0])
	if err != nil {
		return nil, err
	}

	return rep.add(boolSection("Linearly independent", independent)), nil
}

func opInverse[T scalar.Field[T]](_ *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	return unary(ms, "Inverse", matrix.Inverse[T])
}

func opGramSchmidt[T scalar.Field[T]](env *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	return unary(ms, "Orthonormal Columns (Q)", func(m *matrix.Dense[T]) (*matrix.Dense[T], error) {
		return matrix.GramSchmidt(m, env.root.engineOptions()...)
	})
}

func opQR[T scalar.Field[T]](env *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	q, r, err := matrix.QR(ms[0], env.root.engineOptions()...)
	if err != nil {
		return nil, err
	}

	return new(Report).add(
		matrixSection("Original Matrix", ms[0]),
		matrixSection("Q", q),
		matrixSection("R", r),
	), nil
}

func opDet[T scalar.Field[T]](_ *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	d, err := matrix.Determinant(ms[0])
	if err != nil {
		return nil, err
	}

	return new(Report).add(matrixSection("Matrix", ms[0]), scalarSection("Determinant", d)), nil
}

func opTrace[T scalar.Field[T]](_ *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	tr, err := matrix.Trace(ms[0])
	if err != nil {
		return nil, err
	}

	return new(Report).add(matrixSection("Matrix", ms[0]), scalarSection("Trace", tr)), nil
}

func opRank[T scalar.Field[T]](_ *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	r, err := matrix.Rank(ms[0])
	if err != nil {
		return nil, err
	}

	return new(Report).add(matrixSection("Matrix", ms[0]), intSection("Rank", r)), nil
}

func opEigen[T scalar.Field[T]](env *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	vals, err := matrix.Eigenvalues(ms[0], env.root.engineOptions()...)
	if err != nil {
		return nil, err
	}

	return new(Report).add(matrixSection("Matrix", ms[0]), vectorSection("Eigenvalues", vals)), nil
}

// opEigenvectors solves in floating point for either field; the eigenspace
// of an approximate eigenvalue has no exact representation in general.
func opEigenvectors[T scalar.Field[T]](env *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	lambda, err := parseFlagScalar[T]("lambda", env.flags.Lambda)
	if err != nil {
		return nil, err
	}
	f, err := matrix.Convert[scalar.Float](ms[0])
	if err != nil {
		return nil, err
	}
	vecs, err := matrix.Eigenvectors(f, scalar.Float(lambda.Float64()))
	if err != nil {
		return nil, err
	}

	rep := new(Report).add(matrixSection("Matrix", ms[0]))
	if len(vecs) == 0 {
		return rep.add(valueSection("Eigenvectors", "none ("+textio.FormatScalar(lambda)+" is not an eigenvalue)")), nil
	}
	for i, v := range vecs {
		rep.add(vectorSection(fmt.Sprintf("Eigenvector %d", i+1), v))
	}

	return rep, nil
}

// opDiag reports the field's diagonalizability policy and, when the
// floating factorization exists, P, D and P^-1.
func opDiag[T scalar.Field[T]](env *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	opts := env.root.engineOptions()
	ok, err := matrix.IsDiagonalizable(ms[0], opts...)
	if err != nil {
		return nil, err
	}
	rep := new(Report).add(matrixSection("Matrix", ms[0]), boolSection("Diagonalizable", ok))
	if !ok {
		return rep, nil
	}

	f, err := matrix.Convert[scalar.Float](ms[0])
	if err != nil {
		return nil, err
	}
	p, d, pInv, err := matrix.Diagonalize(f, opts...)
	switch {
	case err == nil:
		return rep.add(matrixSection("P", p), matrixSection("D", d), matrixSection("P^-1", pInv)), nil
	case errors.Is(err, matrix.ErrNotDiagonalizable), errors.Is(err, matrix.ErrSingular):
		env.root.logger.Debug("no floating factorization", "err", err)
		return rep, nil
	default:
		return nil, err
	}
}

func opSymmetric[T scalar.Field[T]](_ *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	ok, err := matrix.IsSymmetric(ms[0])
	if err != nil {
		return nil, err
	}

	return new(Report).add(matrixSection("Matrix", ms[0]), boolSection("Symmetric", ok)), nil
}

func opBasis[T scalar.Field[T]](_ *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	basis, err := matrix.Basis(ms[0])
	if err != nil {
		return nil, err
	}
	rep := new(Report).add(matrixSection("Matrix", ms[0]), intSection("Dimension", len(basis)))
	for i, v := range basis {
		rep.add(vectorSection(fmt.Sprintf("Basis vector %d", i+1), v))
	}

	return rep, nil
}

func opCovariance[T scalar.Field[T]](_ *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	return unary(ms, "Covariance", stats.Covariance[T])
}

func opCorrelation[T scalar.Field[T]](_ *opEnv, ms []*matrix.Dense[T]) (*Report, error) {
	corr, err := stats.Correlation(ms[0])
	if err != nil {
		return nil, err
	}

	return new(Report).add(matrixSection("Original Matrix", ms[0]), matrixSection("Correlation", corr)), nil
}
