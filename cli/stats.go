package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinalg/scalar"
	"github.com/katalvlaran/lvlinalg/stats"
	"github.com/katalvlaran/lvlinalg/textio"
)

// StatsOptions holds flags for the stats command.
type StatsOptions struct {
	Row    int    // 1-based row of the matrix operand
	Col    int    // 1-based column of the matrix operand
	Vector string // vector literal used when no matrix operand is given
}

// statKinds lists the statistics the command computes.
var statKinds = []string{"mean", "variance", "stddev", "describe"}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatsOptions{}

	cmd := &cobra.Command{
		Use:   "stats <mean|variance|stddev|describe> [matrix]",
		Short: "Descriptive statistics of a row, column or vector",
		Long: `Compute the mean, the sample variance (n-1) or the standard deviation of
a data vector.

The vector is a row (--row) or column (--col) of the matrix operand, counted
from 1, or, without a matrix operand, the --vector literal or the session's
vector.`,
		Args:      statsArgs,
		ValidArgs: statKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := rootOpts.formatter(cmd)

			var (
				rep *Report
				err error
			)
			if rootOpts.mode == textio.ModeFloat {
				rep, err = runStats[scalar.Float](rootOpts, opts, args)
			} else {
				rep, err = runStats[scalar.Rational](rootOpts, opts, args)
			}
			if err != nil {
				rootOpts.logger.Debug("stats failed", "kind", args[0], "err", err)
				return reportError(formatter, "stats failed", err)
			}
			rep.Command = "stats " + args[0]
			rep.Mode = string(rootOpts.mode)

			return formatter.Success(rep)
		},
	}

	cmd.Flags().IntVar(&opts.Row, "row", 0, "row of the matrix operand (1-based)")
	cmd.Flags().IntVar(&opts.Col, "col", 0, "column of the matrix operand (1-based)")
	cmd.Flags().StringVar(&opts.Vector, "vector", "", "data vector literal (e.g. \"1 2 3/2\")")
	cmd.MarkFlagsMutuallyExclusive("row", "col")

	return cmd
}

func statsArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return WrapExitError(ExitCommandError, "stats takes a statistic and an optional matrix operand", errUsage)
	}
	for _, k := range statKinds {
		if args[0] == k {
			return nil
		}
	}

	return WrapExitError(ExitCommandError,
		fmt.Sprintf("unknown statistic %q: must be one of %v", args[0], statKinds), errUsage)
}

// selectData resolves the data vector from the operand and flags.
func selectData[T scalar.Field[T]](root *RootOptions, opts *StatsOptions, args []string) ([]T, error) {
	if len(args) == 2 {
		if (opts.Row == 0) == (opts.Col == 0) {
			return nil, WrapExitError(ExitCommandError, "a matrix operand needs exactly one of --row or --col", errUsage)
		}
		ms, err := parseOperands[T](root, args[1:])
		if err != nil {
			return nil, err
		}
		if opts.Col != 0 {
			return textio.SelectVector(ms[0], textio.AxisCol, opts.Col)
		}

		return textio.SelectVector(ms[0], textio.AxisRow, opts.Row)
	}

	if opts.Row != 0 || opts.Col != 0 {
		return nil, WrapExitError(ExitCommandError, "--row and --col need a matrix operand", errUsage)
	}
	literal := opts.Vector
	if literal == "" && root.session != nil {
		literal = root.session.Vector
	}
	xs, err := textio.ParseVector[T](literal)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "parsing vector", err)
	}

	return xs, nil
}

func runStats[T scalar.Field[T]](root *RootOptions, opts *StatsOptions, args []string) (*Report, error) {
	xs, err := selectData[T](root, opts, args)
	if err != nil {
		return nil, err
	}
	root.logger.Debug("data selected", "count", len(xs))

	sum, err := stats.Describe(xs)
	if err != nil {
		return nil, err
	}
	stdDev := valueSection("Std Dev", fmt.Sprintf("%.4f", sum.StdDev))

	rep := new(Report).add(vectorSection("Selected Data", xs))
	switch args[0] {
	case "mean":
		rep.add(scalarSection("Mean", sum.Mean))
	case "variance":
		rep.add(scalarSection("Variance", sum.Variance))
	case "stddev":
		rep.add(stdDev)
	default:
		rep.add(intSection("Count", sum.Count), scalarSection("Mean", sum.Mean),
			scalarSection("Variance", sum.Variance), stdDev)
	}

	return rep, nil
}
