package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/textio"
)

var (
	errUsage   = errors.New("invalid usage")
	errSession = errors.New("invalid session")
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose        bool
	Format         string // "json" | "text"
	Mode           string // "exact" | "float"
	Session        string // YAML session file with named matrices
	QRIterations   int
	MaxDenominator int64

	mode    textio.Mode
	session *textio.Session
	logger  *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the lvlinalg CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "lvlinalg",
		Short: "lvlinalg - bounded linear algebra calculator",
		Long: `Matrix operations on matrices up to 5x5, in exact rational arithmetic
or in floating point.

Matrices are given as literals ("1 2; 3 4", "1/2, 0\n0, 1") or as @name
references into a YAML session file (--session).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.Mode, "mode", "m", string(textio.ModeExact), "scalar field (exact|float)")
	cmd.PersistentFlags().StringVarP(&opts.Session, "session", "s", "", "YAML session file with named matrices")
	cmd.PersistentFlags().IntVar(&opts.QRIterations, "qr-iterations", matrix.DefaultQRIterations, "QR iterations for eigenvalues of n≠2 matrices")
	cmd.PersistentFlags().Int64Var(&opts.MaxDenominator, "max-denominator", matrix.DefaultMaxDenominator, "denominator bound when square roots re-enter exact mode")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", fmt.Errorf("%w: %w", errUsage, err))
	})

	// Add subcommands
	for _, op := range operations() {
		cmd.AddCommand(newOperationCommand(opts, op))
	}
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

// Execute runs the CLI with args and returns the process exit code.
// Errors no command has reported yet (unknown subcommands, argument and
// flag errors) are printed to stderr; those that are not ExitErrors are
// usage errors.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(stderr, "Error [%s]: %v\n", ErrCodeUsage, err)
		return ExitCommandError
	}
	if !exitErr.reported {
		fmt.Fprintf(stderr, "Error [%s]: %v\n", errorCode(err), err)
	}

	return exitErr.Code
}

// prepare validates global flags, configures logging and loads the session.
// An explicit --mode wins over the session's mode.
func (o *RootOptions) prepare(cmd *cobra.Command) error {
	if !isValidFormat(o.Format) {
		return o.fail(cmd, WrapExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats), errUsage))
	}
	if o.QRIterations < 0 || o.MaxDenominator < 1 {
		return o.fail(cmd, WrapExitError(ExitCommandError,
			"--qr-iterations must be >= 0 and --max-denominator >= 1", errUsage))
	}
	o.logger = newLogger(cmd.ErrOrStderr(), o.Verbose)

	if o.Session != "" {
		s, err := textio.LoadSession(o.Session)
		if err != nil {
			return o.fail(cmd, WrapExitError(ExitCommandError, "loading session", fmt.Errorf("%w: %w", errSession, err)))
		}
		o.session = s
		o.logger.Debug("session loaded", "path", o.Session, "matrices", len(s.Matrices))
	}

	modeName := o.Mode
	if o.session != nil && !cmd.Flags().Changed("mode") {
		modeName = string(o.session.Mode)
	}
	mode, err := textio.ParseMode(modeName)
	if err != nil {
		return o.fail(cmd, WrapExitError(ExitCommandError, "selecting mode", err))
	}
	o.mode = mode
	o.logger.Debug("configured", "command", cmd.Name(), "mode", o.mode, "format", o.Format)

	return nil
}

// fail reports a pre-run error through a formatter bound to cmd.
func (o *RootOptions) fail(cmd *cobra.Command, err error) error {
	return reportError(o.formatter(cmd), "invalid configuration", err)
}

// formatter builds the OutputFormatter for cmd's writers.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	format := o.Format
	if !isValidFormat(format) {
		format = "text"
	}

	return &OutputFormatter{
		Format:    format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// engineOptions translates the global tuning flags into matrix options.
func (o *RootOptions) engineOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithQRIterations(o.QRIterations),
		matrix.WithMaxDenominator(o.MaxDenominator),
	}
}

// newLogger returns a text slog logger on w; Debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
