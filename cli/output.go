package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
	"github.com/katalvlaran/lvlinalg/textio"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Engine failure (singular matrix, dimension mismatch, ...)
	ExitCommandError = 2 // Usage or parse error (bad literal, unknown flag, missing session entry)
)

// Error codes reported in the error line and the JSON error object.
const (
	ErrCodeGeneric           = "E001" // Generic/unknown error
	ErrCodeSyntax            = "E002" // Malformed number
	ErrCodeUnknownMatrix     = "E003" // @name not in the session
	ErrCodeSession           = "E004" // Session file unreadable or invalid
	ErrCodeUsage             = "E005" // Wrong operand count, bad flag value
	ErrCodeInvalidDimensions = "E101" // Shape outside [1,5]
	ErrCodeOutOfRange        = "E102" // Row/column index outside the matrix
	ErrCodeDimensionMismatch = "E103" // Incompatible operand shapes
	ErrCodeNonSquare         = "E104" // Square matrix required
	ErrCodeSingular          = "E105" // No inverse exists
	ErrCodeDivisionByZero    = "E106" // Zero divisor
	ErrCodeNotDiagonalizable = "E107" // Fewer than n independent eigenvectors
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)

	reported bool // already written through an OutputFormatter
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// errorCode maps an error chain to its reported code.
func errorCode(err error) string {
	switch {
	case errors.Is(err, textio.ErrUnknownMatrix):
		return ErrCodeUnknownMatrix
	case errors.Is(err, textio.ErrInvalidMode), errors.Is(err, errSession):
		return ErrCodeSession
	case errors.Is(err, scalar.ErrSyntax), errors.Is(err, textio.ErrEmptyVector):
		return ErrCodeSyntax
	case errors.Is(err, scalar.ErrDivisionByZero):
		return ErrCodeDivisionByZero
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return ErrCodeInvalidDimensions
	case errors.Is(err, matrix.ErrOutOfRange):
		return ErrCodeOutOfRange
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return ErrCodeDimensionMismatch
	case errors.Is(err, matrix.ErrNonSquare):
		return ErrCodeNonSquare
	case errors.Is(err, matrix.ErrSingular):
		return ErrCodeSingular
	case errors.Is(err, matrix.ErrNotDiagonalizable):
		return ErrCodeNotDiagonalizable
	case errors.Is(err, errUsage):
		return ErrCodeUsage
	default:
		return ErrCodeGeneric
	}
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for text-mode errors (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E105", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	// Human-readable text output
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs an error in the configured format.
// JSON errors go to Writer so the response stays one parseable document;
// text errors go to the error writer.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	w := f.GetErrWriter()
	fmt.Fprintf(w, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(w, "Details: %v\n", details)
	}
	return nil
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// reportError writes err through the formatter and returns it as an
// ExitError. Errors that are not ExitErrors yet become ExitFailure under
// message.
func reportError(f *OutputFormatter, message string, err error) error {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		exitErr = WrapExitError(ExitFailure, message, err)
	}
	_ = f.Error(errorCode(err), exitErr.Error(), nil)
	exitErr.reported = true
	return exitErr
}
