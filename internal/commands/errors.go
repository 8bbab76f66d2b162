package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/idelchi/goxor/internal/input"
	"github.com/idelchi/goxor/internal/logging"
	"github.com/idelchi/goxor/internal/signals"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// UsageError marks errors caused by how the program was invoked.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func usage(err error) error {
	return &UsageError{Err: err}
}

// ExitCode maps an error returned by the root command to the process exit code.
func ExitCode(err error) int {
	var (
		sigErr   *signals.Error
		usageErr *UsageError
	)

	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &sigErr):
		return sigErr.ExitCode()
	case errors.As(err, &usageErr), errors.Is(err, input.ErrUsage):
		return ExitUsage
	default:
		return ExitError
	}
}

// Report prints err to w as a single line. Usage errors get a pointer to --help.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}

	fmt.Fprintf(w, "%s: %v\n", logging.Prefix, err)

	if ExitCode(err) == ExitUsage {
		fmt.Fprintf(w, "Try '%s --help' for more information.\n", logging.Prefix)
	}
}

// Execute runs root with ctx, reports any error on its error stream and returns the exit code.
func Execute(ctx context.Context, root *cobra.Command) int {
	err := root.ExecuteContext(ctx)

	Report(root.ErrOrStderr(), err)

	return ExitCode(err)
}
