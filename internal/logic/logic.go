// Package logic implements the XOR pipeline: resolve, combine, finalize, write.
package logic

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/input"
	"github.com/idelchi/goxor/internal/logging"
	"github.com/idelchi/goxor/internal/xor"
)

// Streams are the standard streams the pipeline reads from and writes to.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run is the main logic of the application.
// Nothing is written to Stdout unless the whole input was combined successfully.
// A cancelled ctx makes Run return its cause at once, even while opening a named
// pipe, reading or writing is blocked; the abandoned pipeline dies with the process.
func Run(ctx context.Context, cfg *config.Config, streams Streams, opts ...xor.Option) error {
	logger := logging.New(streams.Stderr, cfg.Progress)

	if err := input.Validate(cfg.First(), cfg.Second()); err != nil {
		return err //nolint:wrapcheck // usage errors are printed verbatim
	}

	if readsStdin(cfg) && isTerminal(streams.Stdin) {
		logger.Info("waiting for input from stdin...")
	}

	done := make(chan error, 1)

	go func() {
		done <- pipeline(ctx, cfg, streams, logger, opts...)
	}()

	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	case err := <-done:
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}

		return err
	}
}

// pipeline opens both inputs, combines them and writes the finalized result.
func pipeline(ctx context.Context, cfg *config.Config, streams Streams, logger *log.Logger, opts ...xor.Option) error {
	sources, err := open(cfg, streams.Stdin, logger)
	if err != nil {
		return err
	}
	defer sources.Close()

	if isTerminal(streams.Stdout) {
		logger.Warn("output going to terminal (consider redirecting to file)")
	}

	logger.Info("XORing input streams")

	buf, stats, err := xor.NewCombiner(logger, opts...).Combine(ctx, sources[0].Reader, sources[1].Reader)
	if err != nil {
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}

		return fmt.Errorf("combining inputs: %w", err)
	}

	out := xor.Finalize(buf, cfg.PreserveZeros)

	if ctx.Err() != nil {
		return context.Cause(ctx)
	}

	if err := xor.Write(streams.Stdout, out); err != nil {
		return err //nolint:wrapcheck // already carries context
	}

	printStats(logger, stats, len(out), cfg.PreserveZeros)

	return nil
}

// open logs which source each argument maps to and opens both.
// The arguments were validated by Run.
func open(cfg *config.Config, stdin io.Reader, logger *log.Logger) (input.Sources, error) {
	for idx, arg := range cfg.Inputs {
		logger.Infof("reading file%d: %s", idx+1, input.DisplayName(arg))
	}

	sources, err := input.Open(cfg.First(), cfg.Second(), stdin)
	if err != nil {
		return sources, fmt.Errorf("opening inputs: %w", err)
	}

	return sources, nil
}

func readsStdin(cfg *config.Config) bool {
	return cfg.First() == config.Stdin || cfg.Second() == config.Stdin
}

// isTerminal reports whether stream is backed by a terminal file descriptor.
func isTerminal(stream any) bool {
	file, ok := stream.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func printStats(logger *log.Logger, stats xor.Stats, emitted int, preserveZeros bool) {
	zeros := "after stripping trailing zeros"
	if preserveZeros {
		zeros = "preserved"
	}

	logger.Info(
		fmt.Sprintf("XOR complete: %d bytes processed, %d bytes %s", stats.Processed, emitted, zeros),
		"chunks", stats.Chunks,
		"size", humanize.IBytes(uint64(emitted)), //nolint:gosec // emitted is a slice length
	)
}
