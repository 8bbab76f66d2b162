// Package signals turns termination signals into context cancellation.
package signals

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Trapped are the signals converted into cancellation.
//
//nolint:gochecknoglobals
var Trapped = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}

// Error is the cancellation cause recorded when a signal arrives.
type Error struct {
	Signal os.Signal
}

// Error returns the message printed on exit.
func (e *Error) Error() string {
	switch e.Signal {
	case syscall.SIGINT:
		return "interrupted"
	case syscall.SIGTERM:
		return "terminated"
	case syscall.SIGHUP:
		return "hangup"
	default:
		return fmt.Sprintf("received signal %v", e.Signal)
	}
}

// ExitCode follows the shell convention of 128 plus the signal number.
func (e *Error) ExitCode() int {
	const base = 128

	if sig, ok := e.Signal.(syscall.Signal); ok {
		return base + int(sig)
	}

	return base
}

// Notify returns a context that is cancelled with an *Error cause when one of sigs
// arrives, or Trapped when sigs is empty. The stop func releases the signal handler.
func Notify(parent context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	if len(sigs) == 0 {
		sigs = Trapped
	}

	ctx, cancel := context.WithCancelCause(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	done := make(chan struct{})

	go func() {
		select {
		case sig := <-ch:
			cancel(&Error{Signal: sig})
		case <-done:
		case <-ctx.Done():
		}
	}()

	var once sync.Once

	return ctx, func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
			cancel(context.Canceled)
		})
	}
}
