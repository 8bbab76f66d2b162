package xor

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// progressInterval is the number of iterations between progress lines.
const progressInterval = 16

// Logger receives progress lines.
type Logger interface {
	Infof(format string, args ...any)
}

// Stats summarises a Combine call.
type Stats struct {
	// Processed is the number of combined bytes, max(len(a), len(b)).
	Processed int64

	// Chunks is the number of iterations that produced output.
	Chunks int
}

// Combiner reads two streams in lockstep and XORs them chunk by chunk.
type Combiner struct {
	logger    Logger
	chunkSize int
}

// Option configures a Combiner.
type Option func(*Combiner)

// WithChunkSize overrides ChunkSize. Values below 1 are ignored.
func WithChunkSize(size int) Option {
	return func(c *Combiner) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// NewCombiner creates a Combiner reporting progress to logger, which may be nil.
func NewCombiner(logger Logger, opts ...Option) *Combiner {
	combiner := &Combiner{
		logger:    logger,
		chunkSize: ChunkSize,
	}

	for _, opt := range opts {
		opt(combiner)
	}

	return combiner
}

// Combine consumes both readers fully and returns their zero-padded XOR.
// The context is checked before every iteration; on cancellation the partial
// result is dropped and the cancellation cause is returned.
func (c *Combiner) Combine(ctx context.Context, first, second io.Reader) ([]byte, Stats, error) {
	var (
		stats   Stats
		out     []byte
		streams = [2]stream{{reader: first}, {reader: second}}
	)

	chunks, release := c.buffers()
	defer release()

	for {
		if ctx.Err() != nil {
			return nil, stats, context.Cause(ctx)
		}

		var counts [2]int

		for idx := range streams {
			n, err := streams[idx].fill(chunks[idx])
			if err != nil {
				return nil, stats, fmt.Errorf("reading input %d: %w", idx+1, err)
			}

			counts[idx] = n
		}

		if counts[0] == 0 && counts[1] == 0 {
			break
		}

		out = Bytes(out, chunks[0][:counts[0]], chunks[1][:counts[1]])

		stats.Processed += int64(max(counts[0], counts[1]))
		stats.Chunks++

		if stats.Chunks%progressInterval == 0 {
			c.infof("processed %d bytes", stats.Processed)
		}
	}

	return out, stats, nil
}

// buffers returns one chunk per source and a func returning them to the pool.
func (c *Combiner) buffers() ([2][]byte, func()) {
	if c.chunkSize != ChunkSize {
		return [2][]byte{make([]byte, c.chunkSize), make([]byte, c.chunkSize)}, func() {}
	}

	first, second := getChunk(), getChunk()

	return [2][]byte{*first, *second}, func() {
		putChunk(first)
		putChunk(second)
	}
}

func (c *Combiner) infof(format string, args ...any) {
	if c.logger != nil {
		c.logger.Infof(format, args...)
	}
}

// stream tracks end-of-file so an exhausted source is never read again.
type stream struct {
	reader io.Reader
	done   bool
}

// fill reads until buf is full or the source ends.
// Short reads from pipes would otherwise misalign the two sources.
func (s *stream) fill(buf []byte) (int, error) {
	if s.done {
		return 0, nil
	}

	n, err := io.ReadFull(s.reader, buf)

	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true

		return n, nil
	case err != nil:
		return n, err //nolint:wrapcheck // wrapped by the caller with the input index
	}

	return n, nil
}
