package xor

import (
	"sync"
)

// ChunkSize is the number of bytes read from each source per iteration.
const ChunkSize = 64 * 1024

// chunkPool provides reusable chunk buffers for the combiner.
//
//nolint:gochecknoglobals
var chunkPool = sync.Pool{
	New: func() any {
		buf := make([]byte, ChunkSize)

		return &buf
	},
}

func getChunk() *[]byte { return chunkPool.Get().(*[]byte) } //nolint:forcetypeassert

func putChunk(buf *[]byte) { chunkPool.Put(buf) }
