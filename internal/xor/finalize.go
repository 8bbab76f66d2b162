package xor

import (
	"fmt"
	"io"
)

// TrimZeros returns buf without its trailing run of zero bytes.
// Interior zeros are kept; an all-zero buffer becomes empty.
func TrimZeros(buf []byte) []byte {
	end := len(buf)
	for end > 0 && buf[end-1] == 0 {
		end--
	}

	return buf[:end]
}

// Finalize returns the bytes to emit for the combined buffer.
func Finalize(buf []byte, preserveZeros bool) []byte {
	if preserveZeros {
		return buf
	}

	return TrimZeros(buf)
}

// Write emits out in a single call. A short write is an error and is not retried.
func Write(w io.Writer, out []byte) error {
	if len(out) == 0 {
		return nil
	}

	n, err := w.Write(out)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if n != len(out) {
		return fmt.Errorf("writing output: wrote %d of %d bytes: %w", n, len(out), ErrShortWrite)
	}

	return nil
}
