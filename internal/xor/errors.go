package xor

import "io"

// ErrShortWrite is returned when the output accepted fewer bytes than requested.
var ErrShortWrite = io.ErrShortWrite
