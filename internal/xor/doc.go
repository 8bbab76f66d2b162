// Package xor combines two byte streams with exclusive-or.
// The shorter stream is treated as zero-padded to the length of the longer one.
// Results are accumulated in memory, since trailing zeros can only be stripped
// once the end of both streams has been seen.
package xor
