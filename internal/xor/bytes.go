package xor

// Bytes appends a ^ b to dst and returns the extended slice.
// The shorter operand is treated as zero-padded, so max(len(a), len(b)) bytes are appended.
func Bytes(dst, a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}

	start := len(dst)
	dst = append(dst, a...)

	for i, v := range b {
		dst[start+i] ^= v
	}

	return dst
}
