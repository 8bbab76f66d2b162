//go:build unix

package input

import "golang.org/x/sys/unix"

// readable asks the kernel whether the real user may read path.
func readable(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}
