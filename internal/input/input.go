// Package input resolves the two positional arguments into readable byte streams.
//
// A path is accepted when it exists, is a regular file, a named pipe or a character
// device, and is readable by the current user. The literal "-" selects standard input,
// which may be claimed by at most one argument. Two paths that refer to the same file
// (same device and inode) are rejected.
package input

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/idelchi/goxor/internal/config"
)

// Source is one resolved input stream.
type Source struct {
	// Name is the argument as given on the command line.
	Name string

	// Reader yields the stream's bytes.
	Reader io.Reader

	// closer is nil for standard input.
	closer io.Closer
}

// IsStdin reports whether the source reads from standard input.
func (s Source) IsStdin() bool { return s.Name == config.Stdin }

// Display returns the name used in diagnostics.
func (s Source) Display() string { return DisplayName(s.Name) }

// DisplayName returns the diagnostic name for a command-line argument.
func DisplayName(arg string) string {
	if arg == config.Stdin {
		return "stdin"
	}

	return arg
}

// Sources holds both resolved inputs in argument order.
type Sources [2]Source

// Close closes every file-backed source. Standard input is left open.
func (s Sources) Close() error {
	var first error

	for _, src := range s {
		if src.closer == nil {
			continue
		}

		if err := src.closer.Close(); err != nil && first == nil {
			first = fmt.Errorf("closing %q: %w", src.Name, err)
		}
	}

	return first
}

var descriptions = [2]string{"first input file", "second input file"} //nolint:gochecknoglobals

// Validate checks both arguments without opening them.
// Every returned error matches ErrUsage.
func Validate(first, second string) error {
	for idx, arg := range [2]string{first, second} {
		if err := checkAccess(arg, descriptions[idx]); err != nil {
			return err
		}
	}

	if first == config.Stdin && second == config.Stdin {
		return &usageError{msg: "cannot read multiple files from stdin"}
	}

	same, err := sameFile(first, second)
	if err != nil {
		return err
	}

	if same {
		return &usageError{msg: "cannot use the same file for both inputs"}
	}

	return nil
}

// Resolve validates both arguments and opens them for reading.
// stdin is used for the argument equal to config.Stdin.
func Resolve(first, second string, stdin io.Reader) (Sources, error) {
	if err := Validate(first, second); err != nil {
		return Sources{}, err
	}

	return Open(first, second, stdin)
}

// Open opens both arguments without validating them; use it after Validate.
// Opening a named pipe blocks until a writer connects.
func Open(first, second string, stdin io.Reader) (Sources, error) {
	var sources Sources

	for idx, arg := range [2]string{first, second} {
		src, err := open(arg, stdin)
		if err != nil {
			_ = sources.Close()

			return Sources{}, err
		}

		sources[idx] = src
	}

	return sources, nil
}

func open(arg string, stdin io.Reader) (Source, error) {
	if arg == config.Stdin {
		return Source{Name: arg, Reader: stdin}, nil
	}

	file, err := os.Open(filepath.Clean(arg))
	if err != nil {
		return Source{}, fmt.Errorf("opening %q: %w", arg, err)
	}

	return Source{Name: arg, Reader: file, closer: file}, nil
}

// checkAccess applies the existence, file type and permission rules to one argument.
func checkAccess(arg, description string) error {
	if arg == config.Stdin {
		return nil
	}

	info, err := os.Stat(arg)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("%s not found: %s", description, arg)}
	}

	if !allowedMode(info.Mode()) {
		return &usageError{msg: fmt.Sprintf("%s is not a readable file: %s", description, arg)}
	}

	if !readable(arg) {
		return &usageError{msg: fmt.Sprintf("cannot read %s: %s", description, arg)}
	}

	return nil
}

// allowedMode accepts regular files, named pipes and character devices.
func allowedMode(mode fs.FileMode) bool {
	switch {
	case mode.IsRegular():
		return true
	case mode&fs.ModeNamedPipe != 0:
		return true
	case mode&fs.ModeCharDevice != 0:
		return true
	default:
		return false
	}
}

// sameFile reports whether two file arguments share device and inode.
// It is false whenever either side is standard input.
func sameFile(first, second string) (bool, error) {
	if first == config.Stdin || second == config.Stdin {
		return false, nil
	}

	info1, err := os.Stat(first)
	if err != nil {
		return false, &usageError{msg: fmt.Sprintf("%s not found: %s", descriptions[0], first)}
	}

	info2, err := os.Stat(second)
	if err != nil {
		return false, &usageError{msg: fmt.Sprintf("%s not found: %s", descriptions[1], second)}
	}

	return os.SameFile(info1, info2), nil
}
