//go:build unix

package input_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/input"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}

	return path
}

func TestResolve(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeFile(t, dir, "a", "hello")

	sources, err := input.Resolve(first, config.Stdin, strings.NewReader("world"))
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	defer sources.Close()

	if sources[0].IsStdin() || !sources[1].IsStdin() {
		t.Fatalf("stdin assigned to the wrong source")
	}

	if got := sources[1].Display(); got != "stdin" {
		t.Errorf("Display() = %q, want stdin", got)
	}

	for idx, want := range []string{"hello", "world"} {
		data, err := io.ReadAll(sources[idx].Reader)
		if err != nil {
			t.Fatalf("reading source %d: %v", idx, err)
		}

		if string(data) != want {
			t.Errorf("source %d = %q, want %q", idx, data, want)
		}
	}

	if err := sources.Close(); err != nil {
		t.Errorf("Close error: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "file", "x")
	other := writeFile(t, dir, "other", "y")

	link := filepath.Join(dir, "link")
	if err := os.Link(file, link); err != nil {
		t.Fatalf("hard link: %v", err)
	}

	symlink := filepath.Join(dir, "symlink")
	if err := os.Symlink(file, symlink); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	missing := filepath.Join(dir, "missing")

	tests := []struct {
		name          string
		first, second string
		want          string
	}{
		{"missing first", missing, other, "first input file not found: " + missing},
		{"missing second", file, missing, "second input file not found: " + missing},
		{"directory", dir, file, "first input file is not a readable file: " + dir},
		{"both stdin", config.Stdin, config.Stdin, "cannot read multiple files from stdin"},
		{"same path", file, file, "cannot use the same file for both inputs"},
		{"hard link", file, link, "cannot use the same file for both inputs"},
		{"symlink", symlink, file, "cannot use the same file for both inputs"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := input.Validate(tc.first, tc.second)
			if err == nil {
				t.Fatalf("Validate(%q, %q) = nil, want error", tc.first, tc.second)
			}

			if !errors.Is(err, input.ErrUsage) {
				t.Errorf("error %v does not match ErrUsage", err)
			}

			if err.Error() != tc.want {
				t.Errorf("error = %q, want %q", err, tc.want)
			}
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "file", "x")

	fifo := filepath.Join(dir, "fifo")
	if err := unix.Mkfifo(fifo, 0o600); err != nil {
		t.Fatalf("mkfifo: %v", err)
	}

	tests := []struct {
		name          string
		first, second string
	}{
		{"file and stdin", file, config.Stdin},
		{"stdin and file", config.Stdin, file},
		{"named pipe", fifo, file},
		{"character device", os.DevNull, file},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if err := input.Validate(tc.first, tc.second); err != nil {
				t.Errorf("Validate(%q, %q) error: %v", tc.first, tc.second, err)
			}
		})
	}
}

func TestValidateUnreadable(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("root can read files without permission bits")
	}

	dir := t.TempDir()
	file := writeFile(t, dir, "locked", "x")
	other := writeFile(t, dir, "other", "y")

	if err := os.Chmod(file, 0o200); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	err := input.Validate(other, file)
	if err == nil || err.Error() != "cannot read second input file: "+file {
		t.Fatalf("error = %v, want permission failure", err)
	}
}

func TestOpenSkipsValidation(t *testing.T) {
	t.Parallel()

	file := writeFile(t, t.TempDir(), "file", "x")

	sources, err := input.Open(file, file, strings.NewReader(""))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}

	if err := sources.Close(); err != nil {
		t.Errorf("Close error: %v", err)
	}

	if _, err := input.Open(filepath.Join(t.TempDir(), "missing"), config.Stdin, nil); err == nil {
		t.Error("Open of a missing file succeeded")
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	if got := input.DisplayName(config.Stdin); got != "stdin" {
		t.Errorf("DisplayName(%q) = %q, want stdin", config.Stdin, got)
	}

	if got := input.DisplayName("a.bin"); got != "a.bin" {
		t.Errorf("DisplayName(a.bin) = %q, want a.bin", got)
	}
}
