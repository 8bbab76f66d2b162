// Command goxor XORs two files (or a file and standard input) and writes the result to standard output.
package main

import (
	"context"
	"os"

	"github.com/idelchi/goxor/internal/commands"
	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/signals"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "unknown - unofficial & generated by unknown" //nolint:gochecknoglobals

func main() {
	ctx, stop := signals.Notify(context.Background())

	cfg := &config.Config{}
	code := commands.Execute(ctx, commands.NewRootCommand(cfg, version))

	stop()
	os.Exit(code)
}
