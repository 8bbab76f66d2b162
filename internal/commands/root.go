package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/goxor/internal/config"
	"github.com/idelchi/goxor/internal/logic"
)

// NewRootCommand creates the goxor command.
// cfg is populated from flags and positional arguments before the pipeline runs.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "goxor [flags] <input1> <input2>",
		Short:   "XOR two files together, padding shorter with zeros",
		Long:    long + "\n\nVersion " + version,
		Example: examples,
		Version: version,
		Args:    exactlyTwoInputs,
		PreRunE: preRun(cfg),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Run(cmd.Context(), cfg, logic.Streams{
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usage(err)
	})

	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	root.Flags().BoolP("progress", "p", false, "Show progress information to stderr")
	root.Flags().BoolP("preserve-zeros", "z", false, "Preserve trailing zero bytes in output (default: strip them)")
	root.Flags().Bool("version", false, "Show the version and exit")

	root.Flags().SortFlags = false

	return root
}

const long = `XOR two files together, padding the shorter one with zeros.

Each input is a path or '-' for standard input; at most one input may be '-'.
The result is written to standard output with trailing zero bytes stripped,
unless --preserve-zeros is given.

XOR properties:
  If result = A ⊕ B, then A = result ⊕ B and B = result ⊕ A.
  Any two of {A, B, A ⊕ B} recover the third.`

const examples = `  goxor plaintext ciphertext > result.bin     # XOR two files
  goxor file1 - < file2 > result              # Use stdin for second file
  cat file2 | goxor file1 - > result          # Use stdin for second file
  goxor -z file1 file2 > result.bin           # Preserve trailing zeros

  goxor fileA fileB > result                  # XOR A and B
  goxor result fileB > recovered_A            # Recover A using result and B
  goxor result fileA > recovered_B            # Recover B using result and A`
