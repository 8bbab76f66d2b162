// Package commands provides the command-line interface for the goxor tool.
//
// It handles:
//   - flag parsing and binding into config.Config through cobra and viper
//   - configuration validation
//   - mapping errors to exit codes
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/goxor/internal/config"
)

// preRun returns a PreRunE handler that binds flags and positional args into cfg
// and validates the configuration.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		vip := viper.New()

		if err := vip.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}

		if err := vip.Unmarshal(cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		cfg.Inputs = args

		if err := cfg.Validate(); err != nil {
			return usage(err)
		}

		return nil
	}
}

// exactlyTwoInputs rejects anything but two positional arguments.
func exactlyTwoInputs(_ *cobra.Command, args []string) error {
	const want = 2

	if len(args) != want {
		return usage(errors.New("requires exactly two file arguments"))
	}

	return nil
}
