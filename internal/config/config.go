// Package config holds the runtime configuration shared by every stage of the XOR pipeline.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Stdin is the positional argument that selects standard input instead of a file.
const Stdin = "-"

// Config is built once from the parsed command line and passed by pointer to the pipeline.
type Config struct {
	// Progress enables diagnostics on the error stream.
	Progress bool

	// PreserveZeros keeps trailing zero bytes of the result.
	PreserveZeros bool `mapstructure:"preserve-zeros"`

	// Inputs are the two positional arguments, each a path or Stdin.
	Inputs []string `label:"inputs" validate:"len=2,single_stdin,dive,required"`
}

// First returns the first input argument.
func (c *Config) First() string { return c.Inputs[0] }

// Second returns the second input argument.
func (c *Config) Second() string { return c.Inputs[1] }

// Validate validates the configuration against the struct tags.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := registerSingleStdin(validate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return describe(verrs)
		}

		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}

// describe turns validator failures into the one-line messages printed to the user.
func describe(verrs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(verrs))

	for _, fe := range verrs {
		switch fe.Tag() {
		case "single_stdin":
			return errors.New("cannot read multiple files from stdin")
		case "len":
			msgs = append(msgs, "requires exactly two file arguments")
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s must not be empty", fe.Namespace()))
		default:
			msgs = append(msgs, fe.Error())
		}
	}

	return errors.New(strings.Join(msgs, "; "))
}
