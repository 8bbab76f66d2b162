package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// registerSingleStdin adds a validator ensuring at most one input reads from standard input.
// It also makes error namespaces use the `label` tag instead of the Go field name.
func registerSingleStdin(validate *validator.Validate) error {
	if err := validate.RegisterValidation("single_stdin", validateSingleStdin); err != nil {
		return fmt.Errorf("registering single_stdin validation: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateSingleStdin fails when the stdin sentinel appears more than once in a string slice.
func validateSingleStdin(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return true
	}

	count := 0

	for i := range field.Len() {
		if elem := field.Index(i); elem.Kind() == reflect.String && elem.String() == Stdin {
			count++
		}
	}

	return count <= 1
}
