// SPDX-License-Identifier: MIT
// Package: qubogrid/config
//
// validate.go — struct-tag validation of CLI-layer enums.

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report YAML keys rather than Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Validate checks the enum fields of every section.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError reports the first failing field by its YAML path.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	e := verrs[0]
	path := strings.TrimPrefix(e.Namespace(), "Config.")
	switch e.Tag() {
	case "oneof":
		return fmt.Errorf("%w: %s: must be one of [%s], got %q", ErrInvalidConfig, path, e.Param(), e.Value())
	default:
		return fmt.Errorf("%w: %s: failed %q", ErrInvalidConfig, path, e.Tag())
	}
}
