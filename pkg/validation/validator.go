package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// ValidateStruct runs go-playground struct-tag validation and wraps any
// failure with the struct name for readable errors.
func ValidateStruct(name string, s any) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
