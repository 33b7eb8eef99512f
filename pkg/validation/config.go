package validation

import (
	"errors"
	"fmt"
)

// ConfigValidator provides a fluent interface for validating configuration
// values. It collects all validation errors rather than failing on the
// first one.
type ConfigValidator struct {
	errors []error
	name   string // config struct name for error messages
}

// NewConfigValidator creates a new config validator with the given config name.
func NewConfigValidator(configName string) *ConfigValidator {
	return &ConfigValidator{
		name:   configName,
		errors: make([]error, 0),
	}
}

// Required validates that a string field is not empty.
func (cv *ConfigValidator) Required(field, value string) *ConfigValidator {
	if value == "" {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: required field is empty", cv.name, field))
	}
	return cv
}

// MinInt validates that an int field is at least the minimum value.
func (cv *ConfigValidator) MinInt(field string, value, min int) *ConfigValidator {
	if value < min {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: value %d is below minimum %d", cv.name, field, value, min))
	}
	return cv
}

// MaxInt validates that an int field does not exceed the maximum value.
func (cv *ConfigValidator) MaxInt(field string, value, max int) *ConfigValidator {
	if value > max {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: value %d exceeds maximum %d", cv.name, field, value, max))
	}
	return cv
}

// PositiveFloat validates that a float field is strictly positive.
func (cv *ConfigValidator) PositiveFloat(field string, value float64) *ConfigValidator {
	if value <= 0 {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: value %v must be positive", cv.name, field, value))
	}
	return cv
}

// OpenUnitInterval validates that a float field lies strictly between 0 and 1.
func (cv *ConfigValidator) OpenUnitInterval(field string, value float64) *ConfigValidator {
	if value <= 0 || value >= 1 {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: value %v must be in (0, 1)", cv.name, field, value))
	}
	return cv
}

// When applies the given check only if the condition holds.
func (cv *ConfigValidator) When(condition bool, check func(*ConfigValidator)) *ConfigValidator {
	if condition {
		check(cv)
	}
	return cv
}

// Validate returns all accumulated validation errors joined together, or
// nil when every check passed.
func (cv *ConfigValidator) Validate() error {
	if len(cv.errors) == 0 {
		return nil
	}
	return errors.Join(cv.errors...)
}
