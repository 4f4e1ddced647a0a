package domain

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// fieldValidate is the shared validator for eatery field value types.
// Custom rules are registered once in init() and looked up by tag name.
var fieldValidate *validator.Validate

var (
	// displayNamePattern accepts letters, digits and spaces, but not a leading space.
	displayNamePattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)

	// leadingNonSpacePattern accepts anything whose first rune is not whitespace.
	leadingNonSpacePattern = regexp.MustCompile(`^\S`)
)

func init() {
	fieldValidate = validator.New(validator.WithRequiredStructEnabled())

	_ = fieldValidate.RegisterValidation("displayname", func(fl validator.FieldLevel) bool {
		return displayNamePattern.MatchString(fl.Field().String())
	})
	_ = fieldValidate.RegisterValidation("leadingnonspace", func(fl validator.FieldLevel) bool {
		return leadingNonSpacePattern.MatchString(fl.Field().String())
	})
}

// validateField runs rules against value and, on failure, returns an error
// wrapping ErrValidation with the human-readable constraint message.
func validateField(value, rules, constraint string) error {
	if err := fieldValidate.Var(value, rules); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, constraint)
	}
	return nil
}
