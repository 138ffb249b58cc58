// Package validation checks registration submissions without touching storage.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"signup/internal/models"

	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 8

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// Validator validates registration forms. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the registration-specific rules registered.
func New() *Validator {
	v := validator.New()
	// RegisterValidation only fails for empty or reserved tag names.
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return ValidUsername(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return StrongPassword(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Normalize returns the form as it should be validated and stored.
// Only the username is trimmed.
func Normalize(form models.RegistrationForm) models.RegistrationForm {
	form.Username = strings.TrimSpace(form.Username)
	return form
}

// Validate reports the first failing rule, in order: missing field, username,
// email, password. It returns nil when the form is acceptable.
func (v *Validator) Validate(form models.RegistrationForm) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate registration form: %w", err)
	}

	failed := make(map[string]bool, len(validationErrors))
	for _, e := range validationErrors {
		if e.Tag() == "required" {
			return models.ErrMissingField
		}
		failed[e.StructField()] = true
	}

	switch {
	case failed["Username"]:
		return models.ErrInvalidUsername
	case failed["Email"]:
		return models.ErrInvalidEmail
	case failed["Password"]:
		return models.ErrWeakPassword
	}
	return fmt.Errorf("validate registration form: %w", err)
}

// ValidUsername reports whether username is 3-20 letters, digits or underscores.
func ValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// StrongPassword reports whether password has at least 8 bytes, an ASCII
// uppercase letter and a digit.
func StrongPassword(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}
	var hasUpper, hasDigit bool
	for i := 0; i < len(password); i++ {
		c := password[i]
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		}
	}
	return hasUpper && hasDigit
}
