package auth

import (
	"regexp"
	"strings"

	"github.com/Ritik8097/EmployeeTask/internal/apperr"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var (
	ErrInvalidEmail    = apperr.Validation("invalid email format")
	ErrInvalidPassword = apperr.Validation("password must be at least 6 characters long")
	ErrInvalidName     = apperr.Validation("name must be between 1 and 100 characters")
)

// ValidateEmail checks email format.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}
	if len(email) > 254 {
		return ErrInvalidEmail
	}
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword checks password requirements.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return ErrInvalidPassword
	}
	if len(password) > 128 {
		return ErrInvalidPassword
	}
	return nil
}

// ValidateName checks the user display name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) == 0 || len(name) > 100 {
		return ErrInvalidName
	}
	return nil
}

// SanitizeString strips control characters from user-supplied text.
func SanitizeString(s string) string {
	s = strings.TrimSpace(s)
	var builder strings.Builder
	for _, r := range s {
		if r >= 32 && r != 127 {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
