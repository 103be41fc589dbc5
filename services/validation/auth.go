package validation

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks the basic local@domain.tld shape.
func ValidateEmail(email string) error {
	if email == "" {
		return fieldError("email", "is required")
	}
	if !emailPattern.MatchString(email) {
		return fieldError("email", "is not a valid email address")
	}
	return nil
}

// ValidateCredentials is the login form check.
func ValidateCredentials(email, password string) error {
	if email == "" {
		return fieldError("email", "is required")
	}
	if password == "" {
		return fieldError("password", "is required")
	}
	return ValidateEmail(email)
}

// ValidateRegistration is the register form check. confirm is compared with
// password only when it is non-empty.
func ValidateRegistration(name, email, password, confirm string) error {
	if strings.TrimSpace(name) == "" {
		return fieldError("name", "is required")
	}
	if err := ValidateCredentials(email, password); err != nil {
		return err
	}
	if confirm != "" && confirm != password {
		return fieldError("confirmPassword", "does not match password")
	}
	return nil
}
