package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if an email address is syntactically valid.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateName checks the display name bounds (2-60 characters).
func ValidateName(name string) error {
	n := len(strings.TrimSpace(name))
	if n < 2 {
		return fmt.Errorf("name must be at least 2 characters")
	}
	if n > 60 {
		return fmt.Errorf("name must be at most 60 characters")
	}
	return nil
}

// ValidatePassword enforces the strict password policy: at least 8
// characters with an upper-case letter, a lower-case letter and a digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return fmt.Errorf("password must contain upper-case, lower-case and digit characters")
	}
	return nil
}

// ValidateRegistrationRole checks a self-assigned signup role. The empty
// string is allowed and resolves to the default role downstream.
func ValidateRegistrationRole(role string) error {
	if role == "" {
		return nil
	}
	for _, r := range RegistrationRoles() {
		if role == r {
			return nil
		}
	}
	return fmt.Errorf("role must be one of %s", strings.Join(RegistrationRoles(), ", "))
}
