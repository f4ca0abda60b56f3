// Package auth checks demo logins against the static DemoUsers table.
//
// Nothing here is real authentication: credentials are plaintext constants
// and a mismatch deliberately reveals the expected demo pair.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"training-portal/internal/models"
)

var (
	ErrTermsNotAccepted = errors.New("terms not accepted")
	ErrUnknownRole      = errors.New("unknown role")
)

// CredentialError is returned when the typed pair doesn't match the demo
// user of the selected role. Its message carries the demo credentials.
type CredentialError struct {
	Role models.Role
	Demo models.User
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("invalid credentials for %s", e.Role)
}

// Message turns an Authenticate error into the text shown under the form.
func Message(err error) string {
	var credErr *CredentialError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTermsNotAccepted):
		return "Please agree to the Terms & Conditions before logging in."
	case errors.Is(err, ErrUnknownRole):
		return "Unknown role. Please refresh the page."
	case errors.As(err, &credErr):
		return fmt.Sprintf("Invalid credentials for %s. Try the demo:\n%s / %s",
			credErr.Role, credErr.Demo.Email, credErr.Demo.Password)
	}
	return "Login failed."
}

// Attempt is one submission of the login form.
type Attempt struct {
	Email         string
	Password      string
	Role          models.Role
	TermsAccepted bool
}

// Authenticate returns the demo user for a valid attempt. The checks run in
// a fixed order: terms, role, credentials.
func Authenticate(a Attempt) (models.User, error) {
	if !a.TermsAccepted {
		return models.User{}, ErrTermsNotAccepted
	}

	demo, ok := models.DemoUsers[a.Role]
	if !ok {
		return models.User{}, ErrUnknownRole
	}

	if strings.TrimSpace(a.Email) != demo.Email || a.Password != demo.Password {
		return models.User{}, &CredentialError{Role: a.Role, Demo: demo}
	}
	return demo, nil
}
