package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modaber/modaber/internal/model"
)

// Validation errors.
var (
	ErrNilContext        = errors.New("context cannot be nil")
	ErrEmptyString       = errors.New("string parameter cannot be empty")
	ErrInvalidCredential = errors.New("invalid credential record")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateCredential validates a credential record before persisting.
func validateCredential(cred *model.StoredCredential) error {
	if cred == nil {
		return fmt.Errorf("%w: nil", ErrInvalidCredential)
	}
	if strings.TrimSpace(cred.Email) == "" {
		return fmt.Errorf("%w: missing email", ErrInvalidCredential)
	}
	if strings.TrimSpace(cred.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCredential)
	}
	if cred.PasswordHash == "" {
		return fmt.Errorf("%w: missing password hash", ErrInvalidCredential)
	}
	return nil
}
