package supabase

import (
	"errors"
	"fmt"
)

// Sentinel errors for upstream conditions the handlers branch on.
var (
	// ErrEmailExists indicates the identity service already has an account
	// for the given email address.
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidCredentials indicates the identity service rejected a
	// password grant. The cause (unknown email vs wrong password) is
	// deliberately not distinguished.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrObjectExists indicates a non-overwriting upload targeted an
	// existing object key.
	ErrObjectExists = errors.New("object already exists")
)

// APIError carries the status and sanitized message of a platform API
// failure. The raw response body is logged, never surfaced.
type APIError struct {
	Status    int
	Service   string // "auth" or "storage"
	Operation string
	Message   string
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s",
		e.Service, e.Operation, e.Status, e.Message)
}
