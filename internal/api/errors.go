package api

import (
	"errors"
	"net/http"

	"github.com/josanism/community-api/internal/api/shared"
	"github.com/josanism/community-api/internal/domain"
	"github.com/josanism/community-api/internal/platform/supabase"
	"github.com/josanism/community-api/internal/service/auth"
	"github.com/josanism/community-api/internal/service/signup"
	"github.com/josanism/community-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Client input errors
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrInvalidImageEncoding),
		errors.Is(err, domain.ErrImageTooLarge),
		errors.Is(err, domain.ErrImageContentMismatch),
		errors.Is(err, domain.ErrEmptyUsername):
		return http.StatusBadRequest

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, supabase.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrProfileNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, signup.ErrUsernameTaken),
		errors.Is(err, signup.ErrEmailTaken):
		return http.StatusConflict

	// Content negotiation errors
	case errors.Is(err, shared.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType

	// Upstream platform failures
	case errors.Is(err, signup.ErrIdentityService),
		errors.Is(err, signup.ErrImageUpload):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// given error. Upstream and store error details stay in the logs.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Client input errors keep their sentinel text; it names the broken
	// rule without exposing any internals.
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrInvalidImageEncoding),
		errors.Is(err, domain.ErrImageTooLarge),
		errors.Is(err, domain.ErrImageContentMismatch),
		errors.Is(err, domain.ErrEmptyUsername):
		return err.Error()

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid session"

	// The cause of a rejected login is deliberately not distinguished.
	case errors.Is(err, supabase.ErrInvalidCredentials):
		return "Invalid login credentials"

	case errors.Is(err, store.ErrProfileNotFound):
		return "Profile not found"

	case errors.Is(err, signup.ErrUsernameTaken):
		return "Username is already taken"

	case errors.Is(err, signup.ErrEmailTaken):
		return "Email is already registered"

	case errors.Is(err, shared.ErrUnsupportedMediaType):
		return "Content type must be application/json"

	case errors.Is(err, signup.ErrIdentityService):
		return "Account service is unavailable"

	case errors.Is(err, signup.ErrImageUpload):
		return "Profile image upload failed"

	case errors.Is(err, signup.ErrUsernameCheck),
		errors.Is(err, signup.ErrProfileCreation):
		return "Registration failed"

	default:
		return "An unexpected error occurred"
	}
}
