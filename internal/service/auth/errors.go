package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token format is invalid or the
	// signature does not match the platform secret.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrAuthenticationFailed is the deliberately generic login failure:
	// it does not distinguish an unknown identifier from a wrong password.
	ErrAuthenticationFailed = errors.New("authentication failed")
)
