package domain

import "errors"

// Common validation errors. These are client-correctable input problems
// and map to 400-class responses at the API boundary.
var (
	ErrMissingFields        = errors.New("required fields are missing")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrPasswordTooShort     = errors.New("password must be at least 8 characters long")
	ErrInvalidImageEncoding = errors.New("profile image must be a base64 data URI")
	ErrImageTooLarge        = errors.New("profile image exceeds the 5 MiB limit")
	ErrImageContentMismatch = errors.New("profile image bytes do not look like the declared image type")
	ErrEmptyUsername        = errors.New("username cannot be empty")
)
