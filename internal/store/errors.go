package store

import (
	"errors"
	"fmt"
)

// Common store errors used across store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrProfileNotFound indicates that the requested profile does not exist.
	ErrProfileNotFound = fmt.Errorf("%w: profile", ErrNotFound)

	// ErrUsernameExists indicates that a profile with the given username
	// already exists. The profiles table enforces this with a unique
	// constraint, so it is authoritative even when two registrations race.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)
)
