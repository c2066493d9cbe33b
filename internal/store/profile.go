package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/josanism/community-api/internal/domain"
)

// ProfileStore defines the interface for profile persistence.
type ProfileStore interface {
	// Create inserts a new profile.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, profile *domain.Profile) error

	// GetByID retrieves a profile by account id.
	// Returns ErrProfileNotFound if no profile exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)

	// GetByUsername retrieves a profile by username.
	// Returns ErrProfileNotFound if no profile exists.
	GetByUsername(ctx context.Context, username string) (*domain.Profile, error)
}
