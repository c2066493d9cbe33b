package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a user's public profile record. The id is the account
// id issued by the identity service; the profile must never exist without
// the corresponding account.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url"`
	Name      *string   `json:"name"`
	Bio       *string   `json:"bio"`
	BannerURL *string   `json:"banner_url"`
	CreatedAt time.Time `json:"created_at"`
}

// NewProfile creates the minimal profile written at registration time.
// The optional fields (name, bio, banner) are filled in later by the user.
func NewProfile(id uuid.UUID, username, avatarURL string) (*Profile, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}
	return &Profile{
		ID:        id,
		Username:  username,
		AvatarURL: avatarURL,
		CreatedAt: time.Now().UTC(),
	}, nil
}
