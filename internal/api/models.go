package api

import (
	"github.com/google/uuid"

	"github.com/josanism/community-api/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the registration endpoint. Field
// names follow the web client's camelCase convention.
type SignupRequest struct {
	Email        string `json:"email"        validate:"required"`
	Username     string `json:"userId"       validate:"required"`
	Password     string `json:"password"     validate:"required"`
	ProfileImage string `json:"profileImage" validate:"required"`
}

// SignupResponse defines the successful response for the registration
// endpoint. The account exists but stays unusable until the email address
// is verified.
type SignupResponse struct {
	UserID  uuid.UUID `json:"user_id"`
	Message string    `json:"message"`
}

// LoginRequest defines the payload for the login endpoint. The identifier
// is either a full email address or a bare username resolved against the
// reserved email domain.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

// UserResponse is the authenticated-user payload returned by login and
// the current-user endpoint.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// LoginResponse defines the successful response for the login endpoint.
// The session tokens travel only in the HTTP-only cookies.
type LoginResponse struct {
	User UserResponse `json:"user"`
}

// CallbackRequest carries the token pair extracted by the web client from
// the email-verification redirect fragment.
type CallbackRequest struct {
	AccessToken  string `json:"access_token"  validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// MeResponse defines the response for the current-user endpoint.
type MeResponse struct {
	User    UserResponse    `json:"user"`
	Profile *domain.Profile `json:"profile"`
}
