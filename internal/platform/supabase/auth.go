package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// User is the subset of the identity service's account representation the
// application reads.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is the credential pair issued by the identity service on a
// successful password grant.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int `json:"expires_in"`
}

// signInResponse is the password-grant response: session fields at the top
// level plus the user object.
type signInResponse struct {
	Session
	User *User `json:"user"`
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp creates an account with the identity service. The verification
// email links back to redirectTo. Returns ErrEmailExists when the service
// reports the address as already registered.
func (c *Client) SignUp(ctx context.Context, email, password, redirectTo string) (*User, error) {
	endpoint := c.baseURL + "/auth/v1/signup"
	if redirectTo != "" {
		endpoint += "?redirect_to=" + url.QueryEscape(redirectTo)
	}

	var user User
	err := c.doJSON(ctx, "auth", "signup", http.MethodPost, endpoint,
		c.anonKey, c.anonKey,
		signUpRequest{Email: email, Password: password},
		&user,
	)
	if err != nil {
		var apiErr *APIError
		// 422 is the service's signal for an already-registered address.
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnprocessableEntity {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	if user.ID == uuid.Nil {
		return nil, fmt.Errorf("auth signup returned no user")
	}
	return &user, nil
}

// SignInWithPassword performs a password grant and returns the session and
// user. Any rejection is reported as ErrInvalidCredentials without
// distinguishing unknown email from wrong password.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, *User, error) {
	endpoint := c.baseURL + "/auth/v1/token?grant_type=password"

	var resp signInResponse
	err := c.doJSON(ctx, "auth", "token", http.MethodPost, endpoint,
		c.anonKey, c.anonKey,
		signUpRequest{Email: email, Password: password},
		&resp,
	)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) &&
			(apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnauthorized) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if resp.AccessToken == "" || resp.User == nil {
		return nil, nil, ErrInvalidCredentials
	}
	return &resp.Session, resp.User, nil
}

// SignOut revokes the session belonging to the given access token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	endpoint := c.baseURL + "/auth/v1/logout"
	return c.doJSON(ctx, "auth", "logout", http.MethodPost, endpoint,
		c.anonKey, accessToken, nil, nil)
}

// AdminDeleteUser removes an account with service-role authority. Used by
// signup compensation to undo a created account.
func (c *Client) AdminDeleteUser(ctx context.Context, id uuid.UUID) error {
	endpoint := c.baseURL + "/auth/v1/admin/users/" + id.String()
	return c.doJSON(ctx, "auth", "admin delete user", http.MethodDelete, endpoint,
		c.serviceRoleKey, c.serviceRoleKey, nil, nil)
}
