package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/josanism/community-api/internal/api/shared"
	"github.com/josanism/community-api/internal/service/auth"
)

// SessionMiddleware authenticates requests carrying the session cookie.
// The access token is verified locally against the platform JWT secret;
// the identity service is not called per request.
type SessionMiddleware struct {
	verifier auth.TokenVerifier
}

// NewSessionMiddleware creates a SessionMiddleware with the given verifier.
func NewSessionMiddleware(verifier auth.TokenVerifier) *SessionMiddleware {
	return &SessionMiddleware{verifier: verifier}
}

// Authenticate validates the access-token cookie and adds the user's id
// and email to the request context.
func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.AccessTokenCookie)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := m.verifier.VerifyAccessToken(r.Context(), cookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Session expired")
			default:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid session")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		ctx = context.WithValue(ctx, shared.UserEmailContextKey, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID extracts the authenticated user's id from the request context.
func UserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// UserEmail extracts the authenticated user's email from the request context.
func UserEmail(r *http.Request) (string, bool) {
	email, ok := r.Context().Value(shared.UserEmailContextKey).(string)
	return email, ok
}
