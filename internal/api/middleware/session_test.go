package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/josanism/community-api/internal/mocks"
	"github.com/josanism/community-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMiddlewareAuthenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		cookie     *http.Cookie
		verifier   *mocks.MockTokenVerifier
		wantStatus int
		wantNext   bool
	}{
		{
			name:   "valid session",
			cookie: &http.Cookie{Name: auth.AccessTokenCookie, Value: "token"},
			verifier: &mocks.MockTokenVerifier{
				Claims: &auth.Claims{UserID: userID, Email: "alice@example.com"},
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing cookie",
			cookie:     nil,
			verifier:   &mocks.MockTokenVerifier{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			cookie:     &http.Cookie{Name: auth.AccessTokenCookie, Value: "token"},
			verifier:   &mocks.MockTokenVerifier{Err: auth.ErrExpiredToken},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			cookie:     &http.Cookie{Name: auth.AccessTokenCookie, Value: "token"},
			verifier:   &mocks.MockTokenVerifier{Err: auth.ErrInvalidToken},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				gotID, ok := UserID(r)
				require.True(t, ok)
				assert.Equal(t, userID, gotID)

				gotEmail, ok := UserEmail(r)
				require.True(t, ok)
				assert.Equal(t, "alice@example.com", gotEmail)
			})

			req := httptest.NewRequest("GET", "/api/auth/me", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			recorder := httptest.NewRecorder()

			NewSessionMiddleware(tt.verifier).Authenticate(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}

func TestUserIDMissingFromContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	_, ok := UserID(req)
	assert.False(t, ok)
}
