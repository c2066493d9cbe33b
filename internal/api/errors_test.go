package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josanism/community-api/internal/api/shared"
	"github.com/josanism/community-api/internal/domain"
	"github.com/josanism/community-api/internal/platform/supabase"
	"github.com/josanism/community-api/internal/service/auth"
	"github.com/josanism/community-api/internal/service/signup"
	"github.com/josanism/community-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing fields", domain.ErrMissingFields, http.StatusBadRequest},
		{"invalid email", domain.ErrInvalidEmail, http.StatusBadRequest},
		{"short password", domain.ErrPasswordTooShort, http.StatusBadRequest},
		{"bad image encoding", domain.ErrInvalidImageEncoding, http.StatusBadRequest},
		{"oversized image", domain.ErrImageTooLarge, http.StatusBadRequest},
		{"mismatched image content", domain.ErrImageContentMismatch, http.StatusBadRequest},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid credentials", supabase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"profile not found", store.ErrProfileNotFound, http.StatusNotFound},
		{"username taken", signup.ErrUsernameTaken, http.StatusConflict},
		{"email taken", signup.ErrEmailTaken, http.StatusConflict},
		{"wrong content type", shared.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{"identity failure", signup.ErrIdentityService, http.StatusBadGateway},
		{"upload failure", signup.ErrImageUpload, http.StatusBadGateway},
		{"insert failure", signup.ErrProfileCreation, http.StatusInternalServerError},
		{"pre-check failure", signup.ErrUsernameCheck, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestMapErrorToStatusCodeUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("%w: dial tcp: connection refused", signup.ErrIdentityService)
	assert.Equal(t, http.StatusBadGateway, MapErrorToStatusCode(wrapped))
}

func TestGetSafeErrorMessageNeverLeaksInternals(t *testing.T) {
	wrapped := fmt.Errorf("%w: POST https://abc.supabase.co/auth/v1/signup: 500", signup.ErrIdentityService)
	msg := GetSafeErrorMessage(wrapped)
	assert.Equal(t, "Account service is unavailable", msg)
	assert.NotContains(t, msg, "supabase")

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(errors.New("pq: syntax error")))
}
