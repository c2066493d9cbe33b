package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/josanism/community-api/internal/config"
	"github.com/josanism/community-api/internal/platform/supabase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCookie(t *testing.T, cookies []*http.Cookie, name string) *http.Cookie {
	t.Helper()
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestCookieManagerIssue(t *testing.T) {
	manager := NewCookieManager(config.AuthConfig{RefreshTokenLifetimeDays: 30}, false)

	recorder := httptest.NewRecorder()
	manager.Issue(recorder, &supabase.Session{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    3600,
	})

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 2)

	access := findCookie(t, cookies, AccessTokenCookie)
	assert.Equal(t, "access-token", access.Value)
	assert.Equal(t, 3600, access.MaxAge)
	assert.True(t, access.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, access.SameSite)
	assert.Equal(t, "/", access.Path)
	assert.False(t, access.Secure)

	refresh := findCookie(t, cookies, RefreshTokenCookie)
	assert.Equal(t, "refresh-token", refresh.Value)
	assert.Equal(t, 30*24*60*60, refresh.MaxAge)
	assert.True(t, refresh.HttpOnly)
}

func TestCookieManagerSecureInProduction(t *testing.T) {
	manager := NewCookieManager(config.AuthConfig{RefreshTokenLifetimeDays: 30}, true)

	recorder := httptest.NewRecorder()
	manager.Issue(recorder, &supabase.Session{AccessToken: "a", RefreshToken: "r", ExpiresIn: 60})

	for _, c := range recorder.Result().Cookies() {
		assert.True(t, c.Secure, "cookie %s should be Secure in production", c.Name)
	}
}

func TestCookieManagerClear(t *testing.T) {
	manager := NewCookieManager(config.AuthConfig{RefreshTokenLifetimeDays: 30}, false)

	recorder := httptest.NewRecorder()
	manager.Clear(recorder)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		assert.Empty(t, c.Value)
		assert.Negative(t, c.MaxAge)
	}
}

func TestLoginEmail(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		want       string
	}{
		{name: "bare identifier", identifier: "alice", want: "alice@josanism.com"},
		{name: "full email passes through", identifier: "alice@example.com", want: "alice@example.com"},
		{name: "reserved-domain email passes through", identifier: "alice@josanism.com", want: "alice@josanism.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LoginEmail(tt.identifier, "josanism.com"))
		})
	}
}
