package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/josanism/community-api/internal/config"
	"github.com/josanism/community-api/internal/platform/supabase"
)

// Session cookie names. The client stores the platform session as two
// opaque HTTP-only cookies.
const (
	AccessTokenCookie  = "sb-access-token"
	RefreshTokenCookie = "sb-refresh-token"
)

// CookieManager issues and clears the session cookie pair. Cookies are
// HttpOnly, SameSite=Lax, Path=/; the Secure attribute is set only in
// production deployments.
type CookieManager struct {
	refreshLifetime time.Duration
	secure          bool
}

// NewCookieManager creates a CookieManager from startup configuration.
func NewCookieManager(cfg config.AuthConfig, production bool) *CookieManager {
	return &CookieManager{
		refreshLifetime: time.Duration(cfg.RefreshTokenLifetimeDays) * 24 * time.Hour,
		secure:          production,
	}
}

// Issue writes the session cookie pair. The access cookie lives as long as
// the identity service says the token does; the refresh cookie gets the
// fixed configured lifetime.
func (m *CookieManager) Issue(w http.ResponseWriter, session *supabase.Session) {
	http.SetCookie(w, m.cookie(AccessTokenCookie, session.AccessToken, session.ExpiresIn))
	http.SetCookie(w, m.cookie(RefreshTokenCookie, session.RefreshToken, int(m.refreshLifetime.Seconds())))
}

// Clear expires both session cookies.
func (m *CookieManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, m.cookie(AccessTokenCookie, "", -1))
	http.SetCookie(w, m.cookie(RefreshTokenCookie, "", -1))
}

func (m *CookieManager) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   maxAge,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	}
}

// LoginEmail maps a login identifier to the email address submitted to the
// identity service. A bare identifier (no "@") belongs to the reserved
// email namespace, coupling usernames to addresses the site controls.
func LoginEmail(identifier, reservedDomain string) string {
	if strings.Contains(identifier, "@") {
		return identifier
	}
	return identifier + "@" + reservedDomain
}
