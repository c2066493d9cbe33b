package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/josanism/community-api/internal/api/middleware"
	"github.com/josanism/community-api/internal/api/shared"
	"github.com/josanism/community-api/internal/platform/supabase"
	"github.com/josanism/community-api/internal/redact"
	"github.com/josanism/community-api/internal/service/auth"
	"github.com/josanism/community-api/internal/store"
)

// SessionService is the subset of the identity API used by login and
// logout.
type SessionService interface {
	SignInWithPassword(ctx context.Context, email, password string) (*supabase.Session, *supabase.User, error)
	SignOut(ctx context.Context, accessToken string) error
}

// AuthHandler handles login, session callback, logout, and the
// current-user lookup.
type AuthHandler struct {
	identity       SessionService
	cookies        *auth.CookieManager
	verifier       auth.TokenVerifier
	profiles       store.ProfileStore
	reservedDomain string
	logger         *slog.Logger
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(
	identity SessionService,
	cookies *auth.CookieManager,
	verifier auth.TokenVerifier,
	profiles store.ProfileStore,
	reservedDomain string,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		identity:       identity,
		cookies:        cookies,
		verifier:       verifier,
		profiles:       profiles,
		reservedDomain: reservedDomain,
		logger:         logger.With("component", "auth_handler"),
	}
}

// Login handles POST /api/auth/login. A bare identifier is resolved
// against the reserved email domain before the password grant.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, shared.ErrUnsupportedMediaType) {
			shared.RespondWithError(w, r,
				http.StatusUnsupportedMediaType, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Identifier and password are required")
		return
	}

	email := auth.LoginEmail(req.Identifier, h.reservedDomain)

	session, user, err := h.identity.SignInWithPassword(r.Context(), email, req.Password)
	if err != nil {
		if errors.Is(err, supabase.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid login credentials")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusBadGateway, "Account service is unavailable", err)
		return
	}

	h.cookies.Issue(w, session)
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		User: UserResponse{ID: user.ID, Email: user.Email},
	})
}

// Callback handles POST /api/auth/callback. The web client posts the
// token pair it extracted from the verification redirect; a valid access
// token turns into the session cookie pair.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	var req CallbackRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, shared.ErrUnsupportedMediaType) {
			shared.RespondWithError(w, r,
				http.StatusUnsupportedMediaType, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Both session tokens are required")
		return
	}

	claims, err := h.verifier.VerifyAccessToken(r.Context(), req.AccessToken)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusUnauthorized, "Invalid session", err)
		return
	}

	h.cookies.Issue(w, &supabase.Session{
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
		ExpiresIn:    int(time.Until(claims.ExpiresAt).Seconds()),
	})
	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// Logout handles POST /api/auth/logout. The identity-service sign-out is
// best effort; the cookies are cleared regardless.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.AccessTokenCookie); err == nil && cookie.Value != "" {
		if err := h.identity.SignOut(r.Context(), cookie.Value); err != nil {
			h.logger.WarnContext(r.Context(), "identity sign-out failed",
				"error", redact.Error(err))
		}
	}

	h.cookies.Clear(w)
	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// Me handles GET /api/auth/me. It runs behind the session middleware, so
// the context already carries the verified user identity.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	email, _ := middleware.UserEmail(r)

	profile, err := h.profiles.GetByID(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MeResponse{
		User:    UserResponse{ID: userID, Email: email},
		Profile: profile,
	})
}
