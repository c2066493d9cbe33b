package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/josanism/community-api/internal/api/shared"
	"github.com/josanism/community-api/internal/store"
)

// ProfileHandler serves public profile lookups.
type ProfileHandler struct {
	profiles store.ProfileStore
}

// NewProfileHandler creates a ProfileHandler backed by the given store.
func NewProfileHandler(profiles store.ProfileStore) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetByUsername handles GET /api/profiles/{username}.
func (h *ProfileHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Username is required")
		return
	}

	profile, err := h.profiles.GetByUsername(r.Context(), username)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}
