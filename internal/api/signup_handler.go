package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/josanism/community-api/internal/api/shared"
	"github.com/josanism/community-api/internal/domain"
)

// RegistrationService runs the multi-step signup workflow.
type RegistrationService interface {
	Register(ctx context.Context, req domain.RegistrationRequest) (*domain.Profile, error)
}

// SignupHandler handles the registration endpoint.
type SignupHandler struct {
	service RegistrationService
}

// NewSignupHandler creates a SignupHandler backed by the given service.
func NewSignupHandler(service RegistrationService) *SignupHandler {
	return &SignupHandler{service: service}
}

// Signup handles POST /api/auth/signup.
func (h *SignupHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, shared.ErrUnsupportedMediaType) {
			shared.RespondWithError(w, r,
				http.StatusUnsupportedMediaType, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Field-level validation lives in the domain request so the workflow
	// rejects bad input identically no matter how it is invoked.
	profile, err := h.service.Register(r.Context(), domain.RegistrationRequest{
		Email:        req.Email,
		Username:     req.Username,
		Password:     req.Password,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, SignupResponse{
		UserID:  profile.ID,
		Message: "Account created. Check your email to verify your address.",
	})
}
