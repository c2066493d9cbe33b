package signup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/josanism/community-api/internal/domain"
	"github.com/josanism/community-api/internal/platform/supabase"
	"github.com/josanism/community-api/internal/redact"
	"github.com/josanism/community-api/internal/store"
)

// IdentityService is the subset of the identity API the orchestrator uses.
type IdentityService interface {
	SignUp(ctx context.Context, email, password, redirectTo string) (*supabase.User, error)
	AdminDeleteUser(ctx context.Context, id uuid.UUID) error
}

// ObjectStore is the subset of the object-store API the orchestrator uses.
type ObjectStore interface {
	UploadObject(ctx context.Context, bucket, path string, data []byte, contentType string) error
	PublicObjectURL(bucket, path string) string
	RemoveObjects(ctx context.Context, bucket string, paths []string) error
}

// Config holds the orchestrator's fixed settings.
type Config struct {
	// Bucket is the object-store bucket for profile images.
	Bucket string
	// CallbackURL is the email-verification redirect target.
	CallbackURL string
}

// Service coordinates the registration workflow across the identity
// service, the object store, and the relational profile store. Each
// request runs the steps strictly in order; completed steps are undone in
// reverse when a later one fails, so no partial registration is ever left
// behind after a reported error.
type Service struct {
	profiles store.ProfileStore
	identity IdentityService
	objects  ObjectStore
	cfg      Config
	logger   *slog.Logger
}

// NewService creates a signup Service with the given collaborators.
func NewService(
	profiles store.ProfileStore,
	identity IdentityService,
	objects ObjectStore,
	cfg Config,
	logger *slog.Logger,
) (*Service, error) {
	if profiles == nil {
		return nil, fmt.Errorf("profile store cannot be nil")
	}
	if identity == nil {
		return nil, fmt.Errorf("identity service cannot be nil")
	}
	if objects == nil {
		return nil, fmt.Errorf("object store cannot be nil")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		profiles: profiles,
		identity: identity,
		objects:  objects,
		cfg:      cfg,
		logger:   logger.With("component", "signup_service"),
	}, nil
}

// Register runs one registration attempt. Validation happens before any
// external call; the external steps then run in a fixed order, each
// pushing its undo before the next begins. On failure the completed steps
// are compensated and the triggering error is returned unchanged.
func (s *Service) Register(ctx context.Context, req domain.RegistrationRequest) (*domain.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	img, err := req.DecodeImage()
	if err != nil {
		return nil, err
	}

	// Advisory username pre-check. It keeps the common conflict cheap and
	// friendly; the unique constraint on the profiles table remains the
	// authority when two attempts race past this point.
	if _, err := s.profiles.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrProfileNotFound) {
		s.logger.ErrorContext(ctx, "username pre-check failed",
			"username", req.Username, "error", redact.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUsernameCheck, err)
	}

	comp := newCompensator(s.logger)

	user, err := s.identity.SignUp(ctx, req.Email, req.Password, s.cfg.CallbackURL)
	if err != nil {
		if errors.Is(err, supabase.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		s.logger.ErrorContext(ctx, "account creation failed", "error", redact.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrIdentityService, err)
	}
	comp.push("delete account", func(ctx context.Context) error {
		return s.identity.AdminDeleteUser(ctx, user.ID)
	})

	// Fresh random token per attempt; a retry after failure never collides
	// with an orphaned key.
	objectPath := fmt.Sprintf("%s/%s", user.ID, uuid.NewString())
	if err := s.objects.UploadObject(ctx, s.cfg.Bucket, objectPath, img.Bytes, img.ContentType); err != nil {
		s.logger.ErrorContext(ctx, "profile image upload failed",
			"user_id", user.ID, "error", redact.Error(err))
		comp.run(ctx)
		return nil, fmt.Errorf("%w: %v", ErrImageUpload, err)
	}
	comp.push("remove profile image", func(ctx context.Context) error {
		return s.objects.RemoveObjects(ctx, s.cfg.Bucket, []string{objectPath})
	})

	publicURL := s.objects.PublicObjectURL(s.cfg.Bucket, objectPath)
	if publicURL == "" {
		s.logger.ErrorContext(ctx, "object store produced no public URL", "user_id", user.ID)
		comp.run(ctx)
		return nil, ErrImageUpload
	}

	profile, err := domain.NewProfile(user.ID, req.Username, publicURL)
	if err != nil {
		comp.run(ctx)
		return nil, err
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		comp.run(ctx)
		if errors.Is(err, store.ErrUsernameExists) {
			// Lost the pre-check race; the database constraint decided.
			return nil, ErrUsernameTaken
		}
		s.logger.ErrorContext(ctx, "profile insert failed",
			"user_id", user.ID, "error", redact.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrProfileCreation, err)
	}

	s.logger.InfoContext(ctx, "registration completed, verification pending",
		"user_id", user.ID, "username", req.Username)
	return profile, nil
}
