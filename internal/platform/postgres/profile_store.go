package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/josanism/community-api/internal/domain"
	"github.com/josanism/community-api/internal/store"
)

// uniqueViolationCode is the PostgreSQL unique violation error code.
const uniqueViolationCode = "23505"

// PostgresProfileStore implements the store.ProfileStore interface using
// the platform's PostgreSQL database as the storage backend.
type PostgresProfileStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// Ensure PostgresProfileStore implements store.ProfileStore.
var _ store.ProfileStore = (*PostgresProfileStore)(nil)

// NewPostgresProfileStore creates a new PostgreSQL implementation of the
// ProfileStore interface. The database connection is initialized and
// managed by the caller.
func NewPostgresProfileStore(db *sql.DB, logger *slog.Logger) *PostgresProfileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresProfileStore{
		db:     db,
		logger: logger.With("component", "profile_store"),
	}
}

// isUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation, such as a duplicate username.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// Create implements store.ProfileStore.Create.
func (s *PostgresProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, username, avatar_url, name, bio, banner_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		profile.ID,
		profile.Username,
		profile.AvatarURL,
		profile.Name,
		profile.Bio,
		profile.BannerURL,
		profile.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrUsernameExists
		}
		s.logger.ErrorContext(ctx, "failed to insert profile",
			"error", err, "profile_id", profile.ID)
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	return nil
}

// GetByID implements store.ProfileStore.GetByID.
func (s *PostgresProfileStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT id, username, avatar_url, name, bio, banner_url, created_at
		FROM profiles
		WHERE id = $1`

	return s.scanProfile(ctx, s.db.QueryRowContext(ctx, query, id))
}

// GetByUsername implements store.ProfileStore.GetByUsername.
func (s *PostgresProfileStore) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	query := `
		SELECT id, username, avatar_url, name, bio, banner_url, created_at
		FROM profiles
		WHERE username = $1`

	return s.scanProfile(ctx, s.db.QueryRowContext(ctx, query, username))
}

func (s *PostgresProfileStore) scanProfile(ctx context.Context, row *sql.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID,
		&p.Username,
		&p.AvatarURL,
		&p.Name,
		&p.Bio,
		&p.BannerURL,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProfileNotFound
		}
		s.logger.ErrorContext(ctx, "failed to scan profile row", "error", err)
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	return &p, nil
}
