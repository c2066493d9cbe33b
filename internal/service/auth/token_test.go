package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/josanism/community-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func signToken(t *testing.T, secret string, claims jwt.Claims, method jwt.SigningMethod) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func accessClaims(userID uuid.UUID, email string, expiresAt time.Time) *accessTokenClaims {
	return &accessTokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

func TestNewTokenVerifierRejectsShortSecret(t *testing.T) {
	_, err := NewTokenVerifier(config.PlatformConfig{JWTSecret: "short"})
	assert.Error(t, err)
}

func TestVerifyAccessToken(t *testing.T) {
	verifier, err := NewTokenVerifier(config.PlatformConfig{JWTSecret: testSecret})
	require.NoError(t, err)

	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, testSecret,
			accessClaims(userID, "alice@example.com", time.Now().Add(time.Hour)),
			jwt.SigningMethodHS256)

		claims, err := verifier.VerifyAccessToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "alice@example.com", claims.Email)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, testSecret,
			accessClaims(userID, "alice@example.com", time.Now().Add(-time.Hour)),
			jwt.SigningMethodHS256)

		_, err := verifier.VerifyAccessToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		token := signToken(t, "ffffffffffffffffffffffffffffffff",
			accessClaims(userID, "alice@example.com", time.Now().Add(time.Hour)),
			jwt.SigningMethodHS256)

		_, err := verifier.VerifyAccessToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("non-uuid subject", func(t *testing.T) {
		token := signToken(t, testSecret, &accessTokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "not-a-uuid",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}, jwt.SigningMethodHS256)

		_, err := verifier.VerifyAccessToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := verifier.VerifyAccessToken(context.Background(), "not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := verifier.VerifyAccessToken(context.Background(), "")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("token within clock skew accepted", func(t *testing.T) {
		token := signToken(t, testSecret,
			accessClaims(userID, "alice@example.com", time.Now().Add(-time.Minute)),
			jwt.SigningMethodHS256)

		_, err := verifier.VerifyAccessToken(context.Background(), token)
		assert.NoError(t, err)
	})
}
