package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/josanism/community-api/internal/config"
)

// Claims carries the verified content of a platform-issued access token.
type Claims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenVerifier validates access tokens issued by the identity service.
// Verification is local (HMAC against the shared platform secret), so the
// session middleware never calls the identity service per request.
type TokenVerifier interface {
	// VerifyAccessToken validates the token string and extracts its claims.
	// Returns ErrExpiredToken or ErrInvalidToken on failure.
	VerifyAccessToken(ctx context.Context, tokenString string) (*Claims, error)
}

// hmacTokenVerifier verifies HS256 tokens with the platform JWT secret.
type hmacTokenVerifier struct {
	signingKey []byte
	timeFunc   func() time.Time // injectable for testing
	clockSkew  time.Duration
}

type accessTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Ensure hmacTokenVerifier implements TokenVerifier.
var _ TokenVerifier = (*hmacTokenVerifier)(nil)

// NewTokenVerifier creates a verifier for the platform's access tokens.
func NewTokenVerifier(cfg config.PlatformConfig) (TokenVerifier, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("platform jwt secret must be at least 32 characters")
	}
	return &hmacTokenVerifier{
		signingKey: []byte(cfg.JWTSecret),
		timeFunc:   time.Now,
		// Tolerate minor clock drift between this process and the platform.
		clockSkew: 2 * time.Minute,
	}, nil
}

// VerifyAccessToken implements TokenVerifier.
func (v *hmacTokenVerifier) VerifyAccessToken(ctx context.Context, tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	now := v.timeFunc()
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(v.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&accessTokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.signingKey, nil
		},
		parserOpts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*accessTokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	out := &Claims{UserID: userID, Email: claims.Email}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
