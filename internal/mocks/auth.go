package mocks

import (
	"context"

	"github.com/josanism/community-api/internal/service/auth"
)

// MockTokenVerifier is a configurable mock of auth.TokenVerifier.
type MockTokenVerifier struct {
	Claims *auth.Claims
	Err    error

	VerifyCalls int
	LastToken   string
}

var _ auth.TokenVerifier = (*MockTokenVerifier)(nil)

func (m *MockTokenVerifier) VerifyAccessToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	m.VerifyCalls++
	m.LastToken = tokenString
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Claims, nil
}
