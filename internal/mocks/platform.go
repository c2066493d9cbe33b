package mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/josanism/community-api/internal/platform/supabase"
)

// MockIdentityService is a configurable mock of the identity service
// operations used by the signup orchestrator.
type MockIdentityService struct {
	SignUpFn          func(ctx context.Context, email, password, redirectTo string) (*supabase.User, error)
	AdminDeleteUserFn func(ctx context.Context, id uuid.UUID) error

	SignUpCalls     int
	DeleteUserCalls int
	DeletedUserIDs  []uuid.UUID
}

func (m *MockIdentityService) SignUp(ctx context.Context, email, password, redirectTo string) (*supabase.User, error) {
	m.SignUpCalls++
	if m.SignUpFn != nil {
		return m.SignUpFn(ctx, email, password, redirectTo)
	}
	return &supabase.User{ID: uuid.New(), Email: email}, nil
}

func (m *MockIdentityService) AdminDeleteUser(ctx context.Context, id uuid.UUID) error {
	m.DeleteUserCalls++
	m.DeletedUserIDs = append(m.DeletedUserIDs, id)
	if m.AdminDeleteUserFn != nil {
		return m.AdminDeleteUserFn(ctx, id)
	}
	return nil
}

// MockSessionService is a configurable mock of the identity-service
// operations used by login and logout.
type MockSessionService struct {
	SignInFn  func(ctx context.Context, email, password string) (*supabase.Session, *supabase.User, error)
	SignOutFn func(ctx context.Context, accessToken string) error

	SignInCalls  int
	SignOutCalls int
	LastEmail    string
}

func (m *MockSessionService) SignInWithPassword(ctx context.Context, email, password string) (*supabase.Session, *supabase.User, error) {
	m.SignInCalls++
	m.LastEmail = email
	if m.SignInFn != nil {
		return m.SignInFn(ctx, email, password)
	}
	return &supabase.Session{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 3600},
		&supabase.User{ID: uuid.New(), Email: email}, nil
}

func (m *MockSessionService) SignOut(ctx context.Context, accessToken string) error {
	m.SignOutCalls++
	if m.SignOutFn != nil {
		return m.SignOutFn(ctx, accessToken)
	}
	return nil
}

// MockObjectStore is a configurable mock of the object-store operations
// used by the signup orchestrator.
type MockObjectStore struct {
	UploadObjectFn    func(ctx context.Context, bucket, path string, data []byte, contentType string) error
	PublicObjectURLFn func(bucket, path string) string
	RemoveObjectsFn   func(ctx context.Context, bucket string, paths []string) error

	UploadCalls  int
	RemoveCalls  int
	UploadedPath string
	RemovedPaths []string
}

func (m *MockObjectStore) UploadObject(ctx context.Context, bucket, path string, data []byte, contentType string) error {
	m.UploadCalls++
	m.UploadedPath = path
	if m.UploadObjectFn != nil {
		return m.UploadObjectFn(ctx, bucket, path, data, contentType)
	}
	return nil
}

func (m *MockObjectStore) PublicObjectURL(bucket, path string) string {
	if m.PublicObjectURLFn != nil {
		return m.PublicObjectURLFn(bucket, path)
	}
	return fmt.Sprintf("https://cdn.example.com/%s/%s", bucket, path)
}

func (m *MockObjectStore) RemoveObjects(ctx context.Context, bucket string, paths []string) error {
	m.RemoveCalls++
	m.RemovedPaths = append(m.RemovedPaths, paths...)
	if m.RemoveObjectsFn != nil {
		return m.RemoveObjectsFn(ctx, bucket, paths)
	}
	return nil
}
