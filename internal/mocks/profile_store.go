package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/josanism/community-api/internal/domain"
	"github.com/josanism/community-api/internal/store"
)

// MockProfileStore is a configurable mock implementation of
// store.ProfileStore. Unset function fields behave like an empty store.
type MockProfileStore struct {
	CreateFn        func(ctx context.Context, profile *domain.Profile) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.Profile, error)

	CreateCalls        int
	GetByIDCalls       int
	GetByUsernameCalls int

	// Created records every profile passed to Create.
	Created []*domain.Profile
}

var _ store.ProfileStore = (*MockProfileStore)(nil)

func (m *MockProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	m.CreateCalls++
	m.Created = append(m.Created, profile)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, profile)
	}
	return nil
}

func (m *MockProfileStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	m.GetByIDCalls++
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrProfileNotFound
}

func (m *MockProfileStore) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	m.GetByUsernameCalls++
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, store.ErrProfileNotFound
}
