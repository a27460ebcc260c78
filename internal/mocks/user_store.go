package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/user-api/internal/domain"
	"github.com/phrazzld/user-api/internal/store"
)

// MockUserStore implements store.KeyedStore[uuid.UUID, *domain.User] for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	AddFn    func(ctx context.Context, key uuid.UUID, value *domain.User) error
	GetFn    func(ctx context.Context, key uuid.UUID) (*domain.User, error)
	GetAllFn func(ctx context.Context) ([]*domain.User, error)
	UpdateFn func(ctx context.Context, key uuid.UUID, value *domain.User) error
	DeleteFn func(ctx context.Context, key uuid.UUID) error

	// Data for default implementation
	Users map[uuid.UUID]*domain.User

	// Errors returned by the default implementation when set
	AddError    error
	GetAllError error
}

// Statically verify that the mock satisfies the store interface.
var _ store.KeyedStore[uuid.UUID, *domain.User] = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[uuid.UUID]*domain.User),
	}
}

// Add implements the KeyedStore interface
func (m *MockUserStore) Add(ctx context.Context, key uuid.UUID, value *domain.User) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, key, value)
	}

	if m.AddError != nil {
		return m.AddError
	}

	m.Users[key] = value
	return nil
}

// Get implements the KeyedStore interface
func (m *MockUserStore) Get(ctx context.Context, key uuid.UUID) (*domain.User, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}

	user, ok := m.Users[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return user, nil
}

// GetAll implements the KeyedStore interface
func (m *MockUserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}

	if m.GetAllError != nil {
		return nil, m.GetAllError
	}

	users := make([]*domain.User, 0, len(m.Users))
	for _, user := range m.Users {
		users = append(users, user)
	}
	return users, nil
}

// Update implements the KeyedStore interface
func (m *MockUserStore) Update(ctx context.Context, key uuid.UUID, value *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, key, value)
	}

	if _, ok := m.Users[key]; !ok {
		return store.ErrUpdateFailed
	}
	m.Users[key] = value
	return nil
}

// Delete implements the KeyedStore interface
func (m *MockUserStore) Delete(ctx context.Context, key uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, key)
	}

	delete(m.Users, key)
	return nil
}
