package usecase

import (
	"context"
	"testing"

	"github.com/my-shop/go-backend/internal/cfg"
	"github.com/my-shop/go-backend/internal/domain"
	"github.com/my-shop/go-backend/pkg/e"
	"github.com/my-shop/go-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*domain.User)}
}

func (m *memoryUserRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	if _, ok := m.users[user.Username]; ok {
		return 0, e.ErrUsernameTaken
	}

	m.nextID++
	stored := *user
	stored.ID = m.nextID
	m.users[user.Username] = &stored
	return stored.ID, nil
}

func (m *memoryUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, e.ErrNotFound
	}

	copied := *user
	return &copied, nil
}

func (m *memoryUserRepo) List(ctx context.Context) ([]domain.User, error) {
	result := make([]domain.User, 0, len(m.users))
	for _, user := range m.users {
		result = append(result, *user)
	}
	return result, nil
}

func (m *memoryUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

func newTestAuthUC(repo *memoryUserRepo) *AuthUseCase {
	return NewAuthUC(repo, nil, &cfg.AdminCfg{Username: "admin", Password: "s3cret"}, logger.NewSlogLogger())
}

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := newMemoryUserRepo()
	uc := newTestAuthUC(repo)
	ctx := context.Background()

	req := NewRegisterReq("Somchai J.", "Somchai", "password123", "0812345678")
	require.NoError(t, uc.Register(ctx, req))

	// Usernames are lowercased on the way in.
	stored, err := repo.GetByUsername(ctx, "somchai")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)

	user, err := uc.AuthenticateCustomer(ctx, "Somchai", "password123")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)

	_, err = uc.AuthenticateCustomer(ctx, "somchai", "wrong")
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)

	_, err = uc.AuthenticateCustomer(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	uc := newTestAuthUC(newMemoryUserRepo())
	ctx := context.Background()

	err := uc.Register(ctx, NewRegisterReq("", "somchai", "password123", ""))
	assert.ErrorIs(t, err, e.ErrMissingFields)

	err = uc.Register(ctx, NewRegisterReq("Somchai", "  ", "password123", ""))
	assert.ErrorIs(t, err, e.ErrMissingFields)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	uc := newTestAuthUC(newMemoryUserRepo())
	ctx := context.Background()

	require.NoError(t, uc.Register(ctx, NewRegisterReq("First", "somchai", "password123", "")))

	err := uc.Register(ctx, NewRegisterReq("Second", "SOMCHAI", "otherpass", ""))
	assert.ErrorIs(t, err, e.ErrUsernameTaken)
}
