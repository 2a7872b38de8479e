package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/repository"
	"github.com/abdullah-masud/Doctors-Portal-Server/pkg/auth"
)

type memoryUserRepo struct {
	users map[string]*model.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*model.User)}
}

func (m *memoryUserRepo) Upsert(ctx context.Context, user *model.User) error {
	if existing, ok := m.users[user.Email]; ok {
		existing.Name = user.Name
		existing.UpdatedAt = time.Now()
		*user = *existing
		return nil
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	m.users[user.Email] = &stored
	return nil
}

func (m *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memoryUserRepo) List(ctx context.Context) ([]*model.User, error) {
	out := make([]*model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memoryUserRepo) SetRole(ctx context.Context, email, role string) error {
	u, ok := m.users[email]
	if !ok {
		return repository.ErrNotFound
	}
	u.Role = role
	return nil
}

func newFixture() (*Service, *memoryUserRepo, auth.JWTService) {
	repo := newMemoryUserRepo()
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	return NewService(repo, jwtSvc), repo, jwtSvc
}

func TestUpsertUserIssuesToken(t *testing.T) {
	svc, _, jwtSvc := newFixture()

	user, token, err := svc.UpsertUser(context.Background(), "alice@example.com", &model.UpsertUserRequest{Name: "Alice"})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)

	claims, err := jwtSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestUpsertUserUpdatesExistingProfile(t *testing.T) {
	svc, repo, _ := newFixture()

	first, _, err := svc.UpsertUser(context.Background(), "alice@example.com", &model.UpsertUserRequest{Name: "Alice"})
	require.NoError(t, err)

	second, _, err := svc.UpsertUser(context.Background(), "alice@example.com", &model.UpsertUserRequest{Name: "Alice B."})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Alice B.", second.Name)
	assert.Len(t, repo.users, 1)
}

func TestUpsertUserKeepsAdminRole(t *testing.T) {
	svc, _, _ := newFixture()

	_, _, err := svc.UpsertUser(context.Background(), "alice@example.com", &model.UpsertUserRequest{Name: "Alice"})
	require.NoError(t, err)
	require.NoError(t, svc.PromoteToAdmin(context.Background(), "alice@example.com"))

	// Logging in again must not demote the account.
	_, _, err = svc.UpsertUser(context.Background(), "alice@example.com", &model.UpsertUserRequest{Name: "Alice"})
	require.NoError(t, err)

	isAdmin, err := svc.IsAdmin(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestPromoteToAdminIdempotent(t *testing.T) {
	svc, repo, _ := newFixture()

	_, _, err := svc.UpsertUser(context.Background(), "alice@example.com", &model.UpsertUserRequest{Name: "Alice"})
	require.NoError(t, err)

	require.NoError(t, svc.PromoteToAdmin(context.Background(), "alice@example.com"))
	require.NoError(t, svc.PromoteToAdmin(context.Background(), "alice@example.com"))

	assert.Equal(t, model.RoleAdmin, repo.users["alice@example.com"].Role)
}

func TestPromoteToAdminUnknownUser(t *testing.T) {
	svc, _, _ := newFixture()

	err := svc.PromoteToAdmin(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestIsAdminUnknownUserIsFalse(t *testing.T) {
	svc, _, _ := newFixture()

	isAdmin, err := svc.IsAdmin(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestIsAdminOrdinaryUser(t *testing.T) {
	svc, _, _ := newFixture()

	_, _, err := svc.UpsertUser(context.Background(), "bob@example.com", &model.UpsertUserRequest{Name: "Bob"})
	require.NoError(t, err)

	isAdmin, err := svc.IsAdmin(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}
