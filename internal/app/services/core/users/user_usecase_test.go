package users

import (
	"context"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/exceptions"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	users map[string]*models.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*models.User)}
}

func (f *fakeUserRepository) UpsertByEmail(ctx context.Context, user *models.User) (*models.User, error) {
	if existing, ok := f.users[user.Email]; ok {
		existing.Name = user.Name
		return existing, nil
	}
	stored := *user
	stored.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	f.users[user.Email] = &stored
	return &stored, nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	all := make([]models.User, 0, len(f.users))
	for _, user := range f.users {
		all = append(all, *user)
	}
	return all, nil
}

func (f *fakeUserRepository) GrantAdminByID(ctx context.Context, userID string) (bool, error) {
	for _, user := range f.users {
		if user.ID == userID {
			user.Role = constvars.RoleAdmin
			return true, nil
		}
	}
	return false, nil
}

func TestUpsertUser(t *testing.T) {
	repo := newFakeUserRepository()
	uc := NewUserUsecase(repo, zap.NewNop())

	t.Run("creates a new user", func(t *testing.T) {
		user, err := uc.UpsertUser(context.Background(), &requests.UpsertUser{
			Name:  "Pat Doe",
			Email: "pat@example.com",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "Pat Doe", user.Name)
	})

	t.Run("re-registration keeps the admin role", func(t *testing.T) {
		repo.users["pat@example.com"].Role = constvars.RoleAdmin

		user, err := uc.UpsertUser(context.Background(), &requests.UpsertUser{
			Name:  "Patricia Doe",
			Email: "pat@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "Patricia Doe", user.Name)
		assert.Equal(t, constvars.RoleAdmin, user.Role)
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		_, err := uc.UpsertUser(context.Background(), &requests.UpsertUser{
			Name:  "No Email",
			Email: "not-an-email",
		})
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
	})
}

func TestIsAdmin(t *testing.T) {
	repo := newFakeUserRepository()
	repo.users["admin@example.com"] = &models.User{ID: "u1", Email: "admin@example.com", Role: constvars.RoleAdmin}
	repo.users["pat@example.com"] = &models.User{ID: "u2", Email: "pat@example.com"}
	uc := NewUserUsecase(repo, zap.NewNop())

	t.Run("admin user", func(t *testing.T) {
		check, err := uc.IsAdmin(context.Background(), "admin@example.com")
		require.NoError(t, err)
		assert.True(t, check.IsAdmin)
	})

	t.Run("regular user", func(t *testing.T) {
		check, err := uc.IsAdmin(context.Background(), "pat@example.com")
		require.NoError(t, err)
		assert.False(t, check.IsAdmin)
	})

	t.Run("unknown user is not an admin, not an error", func(t *testing.T) {
		check, err := uc.IsAdmin(context.Background(), "ghost@example.com")
		require.NoError(t, err)
		assert.False(t, check.IsAdmin)
	})
}

func TestGrantAdmin(t *testing.T) {
	repo := newFakeUserRepository()
	repo.users["pat@example.com"] = &models.User{ID: "u2", Email: "pat@example.com"}
	uc := NewUserUsecase(repo, zap.NewNop())

	t.Run("grants the role", func(t *testing.T) {
		err := uc.GrantAdmin(context.Background(), "u2")
		require.NoError(t, err)
		assert.Equal(t, constvars.RoleAdmin, repo.users["pat@example.com"].Role)
	})

	t.Run("missing user is not found", func(t *testing.T) {
		err := uc.GrantAdmin(context.Background(), "nope")
		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})
}
