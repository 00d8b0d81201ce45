package middlewares

import (
	"context"
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	users map[string]*models.User
}

func (f *fakeUserRepository) UpsertByEmail(ctx context.Context, user *models.User) (*models.User, error) {
	return user, nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

func (f *fakeUserRepository) GrantAdminByID(ctx context.Context, userID string) (bool, error) {
	return false, nil
}

func testMiddlewares(users map[string]*models.User) *Middlewares {
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = "test-secret"
	internalConfig.JWT.ExpTimeInHour = 1

	return NewMiddlewares(zap.NewNop(), &fakeUserRepository{users: users}, internalConfig)
}

func echoEmailHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)
		assert.True(t, ok, "email should be set in context")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(email))
	})
}

func TestAuthenticate(t *testing.T) {
	m := testMiddlewares(nil)

	t.Run("valid token passes and sets email", func(t *testing.T) {
		token, err := utils.GenerateJWT("pat@example.com", "test-secret", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		m.Authenticate(echoEmailHandler(t)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "pat@example.com", rr.Body.String())
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/bookings", nil)

		rr := httptest.NewRecorder()
		m.Authenticate(echoEmailHandler(t)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token signed with another secret is unauthorized", func(t *testing.T) {
		token, err := utils.GenerateJWT("pat@example.com", "another-secret", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		m.Authenticate(echoEmailHandler(t)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		token, err := utils.GenerateJWT("pat@example.com", "test-secret", -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		m.Authenticate(echoEmailHandler(t)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	users := map[string]*models.User{
		"admin@example.com": {ID: "u1", Email: "admin@example.com", Role: constvars.RoleAdmin},
		"pat@example.com":   {ID: "u2", Email: "pat@example.com"},
	}
	m := testMiddlewares(users)

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	request := func(email string) *http.Request {
		req := httptest.NewRequest("GET", "/api/v1/users", nil)
		ctx := context.WithValue(req.Context(), constvars.CONTEXT_USER_EMAIL_KEY, email)
		return req.WithContext(ctx)
	}

	t.Run("admin passes", func(t *testing.T) {
		rr := httptest.NewRecorder()
		m.RequireAdmin(okHandler).ServeHTTP(rr, request("admin@example.com"))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		rr := httptest.NewRecorder()
		m.RequireAdmin(okHandler).ServeHTTP(rr, request("pat@example.com"))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("unknown user is forbidden", func(t *testing.T) {
		rr := httptest.NewRecorder()
		m.RequireAdmin(okHandler).ServeHTTP(rr, request("ghost@example.com"))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("missing email in context is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/users", nil)
		rr := httptest.NewRecorder()
		m.RequireAdmin(okHandler).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
