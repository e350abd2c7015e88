package admin_test

import (
	"context"
	"testing"
	"time"

	adminRepo "agencysite/database/repository/admin"
	"agencysite/mocks"
	"agencysite/models"
	"agencysite/services/admin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memSessions struct {
	revoked map[string]time.Duration
	cached  map[string]models.Admin
}

func newMemSessions() *memSessions {
	return &memSessions{revoked: map[string]time.Duration{}, cached: map[string]models.Admin{}}
}

func (m *memSessions) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	m.revoked[token] = ttl
	return nil
}

func (m *memSessions) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, ok := m.revoked[token]
	return ok, nil
}

func (m *memSessions) CachedAdmin(ctx context.Context, id string) (*models.Admin, error) {
	if a, ok := m.cached[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (m *memSessions) CacheAdmin(ctx context.Context, a models.Admin) error {
	m.cached[a.ID] = a
	return nil
}

func storedAdmin(t *testing.T, password string) *models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Admin{ID: "adm-1", Username: "owner", PasswordHash: string(hash), Role: models.RoleSuperAdmin}
}

func TestLoginAuthenticateLogout(t *testing.T) {
	rec := storedAdmin(t, "correct horse")
	repo := new(mocks.AdminRepository)
	repo.On("GetByUsername", mock.Anything, "owner").Return(rec, nil)
	repo.On("GetByID", mock.Anything, "adm-1").Return(rec, nil).Once()
	sessions := newMemSessions()
	svc := admin.NewAdminService(repo, sessions, time.Hour)

	_, err := svc.Login(context.Background(), models.AdminLoginInput{Username: "owner", Password: "wrong"})
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)

	resp, err := svc.Login(context.Background(), models.AdminLoginInput{Username: " owner ", Password: "correct horse"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	got, err := svc.Authenticate(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "adm-1", got.ID)

	// Served from the session cache this time.
	_, err = svc.Authenticate(context.Background(), resp.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))
	assert.Greater(t, sessions.revoked[resp.Token], time.Duration(0))

	_, err = svc.Authenticate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, admin.ErrUnauthorized)
	repo.AssertExpectations(t)
}

func TestLoginUnknownUser(t *testing.T) {
	repo := new(mocks.AdminRepository)
	repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, adminRepo.ErrAdminNotFound)
	svc := admin.NewAdminService(repo, nil, time.Hour)

	_, err := svc.Login(context.Background(), models.AdminLoginInput{Username: "ghost", Password: "whatever1"})
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	svc := admin.NewAdminService(new(mocks.AdminRepository), nil, time.Hour)
	_, err := svc.Authenticate(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, admin.ErrUnauthorized)
}

func TestCreateAdmin(t *testing.T) {
	t.Run("defaults role and permissions", func(t *testing.T) {
		repo := new(mocks.AdminRepository)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(a models.Admin) bool {
			return a.Username == "editor" && a.Role == models.RoleAdmin && a.PasswordHash != "s3cretpass"
		})).Return(nil)
		svc := admin.NewAdminService(repo, nil, time.Hour)

		got, err := svc.CreateAdmin(context.Background(), models.AdminCreateInput{Username: "editor", Password: "s3cretpass"}, "adm-1")
		require.NoError(t, err)
		assert.True(t, got.Has(models.PermManageBookings))
		assert.False(t, got.Has(models.PermManageAdmins))
		assert.Equal(t, "adm-1", got.CreatedBy)
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := new(mocks.AdminRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(adminRepo.ErrUsernameExists)
		svc := admin.NewAdminService(repo, nil, time.Hour)

		_, err := svc.CreateAdmin(context.Background(), models.AdminCreateInput{Username: "editor", Password: "s3cretpass"}, "cli")
		assert.ErrorIs(t, err, admin.ErrUsernameTaken)
	})

	t.Run("short password", func(t *testing.T) {
		svc := admin.NewAdminService(new(mocks.AdminRepository), nil, time.Hour)
		_, err := svc.CreateAdmin(context.Background(), models.AdminCreateInput{Username: "editor", Password: "short"}, "cli")
		var ierr *admin.InputError
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, "password", ierr.Field)
	})
}
