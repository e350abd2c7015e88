package admin

import (
	"context"
	"errors"
	"time"

	adminRepo "agencysite/database/repository/admin"
	"agencysite/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUsernameTaken      = errors.New("username already exists")
)

// InputError describes a rejected admin form field.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string { return e.Field + ": " + e.Reason }

// AdminService authenticates back-office users and manages their accounts.
type AdminService interface {
	Login(ctx context.Context, input models.AdminLoginInput) (*models.AdminAuthResponse, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*models.Admin, error)
	CreateAdmin(ctx context.Context, input models.AdminCreateInput, createdBy string) (*models.Admin, error)
	ListAdmins(ctx context.Context) ([]models.Admin, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Repo     adminRepo.AdminRepository
	Sessions SessionStore // optional
	TokenTTL time.Duration
	Now      func() time.Time
}

func NewAdminService(repo adminRepo.AdminRepository, sessions SessionStore, ttl time.Duration) *DefaultAdminService {
	return &DefaultAdminService{Repo: repo, Sessions: sessions, TokenTTL: ttl, Now: time.Now}
}
