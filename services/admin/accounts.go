package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	adminRepo "agencysite/database/repository/admin"
	"agencysite/models"
	"agencysite/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

// CreateAdmin adds a back-office account. createdBy is the creating admin's
// id, or a marker such as "cli".
func (s *DefaultAdminService) CreateAdmin(ctx context.Context, input models.AdminCreateInput, createdBy string) (*models.Admin, error) {
	username := strings.TrimSpace(input.Username)
	if utf8.RuneCountInString(username) < 3 {
		return nil, &InputError{Field: "username", Reason: "username must be at least 3 characters"}
	}
	if utf8.RuneCountInString(input.Password) < minPasswordLen {
		return nil, &InputError{Field: "password", Reason: "password must be at least 8 characters"}
	}

	role := input.Role
	switch role {
	case "":
		role = models.RoleAdmin
	case models.RoleAdmin, models.RoleSuperAdmin:
	default:
		return nil, &InputError{Field: "role", Reason: "role must be admin or super_admin"}
	}

	perms := models.DefaultAdminPermissions()
	if input.Permissions != nil {
		perms = *input.Permissions
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	rec := models.Admin{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Permissions:  perms,
		CreatedAt:    s.Now().UTC(),
		CreatedBy:    createdBy,
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		if errors.Is(err, adminRepo.ErrUsernameExists) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	utils.GetLogger().Info("admin created",
		zap.String("adminID", rec.ID), zap.String("role", rec.Role), zap.String("createdBy", createdBy))
	return &rec, nil
}

func (s *DefaultAdminService) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	return s.Repo.List(ctx)
}
