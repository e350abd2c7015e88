package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	adminRepo "agencysite/database/repository/admin"
	"agencysite/models"
	"agencysite/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the password and issues a bearer token.
func (s *DefaultAdminService) Login(ctx context.Context, input models.AdminLoginInput) (*models.AdminAuthResponse, error) {
	logger := utils.GetLogger()

	rec, err := s.Repo.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			return nil, ErrInvalidCredentials
		}
		logger.Error("Login: failed to fetch admin", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(input.Password)); err != nil {
		logger.Info("Login: password mismatch", zap.String("username", rec.Username))
		return nil, ErrInvalidCredentials
	}

	token, exp, err := utils.GenerateToken(rec.ID, rec.Role, s.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	logger.Info("admin logged in", zap.String("adminID", rec.ID))
	return &models.AdminAuthResponse{Token: token, ExpiresAt: exp, Admin: *rec}, nil
}

// Logout revokes the token for the rest of its lifetime.
func (s *DefaultAdminService) Logout(ctx context.Context, token string) error {
	claims, err := utils.ParseToken(token)
	if err != nil {
		return ErrUnauthorized
	}
	if s.Sessions == nil {
		return nil
	}
	return s.Sessions.Revoke(ctx, token, claims.ExpiresAt.Sub(s.Now()))
}

// Authenticate resolves a bearer token to its admin. Revoked or expired
// tokens and deleted admins are rejected with ErrUnauthorized.
func (s *DefaultAdminService) Authenticate(ctx context.Context, token string) (*models.Admin, error) {
	logger := utils.GetLogger()

	claims, err := utils.ParseToken(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if s.Sessions != nil {
		revoked, err := s.Sessions.IsRevoked(ctx, token)
		if err != nil {
			logger.Warn("revocation check failed", zap.Error(err))
		} else if revoked {
			return nil, ErrUnauthorized
		}

		if cached, err := s.Sessions.CachedAdmin(ctx, claims.Subject); err == nil && cached != nil {
			return cached, nil
		}
	}

	rec, err := s.Repo.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if s.Sessions != nil {
		if err := s.Sessions.CacheAdmin(ctx, *rec); err != nil {
			logger.Warn("admin cache write failed", zap.Error(err))
		}
	}
	return rec, nil
}
