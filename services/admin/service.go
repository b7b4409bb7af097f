package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"yalasafari/config"
	adminRepo "yalasafari/database/repository/admin"
	"yalasafari/models"
	"yalasafari/services/booking"
	"yalasafari/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL bounds both the JWT expiry and the Redis session entry.
const tokenTTL = 24 * time.Hour

// LoginResult carries the issued token and its owner back to the handler.
type LoginResult struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Admin     *models.Admin `json:"admin"`
}

// Service authenticates back-office users and manages their sessions.
type Service interface {
	Authenticate(ctx context.Context, email, password string) (*LoginResult, error)
	Revoke(ctx context.Context, token string) error
	// EnsureDefault creates the bootstrap admin from configuration when
	// no accounts exist yet.
	EnsureDefault(ctx context.Context) error
}

type DefaultAdminService struct {
	Repo adminRepo.Repository
}

var _ Service = (*DefaultAdminService)(nil)

func NewAdminService(repo adminRepo.Repository) *DefaultAdminService {
	return &DefaultAdminService{Repo: repo}
}

// Authenticate checks credentials, issues a 24h JWT, and records the
// session in Redis keyed by the token hash so it can be revoked early.
func (s *DefaultAdminService) Authenticate(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, booking.NewError(booking.CodeValidation, "email and password are required")
	}

	acct, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrNotFound) {
			// Same message as a bad password so account existence stays hidden.
			return nil, booking.NewError(booking.CodeUnauthorized, "invalid credentials")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, booking.NewError(booking.CodeUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateToken(acct.ID, acct.Email, tokenTTL)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := utils.AdminSession{
		AdminID:   acct.ID,
		Email:     acct.Email,
		IssuedAt:  now,
		ExpiresAt: now.Add(tokenTTL),
	}
	if err := utils.SaveAdminSession(utils.GetAuthCacheClient(), utils.HashToken(token), session, tokenTTL); err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: session.ExpiresAt, Admin: acct}, nil
}

// Revoke deletes the session entry so the token stops working before its
// JWT expiry. Revoking an unknown token is a no-op.
func (s *DefaultAdminService) Revoke(ctx context.Context, token string) error {
	return utils.DeleteAdminSession(utils.GetAuthCacheClient(), utils.HashToken(token))
}

// EnsureDefault seeds the bootstrap admin account on an empty
// collection using ADMIN_EMAIL / ADMIN_PASSWORD from configuration.
func (s *DefaultAdminService) EnsureDefault(ctx context.Context) error {
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		utils.GetLogger().Warn("admin: no accounts exist and ADMIN_EMAIL/ADMIN_PASSWORD are unset; admin API is unusable")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	acct := &models.Admin{
		ID:           uuid.NewString(),
		Name:         cfg.AdminName,
		Email:        strings.ToLower(cfg.AdminEmail),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if acct.Name == "" {
		acct.Name = "Administrator"
	}
	if err := s.Repo.Create(ctx, acct); err != nil {
		return err
	}
	utils.GetLogger().Info("admin: seeded bootstrap account", zap.String("email", acct.Email))
	return nil
}
