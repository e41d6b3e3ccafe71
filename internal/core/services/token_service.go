package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/personal_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/personal_ledger_app/internal/platform/config"
	"github.com/SscSPs/personal_ledger_app/internal/utils"
)

// tokenService signs JWT access tokens with the configured secret, expiry and issuer.
type tokenService struct {
	BaseService
	cfg *config.Config
	now func() time.Time
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{cfg: cfg, now: time.Now}
}

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	issuedAt := s.now()
	expiryTime := issuedAt.Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(strconv.FormatInt(user.UserID, 10), s.cfg.JWTSecret, issuedAt, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, expiryTime, nil
}
