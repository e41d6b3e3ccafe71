package services

import (
	"context"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
)

// TokenSvc issues access tokens for authenticated users
type TokenSvc interface {
	// GenerateAccessToken returns a signed token whose subject is the user's ID, and its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
