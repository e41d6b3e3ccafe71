package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/personal_ledger_app/internal/dto"
)

const (
	msgDuplicateEmail    = "a user with this email is already registered"
	msgUnknownEmail      = "user not found for this email"
	msgIncorrectPassword = "incorrect password"
)

// userService is the user directory: owners of ledger entries.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	now      func() time.Time
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, now: time.Now}
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	email := strings.TrimSpace(req.Email)

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		s.LogError(ctx, err, "Failed to check email availability")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	if exists {
		s.LogWarn(ctx, apperrors.ErrDuplicate, "Email already registered")
		return nil, apperrors.NewDuplicateError(msgDuplicateEmail)
	}

	now := s.now()
	user := domain.User{
		Name:       strings.TrimSpace(req.Name),
		Email:      email,
		Credential: req.Credential,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, &user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewDuplicateError(msgDuplicateEmail)
		}
		s.LogError(ctx, err, "Failed to save user")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.Int64("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("user not found with id: %d", userID))
		}
		s.LogError(ctx, err, "Failed to find user", slog.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, credential string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, err, "Authentication attempted for unknown email")
			return nil, apperrors.NewNotFoundError(msgUnknownEmail)
		}
		s.LogError(ctx, err, "Failed to find user by email")
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if user.Credential != credential {
		s.LogWarn(ctx, apperrors.ErrAuthentication, "Credential mismatch", slog.Int64("user_id", user.UserID))
		return nil, apperrors.NewAuthenticationError(msgIncorrectPassword)
	}

	return user, nil
}
