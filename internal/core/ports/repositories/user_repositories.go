package repositories

import (
	"context"

	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	// Returns apperrors.ErrNotFound when no user has that ID.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByEmail retrieves a user by their email.
	// Returns apperrors.ErrNotFound when no user has that email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ExistsByEmail reports whether a user with the given email is already stored.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user and sets the storage-assigned UserID on it.
	// Returns apperrors.ErrDuplicate when the email is already taken.
	SaveUser(ctx context.Context, user *domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
