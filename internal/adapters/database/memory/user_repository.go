package memory

import (
	"context"
	"strings"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
)

// UserRepository is the in-memory implementation of portsrepo.UserRepositoryFacade.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a user repository over store.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) SaveUser(ctx context.Context, user *domain.User) error {
	defer r.store.lock(ctx)()

	if r.emailTaken(user.Email) {
		return apperrors.ErrDuplicate
	}
	r.store.nextUserID++
	user.UserID = r.store.nextUserID
	r.store.users[user.UserID] = *user
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	defer r.store.lock(ctx)()

	user, ok := r.store.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	defer r.store.lock(ctx)()

	for _, user := range r.store.users {
		if strings.EqualFold(user.Email, email) {
			found := user
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	defer r.store.lock(ctx)()
	return r.emailTaken(email), nil
}

func (r *UserRepository) emailTaken(email string) bool {
	for _, user := range r.store.users {
		if strings.EqualFold(user.Email, email) {
			return true
		}
	}
	return false
}
