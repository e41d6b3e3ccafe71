package services_test

import (
	"context"

	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/SscSPs/personal_ledger_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// --- Mock LedgerEntryRepository ---
type MockLedgerEntryRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerEntryRepositoryFacade = (*MockLedgerEntryRepository)(nil)

func (m *MockLedgerEntryRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Hand out a copy so the service cannot mutate the fixture.
	entry := *args.Get(0).(*domain.LedgerEntry)
	return &entry, args.Error(1)
}

func (m *MockLedgerEntryRepository) FindMatchingEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) SumAmountByOwnerAndKind(ctx context.Context, ownerID int64, kind domain.EntryKind) (*decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*decimal.Decimal), args.Error(1)
}

func (m *MockLedgerEntryRepository) InsertEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerEntryRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerEntryRepository) DeleteEntryByID(ctx context.Context, entryID int64) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// --- Mock TransactionManager ---
type MockTransactionManager struct {
	mock.Mock
}

var _ portsrepo.TransactionManager = (*MockTransactionManager)(nil)

// WithinTx records the call and runs fn directly; the outcome of fn is returned.
func (m *MockTransactionManager) WithinTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	m.Called(ctx)
	return fn(ctx)
}

// --- Mock EntryEventPublisher ---
type MockEntryEventPublisher struct {
	mock.Mock
}

var _ events.EntryEventPublisher = (*MockEntryEventPublisher)(nil)

func (m *MockEntryEventPublisher) PublishEntryEvent(ctx context.Context, event events.EntryEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
