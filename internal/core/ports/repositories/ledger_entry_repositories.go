package repositories

import (
	"context"

	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEntryReader defines read operations for ledger entry data
type LedgerEntryReader interface {
	// FindEntryByID retrieves a ledger entry with its owner populated.
	// Returns apperrors.ErrNotFound when the entry does not exist.
	FindEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error)

	// FindMatchingEntries returns every entry accepted by the filter in storage order.
	FindMatchingEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.LedgerEntry, error)

	// SumAmountByOwnerAndKind totals the amounts of an owner's entries of one kind, across all statuses.
	// A nil result means the owner has no entries of that kind.
	SumAmountByOwnerAndKind(ctx context.Context, ownerID int64, kind domain.EntryKind) (*decimal.Decimal, error)
}

// LedgerEntryWriter defines write operations for ledger entry data
type LedgerEntryWriter interface {
	// InsertEntry persists a new entry and sets the storage-assigned EntryID on it.
	InsertEntry(ctx context.Context, entry *domain.LedgerEntry) error

	// SaveEntry writes every field of an existing entry, keyed by EntryID.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error

	// DeleteEntryByID removes an entry.
	DeleteEntryByID(ctx context.Context, entryID int64) error
}

// LedgerEntryRepositoryFacade combines all ledger entry repository interfaces
// This is a facade for clients that need access to all operations
type LedgerEntryRepositoryFacade interface {
	LedgerEntryReader
	LedgerEntryWriter
}
