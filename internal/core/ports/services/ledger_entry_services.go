package services

import (
	"context"

	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/SscSPs/personal_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerEntryReaderSvc defines read operations for ledger entries
type LedgerEntryReaderSvc interface {
	// GetEntryByID retrieves a single entry.
	GetEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error)

	// SearchEntries returns every entry matching the populated fields of params.
	SearchEntries(ctx context.Context, params dto.SearchEntriesParams) ([]domain.LedgerEntry, error)
}

// LedgerEntryWriterSvc defines the entry lifecycle operations
type LedgerEntryWriterSvc interface {
	// CreateEntry validates and stores a new entry with status PENDING and today's registration date.
	CreateEntry(ctx context.Context, req dto.LedgerEntryRequest) (*domain.LedgerEntry, error)

	// UpdateEntry replaces the mutable fields of an existing entry after validating the replacement.
	UpdateEntry(ctx context.Context, entryID int64, req dto.LedgerEntryRequest) (*domain.LedgerEntry, error)

	// DeleteEntry removes an existing entry.
	DeleteEntry(ctx context.Context, entryID int64) error

	// UpdateEntryStatus changes only the status of an existing entry.
	UpdateEntryStatus(ctx context.Context, entryID int64, status string) error
}

// BalanceSvc defines balance aggregation
type BalanceSvc interface {
	// GetOwnerBalance returns income minus expense over all of the owner's entries.
	GetOwnerBalance(ctx context.Context, ownerID int64) (decimal.Decimal, error)
}

// LedgerEntrySvcFacade combines all ledger entry service interfaces
type LedgerEntrySvcFacade interface {
	LedgerEntryReaderSvc
	LedgerEntryWriterSvc
	BalanceSvc
}
