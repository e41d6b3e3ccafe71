package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/SscSPs/personal_ledger_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/personal_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledgerEntryService implements the LedgerEntrySvcFacade interface
type ledgerEntryService struct {
	BaseService
	entryRepo   portsrepo.LedgerEntryRepositoryFacade
	userService portssvc.UserReaderSvc
	txManager   portsrepo.TransactionManager
	publisher   events.EntryEventPublisher
	now         func() time.Time
}

// LedgerEntryServiceOption is a functional option for configuring the ledger entry service
type LedgerEntryServiceOption func(*ledgerEntryService)

// WithTransactionManager runs every mutating operation inside a storage transaction.
func WithTransactionManager(txManager portsrepo.TransactionManager) LedgerEntryServiceOption {
	return func(s *ledgerEntryService) {
		s.txManager = txManager
	}
}

// WithEntryEventPublisher publishes an event after each committed mutation.
func WithEntryEventPublisher(publisher events.EntryEventPublisher) LedgerEntryServiceOption {
	return func(s *ledgerEntryService) {
		s.publisher = publisher
	}
}

// WithClock replaces time.Now, used for registration dates and audit fields.
func WithClock(now func() time.Time) LedgerEntryServiceOption {
	return func(s *ledgerEntryService) {
		s.now = now
	}
}

// NewLedgerEntryService creates a new ledger entry service with the provided options
func NewLedgerEntryService(entryRepo portsrepo.LedgerEntryRepositoryFacade, userService portssvc.UserReaderSvc, options ...LedgerEntryServiceOption) portssvc.LedgerEntrySvcFacade {
	svc := &ledgerEntryService{
		entryRepo:   entryRepo,
		userService: userService,
		publisher:   nopEntryEventPublisher{},
		now:         time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

func (s *ledgerEntryService) CreateEntry(ctx context.Context, req dto.LedgerEntryRequest) (*domain.LedgerEntry, error) {
	var created domain.LedgerEntry

	err := s.withinTx(ctx, func(txCtx context.Context) error {
		entry, err := s.buildEntry(txCtx, req)
		if err != nil {
			return err
		}
		if err := entry.Validate(); err != nil {
			s.LogWarn(txCtx, err, "Rejected ledger entry")
			return err
		}

		// Caller-supplied status and registration date are never honored on creation.
		now := s.now()
		entry.Status = domain.StatusPending
		entry.RegistrationDate = domain.RegistrationDay(now)
		entry.CreatedAt = now
		entry.LastUpdatedAt = now

		if err := s.entryRepo.InsertEntry(txCtx, &entry); err != nil {
			s.LogError(txCtx, err, "Failed to insert ledger entry")
			return fmt.Errorf("failed to create ledger entry: %w", err)
		}
		created = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Ledger entry created", slog.Int64("entry_id", created.EntryID), slog.Int64("owner_id", created.OwnerID()))
	s.publish(ctx, events.EntryCreated, created)
	return &created, nil
}

func (s *ledgerEntryService) UpdateEntry(ctx context.Context, entryID int64, req dto.LedgerEntryRequest) (*domain.LedgerEntry, error) {
	var updated domain.LedgerEntry

	err := s.withinTx(ctx, func(txCtx context.Context) error {
		existing, err := s.findEntry(txCtx, entryID)
		if err != nil {
			return err
		}

		replacement, err := s.buildEntry(txCtx, req)
		if err != nil {
			return err
		}
		replacement.Status = existing.Status
		if req.Status != nil && *req.Status != "" {
			status, err := domain.ParseEntryStatus(*req.Status)
			if err != nil {
				return err
			}
			replacement.Status = status
		}
		if err := replacement.Validate(); err != nil {
			s.LogWarn(txCtx, err, "Rejected ledger entry replacement", slog.Int64("entry_id", entryID))
			return err
		}

		applyReplacement(existing, replacement)
		existing.LastUpdatedAt = s.now()

		if err := s.entryRepo.SaveEntry(txCtx, *existing); err != nil {
			s.LogError(txCtx, err, "Failed to save ledger entry", slog.Int64("entry_id", entryID))
			return fmt.Errorf("failed to update ledger entry: %w", err)
		}
		updated = *existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Ledger entry updated", slog.Int64("entry_id", entryID))
	s.publish(ctx, events.EntryUpdated, updated)
	return &updated, nil
}

func (s *ledgerEntryService) DeleteEntry(ctx context.Context, entryID int64) error {
	var deleted domain.LedgerEntry

	err := s.withinTx(ctx, func(txCtx context.Context) error {
		existing, err := s.findEntry(txCtx, entryID)
		if err != nil {
			return err
		}
		if err := s.entryRepo.DeleteEntryByID(txCtx, entryID); err != nil {
			s.LogError(txCtx, err, "Failed to delete ledger entry", slog.Int64("entry_id", entryID))
			return fmt.Errorf("failed to delete ledger entry: %w", err)
		}
		deleted = *existing
		return nil
	})
	if err != nil {
		return err
	}

	s.LogInfo(ctx, "Ledger entry deleted", slog.Int64("entry_id", entryID))
	s.publish(ctx, events.EntryDeleted, deleted)
	return nil
}

func (s *ledgerEntryService) UpdateEntryStatus(ctx context.Context, entryID int64, rawStatus string) error {
	status, err := domain.ParseEntryStatus(rawStatus)
	if err != nil {
		s.LogWarn(ctx, err, "Rejected entry status", slog.String("status", rawStatus))
		return err
	}

	var changed domain.LedgerEntry

	err = s.withinTx(ctx, func(txCtx context.Context) error {
		existing, err := s.findEntry(txCtx, entryID)
		if err != nil {
			return err
		}
		if err := existing.SetStatus(status); err != nil {
			return err
		}
		existing.LastUpdatedAt = s.now()

		if err := s.entryRepo.SaveEntry(txCtx, *existing); err != nil {
			s.LogError(txCtx, err, "Failed to save entry status", slog.Int64("entry_id", entryID))
			return fmt.Errorf("failed to update ledger entry status: %w", err)
		}
		changed = *existing
		return nil
	})
	if err != nil {
		return err
	}

	s.LogInfo(ctx, "Ledger entry status changed", slog.Int64("entry_id", entryID), slog.String("status", string(status)))
	s.publish(ctx, events.EntryStatusChanged, changed)
	return nil
}

func (s *ledgerEntryService) GetEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error) {
	return s.findEntry(ctx, entryID)
}

// SearchEntries fails with NotFound when the filter names an owner the directory does not know.
func (s *ledgerEntryService) SearchEntries(ctx context.Context, params dto.SearchEntriesParams) ([]domain.LedgerEntry, error) {
	if params.OwnerID != nil {
		if _, err := s.userService.GetUserByID(ctx, *params.OwnerID); err != nil {
			return nil, err
		}
	}

	filter, err := dto.ToEntryFilter(params)
	if err != nil {
		return nil, err
	}
	if filter.IsEmpty() {
		s.LogDebug(ctx, "Searching ledger entries without constraints")
	} else {
		s.LogDebug(ctx, "Searching ledger entries", slog.Any("filter", filter))
	}

	entries, err := s.entryRepo.FindMatchingEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to search ledger entries")
		return nil, fmt.Errorf("failed to search ledger entries: %w", err)
	}
	return entries, nil
}

// GetOwnerBalance sums every entry of the owner regardless of status, CANCELED included.
func (s *ledgerEntryService) GetOwnerBalance(ctx context.Context, ownerID int64) (decimal.Decimal, error) {
	if _, err := s.userService.GetUserByID(ctx, ownerID); err != nil {
		return decimal.Zero, err
	}

	income, err := s.sumByKind(ctx, ownerID, domain.Income)
	if err != nil {
		return decimal.Zero, err
	}
	expense, err := s.sumByKind(ctx, ownerID, domain.Expense)
	if err != nil {
		return decimal.Zero, err
	}

	return income.Sub(expense), nil
}

func (s *ledgerEntryService) sumByKind(ctx context.Context, ownerID int64, kind domain.EntryKind) (decimal.Decimal, error) {
	sum, err := s.entryRepo.SumAmountByOwnerAndKind(ctx, ownerID, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum entry amounts", slog.Int64("owner_id", ownerID), slog.String("kind", string(kind)))
		return decimal.Zero, fmt.Errorf("failed to compute balance: %w", err)
	}
	if sum == nil {
		return decimal.Zero, nil
	}
	return *sum, nil
}

// findEntry loads an entry, reporting absence as a not found error that names the id.
func (s *ledgerEntryService) findEntry(ctx context.Context, entryID int64) (*domain.LedgerEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("no ledger entry found with id: %d", entryID))
		}
		s.LogError(ctx, err, "Failed to find ledger entry", slog.Int64("entry_id", entryID))
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	return entry, nil
}

// buildEntry turns a request into an unvalidated entry. The owner is resolved only when an id is given,
// so a missing owner surfaces from validation rather than from the lookup.
func (s *ledgerEntryService) buildEntry(ctx context.Context, req dto.LedgerEntryRequest) (domain.LedgerEntry, error) {
	entry := domain.LedgerEntry{Description: req.Description}

	if req.Month != nil {
		entry.Month = *req.Month
	}
	if req.Year != nil {
		entry.Year = *req.Year
	}
	if req.Amount != nil {
		entry.Amount = *req.Amount
	}

	if req.OwnerID != nil && *req.OwnerID != 0 {
		owner, err := s.userService.GetUserByID(ctx, *req.OwnerID)
		if err != nil {
			return domain.LedgerEntry{}, err
		}
		entry.Owner = owner
	}

	if req.Kind != nil && *req.Kind != "" {
		kind, err := domain.ParseEntryKind(*req.Kind)
		if err != nil {
			return domain.LedgerEntry{}, err
		}
		entry.Kind = kind
	}

	return entry, nil
}

// applyReplacement copies the mutable fields onto the stored entry.
// The registration date stays the one stamped at creation.
func applyReplacement(existing *domain.LedgerEntry, replacement domain.LedgerEntry) {
	existing.Description = replacement.Description
	existing.Month = replacement.Month
	existing.Year = replacement.Year
	existing.Owner = replacement.Owner
	existing.Amount = replacement.Amount
	existing.Kind = replacement.Kind
	existing.Status = replacement.Status
}

func (s *ledgerEntryService) withinTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if s.txManager == nil {
		return fn(ctx)
	}
	return s.txManager.WithinTx(ctx, fn)
}

// publish reports a committed mutation. Delivery failures are logged and never undo the mutation.
func (s *ledgerEntryService) publish(ctx context.Context, eventType events.EntryEventType, entry domain.LedgerEntry) {
	event := events.EntryEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		EntryID:    entry.EntryID,
		OwnerID:    entry.OwnerID(),
		Status:     entry.Status,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.PublishEntryEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish entry event",
			slog.String("event_type", string(eventType)),
			slog.Int64("entry_id", entry.EntryID))
	}
}

type nopEntryEventPublisher struct{}

func (nopEntryEventPublisher) PublishEntryEvent(context.Context, events.EntryEvent) error { return nil }
