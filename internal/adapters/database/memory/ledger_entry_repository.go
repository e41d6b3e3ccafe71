package memory

import (
	"context"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// LedgerEntryRepository is the in-memory implementation of portsrepo.LedgerEntryRepositoryFacade.
// Entries are stored with only the owner id; reads attach the current owner record.
type LedgerEntryRepository struct {
	store *Store
}

// NewLedgerEntryRepository creates a ledger entry repository over store.
func NewLedgerEntryRepository(store *Store) *LedgerEntryRepository {
	return &LedgerEntryRepository{store: store}
}

var _ portsrepo.LedgerEntryRepositoryFacade = (*LedgerEntryRepository)(nil)

func (r *LedgerEntryRepository) InsertEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	defer r.store.lock(ctx)()

	if err := r.checkOwner(*entry); err != nil {
		return err
	}
	r.store.nextEntryID++
	entry.EntryID = r.store.nextEntryID
	r.store.entries[entry.EntryID] = detachOwner(*entry)
	r.store.entryOrder = append(r.store.entryOrder, entry.EntryID)
	return nil
}

func (r *LedgerEntryRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	defer r.store.lock(ctx)()

	if err := r.checkOwner(entry); err != nil {
		return err
	}
	if _, ok := r.store.entries[entry.EntryID]; !ok {
		r.store.entryOrder = append(r.store.entryOrder, entry.EntryID)
		if entry.EntryID > r.store.nextEntryID {
			r.store.nextEntryID = entry.EntryID
		}
	}
	r.store.entries[entry.EntryID] = detachOwner(entry)
	return nil
}

func (r *LedgerEntryRepository) DeleteEntryByID(ctx context.Context, entryID int64) error {
	defer r.store.lock(ctx)()

	if _, ok := r.store.entries[entryID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.store.entries, entryID)
	for i, id := range r.store.entryOrder {
		if id == entryID {
			r.store.entryOrder = append(r.store.entryOrder[:i:i], r.store.entryOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (r *LedgerEntryRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error) {
	defer r.store.lock(ctx)()

	entry, ok := r.store.entries[entryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	entry = r.attachOwner(entry)
	return &entry, nil
}

func (r *LedgerEntryRepository) FindMatchingEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.LedgerEntry, error) {
	defer r.store.lock(ctx)()

	all := make([]domain.LedgerEntry, 0, len(r.store.entryOrder))
	for _, id := range r.store.entryOrder {
		all = append(all, r.attachOwner(r.store.entries[id]))
	}
	return domain.FilterEntries(all, filter), nil
}

func (r *LedgerEntryRepository) SumAmountByOwnerAndKind(ctx context.Context, ownerID int64, kind domain.EntryKind) (*decimal.Decimal, error) {
	defer r.store.lock(ctx)()

	var sum *decimal.Decimal
	for _, id := range r.store.entryOrder {
		entry := r.store.entries[id]
		if entry.OwnerID() != ownerID || entry.Kind != kind {
			continue
		}
		total := entry.Amount
		if sum != nil {
			total = sum.Add(entry.Amount)
		}
		sum = &total
	}
	return sum, nil
}

// checkOwner mirrors the foreign key on ledger_entries.owner_id.
func (r *LedgerEntryRepository) checkOwner(entry domain.LedgerEntry) error {
	if _, ok := r.store.users[entry.OwnerID()]; !ok {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *LedgerEntryRepository) attachOwner(entry domain.LedgerEntry) domain.LedgerEntry {
	if entry.Owner == nil {
		return entry
	}
	if owner, ok := r.store.users[entry.Owner.UserID]; ok {
		entry.Owner = &owner
	}
	return entry
}

func detachOwner(entry domain.LedgerEntry) domain.LedgerEntry {
	if entry.Owner != nil {
		entry.Owner = &domain.User{UserID: entry.Owner.UserID}
	}
	return entry
}
