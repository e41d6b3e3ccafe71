package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_ledger_app/internal/models"
	"github.com/SscSPs/personal_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerEntryRepository struct {
	BaseRepository
}

func newPgxLedgerEntryRepository(db *pgxpool.Pool) *PgxLedgerEntryRepository {
	return &PgxLedgerEntryRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxLedgerEntryRepository implements portsrepo.LedgerEntryRepositoryFacade
var _ portsrepo.LedgerEntryRepositoryFacade = (*PgxLedgerEntryRepository)(nil)

const selectEntriesWithOwner = `
        SELECT e.entry_id, e.description, e.month, e.year, e.owner_id, e.amount, e.registration_date,
               e.kind, e.status, e.created_at, e.last_updated_at,
               u.name, u.email, u.credential, u.created_at, u.last_updated_at
        FROM ledger_entries e
        JOIN users u ON u.user_id = e.owner_id`

func (r *PgxLedgerEntryRepository) InsertEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(*entry)
	query := `
        INSERT INTO ledger_entries (description, month, year, owner_id, amount, registration_date,
                                    kind, status, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING entry_id;
    `
	err := r.DB(ctx).QueryRow(ctx, query,
		m.Description, m.Month, m.Year, m.OwnerID, m.Amount, m.RegistrationDate,
		m.Kind, m.Status, m.CreatedAt, m.LastUpdatedAt,
	).Scan(&entry.EntryID)
	if err != nil {
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}
	return nil
}

// SaveEntry upserts by entry_id.
func (r *PgxLedgerEntryRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
        INSERT INTO ledger_entries (entry_id, description, month, year, owner_id, amount, registration_date,
                                    kind, status, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (entry_id) DO UPDATE SET
            description = EXCLUDED.description,
            month = EXCLUDED.month,
            year = EXCLUDED.year,
            owner_id = EXCLUDED.owner_id,
            amount = EXCLUDED.amount,
            registration_date = EXCLUDED.registration_date,
            kind = EXCLUDED.kind,
            status = EXCLUDED.status,
            last_updated_at = EXCLUDED.last_updated_at;
    `
	_, err := r.DB(ctx).Exec(ctx, query,
		m.EntryID, m.Description, m.Month, m.Year, m.OwnerID, m.Amount, m.RegistrationDate,
		m.Kind, m.Status, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save ledger entry %d: %w", entry.EntryID, err)
	}
	return nil
}

func (r *PgxLedgerEntryRepository) DeleteEntryByID(ctx context.Context, entryID int64) error {
	tag, err := r.DB(ctx).Exec(ctx, `DELETE FROM ledger_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry %d: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLedgerEntryRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error) {
	query := selectEntriesWithOwner + `
        WHERE e.entry_id = $1;`

	entry, err := scanEntryWithOwner(r.DB(ctx).QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry %d: %w", entryID, err)
	}
	return &entry, nil
}

func (r *PgxLedgerEntryRepository) FindMatchingEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.LedgerEntry, error) {
	where, args := buildEntryFilter(filter)
	query := selectEntriesWithOwner + where + `
        ORDER BY e.entry_id;`

	rows, err := r.DB(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.LedgerEntry, 0)
	for rows.Next() {
		entry, err := scanEntryWithOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return entries, nil
}

func (r *PgxLedgerEntryRepository) SumAmountByOwnerAndKind(ctx context.Context, ownerID int64, kind domain.EntryKind) (*decimal.Decimal, error) {
	var sum *decimal.Decimal // NULL when the owner has no entries of this kind
	query := `SELECT SUM(amount) FROM ledger_entries WHERE owner_id = $1 AND kind = $2;`
	if err := r.DB(ctx).QueryRow(ctx, query, ownerID, string(kind)).Scan(&sum); err != nil {
		return nil, fmt.Errorf("failed to sum ledger entries: %w", err)
	}
	return sum, nil
}

// buildEntryFilter renders the populated fields of filter as a WHERE clause with positional arguments.
// Description is matched case-insensitively as a substring; every other field by equality.
func buildEntryFilter(filter domain.EntryFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	add := func(format string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(format, len(args)))
	}

	if filter.Description != nil {
		add("e.description ILIKE '%%' || $%d || '%%'", escapeLike(*filter.Description))
	}
	if filter.Month != nil {
		add("e.month = $%d", *filter.Month)
	}
	if filter.Year != nil {
		add("e.year = $%d", *filter.Year)
	}
	if filter.OwnerID != nil {
		add("e.owner_id = $%d", *filter.OwnerID)
	}
	if filter.Kind != nil {
		add("e.kind = $%d", string(*filter.Kind))
	}
	if filter.Status != nil {
		add("e.status = $%d", string(*filter.Status))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "\n        WHERE " + strings.Join(conditions, " AND "), args
}

// escapeLike makes LIKE wildcards in user input match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func scanEntryWithOwner(row pgx.Row) (domain.LedgerEntry, error) {
	var (
		m     models.LedgerEntry
		owner models.User
	)
	err := row.Scan(
		&m.EntryID, &m.Description, &m.Month, &m.Year, &m.OwnerID, &m.Amount, &m.RegistrationDate,
		&m.Kind, &m.Status, &m.CreatedAt, &m.LastUpdatedAt,
		&owner.Name, &owner.Email, &owner.Credential, &owner.CreatedAt, &owner.LastUpdatedAt,
	)
	if err != nil {
		return domain.LedgerEntry{}, err
	}
	owner.UserID = m.OwnerID
	domainOwner := mapping.ToDomainUser(owner)
	return mapping.ToDomainLedgerEntry(m, &domainOwner), nil
}
