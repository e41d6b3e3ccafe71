package pgsql

import (
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	entryRepo := newPgxLedgerEntryRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:  userRepo,
		EntryRepo: entryRepo,
		TxManager: &BaseRepository{Pool: dbPool},
	}
}
