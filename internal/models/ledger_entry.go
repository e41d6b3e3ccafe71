package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a row of the ledger_entries table.
type LedgerEntry struct {
	EntryID          int64           `db:"entry_id"`
	Description      string          `db:"description"`
	Month            int             `db:"month"`
	Year             int             `db:"year"`
	OwnerID          int64           `db:"owner_id"`
	Amount           decimal.Decimal `db:"amount"`
	RegistrationDate time.Time       `db:"registration_date"` // DATE column
	Kind             string          `db:"kind"`
	Status           string          `db:"status"`
	AuditFields
}
