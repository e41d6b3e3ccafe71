package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a single income or expense record owned by a user.
type LedgerEntry struct {
	EntryID          int64           `json:"entryID"`          // Primary Key, 0 until persisted
	Description      string          `json:"description"`      // Non-blank
	Month            int             `json:"month"`            // 1..12
	Year             int             `json:"year"`             // Four decimal digits
	Owner            *User           `json:"owner"`            // FK -> users.user_id (Not Null)
	Amount           decimal.Decimal `json:"amount"`           // Strictly positive
	RegistrationDate time.Time       `json:"registrationDate"` // Stamped once on creation
	Kind             EntryKind       `json:"kind"`             // INCOME or EXPENSE
	Status           EntryStatus     `json:"status"`           // Default: PENDING
	AuditFields
}

// OwnerID returns the identifier of the owning user, or 0 when no owner is attached.
func (e LedgerEntry) OwnerID() int64 {
	if e.Owner == nil {
		return 0
	}
	return e.Owner.UserID
}

// Equal compares entries by identifier only. Entries that were never persisted are never equal.
func (e LedgerEntry) Equal(other LedgerEntry) bool {
	return e.EntryID != 0 && e.EntryID == other.EntryID
}

// RegistrationDay truncates t to a calendar date in UTC.
func RegistrationDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
