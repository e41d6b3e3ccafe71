package domain

import (
	"fmt"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
)

// EntryStatus is the lifecycle marker of a ledger entry.
//
// PENDING is the initial status. SETTLED and CANCELED are final in practice but
// nothing forbids moving between any two statuses; the only rule is that the
// target status must be one of the three recognized values.
type EntryStatus string

const (
	StatusPending  EntryStatus = "PENDING"
	StatusSettled  EntryStatus = "SETTLED"
	StatusCanceled EntryStatus = "CANCELED"
)

// IsValid reports whether s is one of the recognized statuses.
func (s EntryStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusSettled, StatusCanceled:
		return true
	}
	return false
}

// ParseEntryStatus converts a raw value into an EntryStatus.
// An unknown value yields an apperrors.ErrBadEnum error, not a validation error.
func ParseEntryStatus(raw string) (EntryStatus, error) {
	status := EntryStatus(raw)
	if !status.IsValid() {
		return "", apperrors.NewBadEnumError(fmt.Sprintf("unrecognized entry status: %q", raw))
	}
	return status, nil
}

// SetStatus moves the entry to newStatus. Any recognized status may follow any other.
// No other field is touched.
func (e *LedgerEntry) SetStatus(newStatus EntryStatus) error {
	if !newStatus.IsValid() {
		return apperrors.NewBadEnumError(fmt.Sprintf("unrecognized entry status: %q", string(newStatus)))
	}
	e.Status = newStatus
	return nil
}
