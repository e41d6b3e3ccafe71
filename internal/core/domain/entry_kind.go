package domain

import (
	"fmt"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
)

// EntryKind says whether a ledger entry adds to or subtracts from the owner's balance.
type EntryKind string

const (
	Income  EntryKind = "INCOME"
	Expense EntryKind = "EXPENSE"
)

// IsValid reports whether k is one of the recognized kinds.
func (k EntryKind) IsValid() bool {
	return k == Income || k == Expense
}

// ParseEntryKind converts a raw value into an EntryKind.
func ParseEntryKind(raw string) (EntryKind, error) {
	kind := EntryKind(raw)
	if !kind.IsValid() {
		return "", apperrors.NewBadEnumError(fmt.Sprintf("unrecognized entry kind: %q", raw))
	}
	return kind, nil
}
