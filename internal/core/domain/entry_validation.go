package domain

import (
	"strconv"
	"strings"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Messages returned by Validate, in rule order.
const (
	MsgInvalidDescription = "invalid description"
	MsgInvalidMonth       = "invalid month"
	MsgInvalidYear        = "invalid year"
	MsgOwnerRequired      = "owner required"
	MsgInvalidAmount      = "amount must be greater than 0"
	MsgKindRequired       = "entry kind required"
)

// Validate checks the entry against the business rules. Rules run in a fixed order
// and the first failing rule is the only one reported.
// The owner is expected to be resolved by the caller; Validate never touches storage.
func (e LedgerEntry) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return apperrors.NewValidationError(MsgInvalidDescription)
	}
	if e.Month < 1 || e.Month > 12 {
		return apperrors.NewValidationError(MsgInvalidMonth)
	}
	if !hasFourDigits(e.Year) {
		return apperrors.NewValidationError(MsgInvalidYear)
	}
	if e.Owner == nil || e.Owner.UserID == 0 {
		return apperrors.NewValidationError(MsgOwnerRequired)
	}
	if !e.Amount.GreaterThan(decimal.Zero) {
		return apperrors.NewValidationError(MsgInvalidAmount)
	}
	if e.Kind == "" {
		return apperrors.NewValidationError(MsgKindRequired)
	}
	return nil
}

// hasFourDigits is a digit-count rule on the decimal form, not a calendar check.
// A leading minus sign is not a digit, so negative years never pass.
func hasFourDigits(year int) bool {
	s := strconv.Itoa(year)
	return len(s) == 4 && s[0] != '-'
}
