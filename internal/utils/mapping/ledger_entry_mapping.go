package mapping

import (
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/SscSPs/personal_ledger_app/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry.
// Only the owner's id is kept; the registration date is reduced to its calendar day.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:          d.EntryID,
		Description:      d.Description,
		Month:            d.Month,
		Year:             d.Year,
		OwnerID:          d.OwnerID(),
		Amount:           d.Amount,
		RegistrationDate: domain.RegistrationDay(d.RegistrationDate),
		Kind:             string(d.Kind),
		Status:           string(d.Status),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry with the given owner attached.
// When owner is nil a stub carrying only the owner id is attached.
func ToDomainLedgerEntry(m models.LedgerEntry, owner *domain.User) domain.LedgerEntry {
	if owner == nil {
		owner = &domain.User{UserID: m.OwnerID}
	}
	return domain.LedgerEntry{
		EntryID:          m.EntryID,
		Description:      m.Description,
		Month:            m.Month,
		Year:             m.Year,
		Owner:            owner,
		Amount:           m.Amount,
		RegistrationDate: domain.RegistrationDay(m.RegistrationDate),
		Kind:             domain.EntryKind(m.Kind),
		Status:           domain.EntryStatus(m.Status),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
