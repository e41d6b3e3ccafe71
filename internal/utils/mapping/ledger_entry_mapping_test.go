package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/SscSPs/personal_ledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLedgerEntryMapping(t *testing.T) {
	owner := &domain.User{UserID: 4, Name: "Owner", Email: "owner@example.com"}
	entry := domain.LedgerEntry{
		EntryID:          10,
		Description:      "Salary",
		Month:            8,
		Year:             2024,
		Owner:            owner,
		Amount:           decimal.RequireFromString("10.5"),
		RegistrationDate: time.Date(2024, 8, 3, 17, 30, 0, 0, time.UTC),
		Kind:             domain.Income,
		Status:           domain.StatusSettled,
	}

	model := mapping.ToModelLedgerEntry(entry)
	assert.Equal(t, int64(4), model.OwnerID)
	assert.Equal(t, "INCOME", model.Kind)
	assert.Equal(t, time.Date(2024, 8, 3, 0, 0, 0, 0, time.UTC), model.RegistrationDate)

	back := mapping.ToDomainLedgerEntry(model, owner)
	assert.Equal(t, owner, back.Owner)
	assert.Equal(t, domain.StatusSettled, back.Status)
	assert.True(t, entry.Equal(back))

	stub := mapping.ToDomainLedgerEntry(model, nil)
	assert.Equal(t, int64(4), stub.OwnerID())
}
