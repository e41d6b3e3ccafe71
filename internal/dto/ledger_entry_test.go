package dto_test

import (
	"testing"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/SscSPs/personal_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEntryFilter(t *testing.T) {
	description := "desc"
	month := 4
	owner := int64(9)
	kind := "EXPENSE"

	filter, err := dto.ToEntryFilter(dto.SearchEntriesParams{
		Description: &description,
		Month:       &month,
		OwnerID:     &owner,
		Kind:        &kind,
	})

	require.NoError(t, err)
	assert.Equal(t, "desc", *filter.Description)
	assert.Equal(t, 4, *filter.Month)
	assert.Nil(t, filter.Year)
	assert.Equal(t, int64(9), *filter.OwnerID)
	assert.Equal(t, domain.Expense, *filter.Kind)
	assert.Nil(t, filter.Status)
}

func TestToEntryFilter_UnknownStatus(t *testing.T) {
	status := "EFETIVADO"
	_, err := dto.ToEntryFilter(dto.SearchEntriesParams{Status: &status})
	assert.ErrorIs(t, err, apperrors.ErrBadEnum)
}

func TestToLedgerEntryResponse(t *testing.T) {
	entry := domain.LedgerEntry{
		EntryID:          3,
		Description:      "Salary",
		Month:            6,
		Year:             2024,
		Owner:            &domain.User{UserID: 11, Credential: "secret"},
		Amount:           decimal.RequireFromString("1500.25"),
		RegistrationDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Kind:             domain.Income,
		Status:           domain.StatusSettled,
	}

	resp := dto.ToLedgerEntryResponse(&entry)

	assert.Equal(t, int64(3), resp.EntryID)
	assert.Equal(t, int64(11), resp.OwnerID)
	assert.Equal(t, "2024-06-01", resp.RegistrationDate)
	assert.Equal(t, "INCOME", resp.Kind)
	assert.Equal(t, "SETTLED", resp.Status)
	assert.True(t, decimal.RequireFromString("1500.25").Equal(resp.Amount))
}
