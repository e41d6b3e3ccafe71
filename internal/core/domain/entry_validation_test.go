package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntry() domain.LedgerEntry {
	return domain.LedgerEntry{
		Description:      "descricao",
		Month:            1,
		Year:             2000,
		Owner:            &domain.User{UserID: 1, Name: "usuario", Email: "usuario@email.com"},
		Amount:           decimal.NewFromInt(10),
		RegistrationDate: domain.RegistrationDay(time.Now()),
		Kind:             domain.Income,
		Status:           domain.StatusPending,
	}
}

func TestLedgerEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *domain.LedgerEntry)
		wantMsg string
	}{
		{name: "valid entry", mutate: func(e *domain.LedgerEntry) {}},
		{name: "empty description", mutate: func(e *domain.LedgerEntry) { e.Description = "" }, wantMsg: domain.MsgInvalidDescription},
		{name: "blank description", mutate: func(e *domain.LedgerEntry) { e.Description = "  \t " }, wantMsg: domain.MsgInvalidDescription},
		{name: "month missing", mutate: func(e *domain.LedgerEntry) { e.Month = 0 }, wantMsg: domain.MsgInvalidMonth},
		{name: "month above range", mutate: func(e *domain.LedgerEntry) { e.Month = 13 }, wantMsg: domain.MsgInvalidMonth},
		{name: "month negative", mutate: func(e *domain.LedgerEntry) { e.Month = -1 }, wantMsg: domain.MsgInvalidMonth},
		{name: "month lower bound", mutate: func(e *domain.LedgerEntry) { e.Month = 1 }},
		{name: "month upper bound", mutate: func(e *domain.LedgerEntry) { e.Month = 12 }},
		{name: "year missing", mutate: func(e *domain.LedgerEntry) { e.Year = 0 }, wantMsg: domain.MsgInvalidYear},
		{name: "year three digits", mutate: func(e *domain.LedgerEntry) { e.Year = 123 }, wantMsg: domain.MsgInvalidYear},
		{name: "year 999", mutate: func(e *domain.LedgerEntry) { e.Year = 999 }, wantMsg: domain.MsgInvalidYear},
		{name: "year five digits", mutate: func(e *domain.LedgerEntry) { e.Year = 10000 }, wantMsg: domain.MsgInvalidYear},
		{name: "negative year with four characters", mutate: func(e *domain.LedgerEntry) { e.Year = -123 }, wantMsg: domain.MsgInvalidYear},
		{name: "year 1000", mutate: func(e *domain.LedgerEntry) { e.Year = 1000 }},
		{name: "year 9999", mutate: func(e *domain.LedgerEntry) { e.Year = 9999 }},
		{name: "owner missing", mutate: func(e *domain.LedgerEntry) { e.Owner = nil }, wantMsg: domain.MsgOwnerRequired},
		{name: "owner without id", mutate: func(e *domain.LedgerEntry) { e.Owner = &domain.User{Name: "x"} }, wantMsg: domain.MsgOwnerRequired},
		{name: "amount zero", mutate: func(e *domain.LedgerEntry) { e.Amount = decimal.Zero }, wantMsg: domain.MsgInvalidAmount},
		{name: "amount negative", mutate: func(e *domain.LedgerEntry) { e.Amount = decimal.NewFromInt(-5) }, wantMsg: domain.MsgInvalidAmount},
		{name: "amount fractional", mutate: func(e *domain.LedgerEntry) { e.Amount = decimal.RequireFromString("0.01") }},
		{name: "kind missing", mutate: func(e *domain.LedgerEntry) { e.Kind = "" }, wantMsg: domain.MsgKindRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry()
			tt.mutate(&entry)

			err := entry.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestLedgerEntry_Validate_FirstFailureWins(t *testing.T) {
	entry := domain.LedgerEntry{}

	err := entry.Validate()
	require.Error(t, err)
	assert.Equal(t, domain.MsgInvalidDescription, err.Error())

	entry.Description = "Descrição do lançamento"
	assert.Equal(t, domain.MsgInvalidMonth, entry.Validate().Error())

	entry.Month = 5
	assert.Equal(t, domain.MsgInvalidYear, entry.Validate().Error())

	entry.Year = 2000
	assert.Equal(t, domain.MsgOwnerRequired, entry.Validate().Error())

	entry.Owner = &domain.User{UserID: 1}
	assert.Equal(t, domain.MsgInvalidAmount, entry.Validate().Error())

	entry.Amount = decimal.NewFromInt(10)
	assert.Equal(t, domain.MsgKindRequired, entry.Validate().Error())

	entry.Kind = domain.Expense
	assert.NoError(t, entry.Validate())
}
