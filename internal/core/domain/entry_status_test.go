package domain_test

import (
	"testing"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntryStatus(t *testing.T) {
	for _, raw := range []string{"PENDING", "SETTLED", "CANCELED"} {
		status, err := domain.ParseEntryStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, domain.EntryStatus(raw), status)
	}

	for _, raw := range []string{"", "pending", "EFETIVADO", "DONE"} {
		_, err := domain.ParseEntryStatus(raw)
		require.Error(t, err, raw)
		assert.ErrorIs(t, err, apperrors.ErrBadEnum)
		assert.NotErrorIs(t, err, apperrors.ErrValidation)
	}
}

func TestLedgerEntry_SetStatus_AnyToAny(t *testing.T) {
	statuses := []domain.EntryStatus{domain.StatusPending, domain.StatusSettled, domain.StatusCanceled}
	for _, from := range statuses {
		for _, to := range statuses {
			entry := validEntry()
			entry.Status = from
			require.NoError(t, entry.SetStatus(to))
			assert.Equal(t, to, entry.Status)
		}
	}
}

func TestLedgerEntry_SetStatus_OnlyStatusChanges(t *testing.T) {
	entry := validEntry()
	entry.EntryID = 42
	before := entry

	require.NoError(t, entry.SetStatus(domain.StatusSettled))

	assert.Equal(t, domain.StatusSettled, entry.Status)
	entry.Status = before.Status
	assert.Equal(t, before, entry)
}

func TestLedgerEntry_SetStatus_Unknown(t *testing.T) {
	entry := validEntry()
	err := entry.SetStatus(domain.EntryStatus("ARCHIVED"))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadEnum)
	assert.Equal(t, domain.StatusPending, entry.Status)
}

func TestParseEntryKind(t *testing.T) {
	kind, err := domain.ParseEntryKind("EXPENSE")
	require.NoError(t, err)
	assert.Equal(t, domain.Expense, kind)

	_, err = domain.ParseEntryKind("RECEITA")
	assert.ErrorIs(t, err, apperrors.ErrBadEnum)
}
