package dto

import (
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEntryRequest is the caller-supplied shape of a ledger entry, used for create and update.
// Pointers distinguish omitted fields from zero values; the business rules decide what is missing.
// Registration date and id are never accepted from the caller.
type LedgerEntryRequest struct {
	Description string           `json:"description"`
	Month       *int             `json:"month"`
	Year        *int             `json:"year"`
	OwnerID     *int64           `json:"owner"`
	Amount      *decimal.Decimal `json:"amount" swaggertype:"string"`
	Kind        *string          `json:"kind"`   // INCOME or EXPENSE
	Status      *string          `json:"status"` // Ignored on create
}

// SearchEntriesParams defines the query parameters accepted by the entry search.
type SearchEntriesParams struct {
	Description *string `form:"description"`
	Month       *int    `form:"month"`
	Year        *int    `form:"year"`
	OwnerID     *int64  `form:"owner"`
	Kind        *string `form:"kind"`
	Status      *string `form:"status"`
}

// UpdateEntryStatusParams carries the target status of a status change.
type UpdateEntryStatusParams struct {
	Status string `form:"status" binding:"required"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID          int64           `json:"entryID"`
	Description      string          `json:"description"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	OwnerID          int64           `json:"owner"`
	Amount           decimal.Decimal `json:"amount" swaggertype:"string"`
	RegistrationDate string          `json:"registrationDate"` // YYYY-MM-DD
	Kind             string          `json:"kind"`
	Status           string          `json:"status"`
}

// BalanceResponse defines the data returned for an owner's balance.
type BalanceResponse struct {
	OwnerID int64           `json:"owner"`
	Balance decimal.Decimal `json:"balance" swaggertype:"string"`
}

// ToEntryFilter builds the sparse domain filter for a search. Kind and status, when
// present, must be recognized values.
func ToEntryFilter(params SearchEntriesParams) (domain.EntryFilter, error) {
	filter := domain.EntryFilter{
		Description: params.Description,
		Month:       params.Month,
		Year:        params.Year,
		OwnerID:     params.OwnerID,
	}
	if params.Kind != nil {
		kind, err := domain.ParseEntryKind(*params.Kind)
		if err != nil {
			return domain.EntryFilter{}, err
		}
		filter.Kind = &kind
	}
	if params.Status != nil {
		status, err := domain.ParseEntryStatus(*params.Status)
		if err != nil {
			return domain.EntryFilter{}, err
		}
		filter.Status = &status
	}
	return filter, nil
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to LedgerEntryResponse DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:          e.EntryID,
		Description:      e.Description,
		Month:            e.Month,
		Year:             e.Year,
		OwnerID:          e.OwnerID(),
		Amount:           e.Amount,
		RegistrationDate: e.RegistrationDate.Format("2006-01-02"),
		Kind:             string(e.Kind),
		Status:           string(e.Status),
	}
}

// ToLedgerEntryResponses converts a slice of domain.LedgerEntry to []LedgerEntryResponse.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToLedgerEntryResponse(&e)
	}
	return responses
}
