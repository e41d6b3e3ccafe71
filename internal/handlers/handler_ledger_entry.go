package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	portssvc "github.com/SscSPs/personal_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/personal_ledger_app/internal/dto"
	"github.com/SscSPs/personal_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const msgInvalidStatus = "could not update the entry status, send a valid status"

// ledgerEntryHandler handles HTTP requests related to ledger entries.
type ledgerEntryHandler struct {
	entryService portssvc.LedgerEntrySvcFacade
}

// newLedgerEntryHandler creates a new ledgerEntryHandler.
func newLedgerEntryHandler(es portssvc.LedgerEntrySvcFacade) *ledgerEntryHandler {
	return &ledgerEntryHandler{entryService: es}
}

// registerLedgerEntryRoutes registers routes related to ledger entries.
func registerLedgerEntryRoutes(rg *gin.RouterGroup, es portssvc.LedgerEntrySvcFacade) {
	h := newLedgerEntryHandler(es)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.searchEntries)
		entries.GET("/:id", h.getEntry)
		entries.PUT("/:id", h.updateEntry)
		entries.PATCH("/:id/status", h.updateEntryStatus)
		entries.DELETE("/:id", h.deleteEntry)
	}
}

// createEntry godoc
// @Summary Create a ledger entry
// @Description Stores a new entry. Status is always PENDING and the registration date is today.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.LedgerEntryRequest true "Entry details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Owner not found"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Security BearerAuth
// @Router /entries [post]
func (h *ledgerEntryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, logger, err)
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create entry")
		return
	}

	logger.Info("Ledger entry created successfully", slog.Int64("entry_id", entry.EntryID))
	c.Header("Location", fmt.Sprintf("/api/v1/entries/%d", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a ledger entry
// @Tags entries
// @Produce  json
// @Param   id path int true "Entry ID"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid entry ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Security BearerAuth
// @Router /entries/{id} [get]
func (h *ledgerEntryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// searchEntries godoc
// @Summary Search ledger entries
// @Description Returns entries matching every given field. Description matches as a case-insensitive substring.
// @Description The owner defaults to the authenticated user.
// @Tags entries
// @Produce  json
// @Param   description query string false "Description fragment"
// @Param   month query int false "Month (1-12)"
// @Param   year query int false "Year"
// @Param   owner query int false "Owner ID"
// @Param   kind query string false "INCOME or EXPENSE"
// @Param   status query string false "PENDING, SETTLED or CANCELED"
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Owner not found"
// @Failure 500 {object} map[string]string "Failed to search entries"
// @Security BearerAuth
// @Router /entries [get]
func (h *ledgerEntryHandler) searchEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SearchEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindingError(c, logger, err)
		return
	}

	if params.OwnerID == nil {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			logger.Error("Authenticated user ID not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		params.OwnerID = &userID
	}

	entries, err := h.entryService.SearchEntries(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to search entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponses(entries))
}

// updateEntry godoc
// @Summary Update a ledger entry
// @Description Replaces the mutable fields of an entry. The registration date is kept.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   id path int true "Entry ID"
// @Param   entry body dto.LedgerEntryRequest true "Replacement entry"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry or owner not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Security BearerAuth
// @Router /entries/{id} [put]
func (h *ledgerEntryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.LedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, logger, err)
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), entryID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// updateEntryStatus godoc
// @Summary Change the status of a ledger entry
// @Tags entries
// @Param   id path int true "Entry ID"
// @Param   status query string true "PENDING, SETTLED or CANCELED"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry status"
// @Security BearerAuth
// @Router /entries/{id}/status [patch]
func (h *ledgerEntryHandler) updateEntryStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var params dto.UpdateEntryStatusParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Missing status parameter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidStatus})
		return
	}

	err := h.entryService.UpdateEntryStatus(c.Request.Context(), entryID, params.Status)
	if err != nil {
		if errors.Is(err, apperrors.ErrBadEnum) {
			logger.Warn("Unknown entry status", slog.String("status", params.Status))
			c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidStatus})
			return
		}
		respondWithError(c, logger, err, "Failed to update entry status")
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteEntry godoc
// @Summary Delete a ledger entry
// @Tags entries
// @Param   id path int true "Entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid entry ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Security BearerAuth
// @Router /entries/{id} [delete]
func (h *ledgerEntryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		respondWithError(c, logger, err, "Failed to delete entry")
		return
	}

	c.Status(http.StatusNoContent)
}
