package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/aba_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/aba_ledger/internal/core/ports/services"
	"github.com/SscSPs/aba_ledger/internal/dto"
	"github.com/SscSPs/aba_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests that write or read the journal.
type journalHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(ls portssvc.LedgerSvcFacade) *journalHandler {
	return &journalHandler{ledgerService: ls}
}

// registerJournalRoutes registers routes related to the journal.
func registerJournalRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newJournalHandler(ledgerService)

	rg.GET("/ulid", h.getULID)

	journal := rg.Group("/journal")
	{
		journal.POST("", h.submitEntry)
		journal.POST("/sample", h.seedSample)
		journal.GET("", h.listEntries)
	}
}

// getULID godoc
// @Summary Generate a journal entry id
// @Description Returns a new ULID that sorts after every accepted journal entry
// @Tags journal
// @Produce json
// @Success 200 {object} dto.ULIDResponse
// @Failure 500 {object} map[string]string "Failed to generate id"
// @Router /ulid [get]
func (h *journalHandler) getULID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := h.ledgerService.NextEntryID(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to generate id")
		return
	}
	c.JSON(http.StatusOK, dto.ULIDResponse{ULID: id.String()})
}

// submitEntry godoc
// @Summary Submit a journal entry
// @Description Validates a journal entry against the organization's ledger and appends it to the journal
// @Tags journal
// @Accept json
// @Produce json
// @Param entry body dto.SubmitJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input or rejected by the ledger"
// @Failure 404 {object} map[string]string "Referenced organization, account, contact or currency not found"
// @Failure 409 {object} map[string]string "Entity or entry already exists"
// @Failure 500 {object} map[string]string "Failed to submit journal entry"
// @Router /journal [post]
func (h *journalHandler) submitEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := req.ToDomain()
	if err != nil {
		logger.Warn("Invalid journal entry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger = logger.With(
		slog.String("organization_id", entry.OrganizationID.String()),
		slog.String("action", domain.ActionName(entry.Action)),
	)
	logger.Info("Received journal entry")

	entry, err = h.ledgerService.SubmitEntry(c.Request.Context(), entry)
	if err != nil {
		respondError(c, logger, err, "Failed to submit journal entry")
		return
	}
	logger = logger.With(slog.String("entry_id", entry.ID.String()))

	resp, err := dto.ToJournalEntryResponse(entry)
	if err != nil {
		respondError(c, logger, err, "Failed to encode journal entry")
		return
	}
	logger.Info("Journal entry accepted")
	c.JSON(http.StatusCreated, resp)
}

// seedSample godoc
// @Summary Load the sample journal
// @Description Creates a sample organization with a chart of accounts and two transactions
// @Tags journal
// @Produce json
// @Success 201 {object} dto.SeedSampleResponse
// @Failure 500 {object} map[string]string "Failed to load sample journal"
// @Router /journal/sample [post]
func (h *journalHandler) seedSample(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	data, err := h.ledgerService.SeedSample(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to load sample journal")
		return
	}
	c.JSON(http.StatusCreated, dto.SeedSampleResponse{
		OrganizationID: data.OrganizationID.String(),
		Entries:        len(data.Entries),
	})
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists journal entries in id order with token pagination
// @Tags journal
// @Produce json
// @Param limit query int false "Page size (max 500)" default(50)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list journal entries"
// @Router /journal [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListJournalEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.ledgerService.ListEntries(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list journal entries")
		return
	}

	resp := dto.ListJournalEntriesResponse{Entries: make([]dto.JournalEntryResponse, 0, len(page.Entries))}
	for _, entry := range page.Entries {
		r, err := dto.ToJournalEntryResponse(entry)
		if err != nil {
			respondError(c, logger, err, "Failed to encode journal entry")
			return
		}
		resp.Entries = append(resp.Entries, r)
	}
	if page.NextToken != "" {
		resp.NextToken = &page.NextToken
	}
	c.JSON(http.StatusOK, resp)
}
