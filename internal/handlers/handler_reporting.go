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

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.LedgerSvcFacade
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.LedgerSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// getReport godoc
// @Summary Generate a financial report
// @Description Totals debits and credits per currency over account trees. Without rootAccountID the statement's category roots are used.
// @Tags reports
// @Produce json
// @Param organizationID path string true "Organization ID"
// @Param statement path string true "balance-sheet or income-statement"
// @Param rootAccountID query []string false "Root account IDs" collectionFormat(multi)
// @Param asOf query string false "Report timestamp (RFC 3339 or YYYY-MM-DD)" default(now)
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Organization or account not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /ledger/{organizationID}/reports/{statement} [get]
func (h *reportingHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID, ok := parseIDParam(c, logger, "organizationID")
	if !ok {
		return
	}

	statement, err := domain.ParseFinancialStatement(c.Param("statement"))
	if err != nil {
		logger.Warn("Invalid statement", slog.String("statement", c.Param("statement")))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for report", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	rootIDs, err := params.ParseRootAccountIDs()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	asOf, err := params.ParseAsOf()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger = logger.With(
		slog.String("organization_id", orgID.String()),
		slog.String("statement", string(statement)),
		slog.Int("root_count", len(rootIDs)),
	)
	logger.Info("Received request to generate report")

	r, err := h.reportingService.GenerateReport(c.Request.Context(), orgID, statement, asOf, rootIDs...)
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}
	currencies, err := h.reportingService.ListCurrencies(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}

	logger.Info("Report generated successfully", slog.Int("root_accounts", len(r.AccountTotals)))
	c.JSON(http.StatusOK, dto.ToReportResponse(r, dto.NewCurrencies(currencies)))
}
