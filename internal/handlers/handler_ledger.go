package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/aba_ledger/internal/core/ports/services"
	"github.com/SscSPs/aba_ledger/internal/dto"
	"github.com/SscSPs/aba_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves read-only views of an organization's ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers the per-organization ledger views and reports.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)
	rh := newReportingHandler(ledgerService)

	rg.GET("/organizations", h.listOrganizations)

	org := rg.Group("/ledger/:organizationID")
	{
		org.GET("/accounts", h.listAccounts)
		org.GET("/accounts/:accountID/entries", h.getAccountEntries)
		org.GET("/currencies", h.listCurrencies)
		org.GET("/contacts", h.listContacts)
		org.GET("/transactions", h.listTransactions)
		org.GET("/reports/:statement", rh.getReport)
	}
}

// listOrganizations godoc
// @Summary List organizations
// @Tags ledger
// @Produce json
// @Success 200 {array} domain.Organization
// @Failure 500 {object} map[string]string "Failed to list organizations"
// @Router /organizations [get]
func (h *ledgerHandler) listOrganizations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgs, err := h.ledgerService.ListOrganizations(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list organizations")
		return
	}
	c.JSON(http.StatusOK, orgs)
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the chart of accounts of an organization ordered by id
// @Tags ledger
// @Produce json
// @Param organizationID path string true "Organization ID"
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid organization ID"
// @Failure 404 {object} map[string]string "Organization not found"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /ledger/{organizationID}/accounts [get]
func (h *ledgerHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID, ok := parseIDParam(c, logger, "organizationID")
	if !ok {
		return
	}

	accounts, err := h.ledgerService.ListAccounts(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, logger.With(slog.String("organization_id", orgID.String())), err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// getAccountEntries godoc
// @Summary List the entries of an account
// @Tags ledger
// @Produce json
// @Param organizationID path string true "Organization ID"
// @Param accountID path string true "Account ID"
// @Success 200 {array} dto.AccountEntryResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Organization or account not found"
// @Failure 500 {object} map[string]string "Failed to list account entries"
// @Router /ledger/{organizationID}/accounts/{accountID}/entries [get]
func (h *ledgerHandler) getAccountEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID, ok := parseIDParam(c, logger, "organizationID")
	if !ok {
		return
	}
	accountID, ok := parseIDParam(c, logger, "accountID")
	if !ok {
		return
	}
	logger = logger.With(slog.String("organization_id", orgID.String()), slog.String("account_id", accountID.String()))

	entries, err := h.ledgerService.GetAccountEntries(c.Request.Context(), orgID, accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to list account entries")
		return
	}
	currencies, err := h.ledgerService.ListCurrencies(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, logger, err, "Failed to list currencies")
		return
	}
	resp, err := dto.ToAccountEntryResponses(entries, dto.NewCurrencies(currencies))
	if err != nil {
		respondError(c, logger, err, "Failed to list account entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listCurrencies godoc
// @Summary List currencies
// @Tags ledger
// @Produce json
// @Param organizationID path string true "Organization ID"
// @Success 200 {array} domain.Currency
// @Failure 400 {object} map[string]string "Invalid organization ID"
// @Failure 404 {object} map[string]string "Organization not found"
// @Router /ledger/{organizationID}/currencies [get]
func (h *ledgerHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID, ok := parseIDParam(c, logger, "organizationID")
	if !ok {
		return
	}
	currencies, err := h.ledgerService.ListCurrencies(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, logger, err, "Failed to list currencies")
		return
	}
	c.JSON(http.StatusOK, currencies)
}

// listContacts godoc
// @Summary List contacts
// @Tags ledger
// @Produce json
// @Param organizationID path string true "Organization ID"
// @Success 200 {array} domain.Contact
// @Failure 400 {object} map[string]string "Invalid organization ID"
// @Failure 404 {object} map[string]string "Organization not found"
// @Router /ledger/{organizationID}/contacts [get]
func (h *ledgerHandler) listContacts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID, ok := parseIDParam(c, logger, "organizationID")
	if !ok {
		return
	}
	contacts, err := h.ledgerService.ListContacts(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, logger, err, "Failed to list contacts")
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the transactions of an organization with their ledger entries
// @Tags ledger
// @Produce json
// @Param organizationID path string true "Organization ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid organization ID"
// @Failure 404 {object} map[string]string "Organization not found"
// @Router /ledger/{organizationID}/transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID, ok := parseIDParam(c, logger, "organizationID")
	if !ok {
		return
	}
	transactions, err := h.ledgerService.ListTransactions(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	currencies, err := h.ledgerService.ListCurrencies(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, logger, err, "Failed to list currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(transactions, dto.NewCurrencies(currencies)))
}
