package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/aba_ledger/internal/core/domain"
	"github.com/SscSPs/aba_ledger/internal/report"
	"github.com/SscSPs/aba_ledger/internal/utils/accounting"
)

// ReportParams defines the query parameters of a report request.
type ReportParams struct {
	RootAccountIDs []string `form:"rootAccountID" binding:"omitempty,dive,ulid"`
	AsOf           string   `form:"asOf"`
}

// ParseRootAccountIDs parses the requested root account ids.
func (p ReportParams) ParseRootAccountIDs() ([]domain.AccountID, error) {
	ids := make([]domain.AccountID, 0, len(p.RootAccountIDs))
	for _, raw := range p.RootAccountIDs {
		id, err := domain.ParseID(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid rootAccountID %q: %w", raw, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseAsOf accepts an RFC 3339 timestamp or a YYYY-MM-DD date. An empty
// value yields the zero time.
func (p ReportParams) ParseAsOf() (time.Time, error) {
	if p.AsOf == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, p.AsOf); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, p.AsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid asOf %q: want RFC 3339 or YYYY-MM-DD", p.AsOf)
	}
	return t, nil
}

// AccountTotalsResponse is one node of a report tree.
type AccountTotalsResponse struct {
	AccountID   string                 `json:"accountID" yaml:"accountID"`
	Number      domain.AccountNumber   `json:"number" yaml:"number"`
	Description string                 `json:"description" yaml:"description"`
	Category    domain.AccountCategory `json:"category" yaml:"category"`
	Debits      []AmountResponse       `json:"debits" yaml:"debits"`
	Credits     []AmountResponse       `json:"credits" yaml:"credits"`
	// Balances are signed so the category's normal side is positive.
	Balances []AmountResponse        `json:"balances" yaml:"balances"`
	Children []AccountTotalsResponse `json:"children,omitempty" yaml:"children,omitempty"`
}

// ReportResponse defines the data returned for a report.
type ReportResponse struct {
	Timestamp      time.Time                 `json:"timestamp" yaml:"timestamp"`
	Statement      domain.FinancialStatement `json:"statement,omitempty" yaml:"statement,omitempty"`
	RootAccountIDs []string                  `json:"rootAccountIDs" yaml:"rootAccountIDs"`
	Accounts       []AccountTotalsResponse   `json:"accounts" yaml:"accounts"`
}

// ToReportResponse converts a report, formatting amounts with currencies.
func ToReportResponse(r *report.Report, currencies Currencies) ReportResponse {
	resp := ReportResponse{
		Timestamp:      r.Timestamp,
		Statement:      r.Statement,
		RootAccountIDs: make([]string, len(r.RootAccountIDs)),
		Accounts:       make([]AccountTotalsResponse, len(r.AccountTotals)),
	}
	for i, id := range r.RootAccountIDs {
		resp.RootAccountIDs[i] = id.String()
	}
	for i, totals := range r.AccountTotals {
		resp.Accounts[i] = toAccountTotalsResponse(totals, currencies)
	}
	return resp
}

func toAccountTotalsResponse(t report.AccountTotals, currencies Currencies) AccountTotalsResponse {
	resp := AccountTotalsResponse{
		AccountID:   t.Account.ID.String(),
		Number:      t.Account.Number,
		Description: t.Account.Description,
		Category:    t.Account.AccountCategory,
		Debits:      currencies.Amounts(t.DebitTotals),
		Credits:     currencies.Amounts(t.CreditTotals),
		Balances:    []AmountResponse{},
	}
	for _, currencyID := range activeCurrencies(t) {
		balance, err := accounting.NormalBalance(t.Debit(currencyID), t.Credit(currencyID), t.Account.AccountCategory)
		if err != nil {
			balance = t.Balance(currencyID)
		}
		resp.Balances = append(resp.Balances, currencies.Amount(currencyID, balance))
	}
	for _, child := range t.ChildAccountTotals {
		resp.Children = append(resp.Children, toAccountTotalsResponse(child, currencies))
	}
	return resp
}

// activeCurrencies lists the currencies with debits or credits, in id order.
func activeCurrencies(t report.AccountTotals) []domain.CurrencyID {
	var ids []domain.CurrencyID
	i, j := 0, 0
	for i < len(t.DebitTotals) || j < len(t.CreditTotals) {
		switch {
		case j == len(t.CreditTotals) || (i < len(t.DebitTotals) && t.DebitTotals[i].CurrencyID < t.CreditTotals[j].CurrencyID):
			ids = append(ids, t.DebitTotals[i].CurrencyID)
			i++
		case i == len(t.DebitTotals) || t.CreditTotals[j].CurrencyID < t.DebitTotals[i].CurrencyID:
			ids = append(ids, t.CreditTotals[j].CurrencyID)
			j++
		default:
			ids = append(ids, t.DebitTotals[i].CurrencyID)
			i++
			j++
		}
	}
	return ids
}
