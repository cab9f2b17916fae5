package dto

import (
	"strconv"
	"strings"

	"github.com/SscSPs/aba_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/aba_ledger/internal/core/ports/services"
	"github.com/SscSPs/aba_ledger/internal/utils"
	"github.com/SscSPs/aba_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Currencies indexes an organization's currencies for amount rendering.
type Currencies map[domain.CurrencyID]domain.Currency

// NewCurrencies indexes list by id.
func NewCurrencies(list []domain.Currency) Currencies {
	book := make(Currencies, len(list))
	for _, c := range list {
		book[c.ID] = c
	}
	return book
}

// AmountResponse is an amount in one currency, both exact and formatted.
type AmountResponse struct {
	CurrencyID   domain.CurrencyID `json:"currencyID" yaml:"currencyID"`
	CurrencyCode string            `json:"currencyCode,omitempty" yaml:"currencyCode,omitempty"`
	Amount       string            `json:"amount" yaml:"amount"`
	Formatted    string            `json:"formatted" yaml:"formatted"`
}

// Amount renders amount in the given currency. Unknown currencies keep the
// exact decimal as their formatted value.
func (c Currencies) Amount(currencyID domain.CurrencyID, amount decimal.Decimal) AmountResponse {
	currency, ok := c[currencyID]
	if !ok {
		return AmountResponse{CurrencyID: currencyID, Amount: amount.String(), Formatted: amount.String()}
	}
	return AmountResponse{
		CurrencyID:   currencyID,
		CurrencyCode: currency.Code,
		Amount:       utils.FormatWithCurrencyPrecision(amount, currency),
		Formatted:    utils.FormatMoney(amount, currency),
	}
}

// Amounts renders a list of currency amounts.
func (c Currencies) Amounts(amounts []domain.CurrencyAmount) []AmountResponse {
	out := make([]AmountResponse, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, c.Amount(a.CurrencyID, a.Amount))
	}
	return out
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID              string                 `json:"id"`
	ParentID        *string                `json:"parentID,omitempty"`
	Number          domain.AccountNumber   `json:"number"`
	FullNumber      string                 `json:"fullNumber"`
	Description     string                 `json:"description"`
	AccountCategory domain.AccountCategory `json:"accountCategory"`
	AccountType     string                 `json:"accountType"`
	Account         domain.Account         `json:"account"`
}

// FormatFullNumber joins an account number path with dots, e.g. "100.100".
func FormatFullNumber(numbers []domain.AccountNumber) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.FormatUint(uint64(n), 10)
	}
	return strings.Join(parts, ".")
}

// ToAccountResponse converts an account detail to AccountResponse DTO.
func ToAccountResponse(d portssvc.AccountDetail) AccountResponse {
	resp := AccountResponse{
		ID:              d.Account.ID.String(),
		Number:          d.Account.Number,
		FullNumber:      FormatFullNumber(d.FullNumber),
		Description:     d.Account.Description,
		AccountCategory: d.Account.AccountCategory,
		AccountType:     domain.AccountTypeName(d.Account.AccountType),
		Account:         d.Account,
	}
	if d.Account.ParentID != nil {
		parent := d.Account.ParentID.String()
		resp.ParentID = &parent
	}
	return resp
}

// ToAccountResponses converts a slice of account details.
func ToAccountResponses(details []portssvc.AccountDetail) []AccountResponse {
	responses := make([]AccountResponse, len(details))
	for i, d := range details {
		responses[i] = ToAccountResponse(d)
	}
	return responses
}

// LedgerEntryResponse defines the data returned for one leg of a transaction.
type LedgerEntryResponse struct {
	TransactionID string           `json:"transactionID"`
	AccountID     string           `json:"accountID"`
	EntryType     domain.EntryType `json:"entryType"`
	Amount        AmountResponse   `json:"amount"`
	Description   *string          `json:"description,omitempty"`
}

// ToLedgerEntryResponses converts ledger entries, formatting their amounts.
func ToLedgerEntryResponses(entries []domain.LedgerEntry, currencies Currencies) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = LedgerEntryResponse{
			TransactionID: e.TransactionID.String(),
			AccountID:     e.AccountID.String(),
			EntryType:     e.EntryType,
			Amount:        currencies.Amount(e.CurrencyAmount.CurrencyID, e.CurrencyAmount.Amount),
			Description:   e.Description,
		}
	}
	return responses
}

// AccountEntryResponse is a ledger entry seen from the account it posts to.
// SignedAmount is positive when the entry grows the account's normal balance
// and RunningBalance accumulates it per currency in posting order.
type AccountEntryResponse struct {
	LedgerEntryResponse
	SignedAmount   AmountResponse `json:"signedAmount"`
	RunningBalance AmountResponse `json:"runningBalance"`
}

// ToAccountEntryResponses converts the entries of one account.
func ToAccountEntryResponses(ae portssvc.AccountEntries, currencies Currencies) ([]AccountEntryResponse, error) {
	legs := ToLedgerEntryResponses(ae.Entries, currencies)
	balances := make(map[domain.CurrencyID]decimal.Decimal)
	responses := make([]AccountEntryResponse, len(ae.Entries))
	for i, e := range ae.Entries {
		signed, err := accounting.CalculateSignedAmount(e, ae.Account.AccountCategory)
		if err != nil {
			return nil, err
		}
		currencyID := e.CurrencyAmount.CurrencyID
		balances[currencyID] = balances[currencyID].Add(signed)
		responses[i] = AccountEntryResponse{
			LedgerEntryResponse: legs[i],
			SignedAmount:        currencies.Amount(currencyID, signed),
			RunningBalance:      currencies.Amount(currencyID, balances[currencyID]),
		}
	}
	return responses, nil
}

// TransactionResponse defines the data returned for a transaction with its entries.
type TransactionResponse struct {
	Transaction   domain.Transaction    `json:"transaction"`
	LedgerEntries []LedgerEntryResponse `json:"ledgerEntries"`
}

// ToTransactionResponses converts transaction details.
func ToTransactionResponses(details []portssvc.TransactionDetail, currencies Currencies) []TransactionResponse {
	responses := make([]TransactionResponse, len(details))
	for i, d := range details {
		responses[i] = TransactionResponse{
			Transaction:   d.Transaction,
			LedgerEntries: ToLedgerEntryResponses(d.LedgerEntries, currencies),
		}
	}
	return responses
}
