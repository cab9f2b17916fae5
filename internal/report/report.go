// Package report aggregates ledger entries up the account hierarchy into
// per-currency debit and credit totals.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/aba_ledger/internal/apperrors"
	"github.com/SscSPs/aba_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Source is the read-only view of a ledger a report needs.
type Source interface {
	GetAccount(id domain.AccountID) (domain.Account, bool)
	Children(id domain.AccountID) []domain.Account
	GetAccountEntries(id domain.AccountID) []domain.LedgerEntry
	GetRootAccount(category domain.AccountCategory) (domain.Account, bool)
}

// Report holds one AccountTotals tree per root account.
type Report struct {
	Timestamp      time.Time                 `json:"timestamp"`
	Statement      domain.FinancialStatement `json:"statement,omitempty"`
	RootAccountIDs []domain.AccountID        `json:"rootAccountIDs"`
	AccountTotals  []AccountTotals           `json:"accountTotals"`
}

// AccountTotals is an account's own entries plus those of its descendants,
// summed per currency. Currencies without activity are absent.
type AccountTotals struct {
	Account            domain.Account          `json:"account"`
	DebitTotals        []domain.CurrencyAmount `json:"debitTotals"`
	CreditTotals       []domain.CurrencyAmount `json:"creditTotals"`
	ChildAccountTotals []AccountTotals         `json:"childAccountTotals"`
}

// New builds a report at timestamp. With no root ids the roots are the
// root accounts of each category of statement, in category order. Children
// are limited to accounts of statement when one is given; roots named
// explicitly are always included.
func New(source Source, timestamp time.Time, statement domain.FinancialStatement, rootIDs ...domain.AccountID) (*Report, error) {
	var roots []domain.Account
	if len(rootIDs) == 0 {
		if statement == "" {
			return nil, fmt.Errorf("%w: a statement or at least one root account is required", apperrors.ErrValidation)
		}
		for _, category := range statement.Categories() {
			if account, ok := source.GetRootAccount(category); ok {
				roots = append(roots, account)
			}
		}
	} else {
		for _, id := range rootIDs {
			account, ok := source.GetAccount(id)
			if !ok {
				return nil, apperrors.NewLedgerError(apperrors.MissingAccount, id)
			}
			roots = append(roots, account)
		}
	}

	r := &Report{
		Timestamp:      timestamp,
		Statement:      statement,
		RootAccountIDs: make([]domain.AccountID, 0, len(roots)),
		AccountTotals:  make([]AccountTotals, 0, len(roots)),
	}
	for _, root := range roots {
		r.RootAccountIDs = append(r.RootAccountIDs, root.ID)
		r.AccountTotals = append(r.AccountTotals, NewAccountTotals(source, root, statement))
	}
	return r, nil
}

// Find returns the totals of an account anywhere in the report.
func (r *Report) Find(id domain.AccountID) (*AccountTotals, bool) {
	for i := range r.AccountTotals {
		if found, ok := r.AccountTotals[i].Find(id); ok {
			return found, true
		}
	}
	return nil, false
}

// NewAccountTotals walks the subtree rooted at account. An empty statement
// includes every child.
func NewAccountTotals(source Source, account domain.Account, statement domain.FinancialStatement) AccountTotals {
	var children []AccountTotals
	childDebits := make(map[domain.CurrencyID]decimal.Decimal)
	childCredits := make(map[domain.CurrencyID]decimal.Decimal)
	for _, child := range source.Children(account.ID) {
		if !onStatement(child, statement) {
			continue
		}
		totals := NewAccountTotals(source, child, statement)
		addAll(childDebits, totals.DebitTotals)
		addAll(childCredits, totals.CreditTotals)
		children = append(children, totals)
	}

	ownDebits := make(map[domain.CurrencyID]decimal.Decimal)
	ownCredits := make(map[domain.CurrencyID]decimal.Decimal)
	for _, entry := range source.GetAccountEntries(account.ID) {
		switch entry.EntryType {
		case domain.Debit:
			add(ownDebits, entry.CurrencyAmount)
		case domain.Credit:
			add(ownCredits, entry.CurrencyAmount)
		}
	}

	return AccountTotals{
		Account:            account,
		DebitTotals:        merge(ownDebits, childDebits),
		CreditTotals:       merge(ownCredits, childCredits),
		ChildAccountTotals: children,
	}
}

// Debit returns the debit total for a currency, zero when absent.
func (t AccountTotals) Debit(currencyID domain.CurrencyID) decimal.Decimal {
	return amountOf(t.DebitTotals, currencyID)
}

// Credit returns the credit total for a currency, zero when absent.
func (t AccountTotals) Credit(currencyID domain.CurrencyID) decimal.Decimal {
	return amountOf(t.CreditTotals, currencyID)
}

// Balance is debits minus credits for a currency.
func (t AccountTotals) Balance(currencyID domain.CurrencyID) decimal.Decimal {
	return t.Debit(currencyID).Sub(t.Credit(currencyID))
}

// Find returns the totals of id within this subtree.
func (t *AccountTotals) Find(id domain.AccountID) (*AccountTotals, bool) {
	if t.Account.ID == id {
		return t, true
	}
	for i := range t.ChildAccountTotals {
		if found, ok := t.ChildAccountTotals[i].Find(id); ok {
			return found, true
		}
	}
	return nil, false
}

func onStatement(account domain.Account, statement domain.FinancialStatement) bool {
	if statement == "" {
		return true
	}
	s, ok := account.AccountCategory.Statement()
	return ok && s == statement
}

func add(totals map[domain.CurrencyID]decimal.Decimal, amount domain.CurrencyAmount) {
	totals[amount.CurrencyID] = totals[amount.CurrencyID].Add(amount.Amount)
}

func addAll(totals map[domain.CurrencyID]decimal.Decimal, amounts []domain.CurrencyAmount) {
	for _, amount := range amounts {
		add(totals, amount)
	}
}

// merge sums both maps per currency into a list sorted by currency id.
func merge(own, children map[domain.CurrencyID]decimal.Decimal) []domain.CurrencyAmount {
	sum := make(map[domain.CurrencyID]decimal.Decimal, len(own)+len(children))
	for id, amount := range own {
		sum[id] = sum[id].Add(amount)
	}
	for id, amount := range children {
		sum[id] = sum[id].Add(amount)
	}

	totals := make([]domain.CurrencyAmount, 0, len(sum))
	for id, amount := range sum {
		totals = append(totals, domain.CurrencyAmount{CurrencyID: id, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].CurrencyID < totals[j].CurrencyID })
	return totals
}

func amountOf(totals []domain.CurrencyAmount, currencyID domain.CurrencyID) decimal.Decimal {
	for _, total := range totals {
		if total.CurrencyID == currencyID {
			return total.Amount
		}
	}
	return decimal.Zero
}
