package ledger

import (
	"sort"

	"github.com/SscSPs/aba_ledger/internal/apperrors"
	"github.com/SscSPs/aba_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

func (l *Ledger) validateAccountType(account domain.Account) error {
	switch t := account.AccountType.(type) {
	case domain.LedgerAccount, domain.BitcoinAccount:
		return nil
	case domain.ContactAccount:
		if _, ok := l.contacts[t.ContactID]; !ok {
			return apperrors.NewLedgerError(apperrors.MissingContact, t.ContactID)
		}
		return nil
	case domain.BankAccount:
		if _, ok := l.currencies[t.CurrencyID]; !ok {
			return apperrors.NewLedgerError(apperrors.MissingCurrency, t.CurrencyID)
		}
		return nil
	default:
		return apperrors.NewLedgerError(apperrors.InvalidAccount, account.ID).
			WithDetail("unsupported account type %T", account.AccountType)
	}
}

// validateParent rejects links that would make the account its own ancestor.
// Existing accounts already form a forest, so a loop can only pass through
// the new account.
func (l *Ledger) validateParent(account domain.Account) error {
	if account.ParentID == nil {
		return nil
	}
	seen := make(map[domain.AccountID]struct{})
	for cur := *account.ParentID; ; {
		if cur == account.ID {
			return apperrors.NewLedgerError(apperrors.InvalidAccount, account.ID).
				WithDetail("account would be its own ancestor")
		}
		if _, ok := seen[cur]; ok {
			return nil
		}
		seen[cur] = struct{}{}

		parent, ok := l.accounts[cur]
		if !ok || parent.ParentID == nil {
			return nil
		}
		cur = *parent.ParentID
	}
}

// validateEntries checks every leg of a transaction and that, per currency,
// debits equal credits.
func (l *Ledger) validateEntries(txID domain.TransactionID, entries []domain.LedgerEntry) error {
	debits := make(map[domain.CurrencyID]decimal.Decimal)
	credits := make(map[domain.CurrencyID]decimal.Decimal)

	for i, entry := range entries {
		if entry.TransactionID != txID {
			return apperrors.NewLedgerError(apperrors.InvalidLedgerEntry, txID).
				WithDetail("entry %d belongs to transaction %s", i, entry.TransactionID)
		}
		if !entry.CurrencyAmount.Amount.IsPositive() {
			return apperrors.NewLedgerError(apperrors.InvalidLedgerEntry, txID).
				WithDetail("entry %d amount must be positive, got %s", i, entry.CurrencyAmount.Amount)
		}
		if _, ok := l.accounts[entry.AccountID]; !ok {
			return apperrors.NewLedgerError(apperrors.MissingAccount, entry.AccountID)
		}

		currencyID := entry.CurrencyAmount.CurrencyID
		switch entry.EntryType {
		case domain.Debit:
			debits[currencyID] = debits[currencyID].Add(entry.CurrencyAmount.Amount)
		case domain.Credit:
			credits[currencyID] = credits[currencyID].Add(entry.CurrencyAmount.Amount)
		default:
			return apperrors.NewLedgerError(apperrors.InvalidLedgerEntry, txID).
				WithDetail("entry %d has unknown entry type %q", i, entry.EntryType)
		}
	}

	for _, currencyID := range unionKeys(debits, credits) {
		if !debits[currencyID].Equal(credits[currencyID]) {
			return apperrors.NewLedgerError(apperrors.UnbalancedTransaction, txID).
				WithDetail("currency %d debits %s credits %s", currencyID, debits[currencyID], credits[currencyID])
		}
	}
	return nil
}

func unionKeys(a, b map[domain.CurrencyID]decimal.Decimal) []domain.CurrencyID {
	keys := make([]domain.CurrencyID, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
