package accounting

import (
	"fmt"

	"github.com/SscSPs/aba_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IsDebitNormal reports whether a category grows with debits.
func IsDebitNormal(category domain.AccountCategory) (bool, error) {
	switch category {
	case domain.Asset, domain.OperatingExpense, domain.NonOperatingExpense:
		return true, nil
	case domain.Liability, domain.Equity, domain.OperatingRevenue, domain.NonOperatingRevenue:
		return false, nil
	default:
		return false, fmt.Errorf("unknown account category '%s'", category)
	}
}

// CalculateSignedAmount applies the correct sign to a ledger entry amount
// based on the category of the account it posts to.
// DEBIT to ASSET/EXPENSE -> Positive (+)
// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
func CalculateSignedAmount(entry domain.LedgerEntry, category domain.AccountCategory) (decimal.Decimal, error) {
	debitNormal, err := IsDebitNormal(category)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w encountered for account ID %s", err, entry.AccountID)
	}
	amount := entry.CurrencyAmount.Amount
	if (entry.EntryType == domain.Debit) != debitNormal {
		amount = amount.Neg()
	}
	return amount, nil
}

// NormalBalance converts debit and credit totals into the balance as the
// category naturally reports it, so revenue with more credits is positive.
func NormalBalance(debits, credits decimal.Decimal, category domain.AccountCategory) (decimal.Decimal, error) {
	debitNormal, err := IsDebitNormal(category)
	if err != nil {
		return decimal.Zero, err
	}
	if debitNormal {
		return debits.Sub(credits), nil
	}
	return credits.Sub(debits), nil
}
