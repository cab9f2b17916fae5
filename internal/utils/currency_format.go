package utils

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/SscSPs/aba_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the scale of a currency.
// Example: amount 12.3456 with USD (scale 2) returns "12.35"
// Example: amount 0.5 with BTC (scale 8) returns "0.50000000"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.StringFixed(int32(currency.Scale))
}

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// FormatMoney renders an amount for display, e.g. "$10,000.00" for USD.
// Codes go-money does not know (BTC among them) get a generic format
// using the currency's own scale with the code as suffix. Amounts whose
// minor units do not fit an int64 are rendered as "<fixed> <code>".
func FormatMoney(amount decimal.Decimal, currency domain.Currency) string {
	shifted := amount.Round(int32(currency.Scale)).Shift(int32(currency.Scale))
	if shifted.Abs().GreaterThan(maxMinorUnits) {
		return FormatWithCurrencyPrecision(amount, currency) + " " + currency.Code
	}
	minor := shifted.IntPart()

	known := money.GetCurrency(currency.Code)
	if known != nil && known.Fraction == int(currency.Scale) {
		return money.New(minor, currency.Code).Display()
	}

	formatter := money.NewFormatter(int(currency.Scale), ".", ",", currency.Code, "1 $")
	return formatter.Format(minor)
}
