package utils

import (
	"testing"

	"github.com/SscSPs/aba_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var (
	usd = domain.Currency{ID: domain.CurrencyUSD, Code: "USD", Scale: 2, Name: "US Dollar"}
	btc = domain.Currency{ID: domain.CurrencyBTC, Code: "BTC", Scale: 8, Name: "Bitcoin"}
)

func TestFormatWithCurrencyPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithCurrencyPrecision(decimal.RequireFromString("12.3456"), usd))
	assert.Equal(t, "0.50000000", FormatWithCurrencyPrecision(decimal.RequireFromString("0.5"), btc))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$10,000.00", FormatMoney(decimal.RequireFromString("10000"), usd))
	assert.Equal(t, "-$8,000.00", FormatMoney(decimal.RequireFromString("-8000"), usd))
	assert.Contains(t, FormatMoney(decimal.RequireFromString("0.5"), btc), "0.50000000")

	points := domain.Currency{ID: 9001, Code: "ZZP", Scale: 3, Name: "Loyalty Points"}
	assert.Equal(t, "1,234.500 ZZP", FormatMoney(decimal.RequireFromString("1234.5"), points))
}

func TestFormatMoney_BeyondInt64MinorUnits(t *testing.T) {
	huge := decimal.RequireFromString("100000000000000000")
	assert.Equal(t, "100000000000000000.00 USD", FormatMoney(huge, usd))
	assert.Equal(t, "-100000000000000000.00 USD", FormatMoney(huge.Neg(), usd))
	assert.Equal(t, "100000000000000000.00000000 BTC", FormatMoney(huge, btc))

	// Largest value that still fits keeps the currency symbol.
	assert.Equal(t, "$92,233,720,368,547,758.07", FormatMoney(decimal.RequireFromString("92233720368547758.07"), usd))
}
