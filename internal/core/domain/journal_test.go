package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/aba_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalEntry_JSONKeepsVariants(t *testing.T) {
	memo := "march retainer"
	change := "wpkh(change)"
	parent := domain.NewID()
	account := domain.Account{
		ID:              domain.NewID(),
		ParentID:        &parent,
		Number:          110,
		Description:     "Cold Storage",
		AccountType:     domain.BitcoinAccount{Descriptor: "wpkh(main)", ChangeDescriptor: &change},
		AccountCategory: domain.Asset,
	}
	tx := domain.Transaction{
		ID:          domain.NewID(),
		Timestamp:   time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
		Description: "Consulting",
		TransactionType: domain.Invoice{
			PaymentMethod: domain.ACHPaymentMethod{ContactID: domain.NewID(), CurrencyID: domain.CurrencyUSD, Routing: 11111, Account: 42},
			PaymentTerms:  domain.NetDays{Days: 30, LateFeeInterest: decimal.RequireFromString("0.015")},
			Payments: []domain.Payment{
				domain.CashPayment{Date: time.Date(2022, 3, 5, 0, 0, 0, 0, time.UTC), CurrencyID: domain.CurrencyUSD, Amount: decimal.RequireFromString("10.00")},
				domain.ACHPayment{TransactionRef: "ach-1", CurrencyID: domain.CurrencyUSD, Amount: decimal.RequireFromString("90.00"), Memo: &memo},
			},
		},
	}

	entries := []domain.JournalEntry{
		domain.NewJournalEntryGenID(domain.NewID(), domain.AddAccount{Account: account}),
		domain.NewJournalEntryGenID(domain.NewID(), domain.AddTransaction{Transaction: tx}),
	}

	for _, entry := range entries {
		data, err := json.Marshal(entry)
		require.NoError(t, err)

		var decoded domain.JournalEntry
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, entry.ID, decoded.ID)
		assert.Equal(t, entry.OrganizationID, decoded.OrganizationID)
		assert.Equal(t, domain.DefaultVersion, decoded.Version)
		assert.Equal(t, domain.ActionName(entry.Action), domain.ActionName(decoded.Action))
	}

	var decoded domain.JournalEntry
	data, err := json.Marshal(entries[0])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	addAccount, ok := decoded.Action.(domain.AddAccount)
	require.True(t, ok)
	assert.Equal(t, account.AccountType, addAccount.Account.AccountType)
	assert.Equal(t, parent, *addAccount.Account.ParentID)

	data, err = json.Marshal(entries[1])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	invoice, ok := decoded.Action.(domain.AddTransaction).Transaction.TransactionType.(domain.Invoice)
	require.True(t, ok)
	assert.IsType(t, domain.ACHPaymentMethod{}, invoice.PaymentMethod)
	require.Len(t, invoice.Payments, 2)
	assert.IsType(t, domain.CashPayment{}, invoice.Payments[0])
	assert.Equal(t, "march retainer", *invoice.Payments[1].(domain.ACHPayment).Memo)
}

func TestJournalEntry_ActionTagOnTheWire(t *testing.T) {
	entry := domain.NewJournalEntryGenID(domain.NewID(), domain.AddCurrency{Currency: domain.Currency{ID: domain.CurrencyUSD, Code: "USD", Scale: 2, Name: "US Dollar"}})

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.JSONEq(t, `{"type":"ADD_CURRENCY","payload":{"currency":{"id":840,"code":"USD","scale":2,"name":"US Dollar"}}}`, string(raw["action"]))
}

func TestUnmarshalAction_UnknownVariant(t *testing.T) {
	_, err := domain.UnmarshalAction([]byte(`{"type":"REMOVE_ACCOUNT","payload":{}}`))
	assert.ErrorIs(t, err, domain.ErrUnknownVariant)

	_, err = domain.UnmarshalAction([]byte(`null`))
	assert.ErrorIs(t, err, domain.ErrUnknownVariant)

	var account domain.Account
	err = json.Unmarshal([]byte(`{"id":"01FRCXSQ8CE9D6QG5HM2RZ9TZ1","accountType":{"type":"BROKERAGE"}}`), &account)
	assert.ErrorIs(t, err, domain.ErrUnknownVariant)
}

func TestNextID_IsStrictlyGreater(t *testing.T) {
	prev := domain.NewID()
	for i := 0; i < 1000; i++ {
		next, err := domain.NextID(prev)
		require.NoError(t, err)
		require.Equal(t, 1, next.Compare(prev), "id %d did not increase", i)
		prev = next
	}

	future := domain.NewID()
	require.NoError(t, future.SetTime(future.Time()+60_000))
	next, err := domain.NextID(future)
	require.NoError(t, err)
	assert.Equal(t, future.Time(), next.Time())
	assert.Equal(t, 1, next.Compare(future))
}

func TestNextID_Overflow(t *testing.T) {
	prev := domain.NewID()
	require.NoError(t, prev.SetTime(prev.Time()+60_000))
	for i := 6; i < len(prev); i++ {
		prev[i] = 0xff
	}
	_, err := domain.NextID(prev)
	assert.ErrorIs(t, err, domain.ErrIDOverflow)
}

func TestAccountCategory_Statement(t *testing.T) {
	tests := []struct {
		category domain.AccountCategory
		want     domain.FinancialStatement
	}{
		{domain.Asset, domain.BalanceSheet},
		{domain.Liability, domain.BalanceSheet},
		{domain.Equity, domain.BalanceSheet},
		{domain.OperatingRevenue, domain.IncomeStatement},
		{domain.OperatingExpense, domain.IncomeStatement},
		{domain.NonOperatingRevenue, domain.IncomeStatement},
		{domain.NonOperatingExpense, domain.IncomeStatement},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got, ok := tt.category.Statement()
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := domain.AccountCategory("GOODWILL").Statement()
	assert.False(t, ok)
}

func TestParseFinancialStatement(t *testing.T) {
	got, err := domain.ParseFinancialStatement("balance-sheet")
	require.NoError(t, err)
	assert.Equal(t, domain.BalanceSheet, got)

	got, err = domain.ParseFinancialStatement("INCOME_STATEMENT")
	require.NoError(t, err)
	assert.Equal(t, domain.IncomeStatement, got)

	_, err = domain.ParseFinancialStatement("cash-flow")
	assert.Error(t, err)
}

func TestDueDate(t *testing.T) {
	issued := time.Date(2022, 1, 31, 0, 0, 0, 0, time.UTC)

	due, err := domain.DueDate(domain.NetDays{Days: 30}, issued)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, 3, 2, 0, 0, 0, 0, time.UTC), due)

	due, err = domain.DueDate(domain.ImmediatePayment{}, issued)
	require.NoError(t, err)
	assert.Equal(t, issued, due)

	_, err = domain.DueDate(nil, issued)
	assert.ErrorIs(t, err, domain.ErrUnknownVariant)
}
