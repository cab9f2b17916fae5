// Package sample builds a small, internally consistent journal for one
// organization: a chart of accounts, USD and BTC, and two balanced
// transactions funding and earning into a checking account.
package sample

import (
	"time"

	"github.com/SscSPs/aba_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Dataset is the sample journal together with the entities it creates, so
// callers can look them up in the resulting ledger.
type Dataset struct {
	OrganizationID domain.OrganizationID

	CompanyContact domain.Contact
	OwnerContact   domain.Contact
	BankContact    domain.Contact

	USD domain.Currency
	BTC domain.Currency

	Assets      domain.Account
	Liabilities domain.Account
	Equity      domain.Account
	Revenue     domain.Account
	Expenses    domain.Account

	Owner            domain.Account
	BankChecking     domain.Account
	OfficeSupplies   domain.Account
	ConsultingIncome domain.Account

	Funding domain.Transaction
	Income  domain.Transaction

	Entries []domain.JournalEntry
}

// Entries returns the journal of a fresh dataset.
func Entries() []domain.JournalEntry {
	return New().Entries
}

// New builds a dataset with newly generated ids. Entry ids are strictly
// increasing in the order the entries must be applied.
func New() Dataset {
	address := "1 Main St, Springfield"
	company := domain.NewContact(domain.ContactTypeOrganization, "Test Company", &address)
	org := domain.NewOrganization(company.ID)

	d := Dataset{
		OrganizationID: org.ID,
		CompanyContact: company,
		OwnerContact:   domain.NewContact(domain.ContactTypeIndividual, "Test Owner", nil),
		BankContact:    domain.NewContact(domain.ContactTypeOrganization, "Test Bank", nil),
		USD:            domain.Currency{ID: domain.CurrencyUSD, Code: "USD", Scale: 2, Name: "US Dollar"},
		BTC:            domain.Currency{ID: domain.CurrencyBTC, Code: "BTC", Scale: 8, Name: "Bitcoin"},
	}

	d.Assets = rootAccount(100, "Assets", domain.Asset)
	d.Liabilities = rootAccount(200, "Liabilities", domain.Liability)
	d.Equity = rootAccount(300, "Equity", domain.Equity)
	d.Revenue = rootAccount(400, "Revenue", domain.OperatingRevenue)
	d.Expenses = rootAccount(500, "Expenses", domain.OperatingExpense)

	d.Owner = childAccount(d.Equity, 100, "Owner 1", domain.ContactAccount{ContactID: d.OwnerContact.ID})
	d.BankChecking = childAccount(d.Assets, 100, "Bank Checking", domain.BankAccount{
		CurrencyID:    d.USD.ID,
		Routing:       11111,
		AccountNumber: 123123123123,
	})
	d.OfficeSupplies = childAccount(d.Expenses, 100, "Office Supplies", domain.LedgerAccount{})
	d.ConsultingIncome = childAccount(d.Revenue, 100, "Consulting Income", domain.LedgerAccount{})

	d.Funding = domain.Transaction{
		ID:              domain.NewID(),
		Timestamp:       time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC),
		Description:     "Owner investment",
		TransactionType: domain.LedgerAdjustment{},
	}
	d.Income = domain.Transaction{
		ID:              domain.NewID(),
		Timestamp:       time.Date(2022, 2, 3, 0, 0, 0, 0, time.UTC),
		Description:     "Consulting income",
		TransactionType: domain.LedgerAdjustment{},
	}

	actions := []domain.Action{
		domain.AddOrganization{Contact: company, Organization: org},
		domain.AddCurrency{Currency: d.USD},
		domain.AddCurrency{Currency: d.BTC},
		domain.AddContact{Contact: d.OwnerContact},
		domain.AddContact{Contact: d.BankContact},
		domain.AddAccount{Account: d.Assets},
		domain.AddAccount{Account: d.Liabilities},
		domain.AddAccount{Account: d.Equity},
		domain.AddAccount{Account: d.Revenue},
		domain.AddAccount{Account: d.Expenses},
		domain.AddAccount{Account: d.Owner},
		domain.AddAccount{Account: d.BankChecking},
		domain.AddAccount{Account: d.OfficeSupplies},
		domain.AddAccount{Account: d.ConsultingIncome},
		domain.AddTransaction{
			Transaction:   d.Funding,
			LedgerEntries: Legs(d.Funding.ID, d.BankChecking.ID, d.Owner.ID, d.USD.ID, "10000.00"),
		},
		domain.AddTransaction{
			Transaction:   d.Income,
			LedgerEntries: Legs(d.Income.ID, d.BankChecking.ID, d.ConsultingIncome.ID, d.USD.ID, "8000.00"),
		},
	}

	id := domain.NewID()
	for i, action := range actions {
		if i > 0 {
			id = domain.MustNextID(id)
		}
		d.Entries = append(d.Entries, domain.NewJournalEntry(id, d.OrganizationID, action))
	}
	return d
}

// Legs returns a balanced pair of entries moving amount from the credited to
// the debited account.
func Legs(txID domain.TransactionID, debit, credit domain.AccountID, currency domain.CurrencyID, amount string) []domain.LedgerEntry {
	value := decimal.RequireFromString(amount)
	return []domain.LedgerEntry{
		{
			TransactionID:  txID,
			EntryType:      domain.Debit,
			AccountID:      debit,
			CurrencyAmount: domain.CurrencyAmount{CurrencyID: currency, Amount: value},
		},
		{
			TransactionID:  txID,
			EntryType:      domain.Credit,
			AccountID:      credit,
			CurrencyAmount: domain.CurrencyAmount{CurrencyID: currency, Amount: value},
		},
	}
}

func rootAccount(number domain.AccountNumber, description string, category domain.AccountCategory) domain.Account {
	return domain.Account{
		ID:              domain.NewID(),
		Number:          number,
		Description:     description,
		AccountType:     domain.LedgerAccount{},
		AccountCategory: category,
	}
}

func childAccount(parent domain.Account, number domain.AccountNumber, description string, accountType domain.AccountType) domain.Account {
	parentID := parent.ID
	return domain.Account{
		ID:              domain.NewID(),
		ParentID:        &parentID,
		Number:          number,
		Description:     description,
		AccountType:     accountType,
		AccountCategory: parent.AccountCategory,
	}
}
