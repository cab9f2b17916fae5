package ledger_test

import (
	"testing"

	"github.com/SscSPs/aba_ledger/internal/apperrors"
	"github.com/SscSPs/aba_ledger/internal/core/domain"
	"github.com/SscSPs/aba_ledger/internal/ledger"
	"github.com/SscSPs/aba_ledger/internal/sample"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LedgerTestSuite struct {
	suite.Suite
	data    sample.Dataset
	ledgers *ledger.OrganizationLedgers
	ledger  *ledger.Ledger
}

func (s *LedgerTestSuite) SetupTest() {
	s.data = sample.New()
	s.ledgers = ledger.NewOrganizationLedgers()
	s.Require().NoError(s.ledgers.AddJournalEntries(s.data.Entries))

	l, err := s.ledgers.GetLedger(s.data.OrganizationID)
	s.Require().NoError(err)
	s.ledger = l
}

func (s *LedgerTestSuite) TestReplayBuildsLedger() {
	s.Len(s.ledger.Accounts(), 9)
	s.Len(s.ledger.Currencies(), 2)
	s.Len(s.ledger.Contacts(), 3)
	s.Len(s.ledger.Transactions(), 2)

	org, ok := s.ledgers.GetOrganization(s.data.OrganizationID)
	s.Require().True(ok)
	s.Equal(s.data.CompanyContact.ID, org.ContactID)

	contact, ok := s.ledger.GetContact(org.ContactID)
	s.Require().True(ok)
	s.Equal("Test Company", contact.Name)

	currencies := s.ledger.Currencies()
	s.Equal(domain.CurrencyUSD, currencies[0].ID)
	s.Equal(domain.CurrencyBTC, currencies[1].ID)
}

func (s *LedgerTestSuite) TestReplayIsDeterministic() {
	other := ledger.NewOrganizationLedgers()
	s.Require().NoError(other.AddJournalEntries(s.data.Entries))
	replayed, err := other.GetLedger(s.data.OrganizationID)
	s.Require().NoError(err)

	s.Equal(s.ledger.Accounts(), replayed.Accounts())
	s.Equal(s.ledger.Contacts(), replayed.Contacts())
	s.Equal(s.ledger.Transactions(), replayed.Transactions())
	for _, account := range s.ledger.Accounts() {
		s.Equal(s.ledger.GetAccountEntries(account.ID), replayed.GetAccountEntries(account.ID))
		s.Equal(s.ledger.ChildIDs(account.ID), replayed.ChildIDs(account.ID))
	}
}

func (s *LedgerTestSuite) TestAccountEntriesIndex() {
	entries := s.ledger.GetAccountEntries(s.data.BankChecking.ID)
	s.Require().Len(entries, 2)
	s.Equal(s.data.Funding.ID, entries[0].TransactionID)
	s.Equal(s.data.Income.ID, entries[1].TransactionID)
	s.Equal(domain.Debit, entries[1].EntryType)
	s.True(entries[1].CurrencyAmount.Amount.Equal(decimal.RequireFromString("8000")))

	s.Len(s.ledger.GetAccountEntries(s.data.Owner.ID), 1)
	s.Empty(s.ledger.GetAccountEntries(s.data.Assets.ID))
	s.Len(s.ledger.GetTransactionEntries(s.data.Funding.ID), 2)
}

func (s *LedgerTestSuite) TestAddAccountMissingContact() {
	account := domain.Account{
		ID:              domain.NewID(),
		Number:          999,
		Description:     "Vendor",
		AccountType:     domain.ContactAccount{ContactID: domain.NewID()},
		AccountCategory: domain.Liability,
	}

	err := s.ledger.AddAccount(account)

	s.ErrorIs(err, apperrors.ErrMissingContact)
	_, ok := s.ledger.GetAccount(account.ID)
	s.False(ok)
}

func (s *LedgerTestSuite) TestAddAccountMissingCurrency() {
	parentID := s.data.Assets.ID
	account := domain.Account{
		ID:              domain.NewID(),
		ParentID:        &parentID,
		Number:          300,
		Description:     "Euro Checking",
		AccountType:     domain.BankAccount{CurrencyID: 978, Routing: 1, AccountNumber: 2},
		AccountCategory: domain.Asset,
	}

	err := s.ledger.AddAccount(account)

	s.ErrorIs(err, &apperrors.LedgerError{Kind: apperrors.MissingCurrency, ID: "978"})
	s.Len(s.ledger.Children(parentID), 1)
}

func (s *LedgerTestSuite) TestAddAccountUnknownType() {
	account := domain.Account{ID: domain.NewID(), Number: 1, AccountCategory: domain.Asset}
	s.ErrorIs(s.ledger.AddAccount(account), apperrors.ErrInvalidAccount)

	account.AccountType = domain.LedgerAccount{}
	account.AccountCategory = "GOODWILL"
	s.ErrorIs(s.ledger.AddAccount(account), apperrors.ErrInvalidAccount)
}

func (s *LedgerTestSuite) TestConflicts() {
	fundingLegs := s.ledger.GetTransactionEntries(s.data.Funding.ID)
	s.Require().Len(fundingLegs, 2)
	org, ok := s.ledgers.GetOrganization(s.data.OrganizationID)
	s.Require().True(ok)

	owner := s.data.Owner
	owner.Description = "Renamed"
	s.ErrorIs(s.ledger.AddAccount(owner), apperrors.ErrAccountExists)

	usd := s.data.USD
	usd.Name = "Not A Dollar"
	usd.Scale = 4
	s.ErrorIs(s.ledger.AddCurrency(usd), apperrors.ErrCurrencyExists)

	contact := s.data.OwnerContact
	contact.Name = "Impostor"
	s.ErrorIs(s.ledger.AddContact(contact), apperrors.ErrContactExists)

	funding := s.data.Funding
	funding.Description = "Rewritten"
	s.ErrorIs(s.ledger.AddTransaction(funding), apperrors.ErrTransactionExists)
	s.ErrorIs(s.ledger.PostTransaction(funding, nil), apperrors.ErrTransactionExists)

	doubled := sample.Legs(s.data.Funding.ID, s.data.BankChecking.ID, s.data.Owner.ID, domain.CurrencyUSD, "20000.00")
	s.ErrorIs(s.ledger.AddLedgerEntries(s.data.Funding.ID, doubled), apperrors.ErrLedgerEntriesExists)

	// The first AddOrganization entry carries the organization.
	err := s.ledgers.AddJournalEntry(s.data.Entries[0])
	s.ErrorIs(err, apperrors.ErrOrganizationExists)
	s.ErrorIs(err, apperrors.ErrDuplicate)

	gotAccount, ok := s.ledger.GetAccount(s.data.Owner.ID)
	s.Require().True(ok)
	s.Equal(s.data.Owner, gotAccount)

	gotCurrency, ok := s.ledger.GetCurrency(domain.CurrencyUSD)
	s.Require().True(ok)
	s.Equal(s.data.USD, gotCurrency)

	gotContact, ok := s.ledger.GetContact(s.data.OwnerContact.ID)
	s.Require().True(ok)
	s.Equal(s.data.OwnerContact, gotContact)

	gotTx, ok := s.ledger.GetTransaction(s.data.Funding.ID)
	s.Require().True(ok)
	s.Equal(s.data.Funding, gotTx)
	s.Equal(fundingLegs, s.ledger.GetTransactionEntries(s.data.Funding.ID))
	s.Len(s.ledger.GetAccountEntries(s.data.BankChecking.ID), 2)

	gotOrg, ok := s.ledgers.GetOrganization(s.data.OrganizationID)
	s.Require().True(ok)
	s.Equal(org, gotOrg)
	s.Len(s.ledger.Accounts(), 9)
	s.Len(s.ledger.Currencies(), 2)
	s.Len(s.ledger.Contacts(), 3)
	s.Len(s.ledger.Transactions(), 2)
}

func (s *LedgerTestSuite) TestAddLedgerEntries() {
	tx := domain.Transaction{ID: domain.NewID(), Description: "Supplies", TransactionType: domain.LedgerAdjustment{}}
	legs := sample.Legs(tx.ID, s.data.OfficeSupplies.ID, s.data.BankChecking.ID, domain.CurrencyUSD, "25.50")

	s.ErrorIs(s.ledger.AddLedgerEntries(tx.ID, legs), apperrors.ErrMissingTransaction)

	s.Require().NoError(s.ledger.AddTransaction(tx))
	s.Require().NoError(s.ledger.AddLedgerEntries(tx.ID, legs))
	s.Len(s.ledger.GetAccountEntries(s.data.BankChecking.ID), 3)
	s.Len(s.ledger.GetAccountEntries(s.data.OfficeSupplies.ID), 1)
}

func (s *LedgerTestSuite) TestPostTransactionRejectsMissingAccount() {
	tx := domain.Transaction{ID: domain.NewID(), TransactionType: domain.LedgerAdjustment{}}
	missing := domain.NewID()
	legs := sample.Legs(tx.ID, s.data.BankChecking.ID, missing, domain.CurrencyUSD, "1.00")

	err := s.ledger.PostTransaction(tx, legs)

	s.ErrorIs(err, &apperrors.LedgerError{Kind: apperrors.MissingAccount, ID: missing.String()})
	_, ok := s.ledger.GetTransaction(tx.ID)
	s.False(ok)
	s.Len(s.ledger.GetAccountEntries(s.data.BankChecking.ID), 2)
}

func (s *LedgerTestSuite) TestPostTransactionRejectsBadLegs() {
	tx := domain.Transaction{ID: domain.NewID(), TransactionType: domain.LedgerAdjustment{}}

	unbalanced := sample.Legs(tx.ID, s.data.BankChecking.ID, s.data.Owner.ID, domain.CurrencyUSD, "5.00")
	unbalanced[1].CurrencyAmount.Amount = decimal.RequireFromString("4.99")
	s.ErrorIs(s.ledger.PostTransaction(tx, unbalanced), apperrors.ErrUnbalancedTransaction)

	crossCurrency := sample.Legs(tx.ID, s.data.BankChecking.ID, s.data.Owner.ID, domain.CurrencyUSD, "5.00")
	crossCurrency[1].CurrencyAmount.CurrencyID = domain.CurrencyBTC
	s.ErrorIs(s.ledger.PostTransaction(tx, crossCurrency), apperrors.ErrUnbalancedTransaction)

	negative := sample.Legs(tx.ID, s.data.BankChecking.ID, s.data.Owner.ID, domain.CurrencyUSD, "-5.00")
	s.ErrorIs(s.ledger.PostTransaction(tx, negative), apperrors.ErrInvalidLedgerEntry)

	foreign := sample.Legs(domain.NewID(), s.data.BankChecking.ID, s.data.Owner.ID, domain.CurrencyUSD, "5.00")
	s.ErrorIs(s.ledger.PostTransaction(tx, foreign), apperrors.ErrInvalidLedgerEntry)

	badType := sample.Legs(tx.ID, s.data.BankChecking.ID, s.data.Owner.ID, domain.CurrencyUSD, "5.00")
	badType[0].EntryType = "TRANSFER"
	s.ErrorIs(s.ledger.PostTransaction(tx, badType), apperrors.ErrInvalidLedgerEntry)

	_, ok := s.ledger.GetTransaction(tx.ID)
	s.False(ok)
}

func (s *LedgerTestSuite) TestMultiCurrencyTransaction() {
	tx := domain.Transaction{ID: domain.NewID(), TransactionType: domain.LedgerAdjustment{}}
	legs := append(
		sample.Legs(tx.ID, s.data.BankChecking.ID, s.data.Owner.ID, domain.CurrencyUSD, "100.00"),
		sample.Legs(tx.ID, s.data.BankChecking.ID, s.data.Owner.ID, domain.CurrencyBTC, "0.00100000")...,
	)

	s.Require().NoError(s.ledger.PostTransaction(tx, legs))
	s.Len(s.ledger.GetAccountEntries(s.data.Owner.ID), 3)
}

func (s *LedgerTestSuite) TestHierarchy() {
	parent, err := s.ledger.Parent(s.data.BankChecking)
	s.Require().NoError(err)
	s.Require().NotNil(parent)
	s.Equal(s.data.Assets.ID, parent.ID)

	root, err := s.ledger.Parent(s.data.Assets)
	s.NoError(err)
	s.Nil(root)

	children := s.ledger.Children(s.data.Assets.ID)
	s.Require().Len(children, 1)
	s.Equal(s.data.BankChecking.ID, children[0].ID)
	s.Empty(s.ledger.Children(s.data.Liabilities.ID))

	number, err := s.ledger.FullNumber(s.data.ConsultingIncome)
	s.Require().NoError(err)
	s.Equal([]domain.AccountNumber{400, 100}, number)

	equity, ok := s.ledger.GetRootAccount(domain.Equity)
	s.Require().True(ok)
	s.Equal(s.data.Equity.ID, equity.ID)

	_, ok = s.ledger.GetRootAccount(domain.NonOperatingExpense)
	s.False(ok)
	s.Len(s.ledger.RootAccounts(), 5)
}

func (s *LedgerTestSuite) TestMissingOrganization() {
	entry := domain.NewJournalEntryGenID(domain.NewID(), domain.AddCurrency{Currency: s.data.USD})

	err := s.ledgers.AddJournalEntry(entry)

	s.ErrorIs(err, apperrors.ErrMissingOrganization)
	_, err = s.ledgers.GetLedger(entry.OrganizationID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerTestSuite) TestMultiTenantIsolation() {
	other := sample.New()
	s.Require().NoError(s.ledgers.AddJournalEntries(other.Entries))
	s.Len(s.ledgers.Organizations(), 2)

	otherLedger, err := s.ledgers.GetLedger(other.OrganizationID)
	s.Require().NoError(err)
	_, ok := otherLedger.GetAccount(s.data.BankChecking.ID)
	s.False(ok)

	tx := domain.Transaction{ID: domain.NewID(), TransactionType: domain.LedgerAdjustment{}}
	entry := domain.NewJournalEntryGenID(other.OrganizationID, domain.AddTransaction{
		Transaction:   tx,
		LedgerEntries: sample.Legs(tx.ID, s.data.BankChecking.ID, s.data.Owner.ID, domain.CurrencyUSD, "1.00"),
	})
	s.ErrorIs(s.ledgers.AddJournalEntry(entry), apperrors.ErrMissingAccount)
	s.Len(s.ledger.Transactions(), 2)
}

func (s *LedgerTestSuite) TestAddJournalEntriesStopsAtFirstError() {
	l := ledger.NewOrganizationLedgers()
	entries := append([]domain.JournalEntry(nil), s.data.Entries[:3]...)
	entries = append(entries, s.data.Entries[1], s.data.Entries[3])

	err := l.AddJournalEntries(entries)

	s.ErrorIs(err, apperrors.ErrCurrencyExists)
	s.Contains(err.Error(), s.data.Entries[1].ID.String())
	applied, err := l.GetLedger(s.data.OrganizationID)
	s.Require().NoError(err)
	s.Len(applied.Currencies(), 2)
	s.Len(applied.Contacts(), 1)
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func TestFullNumberDeepChain(t *testing.T) {
	l := ledger.New()
	var parent *domain.AccountID
	var last domain.Account
	for _, n := range []domain.AccountNumber{10, 100, 200, 300} {
		last = domain.Account{
			ID:              domain.NewID(),
			ParentID:        parent,
			Number:          n,
			AccountType:     domain.LedgerAccount{},
			AccountCategory: domain.Asset,
		}
		require.NoError(t, l.AddAccount(last))
		id := last.ID
		parent = &id
	}

	number, err := l.FullNumber(last)
	require.NoError(t, err)
	assert.Equal(t, []domain.AccountNumber{10, 100, 200, 300}, number)
}

func TestOrphanChildrenAndCycles(t *testing.T) {
	l := ledger.New()
	aID, bID := domain.NewID(), domain.NewID()

	a := domain.Account{ID: aID, ParentID: &bID, Number: 1, AccountType: domain.LedgerAccount{}, AccountCategory: domain.Asset}
	require.NoError(t, l.AddAccount(a))

	_, err := l.Parent(a)
	assert.ErrorIs(t, err, apperrors.ErrMissingAccount)
	_, err = l.FullNumber(a)
	assert.ErrorIs(t, err, apperrors.ErrMissingAccount)
	assert.Equal(t, []domain.AccountID{aID}, l.ChildIDs(bID))

	b := domain.Account{ID: bID, ParentID: &aID, Number: 2, AccountType: domain.LedgerAccount{}, AccountCategory: domain.Asset}
	assert.ErrorIs(t, l.AddAccount(b), apperrors.ErrInvalidAccount)

	self := domain.NewID()
	assert.ErrorIs(t, l.AddAccount(domain.Account{ID: self, ParentID: &self, AccountType: domain.LedgerAccount{}, AccountCategory: domain.Asset}), apperrors.ErrInvalidAccount)

	b.ParentID = nil
	require.NoError(t, l.AddAccount(b))
	children := l.Children(bID)
	require.Len(t, children, 1)
	assert.Equal(t, aID, children[0].ID)
}

func TestChildrenSortedByID(t *testing.T) {
	l := ledger.New()
	root := domain.Account{ID: domain.NewID(), AccountType: domain.LedgerAccount{}, AccountCategory: domain.OperatingExpense}
	require.NoError(t, l.AddAccount(root))

	ids := []domain.AccountID{domain.NewID(), domain.NewID(), domain.NewID()}
	for _, i := range []int{2, 0, 1} {
		parentID := root.ID
		require.NoError(t, l.AddAccount(domain.Account{
			ID:              ids[i],
			ParentID:        &parentID,
			AccountType:     domain.LedgerAccount{},
			AccountCategory: domain.OperatingExpense,
		}))
	}

	assert.Equal(t, ids, l.ChildIDs(root.ID))
}
