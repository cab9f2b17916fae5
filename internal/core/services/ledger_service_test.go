package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/aba_ledger/internal/adapters/eventstore/memory"
	"github.com/SscSPs/aba_ledger/internal/apperrors"
	"github.com/SscSPs/aba_ledger/internal/core/domain"
	"github.com/SscSPs/aba_ledger/internal/core/services"
	"github.com/SscSPs/aba_ledger/internal/sample"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock EventStore ---
type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) InsertEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEventStore) SelectEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memory.Store
	service *services.LedgerService
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = memory.NewStore()
	suite.service = services.NewLedgerService(suite.store)
	suite.Require().NoError(suite.service.Load(suite.ctx))
}

func (suite *LedgerServiceTestSuite) seed() sample.Dataset {
	data, err := suite.service.SeedSample(suite.ctx)
	suite.Require().NoError(err)
	return data
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestSeedSample_ProjectsLedger() {
	data := suite.seed()

	suite.Equal(len(data.Entries), suite.store.Len())

	orgs, err := suite.service.ListOrganizations(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orgs, 1)
	suite.Equal(data.OrganizationID, orgs[0].ID)

	accounts, err := suite.service.ListAccounts(suite.ctx, data.OrganizationID)
	suite.Require().NoError(err)
	suite.Len(accounts, 9)
	for _, detail := range accounts {
		if detail.Account.ID == data.BankChecking.ID {
			suite.Equal([]domain.AccountNumber{100, 100}, detail.FullNumber)
		}
	}

	currencies, err := suite.service.ListCurrencies(suite.ctx, data.OrganizationID)
	suite.Require().NoError(err)
	suite.Len(currencies, 2)

	contacts, err := suite.service.ListContacts(suite.ctx, data.OrganizationID)
	suite.Require().NoError(err)
	suite.Len(contacts, 3)

	transactions, err := suite.service.ListTransactions(suite.ctx, data.OrganizationID)
	suite.Require().NoError(err)
	suite.Require().Len(transactions, 2)
	suite.Len(transactions[0].LedgerEntries, 2)

	entries, err := suite.service.GetAccountEntries(suite.ctx, data.OrganizationID, data.BankChecking.ID)
	suite.Require().NoError(err)
	suite.Equal(data.BankChecking.ID, entries.Account.ID)
	suite.Len(entries.Entries, 2)
}

func (suite *LedgerServiceTestSuite) TestGenerateReport() {
	data := suite.seed()
	asOf := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)

	r, err := suite.service.GenerateReport(suite.ctx, data.OrganizationID, domain.BalanceSheet, asOf)
	suite.Require().NoError(err)
	suite.Equal(asOf, r.Timestamp)
	suite.Require().Len(r.AccountTotals, 3)
	suite.True(r.AccountTotals[0].Debit(domain.CurrencyUSD).Equal(decimal.NewFromInt(18000)))

	r, err = suite.service.GenerateReport(suite.ctx, data.OrganizationID, "", time.Time{}, data.Revenue.ID)
	suite.Require().NoError(err)
	suite.False(r.Timestamp.IsZero())
	suite.True(r.AccountTotals[0].Credit(domain.CurrencyUSD).Equal(decimal.NewFromInt(8000)))

	_, err = suite.service.GenerateReport(suite.ctx, data.OrganizationID, domain.BalanceSheet, asOf, domain.NewID())
	suite.ErrorIs(err, apperrors.ErrMissingAccount)
}

func (suite *LedgerServiceTestSuite) TestLoad_ReplaysExistingJournal() {
	data := suite.seed()

	replayed := services.NewLedgerService(suite.store)
	suite.Require().NoError(replayed.Load(suite.ctx))

	r, err := replayed.GenerateReport(suite.ctx, data.OrganizationID, domain.IncomeStatement, time.Now())
	suite.Require().NoError(err)
	suite.True(r.AccountTotals[0].Credit(domain.CurrencyUSD).Equal(decimal.NewFromInt(8000)))

	next, err := replayed.NextEntryID(suite.ctx)
	suite.Require().NoError(err)
	suite.Positive(next.Compare(data.Entries[len(data.Entries)-1].ID))
}

func (suite *LedgerServiceTestSuite) TestSubmitEntry_RejectedEntryIsNotStored() {
	data := suite.seed()
	before := suite.store.Len()

	tx := domain.Transaction{ID: domain.NewID(), TransactionType: domain.LedgerAdjustment{}}
	legs := sample.Legs(tx.ID, data.BankChecking.ID, data.Owner.ID, domain.CurrencyUSD, "5.00")
	legs[1].CurrencyAmount.Amount = decimal.RequireFromString("4.00")

	id, err := suite.service.NextEntryID(suite.ctx)
	suite.Require().NoError(err)
	entry := domain.NewJournalEntry(id, data.OrganizationID, domain.AddTransaction{Transaction: tx, LedgerEntries: legs})

	_, err = suite.service.SubmitEntry(suite.ctx, entry)
	suite.ErrorIs(err, apperrors.ErrUnbalancedTransaction)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(before, suite.store.Len())

	transactions, err := suite.service.ListTransactions(suite.ctx, data.OrganizationID)
	suite.Require().NoError(err)
	suite.Len(transactions, 2)
}

func (suite *LedgerServiceTestSuite) TestSubmitEntry_IDMustIncrease() {
	data := suite.seed()

	stale := domain.NewJournalEntry(data.Entries[0].ID, data.OrganizationID, domain.AddContact{
		Contact: domain.NewContact(domain.ContactTypeIndividual, "Late", nil),
	})
	_, err := suite.service.SubmitEntry(suite.ctx, stale)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestSubmitEntry_AssignsIDConcurrently() {
	data := suite.seed()
	last := data.Entries[len(data.Entries)-1].ID

	const n = 32
	accepted := make([]domain.JournalEntry, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry := domain.NewJournalEntry(domain.JournalEntryID{}, data.OrganizationID, domain.AddContact{
				Contact: domain.NewContact(domain.ContactTypeIndividual, "Walk-in", nil),
			})
			accepted[i], errs[i] = suite.service.SubmitEntry(suite.ctx, entry)
		}(i)
	}
	wg.Wait()

	seen := make(map[domain.JournalEntryID]bool, n)
	for i := 0; i < n; i++ {
		suite.Require().NoError(errs[i])
		suite.Positive(accepted[i].ID.Compare(last))
		suite.False(seen[accepted[i].ID])
		seen[accepted[i].ID] = true
	}
	suite.Equal(len(data.Entries)+n, suite.store.Len())

	contacts, err := suite.service.ListContacts(suite.ctx, data.OrganizationID)
	suite.Require().NoError(err)
	suite.Len(contacts, 3+n)
}

func (suite *LedgerServiceTestSuite) TestSubmitEntries_StopsAtFirstError() {
	data := sample.New()
	entries := append([]domain.JournalEntry(nil), data.Entries[:3]...)
	entries[2] = domain.NewJournalEntry(entries[2].ID, domain.NewID(), entries[2].Action)

	n, err := suite.service.SubmitEntries(suite.ctx, entries)
	suite.Equal(2, n)
	suite.ErrorIs(err, apperrors.ErrMissingOrganization)
	suite.Equal(2, suite.store.Len())
}

func (suite *LedgerServiceTestSuite) TestListEntries_Paginates() {
	data := suite.seed()

	page, err := suite.service.ListEntries(suite.ctx, 10, "")
	suite.Require().NoError(err)
	suite.Len(page.Entries, 10)
	suite.NotEmpty(page.NextToken)

	rest, err := suite.service.ListEntries(suite.ctx, 10, page.NextToken)
	suite.Require().NoError(err)
	suite.Len(rest.Entries, len(data.Entries)-10)
	suite.Empty(rest.NextToken)
	suite.Equal(data.Entries[10].ID, rest.Entries[0].ID)

	_, err = suite.service.ListEntries(suite.ctx, 10, "garbage!")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestReads_MissingOrganizationAndAccount() {
	data := suite.seed()

	_, err := suite.service.ListAccounts(suite.ctx, domain.NewID())
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.GetAccountEntries(suite.ctx, data.OrganizationID, domain.NewID())
	suite.ErrorIs(err, apperrors.ErrMissingAccount)
}

func (suite *LedgerServiceTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()

	_, err := suite.service.SeedSample(ctx)
	suite.ErrorIs(err, context.Canceled)
	suite.Zero(suite.store.Len())

	_, err = suite.service.ListOrganizations(ctx)
	suite.ErrorIs(err, context.Canceled)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func TestSubmitEntry_AppendFailureRebuildsLedgers(t *testing.T) {
	ctx := context.Background()
	data := sample.New()
	store := new(MockEventStore)
	diskFull := apperrors.NewStoreError(apperrors.StoreOpStorage, errors.New("disk full"))

	store.On("SelectEntries", mock.Anything).Return([]domain.JournalEntry{}, nil).Once()
	store.On("InsertEntry", mock.Anything, data.Entries[0]).Return(nil).Once()
	store.On("InsertEntry", mock.Anything, data.Entries[1]).Return(diskFull).Once()
	store.On("SelectEntries", mock.Anything).Return(data.Entries[:1], nil).Once()

	svc := services.NewLedgerService(store)
	require.NoError(t, svc.Load(ctx))
	_, err := svc.SubmitEntry(ctx, data.Entries[0])
	require.NoError(t, err)

	_, err = svc.SubmitEntry(ctx, data.Entries[1])
	assert.ErrorIs(t, err, apperrors.ErrStore)

	currencies, err := svc.ListCurrencies(ctx, data.OrganizationID)
	require.NoError(t, err)
	assert.Empty(t, currencies, "the currency must not survive a failed append")

	store.AssertExpectations(t)
}

func TestSubmitEntry_FailedRebuildBlocksUntilLoad(t *testing.T) {
	ctx := context.Background()
	data := sample.New()
	store := new(MockEventStore)
	diskFull := apperrors.NewStoreError(apperrors.StoreOpStorage, errors.New("disk full"))
	badRow := apperrors.NewStoreError(apperrors.StoreOpDecode, errors.New("bad row"))

	store.On("SelectEntries", mock.Anything).Return([]domain.JournalEntry{}, nil).Once()
	store.On("InsertEntry", mock.Anything, data.Entries[0]).Return(diskFull).Once()
	store.On("SelectEntries", mock.Anything).Return(nil, badRow).Once()
	store.On("SelectEntries", mock.Anything).Return([]domain.JournalEntry{}, nil).Once()

	svc := services.NewLedgerService(store)
	require.NoError(t, svc.Load(ctx))

	_, err := svc.SubmitEntry(ctx, data.Entries[0])
	assert.ErrorIs(t, err, apperrors.ErrStore)

	_, err = svc.ListOrganizations(ctx)
	assert.ErrorIs(t, err, apperrors.ErrStore, "the unpersisted organization must not be served")
	_, err = svc.ListCurrencies(ctx, data.OrganizationID)
	assert.ErrorIs(t, err, apperrors.ErrStore)
	_, err = svc.SubmitEntry(ctx, data.Entries[0])
	assert.ErrorIs(t, err, apperrors.ErrStore)

	require.NoError(t, svc.Load(ctx))
	orgs, err := svc.ListOrganizations(ctx)
	require.NoError(t, err)
	assert.Empty(t, orgs)

	store.AssertExpectations(t)
}

func TestLoad_StoreFailure(t *testing.T) {
	store := new(MockEventStore)
	store.On("SelectEntries", mock.Anything).Return(nil, apperrors.NewStoreError(apperrors.StoreOpDecode, errors.New("bad row")))

	svc := services.NewLedgerService(store)
	err := svc.Load(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrStore)
}

func TestNewServiceContainer(t *testing.T) {
	container, svc := services.NewServiceContainer(memory.NewStore())
	require.NotNil(t, container.Ledger)
	assert.Same(t, svc, container.Ledger)
}
