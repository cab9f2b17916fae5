package services

import (
	"context"
	"time"

	"github.com/SscSPs/aba_ledger/internal/core/domain"
	"github.com/SscSPs/aba_ledger/internal/report"
	"github.com/SscSPs/aba_ledger/internal/sample"
)

// JournalEntryPage is one page of the journal in id order. NextToken is empty
// on the last page.
type JournalEntryPage struct {
	Entries   []domain.JournalEntry
	NextToken string
}

// AccountDetail is an account with its root-to-leaf number path.
type AccountDetail struct {
	Account    domain.Account
	FullNumber []domain.AccountNumber
}

// AccountEntries is an account with the ledger entries posted to it.
type AccountEntries struct {
	Account domain.Account
	Entries []domain.LedgerEntry
}

// TransactionDetail is a transaction with the ledger entries posted for it.
type TransactionDetail struct {
	Transaction   domain.Transaction
	LedgerEntries []domain.LedgerEntry
}

// JournalWriterSvc defines write operations on the journal.
type JournalWriterSvc interface {
	// SubmitEntry validates an entry against the current ledgers, appends it
	// to the journal and applies it. A zero id is assigned by the service and
	// the accepted entry is returned.
	SubmitEntry(ctx context.Context, entry domain.JournalEntry) (domain.JournalEntry, error)

	// SubmitEntries submits entries in order and stops at the first error.
	// It returns how many were accepted.
	SubmitEntries(ctx context.Context, entries []domain.JournalEntry) (int, error)

	// SeedSample submits the sample journal for a new organization.
	SeedSample(ctx context.Context) (sample.Dataset, error)

	// NextEntryID returns an id that sorts after every accepted entry.
	NextEntryID(ctx context.Context) (domain.JournalEntryID, error)
}

// JournalReaderSvc defines read operations on the journal.
type JournalReaderSvc interface {
	// ListEntries returns up to limit entries following the page token.
	ListEntries(ctx context.Context, limit int, nextToken string) (*JournalEntryPage, error)
}

// LedgerReaderSvc defines read operations on the projected ledgers.
type LedgerReaderSvc interface {
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	ListAccounts(ctx context.Context, orgID domain.OrganizationID) ([]AccountDetail, error)
	ListCurrencies(ctx context.Context, orgID domain.OrganizationID) ([]domain.Currency, error)
	ListContacts(ctx context.Context, orgID domain.OrganizationID) ([]domain.Contact, error)
	ListTransactions(ctx context.Context, orgID domain.OrganizationID) ([]TransactionDetail, error)

	// GetAccountEntries returns the entries posted to an account in posting order.
	GetAccountEntries(ctx context.Context, orgID domain.OrganizationID, accountID domain.AccountID) (AccountEntries, error)
}

// ReportingSvc builds financial reports.
type ReportingSvc interface {
	// GenerateReport totals the account trees of an organization. With no
	// root ids the statement's category roots are used.
	GenerateReport(ctx context.Context, orgID domain.OrganizationID, statement domain.FinancialStatement, asOf time.Time, rootIDs ...domain.AccountID) (*report.Report, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
// This is a facade for clients that need access to all operations
type LedgerSvcFacade interface {
	JournalWriterSvc
	JournalReaderSvc
	LedgerReaderSvc
	ReportingSvc
}
