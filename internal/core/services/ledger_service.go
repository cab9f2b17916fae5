package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/aba_ledger/internal/apperrors"
	"github.com/SscSPs/aba_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/aba_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/aba_ledger/internal/core/ports/services"
	"github.com/SscSPs/aba_ledger/internal/journal"
	"github.com/SscSPs/aba_ledger/internal/ledger"
	"github.com/SscSPs/aba_ledger/internal/report"
	"github.com/SscSPs/aba_ledger/internal/sample"
	"github.com/SscSPs/aba_ledger/internal/utils/pagination"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// LedgerService owns the journal and the ledgers projected from it. Writes
// hold the lock exclusively; reads share it.
type LedgerService struct {
	BaseService

	mu      sync.RWMutex
	journal *journal.Journal
	ledgers *ledger.OrganizationLedgers
	lastID  *domain.JournalEntryID
	// broken is set when the ledgers could not be rebuilt after a failed
	// append. Everything but Load fails until a replay succeeds.
	broken error
}

// NewLedgerService creates a service over store. Call Load to replay entries
// already in the store.
func NewLedgerService(store portsrepo.EventStore) *LedgerService {
	return &LedgerService{
		journal: journal.New(store),
		ledgers: ledger.NewOrganizationLedgers(),
	}
}

// Load rebuilds the ledgers by replaying the whole journal.
func (s *LedgerService) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reload(ctx)
}

func (s *LedgerService) reload(ctx context.Context) error {
	entries, err := s.journal.View(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read journal for replay")
		return err
	}

	ledgers := ledger.NewOrganizationLedgers()
	if err := ledgers.AddJournalEntries(entries); err != nil {
		s.LogError(ctx, err, "Failed to replay journal", slog.Int("entries", len(entries)))
		return fmt.Errorf("replay journal: %w", err)
	}

	s.ledgers = ledgers
	s.broken = nil
	s.lastID = nil
	if n := len(entries); n > 0 {
		last := entries[n-1].ID
		s.lastID = &last
	}
	s.LogInfo(ctx, "Journal replayed",
		slog.Int("entries", len(entries)),
		slog.Int("organizations", len(ledgers.Organizations())))
	return nil
}

// SubmitEntry validates entry by applying it to the in-memory ledgers, then
// appends it to the journal. An entry with a zero id is given one that sorts
// after every accepted entry. If the append fails the ledgers are rebuilt
// from the journal so they never hold an entry the store does not.
func (s *LedgerService) SubmitEntry(ctx context.Context, entry domain.JournalEntry) (domain.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return domain.JournalEntry{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submit(ctx, entry)
}

func (s *LedgerService) submit(ctx context.Context, entry domain.JournalEntry) (domain.JournalEntry, error) {
	if err := s.healthy(); err != nil {
		return domain.JournalEntry{}, err
	}

	if entry.ID == (domain.JournalEntryID{}) {
		id, err := s.nextID()
		if err != nil {
			return domain.JournalEntry{}, err
		}
		entry.ID = id
	} else if s.lastID != nil && entry.ID.Compare(*s.lastID) <= 0 {
		return domain.JournalEntry{}, fmt.Errorf("%w: journal entry %s must sort after %s", apperrors.ErrValidation, entry.ID, *s.lastID)
	}

	logger := s.GetLogger(ctx).With(
		slog.String("entry_id", entry.ID.String()),
		slog.String("action", domain.ActionName(entry.Action)),
	)

	if err := s.ledgers.AddJournalEntry(entry); err != nil {
		logger.Warn("Journal entry rejected", slog.String("error", err.Error()))
		return domain.JournalEntry{}, err
	}

	if err := s.journal.Add(ctx, entry); err != nil {
		logger.Error("Failed to append journal entry, rebuilding ledgers", slog.String("error", err.Error()))
		if reloadErr := s.reload(context.WithoutCancel(ctx)); reloadErr != nil {
			s.broken = apperrors.NewStoreError(apperrors.StoreOpStorage, fmt.Errorf("ledgers out of sync with journal: %w", reloadErr))
			logger.Error("Ledger rebuild failed, refusing further requests until reload", slog.String("error", reloadErr.Error()))
			return domain.JournalEntry{}, fmt.Errorf("%w (rebuild failed: %v)", err, reloadErr)
		}
		return domain.JournalEntry{}, err
	}

	id := entry.ID
	s.lastID = &id
	logger.Debug("Journal entry accepted")
	return entry, nil
}

func (s *LedgerService) healthy() error {
	return s.broken
}

// SubmitEntries submits entries in order and stops at the first error.
func (s *LedgerService) SubmitEntries(ctx context.Context, entries []domain.JournalEntry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if _, err := s.submit(ctx, entry); err != nil {
			return i, err
		}
	}
	return len(entries), nil
}

// SeedSample submits a fresh sample dataset.
func (s *LedgerService) SeedSample(ctx context.Context) (sample.Dataset, error) {
	data := sample.New()
	if _, err := s.SubmitEntries(ctx, data.Entries); err != nil {
		return sample.Dataset{}, fmt.Errorf("seed sample journal: %w", err)
	}
	s.LogInfo(ctx, "Sample journal seeded", slog.String("organization_id", data.OrganizationID.String()))
	return data, nil
}

// NextEntryID returns an id that sorts after every accepted entry.
func (s *LedgerService) NextEntryID(ctx context.Context) (domain.JournalEntryID, error) {
	if err := ctx.Err(); err != nil {
		return domain.JournalEntryID{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID()
}

func (s *LedgerService) nextID() (domain.JournalEntryID, error) {
	if s.lastID == nil {
		return domain.NewID(), nil
	}
	id, err := domain.NextID(*s.lastID)
	if err != nil {
		return domain.JournalEntryID{}, err
	}
	// Prefer a fresh id when it already sorts later.
	if fresh := domain.NewID(); fresh.Compare(id) > 0 {
		return fresh, nil
	}
	return id, nil
}

// ListEntries returns a page of the journal.
func (s *LedgerService) ListEntries(ctx context.Context, limit int, nextToken string) (*portssvc.JournalEntryPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	var after *domain.JournalEntryID
	if nextToken != "" {
		id, err := pagination.DecodeIDToken(nextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		after = &id
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.healthy(); err != nil {
		return nil, err
	}

	// One extra entry tells us whether another page exists.
	entries, err := s.journal.ViewPage(ctx, after, limit+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, err
	}

	page := &portssvc.JournalEntryPage{Entries: entries}
	if len(entries) > limit {
		page.Entries = entries[:limit]
		page.NextToken = pagination.EncodeIDToken(page.Entries[limit-1].ID)
	}
	return page, nil
}

// ListOrganizations returns every organization ordered by id.
func (s *LedgerService) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.healthy(); err != nil {
		return nil, err
	}
	return s.ledgers.Organizations(), nil
}

// ListAccounts returns the accounts of an organization with their full numbers.
func (s *LedgerService) ListAccounts(ctx context.Context, orgID domain.OrganizationID) ([]portssvc.AccountDetail, error) {
	var details []portssvc.AccountDetail
	err := s.withLedger(ctx, orgID, func(l *ledger.Ledger) error {
		accounts := l.Accounts()
		details = make([]portssvc.AccountDetail, 0, len(accounts))
		for _, account := range accounts {
			detail := portssvc.AccountDetail{Account: account}
			// Orphans keep an empty path until their parent arrives.
			if full, err := l.FullNumber(account); err == nil {
				detail.FullNumber = full
			}
			details = append(details, detail)
		}
		return nil
	})
	return details, err
}

// ListCurrencies returns the currencies of an organization.
func (s *LedgerService) ListCurrencies(ctx context.Context, orgID domain.OrganizationID) ([]domain.Currency, error) {
	var currencies []domain.Currency
	err := s.withLedger(ctx, orgID, func(l *ledger.Ledger) error {
		currencies = l.Currencies()
		return nil
	})
	return currencies, err
}

// ListContacts returns the contacts of an organization.
func (s *LedgerService) ListContacts(ctx context.Context, orgID domain.OrganizationID) ([]domain.Contact, error) {
	var contacts []domain.Contact
	err := s.withLedger(ctx, orgID, func(l *ledger.Ledger) error {
		contacts = l.Contacts()
		return nil
	})
	return contacts, err
}

// ListTransactions returns the transactions of an organization with their entries.
func (s *LedgerService) ListTransactions(ctx context.Context, orgID domain.OrganizationID) ([]portssvc.TransactionDetail, error) {
	var details []portssvc.TransactionDetail
	err := s.withLedger(ctx, orgID, func(l *ledger.Ledger) error {
		transactions := l.Transactions()
		details = make([]portssvc.TransactionDetail, 0, len(transactions))
		for _, tx := range transactions {
			details = append(details, portssvc.TransactionDetail{
				Transaction:   tx,
				LedgerEntries: l.GetTransactionEntries(tx.ID),
			})
		}
		return nil
	})
	return details, err
}

// GetAccountEntries returns an account with the entries posted to it.
func (s *LedgerService) GetAccountEntries(ctx context.Context, orgID domain.OrganizationID, accountID domain.AccountID) (portssvc.AccountEntries, error) {
	var result portssvc.AccountEntries
	err := s.withLedger(ctx, orgID, func(l *ledger.Ledger) error {
		account, ok := l.GetAccount(accountID)
		if !ok {
			return apperrors.NewLedgerError(apperrors.MissingAccount, accountID)
		}
		result = portssvc.AccountEntries{Account: account, Entries: l.GetAccountEntries(accountID)}
		return nil
	})
	return result, err
}

// GenerateReport builds a report for an organization.
func (s *LedgerService) GenerateReport(ctx context.Context, orgID domain.OrganizationID, statement domain.FinancialStatement, asOf time.Time, rootIDs ...domain.AccountID) (*report.Report, error) {
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	var r *report.Report
	err := s.withLedger(ctx, orgID, func(l *ledger.Ledger) error {
		var err error
		r, err = report.New(l, asOf, statement, rootIDs...)
		return err
	})
	if err != nil {
		s.LogDebug(ctx, "Report generation failed", slog.String("organization_id", orgID.String()), slog.String("error", err.Error()))
		return nil, err
	}
	return r, nil
}

func (s *LedgerService) withLedger(ctx context.Context, orgID domain.OrganizationID, fn func(*ledger.Ledger) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.healthy(); err != nil {
		return err
	}
	l, err := s.ledgers.GetLedger(orgID)
	if err != nil {
		return err
	}
	return fn(l)
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)
