// Package ledger projects journal entries into per-organization ledgers: a
// chart of accounts with the currencies, contacts and transactions that
// reference it. Every mutation is validated before it is applied.
package ledger

import (
	"sort"

	"github.com/SscSPs/aba_ledger/internal/apperrors"
	"github.com/SscSPs/aba_ledger/internal/core/domain"
)

// entryRef locates a ledger entry by its transaction and position.
type entryRef struct {
	transactionID domain.TransactionID
	index         int
}

// Ledger holds one organization's entities. Values are stored once in the
// primary maps; the account and child indices only hold ids.
//
// A Ledger is not safe for concurrent use.
type Ledger struct {
	accounts      map[domain.AccountID]domain.Account
	currencies    map[domain.CurrencyID]domain.Currency
	contacts      map[domain.ContactID]domain.Contact
	transactions  map[domain.TransactionID]domain.Transaction
	ledgerEntries map[domain.TransactionID][]domain.LedgerEntry

	accountEntries map[domain.AccountID][]entryRef
	children       map[domain.AccountID][]domain.AccountID
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		accounts:       make(map[domain.AccountID]domain.Account),
		currencies:     make(map[domain.CurrencyID]domain.Currency),
		contacts:       make(map[domain.ContactID]domain.Contact),
		transactions:   make(map[domain.TransactionID]domain.Transaction),
		ledgerEntries:  make(map[domain.TransactionID][]domain.LedgerEntry),
		accountEntries: make(map[domain.AccountID][]entryRef),
		children:       make(map[domain.AccountID][]domain.AccountID),
	}
}

// AddAccount inserts an account. The account type's contact or currency must
// already exist. The parent need not exist yet, but linking the account may
// not close a loop in the hierarchy.
func (l *Ledger) AddAccount(account domain.Account) error {
	if _, ok := l.accounts[account.ID]; ok {
		return apperrors.NewLedgerError(apperrors.AccountExists, account.ID)
	}
	if err := l.validateAccountType(account); err != nil {
		return err
	}
	if !account.AccountCategory.Valid() {
		return apperrors.NewLedgerError(apperrors.InvalidAccount, account.ID).
			WithDetail("unknown category %q", account.AccountCategory)
	}
	if err := l.validateParent(account); err != nil {
		return err
	}

	l.accounts[account.ID] = account
	if account.ParentID != nil {
		l.children[*account.ParentID] = insertSorted(l.children[*account.ParentID], account.ID)
	}
	return nil
}

// AddCurrency inserts a currency.
func (l *Ledger) AddCurrency(currency domain.Currency) error {
	if _, ok := l.currencies[currency.ID]; ok {
		return apperrors.NewLedgerError(apperrors.CurrencyExists, currency.ID)
	}
	l.currencies[currency.ID] = currency
	return nil
}

// AddContact inserts a contact.
func (l *Ledger) AddContact(contact domain.Contact) error {
	if _, ok := l.contacts[contact.ID]; ok {
		return apperrors.NewLedgerError(apperrors.ContactExists, contact.ID)
	}
	l.contacts[contact.ID] = contact
	return nil
}

// AddTransaction inserts a transaction header without entries.
func (l *Ledger) AddTransaction(tx domain.Transaction) error {
	if _, ok := l.transactions[tx.ID]; ok {
		return apperrors.NewLedgerError(apperrors.TransactionExists, tx.ID)
	}
	l.transactions[tx.ID] = tx
	return nil
}

// AddLedgerEntries records the entries of an existing transaction and
// indexes them under their accounts. Nothing is recorded if any entry is
// rejected.
func (l *Ledger) AddLedgerEntries(txID domain.TransactionID, entries []domain.LedgerEntry) error {
	if _, ok := l.transactions[txID]; !ok {
		return apperrors.NewLedgerError(apperrors.MissingTransaction, txID)
	}
	if _, ok := l.ledgerEntries[txID]; ok {
		return apperrors.NewLedgerError(apperrors.LedgerEntriesExists, txID)
	}
	if err := l.validateEntries(txID, entries); err != nil {
		return err
	}
	l.recordEntries(txID, entries)
	return nil
}

// PostTransaction adds a transaction together with its entries. Both are
// validated first, so a rejected transaction leaves the ledger unchanged.
func (l *Ledger) PostTransaction(tx domain.Transaction, entries []domain.LedgerEntry) error {
	if _, ok := l.transactions[tx.ID]; ok {
		return apperrors.NewLedgerError(apperrors.TransactionExists, tx.ID)
	}
	if err := l.validateEntries(tx.ID, entries); err != nil {
		return err
	}
	l.transactions[tx.ID] = tx
	l.recordEntries(tx.ID, entries)
	return nil
}

func (l *Ledger) recordEntries(txID domain.TransactionID, entries []domain.LedgerEntry) {
	stored := append([]domain.LedgerEntry(nil), entries...)
	l.ledgerEntries[txID] = stored
	for i, entry := range stored {
		l.accountEntries[entry.AccountID] = append(l.accountEntries[entry.AccountID], entryRef{transactionID: txID, index: i})
	}
}

// GetAccount looks up an account by id.
func (l *Ledger) GetAccount(id domain.AccountID) (domain.Account, bool) {
	a, ok := l.accounts[id]
	return a, ok
}

// GetCurrency looks up a currency by id.
func (l *Ledger) GetCurrency(id domain.CurrencyID) (domain.Currency, bool) {
	c, ok := l.currencies[id]
	return c, ok
}

// GetContact looks up a contact by id.
func (l *Ledger) GetContact(id domain.ContactID) (domain.Contact, bool) {
	c, ok := l.contacts[id]
	return c, ok
}

// GetTransaction looks up a transaction by id.
func (l *Ledger) GetTransaction(id domain.TransactionID) (domain.Transaction, bool) {
	t, ok := l.transactions[id]
	return t, ok
}

// GetTransactionEntries returns the entries recorded for a transaction.
func (l *Ledger) GetTransactionEntries(id domain.TransactionID) []domain.LedgerEntry {
	return append([]domain.LedgerEntry(nil), l.ledgerEntries[id]...)
}

// GetAccountEntries returns the entries posted directly to an account, in
// the order they were recorded.
func (l *Ledger) GetAccountEntries(id domain.AccountID) []domain.LedgerEntry {
	refs := l.accountEntries[id]
	entries := make([]domain.LedgerEntry, 0, len(refs))
	for _, ref := range refs {
		entries = append(entries, l.ledgerEntries[ref.transactionID][ref.index])
	}
	return entries
}

// Accounts returns all accounts ordered by id.
func (l *Ledger) Accounts() []domain.Account {
	accounts := make([]domain.Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID.Compare(accounts[j].ID) < 0 })
	return accounts
}

// Currencies returns all currencies ordered by id.
func (l *Ledger) Currencies() []domain.Currency {
	currencies := make([]domain.Currency, 0, len(l.currencies))
	for _, c := range l.currencies {
		currencies = append(currencies, c)
	}
	sort.Slice(currencies, func(i, j int) bool { return currencies[i].ID < currencies[j].ID })
	return currencies
}

// Contacts returns all contacts ordered by id.
func (l *Ledger) Contacts() []domain.Contact {
	contacts := make([]domain.Contact, 0, len(l.contacts))
	for _, c := range l.contacts {
		contacts = append(contacts, c)
	}
	sort.Slice(contacts, func(i, j int) bool { return contacts[i].ID.Compare(contacts[j].ID) < 0 })
	return contacts
}

// Transactions returns all transactions ordered by id.
func (l *Ledger) Transactions() []domain.Transaction {
	transactions := make([]domain.Transaction, 0, len(l.transactions))
	for _, t := range l.transactions {
		transactions = append(transactions, t)
	}
	sort.Slice(transactions, func(i, j int) bool { return transactions[i].ID.Compare(transactions[j].ID) < 0 })
	return transactions
}

func insertSorted(ids []domain.AccountID, id domain.AccountID) []domain.AccountID {
	i := sort.Search(len(ids), func(i int) bool { return ids[i].Compare(id) >= 0 })
	ids = append(ids, domain.AccountID{})
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}
