package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStore indicates that the event store failed to persist or load entries.
var ErrStore = errors.New("event store error")

// Kind identifies a ledger rejection.
type Kind int

const (
	MissingAccount Kind = iota + 1
	AccountExists
	MissingCurrency
	CurrencyExists
	MissingContact
	ContactExists
	MissingTransaction
	TransactionExists
	LedgerEntriesExists
	MissingOrganization
	OrganizationExists
	InvalidOrganization
	InvalidAccount
	InvalidLedgerEntry
	UnbalancedTransaction
)

var kindMessages = map[Kind]string{
	MissingAccount:        "missing account",
	AccountExists:         "account exists",
	MissingCurrency:       "missing currency",
	CurrencyExists:        "currency exists",
	MissingContact:        "missing contact",
	ContactExists:         "contact exists",
	MissingTransaction:    "missing transaction",
	TransactionExists:     "transaction exists",
	LedgerEntriesExists:   "transaction entries exists",
	MissingOrganization:   "missing organization",
	OrganizationExists:    "organization exists",
	InvalidOrganization:   "invalid organization",
	InvalidAccount:        "invalid account",
	InvalidLedgerEntry:    "invalid ledger entry",
	UnbalancedTransaction: "unbalanced transaction",
}

func (k Kind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("ledger error %d", int(k))
}

// category maps a kind onto one of the generic sentinels.
func (k Kind) category() error {
	switch k {
	case MissingAccount, MissingCurrency, MissingContact, MissingTransaction, MissingOrganization:
		return ErrNotFound
	case AccountExists, CurrencyExists, ContactExists, TransactionExists, LedgerEntriesExists, OrganizationExists:
		return ErrDuplicate
	default:
		return ErrValidation
	}
}

// LedgerError is returned when the ledger rejects an operation. ID names the
// offending entity and Detail optionally explains the rejection.
type LedgerError struct {
	Kind   Kind
	ID     string
	Detail string
}

// Per-kind targets for errors.Is. They match any LedgerError of the same kind.
var (
	ErrMissingAccount        = &LedgerError{Kind: MissingAccount}
	ErrAccountExists         = &LedgerError{Kind: AccountExists}
	ErrMissingCurrency       = &LedgerError{Kind: MissingCurrency}
	ErrCurrencyExists        = &LedgerError{Kind: CurrencyExists}
	ErrMissingContact        = &LedgerError{Kind: MissingContact}
	ErrContactExists         = &LedgerError{Kind: ContactExists}
	ErrMissingTransaction    = &LedgerError{Kind: MissingTransaction}
	ErrTransactionExists     = &LedgerError{Kind: TransactionExists}
	ErrLedgerEntriesExists   = &LedgerError{Kind: LedgerEntriesExists}
	ErrMissingOrganization   = &LedgerError{Kind: MissingOrganization}
	ErrOrganizationExists    = &LedgerError{Kind: OrganizationExists}
	ErrInvalidOrganization   = &LedgerError{Kind: InvalidOrganization}
	ErrInvalidAccount        = &LedgerError{Kind: InvalidAccount}
	ErrInvalidLedgerEntry    = &LedgerError{Kind: InvalidLedgerEntry}
	ErrUnbalancedTransaction = &LedgerError{Kind: UnbalancedTransaction}
)

// NewLedgerError builds a LedgerError for the entity id.
func NewLedgerError(kind Kind, id any) *LedgerError {
	return &LedgerError{Kind: kind, ID: fmt.Sprint(id)}
}

// WithDetail returns a copy of e carrying an explanation.
func (e *LedgerError) WithDetail(format string, args ...any) *LedgerError {
	c := *e
	c.Detail = fmt.Sprintf(format, args...)
	return &c
}

func (e *LedgerError) Error() string {
	msg := e.Kind.String()
	if e.ID != "" {
		msg += ": " + e.ID
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Is matches another LedgerError of the same kind (and the same ID when the
// target names one) or the generic sentinel the kind belongs to.
func (e *LedgerError) Is(target error) bool {
	if other, ok := target.(*LedgerError); ok {
		return other.Kind == e.Kind && (other.ID == "" || other.ID == e.ID)
	}
	return target == e.Kind.category()
}

// StoreOp names the step of an event store operation that failed.
type StoreOp string

const (
	StoreOpSerialize StoreOp = "serialize"
	StoreOpStorage   StoreOp = "storage"
	StoreOpDecodeID  StoreOp = "decode id"
	StoreOpDecode    StoreOp = "decode"
)

// StoreError wraps a failure of the event store.
type StoreError struct {
	Op  StoreOp
	Err error
}

// NewStoreError wraps err, returning nil when err is nil.
func NewStoreError(op StoreOp, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("event store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Is reports whether target is ErrStore.
func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

// KindOf extracts the ledger error kind from err, if any.
func KindOf(err error) (Kind, bool) {
	var le *LedgerError
	if errors.As(err, &le) {
		return le.Kind, true
	}
	return 0, false
}
