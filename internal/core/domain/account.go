package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AccountNumber is the account's number relative to its parent.
type AccountNumber uint32

// FinancialStatement is a report an account category rolls up into.
type FinancialStatement string

const (
	BalanceSheet    FinancialStatement = "BALANCE_SHEET"
	IncomeStatement FinancialStatement = "INCOME_STATEMENT"
)

// ParseFinancialStatement accepts the canonical names and a few short forms
// ("balance-sheet", "income", ...), case-insensitively.
func ParseFinancialStatement(s string) (FinancialStatement, error) {
	switch strings.ToUpper(strings.NewReplacer("-", "_", " ", "_").Replace(strings.TrimSpace(s))) {
	case string(BalanceSheet), "BALANCE":
		return BalanceSheet, nil
	case string(IncomeStatement), "INCOME":
		return IncomeStatement, nil
	default:
		return "", fmt.Errorf("unknown financial statement %q", s)
	}
}

// AccountCategory places an account on a financial statement.
type AccountCategory string

const (
	Asset     AccountCategory = "ASSET"
	Liability AccountCategory = "LIABILITY"
	Equity    AccountCategory = "EQUITY"

	OperatingRevenue    AccountCategory = "OPERATING_REVENUE"
	OperatingExpense    AccountCategory = "OPERATING_EXPENSE"
	NonOperatingRevenue AccountCategory = "NON_OPERATING_REVENUE"
	NonOperatingExpense AccountCategory = "NON_OPERATING_EXPENSE"
)

var statementCategories = map[FinancialStatement][]AccountCategory{
	BalanceSheet:    {Asset, Liability, Equity},
	IncomeStatement: {OperatingRevenue, OperatingExpense, NonOperatingRevenue, NonOperatingExpense},
}

// Categories lists the categories of a statement in presentation order.
func (s FinancialStatement) Categories() []AccountCategory {
	return append([]AccountCategory(nil), statementCategories[s]...)
}

// Statement returns the financial statement the category belongs to.
func (c AccountCategory) Statement() (FinancialStatement, bool) {
	for statement, categories := range statementCategories {
		for _, candidate := range categories {
			if candidate == c {
				return statement, true
			}
		}
	}
	return "", false
}

// Valid reports whether c is a known category.
func (c AccountCategory) Valid() bool {
	_, ok := c.Statement()
	return ok
}

// AccountType is one of LedgerAccount, ContactAccount, BankAccount or
// BitcoinAccount.
type AccountType interface {
	variant
	isAccountType()
}

// LedgerAccount is a plain bookkeeping account.
type LedgerAccount struct{}

// ContactAccount tracks amounts owed to or by a contact.
type ContactAccount struct {
	ContactID ContactID `json:"contactID"`
}

// BankAccount mirrors an account held at a bank.
type BankAccount struct {
	CurrencyID    CurrencyID `json:"currencyID"`
	Routing       uint32     `json:"routing"`
	AccountNumber uint64     `json:"accountNumber"`
}

// BitcoinAccount mirrors a wallet described by output descriptors.
type BitcoinAccount struct {
	Descriptor       string  `json:"descriptor"`
	ChangeDescriptor *string `json:"changeDescriptor,omitempty"`
}

func (LedgerAccount) isAccountType()  {}
func (ContactAccount) isAccountType() {}
func (BankAccount) isAccountType()    {}
func (BitcoinAccount) isAccountType() {}

func (LedgerAccount) variantName() string  { return "LEDGER_ACCOUNT" }
func (ContactAccount) variantName() string { return "CONTACT_ACCOUNT" }
func (BankAccount) variantName() string    { return "BANK_ACCOUNT" }
func (BitcoinAccount) variantName() string { return "BITCOIN_ACCOUNT" }

// AccountTypeName returns the wire tag of an account type, e.g. "BANK_ACCOUNT".
func AccountTypeName(t AccountType) string {
	return variantNameOf(t)
}

func unmarshalAccountType(data []byte) (AccountType, error) {
	env, ok, err := decodeEnvelope(data)
	if err != nil || !ok {
		return nil, err
	}
	switch env.Type {
	case LedgerAccount{}.variantName():
		return LedgerAccount{}, nil
	case ContactAccount{}.variantName():
		return decodePayload[ContactAccount](env.Payload)
	case BankAccount{}.variantName():
		return decodePayload[BankAccount](env.Payload)
	case BitcoinAccount{}.variantName():
		return decodePayload[BitcoinAccount](env.Payload)
	default:
		return nil, unknownVariant("account type", env.Type)
	}
}

// Account is a node of an organization's chart of accounts. Accounts without
// a parent are roots.
type Account struct {
	ID              AccountID       `json:"id"`
	ParentID        *AccountID      `json:"parentID,omitempty"`
	Number          AccountNumber   `json:"number"`
	Description     string          `json:"description"`
	AccountType     AccountType     `json:"accountType"`
	AccountCategory AccountCategory `json:"accountCategory"`
}

// IsRoot reports whether the account has no parent.
func (a Account) IsRoot() bool {
	return a.ParentID == nil
}

// MarshalJSON writes AccountType as a tagged variant.
func (a Account) MarshalJSON() ([]byte, error) {
	type alias Account
	accountType, err := marshalVariant(a.AccountType)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		alias
		AccountType json.RawMessage `json:"accountType"`
	}{alias: alias(a), AccountType: accountType})
}

// UnmarshalJSON reads AccountType from a tagged variant.
func (a *Account) UnmarshalJSON(data []byte) error {
	type alias Account
	aux := struct {
		*alias
		AccountType json.RawMessage `json:"accountType"`
	}{alias: (*alias)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	accountType, err := unmarshalAccountType(aux.AccountType)
	if err != nil {
		return fmt.Errorf("account %s: %w", a.ID, err)
	}
	a.AccountType = accountType
	return nil
}
