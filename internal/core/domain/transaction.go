package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates whether a ledger entry is a Debit or a Credit.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// Valid reports whether t is Debit or Credit.
func (t EntryType) Valid() bool {
	return t == Debit || t == Credit
}

// CurrencyAmount is an amount in a specific currency.
type CurrencyAmount struct {
	CurrencyID CurrencyID      `json:"currencyID"`
	Amount     decimal.Decimal `json:"amount"`
}

// LedgerEntry is one leg of a transaction, affecting a single account.
type LedgerEntry struct {
	TransactionID  TransactionID  `json:"transactionID"`
	EntryType      EntryType      `json:"entryType"`
	AccountID      AccountID      `json:"accountID"`
	CurrencyAmount CurrencyAmount `json:"currencyAmount"`
	Description    *string        `json:"description,omitempty"`
}

// TransactionType is either an Invoice or a LedgerAdjustment.
type TransactionType interface {
	variant
	isTransactionType()
}

// LedgerAdjustment is a transaction recorded directly against the ledger.
type LedgerAdjustment struct{}

// Invoice is a transaction billed to or by a contact.
type Invoice struct {
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaymentTerms  PaymentTerms  `json:"paymentTerms"`
	Payments      []Payment     `json:"payments"`
}

func (LedgerAdjustment) isTransactionType() {}
func (Invoice) isTransactionType()          {}

func (LedgerAdjustment) variantName() string { return "LEDGER_ADJUSTMENT" }
func (Invoice) variantName() string          { return "INVOICE" }

// MarshalJSON writes the nested variants with their type tags.
func (i Invoice) MarshalJSON() ([]byte, error) {
	method, err := marshalVariant(i.PaymentMethod)
	if err != nil {
		return nil, err
	}
	terms, err := marshalVariant(i.PaymentTerms)
	if err != nil {
		return nil, err
	}
	payments := make([]json.RawMessage, 0, len(i.Payments))
	for _, p := range i.Payments {
		raw, err := marshalVariant(p)
		if err != nil {
			return nil, err
		}
		payments = append(payments, raw)
	}
	return json.Marshal(struct {
		PaymentMethod json.RawMessage   `json:"paymentMethod"`
		PaymentTerms  json.RawMessage   `json:"paymentTerms"`
		Payments      []json.RawMessage `json:"payments"`
	}{method, terms, payments})
}

// UnmarshalJSON reads the nested variants from their type tags.
func (i *Invoice) UnmarshalJSON(data []byte) error {
	var aux struct {
		PaymentMethod json.RawMessage   `json:"paymentMethod"`
		PaymentTerms  json.RawMessage   `json:"paymentTerms"`
		Payments      []json.RawMessage `json:"payments"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	method, err := unmarshalPaymentMethod(aux.PaymentMethod)
	if err != nil {
		return err
	}
	terms, err := unmarshalPaymentTerms(aux.PaymentTerms)
	if err != nil {
		return err
	}
	payments := make([]Payment, 0, len(aux.Payments))
	for _, raw := range aux.Payments {
		p, err := unmarshalPayment(raw)
		if err != nil {
			return err
		}
		payments = append(payments, p)
	}
	i.PaymentMethod, i.PaymentTerms, i.Payments = method, terms, payments
	return nil
}

func unmarshalTransactionType(data []byte) (TransactionType, error) {
	env, ok, err := decodeEnvelope(data)
	if err != nil || !ok {
		return nil, err
	}
	switch env.Type {
	case LedgerAdjustment{}.variantName():
		return LedgerAdjustment{}, nil
	case Invoice{}.variantName():
		return decodePayload[Invoice](env.Payload)
	default:
		return nil, unknownVariant("transaction type", env.Type)
	}
}

// Transaction is the header of a set of ledger entries.
type Transaction struct {
	ID              TransactionID   `json:"id"`
	Timestamp       time.Time       `json:"timestamp"`
	Description     string          `json:"description"`
	TransactionType TransactionType `json:"transactionType"`
}

// MarshalJSON writes TransactionType as a tagged variant.
func (t Transaction) MarshalJSON() ([]byte, error) {
	type alias Transaction
	transactionType, err := marshalVariant(t.TransactionType)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		alias
		TransactionType json.RawMessage `json:"transactionType"`
	}{alias: alias(t), TransactionType: transactionType})
}

// UnmarshalJSON reads TransactionType from a tagged variant.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type alias Transaction
	aux := struct {
		*alias
		TransactionType json.RawMessage `json:"transactionType"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	transactionType, err := unmarshalTransactionType(aux.TransactionType)
	if err != nil {
		return fmt.Errorf("transaction %s: %w", t.ID, err)
	}
	t.TransactionType = transactionType
	return nil
}
