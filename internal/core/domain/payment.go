package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod describes how an invoice is expected to be paid.
type PaymentMethod interface {
	variant
	isPaymentMethod()
}

type BitcoinPaymentMethod struct {
	Address string `json:"address"`
}

type ACHPaymentMethod struct {
	ContactID  ContactID  `json:"contactID"`
	CurrencyID CurrencyID `json:"currencyID"`
	Routing    uint32     `json:"routing"`
	Account    uint64     `json:"account"`
}

type CheckPaymentMethod struct {
	ContactID  ContactID  `json:"contactID"`
	CurrencyID CurrencyID `json:"currencyID"`
}

type CashPaymentMethod struct{}

func (BitcoinPaymentMethod) isPaymentMethod() {}
func (ACHPaymentMethod) isPaymentMethod()     {}
func (CheckPaymentMethod) isPaymentMethod()   {}
func (CashPaymentMethod) isPaymentMethod()    {}

func (BitcoinPaymentMethod) variantName() string { return "BITCOIN" }
func (ACHPaymentMethod) variantName() string     { return "ACH" }
func (CheckPaymentMethod) variantName() string   { return "CHECK" }
func (CashPaymentMethod) variantName() string    { return "CASH" }

func unmarshalPaymentMethod(data []byte) (PaymentMethod, error) {
	env, ok, err := decodeEnvelope(data)
	if err != nil || !ok {
		return nil, err
	}
	switch env.Type {
	case BitcoinPaymentMethod{}.variantName():
		return decodePayload[BitcoinPaymentMethod](env.Payload)
	case ACHPaymentMethod{}.variantName():
		return decodePayload[ACHPaymentMethod](env.Payload)
	case CheckPaymentMethod{}.variantName():
		return decodePayload[CheckPaymentMethod](env.Payload)
	case CashPaymentMethod{}.variantName():
		return CashPaymentMethod{}, nil
	default:
		return nil, unknownVariant("payment method", env.Type)
	}
}

// PaymentTerms describes when an invoice is due.
type PaymentTerms interface {
	variant
	isPaymentTerms()
}

type ImmediatePayment struct{}

type PaymentInAdvance struct{}

// NetDays is due Days after the invoice date.
type NetDays struct {
	Days            uint16          `json:"days"`
	LateFeeInterest decimal.Decimal `json:"lateFeeInterest"`
}

// NetDaysDiscount is NetDays with a Discount when paid within DiscountDays.
type NetDaysDiscount struct {
	Days            uint16          `json:"days"`
	DiscountDays    uint16          `json:"discountDays"`
	Discount        decimal.Decimal `json:"discount"`
	LateFeeInterest decimal.Decimal `json:"lateFeeInterest"`
}

func (ImmediatePayment) isPaymentTerms() {}
func (PaymentInAdvance) isPaymentTerms() {}
func (NetDays) isPaymentTerms()          {}
func (NetDaysDiscount) isPaymentTerms()  {}

func (ImmediatePayment) variantName() string { return "IMMEDIATE_PAYMENT" }
func (PaymentInAdvance) variantName() string { return "PAYMENT_IN_ADVANCE" }
func (NetDays) variantName() string          { return "NET_DAYS" }
func (NetDaysDiscount) variantName() string  { return "NET_DAYS_DISCOUNT" }

// DueDate returns the date payment is due for an invoice issued at issued.
func DueDate(terms PaymentTerms, issued time.Time) (time.Time, error) {
	switch t := terms.(type) {
	case ImmediatePayment, PaymentInAdvance:
		return issued, nil
	case NetDays:
		return issued.AddDate(0, 0, int(t.Days)), nil
	case NetDaysDiscount:
		return issued.AddDate(0, 0, int(t.Days)), nil
	default:
		return time.Time{}, unknownVariant("payment terms", variantNameOf(terms))
	}
}

func unmarshalPaymentTerms(data []byte) (PaymentTerms, error) {
	env, ok, err := decodeEnvelope(data)
	if err != nil || !ok {
		return nil, err
	}
	switch env.Type {
	case ImmediatePayment{}.variantName():
		return ImmediatePayment{}, nil
	case PaymentInAdvance{}.variantName():
		return PaymentInAdvance{}, nil
	case NetDays{}.variantName():
		return decodePayload[NetDays](env.Payload)
	case NetDaysDiscount{}.variantName():
		return decodePayload[NetDaysDiscount](env.Payload)
	default:
		return nil, unknownVariant("payment terms", env.Type)
	}
}

// Payment records money received against an invoice.
type Payment interface {
	variant
	isPayment()
}

type BitcoinPayment struct {
	Details string `json:"details"`
}

type LightningPayment struct {
	Details string `json:"details"`
}

type ACHPayment struct {
	TransactionRef string          `json:"transactionRef"`
	Timestamp      time.Time       `json:"timestamp"`
	CurrencyID     CurrencyID      `json:"currencyID"`
	Amount         decimal.Decimal `json:"amount"`
	Memo           *string         `json:"memo,omitempty"`
}

type CheckPayment struct {
	CheckNumber uint32          `json:"checkNumber"`
	Routing     uint32          `json:"routing"`
	Account     uint64          `json:"account"`
	Date        time.Time       `json:"date"`
	CurrencyID  CurrencyID      `json:"currencyID"`
	Amount      decimal.Decimal `json:"amount"`
	Memo        *string         `json:"memo,omitempty"`
}

type CashPayment struct {
	Date       time.Time       `json:"date"`
	CurrencyID CurrencyID      `json:"currencyID"`
	Amount     decimal.Decimal `json:"amount"`
}

func (BitcoinPayment) isPayment()   {}
func (LightningPayment) isPayment() {}
func (ACHPayment) isPayment()       {}
func (CheckPayment) isPayment()     {}
func (CashPayment) isPayment()      {}

func (BitcoinPayment) variantName() string   { return "BITCOIN" }
func (LightningPayment) variantName() string { return "LIGHTNING" }
func (ACHPayment) variantName() string       { return "ACH" }
func (CheckPayment) variantName() string     { return "CHECK" }
func (CashPayment) variantName() string      { return "CASH" }

func unmarshalPayment(data []byte) (Payment, error) {
	env, ok, err := decodeEnvelope(data)
	if err != nil || !ok {
		return nil, err
	}
	switch env.Type {
	case BitcoinPayment{}.variantName():
		return decodePayload[BitcoinPayment](env.Payload)
	case LightningPayment{}.variantName():
		return decodePayload[LightningPayment](env.Payload)
	case ACHPayment{}.variantName():
		return decodePayload[ACHPayment](env.Payload)
	case CheckPayment{}.variantName():
		return decodePayload[CheckPayment](env.Payload)
	case CashPayment{}.variantName():
		return decodePayload[CashPayment](env.Payload)
	default:
		return nil, unknownVariant("payment", env.Type)
	}
}

func variantNameOf(v variant) string {
	if v == nil {
		return "<nil>"
	}
	return v.variantName()
}
