package domain

// CurrencyID is the ISO-4217 numeric code of a currency. Values above 2000
// are reserved for currencies without an ISO code.
type CurrencyID uint32

const (
	CurrencyUSD CurrencyID = 840
	CurrencyBTC CurrencyID = 2009
)

// Currency describes a unit amounts can be expressed in.
type Currency struct {
	ID    CurrencyID `json:"id"`
	Code  string     `json:"code"`  // e.g. "USD"
	Scale uint8      `json:"scale"` // digits after the decimal point
	Name  string     `json:"name"`
}
