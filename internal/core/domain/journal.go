package domain

import (
	"encoding/json"
	"fmt"
)

// DefaultVersion is the schema version written on new journal entries.
const DefaultVersion uint32 = 1

// Action is the change a journal entry records. It is one of AddOrganization,
// AddCurrency, AddContact, AddAccount or AddTransaction.
type Action interface {
	variant
	isAction()
}

// AddOrganization registers a tenant together with its own contact.
type AddOrganization struct {
	Contact      Contact      `json:"contact"`
	Organization Organization `json:"organization"`
}

type AddCurrency struct {
	Currency Currency `json:"currency"`
}

type AddContact struct {
	Contact Contact `json:"contact"`
}

type AddAccount struct {
	Account Account `json:"account"`
}

// AddTransaction records a transaction and all of its ledger entries.
type AddTransaction struct {
	Transaction   Transaction   `json:"transaction"`
	LedgerEntries []LedgerEntry `json:"ledgerEntries"`
}

func (AddOrganization) isAction() {}
func (AddCurrency) isAction()     {}
func (AddContact) isAction()      {}
func (AddAccount) isAction()      {}
func (AddTransaction) isAction()  {}

func (AddOrganization) variantName() string { return "ADD_ORGANIZATION" }
func (AddCurrency) variantName() string     { return "ADD_CURRENCY" }
func (AddContact) variantName() string      { return "ADD_CONTACT" }
func (AddAccount) variantName() string      { return "ADD_ACCOUNT" }
func (AddTransaction) variantName() string  { return "ADD_TRANSACTION" }

// ActionName returns the type tag an action is serialized with.
func ActionName(a Action) string {
	return variantNameOf(a)
}

// MarshalAction serializes an action in its tagged form. It is the format
// event stores persist.
func MarshalAction(a Action) ([]byte, error) {
	return marshalVariant(a)
}

// UnmarshalAction is the inverse of MarshalAction.
func UnmarshalAction(data []byte) (Action, error) {
	env, ok, err := decodeEnvelope(data)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: empty action", ErrUnknownVariant)
	}
	switch env.Type {
	case AddOrganization{}.variantName():
		return decodePayload[AddOrganization](env.Payload)
	case AddCurrency{}.variantName():
		return decodePayload[AddCurrency](env.Payload)
	case AddContact{}.variantName():
		return decodePayload[AddContact](env.Payload)
	case AddAccount{}.variantName():
		return decodePayload[AddAccount](env.Payload)
	case AddTransaction{}.variantName():
		return decodePayload[AddTransaction](env.Payload)
	default:
		return nil, unknownVariant("action", env.Type)
	}
}

// JournalEntry is one immutable record of the journal. Entries are ordered
// by ID.
type JournalEntry struct {
	ID             JournalEntryID `json:"id"`
	Version        uint32         `json:"version"`
	OrganizationID OrganizationID `json:"organizationID"`
	Action         Action         `json:"action"`
}

// NewJournalEntry builds an entry with an explicit id.
func NewJournalEntry(id JournalEntryID, organizationID OrganizationID, action Action) JournalEntry {
	return JournalEntry{
		ID:             id,
		Version:        DefaultVersion,
		OrganizationID: organizationID,
		Action:         action,
	}
}

// NewJournalEntryGenID builds an entry with a freshly generated id.
func NewJournalEntryGenID(organizationID OrganizationID, action Action) JournalEntry {
	return NewJournalEntry(NewID(), organizationID, action)
}

// NewJournalEntryAfter builds an entry whose id sorts after prev.
func NewJournalEntryAfter(prev JournalEntryID, organizationID OrganizationID, action Action) (JournalEntry, error) {
	id, err := NextID(prev)
	if err != nil {
		return JournalEntry{}, err
	}
	return NewJournalEntry(id, organizationID, action), nil
}

// MarshalJSON writes Action as a tagged variant.
func (e JournalEntry) MarshalJSON() ([]byte, error) {
	type alias JournalEntry
	action, err := marshalVariant(e.Action)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		alias
		Action json.RawMessage `json:"action"`
	}{alias: alias(e), Action: action})
}

// UnmarshalJSON reads Action from a tagged variant. A missing version
// defaults to DefaultVersion.
func (e *JournalEntry) UnmarshalJSON(data []byte) error {
	type alias JournalEntry
	aux := struct {
		*alias
		Action json.RawMessage `json:"action"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	action, err := UnmarshalAction(aux.Action)
	if err != nil {
		return fmt.Errorf("journal entry %s: %w", e.ID, err)
	}
	e.Action = action
	if e.Version == 0 {
		e.Version = DefaultVersion
	}
	return nil
}
