package ledger

import (
	"fmt"
	"sort"

	"github.com/SscSPs/aba_ledger/internal/apperrors"
	"github.com/SscSPs/aba_ledger/internal/core/domain"
)

// OrganizationLedgers routes journal entries to the ledger of the
// organization they belong to.
type OrganizationLedgers struct {
	organizations map[domain.OrganizationID]domain.Organization
	ledgers       map[domain.OrganizationID]*Ledger
}

// NewOrganizationLedgers creates an empty router.
func NewOrganizationLedgers() *OrganizationLedgers {
	return &OrganizationLedgers{
		organizations: make(map[domain.OrganizationID]domain.Organization),
		ledgers:       make(map[domain.OrganizationID]*Ledger),
	}
}

// AddJournalEntry applies one entry. AddOrganization creates a new ledger
// seeded with the organization's contact; every other action is applied to
// the ledger of the entry's organization.
func (o *OrganizationLedgers) AddJournalEntry(entry domain.JournalEntry) error {
	if action, ok := entry.Action.(domain.AddOrganization); ok {
		return o.addOrganization(entry.OrganizationID, action)
	}

	ledger, err := o.GetLedger(entry.OrganizationID)
	if err != nil {
		return err
	}
	return apply(ledger, entry.Action)
}

// AddJournalEntries applies entries in order and stops at the first error.
// Entries applied before the failing one stay applied.
func (o *OrganizationLedgers) AddJournalEntries(entries []domain.JournalEntry) error {
	for _, entry := range entries {
		if err := o.AddJournalEntry(entry); err != nil {
			return fmt.Errorf("journal entry %s: %w", entry.ID, err)
		}
	}
	return nil
}

// GetLedger returns the ledger of an organization.
func (o *OrganizationLedgers) GetLedger(id domain.OrganizationID) (*Ledger, error) {
	ledger, ok := o.ledgers[id]
	if !ok {
		return nil, apperrors.NewLedgerError(apperrors.MissingOrganization, id)
	}
	return ledger, nil
}

// GetOrganization looks up a registered organization.
func (o *OrganizationLedgers) GetOrganization(id domain.OrganizationID) (domain.Organization, bool) {
	org, ok := o.organizations[id]
	return org, ok
}

// Organizations returns every registered organization ordered by id.
func (o *OrganizationLedgers) Organizations() []domain.Organization {
	orgs := make([]domain.Organization, 0, len(o.organizations))
	for _, org := range o.organizations {
		orgs = append(orgs, org)
	}
	sort.Slice(orgs, func(i, j int) bool { return orgs[i].ID.Compare(orgs[j].ID) < 0 })
	return orgs
}

func (o *OrganizationLedgers) addOrganization(entryOrgID domain.OrganizationID, action domain.AddOrganization) error {
	org := action.Organization
	if _, ok := o.organizations[org.ID]; ok {
		return apperrors.NewLedgerError(apperrors.OrganizationExists, org.ID)
	}
	switch {
	case org.ID != entryOrgID:
		return apperrors.NewLedgerError(apperrors.InvalidOrganization, org.ID).
			WithDetail("entry is filed under organization %s", entryOrgID)
	case org.ContactID != action.Contact.ID:
		return apperrors.NewLedgerError(apperrors.InvalidOrganization, org.ID).
			WithDetail("contact %s does not match organization contact %s", action.Contact.ID, org.ContactID)
	case action.Contact.ContactType != domain.ContactTypeOrganization:
		return apperrors.NewLedgerError(apperrors.InvalidOrganization, org.ID).
			WithDetail("contact type is %s", action.Contact.ContactType)
	}

	ledger := New()
	if err := ledger.AddContact(action.Contact); err != nil {
		return err
	}
	o.organizations[org.ID] = org
	o.ledgers[org.ID] = ledger
	return nil
}

func apply(ledger *Ledger, action domain.Action) error {
	switch a := action.(type) {
	case domain.AddCurrency:
		return ledger.AddCurrency(a.Currency)
	case domain.AddContact:
		return ledger.AddContact(a.Contact)
	case domain.AddAccount:
		return ledger.AddAccount(a.Account)
	case domain.AddTransaction:
		return ledger.PostTransaction(a.Transaction, a.LedgerEntries)
	case domain.AddOrganization:
		return apperrors.NewLedgerError(apperrors.InvalidOrganization, a.Organization.ID).
			WithDetail("organizations cannot be added to a ledger")
	default:
		return fmt.Errorf("%w: action %s", domain.ErrUnknownVariant, domain.ActionName(action))
	}
}
