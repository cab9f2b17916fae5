package domain

// ContactType classifies a contact.
type ContactType string

const (
	ContactTypeIndividual       ContactType = "INDIVIDUAL"
	ContactTypeOrganization     ContactType = "ORGANIZATION"
	ContactTypeOrganizationUnit ContactType = "ORGANIZATION_UNIT"
)

// Valid reports whether t is one of the known contact types.
func (t ContactType) Valid() bool {
	switch t {
	case ContactTypeIndividual, ContactTypeOrganization, ContactTypeOrganizationUnit:
		return true
	default:
		return false
	}
}

// Contact is a person or organization the ledger refers to.
type Contact struct {
	ID          ContactID   `json:"id"`
	ContactType ContactType `json:"contactType"`
	Name        string      `json:"name"`
	Address     *string     `json:"address,omitempty"`
}

// NewContact builds a contact with a freshly generated id.
func NewContact(contactType ContactType, name string, address *string) Contact {
	return Contact{
		ID:          NewID(),
		ContactType: contactType,
		Name:        name,
		Address:     address,
	}
}

// Organization is a tenant. Its ContactID refers to the contact carried by the
// AddOrganization action that created it.
type Organization struct {
	ID        OrganizationID `json:"id"`
	ContactID ContactID      `json:"contactID"`
}

// NewOrganization builds an organization with a freshly generated id.
func NewOrganization(contactID ContactID) Organization {
	return Organization{ID: NewID(), ContactID: contactID}
}
