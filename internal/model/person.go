package model

// PersonName holds the name fields of people and organizations: customers,
// vendors and employees.
type PersonName struct {
	DisplayName      *string `json:"DisplayName,omitempty"`
	Title            *string `json:"Title,omitempty"`
	GivenName        *string `json:"GivenName,omitempty"`
	MiddleName       *string `json:"MiddleName,omitempty"`
	FamilyName       *string `json:"FamilyName,omitempty"`
	Suffix           *string `json:"Suffix,omitempty"`
	PrintOnCheckName *string `json:"PrintOnCheckName,omitempty"`
}

// Names returns the shared name fields.
func (p *PersonName) Names() *PersonName {
	return p
}

// HasName reports whether any of the name fields used to identify a person is set.
func (p *PersonName) HasName() bool {
	return p.DisplayName != nil ||
		p.GivenName != nil ||
		p.FamilyName != nil ||
		p.MiddleName != nil ||
		p.Title != nil ||
		p.Suffix != nil
}
