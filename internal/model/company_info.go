package model

// CompanyInfo describes the company itself. It is read and updated, never created.
type CompanyInfo struct {
	ObjectData

	CompanyName          *string `json:"CompanyName,omitempty"`
	LegalName            *string `json:"LegalName,omitempty"`
	Country              *string `json:"Country,omitempty"`
	FiscalYearStartMonth *string `json:"FiscalYearStartMonth,omitempty"`
	SupportedLanguages   *string `json:"SupportedLanguages,omitempty"`
	CompanyStartDate     *Date   `json:"CompanyStartDate,omitempty"`

	CompanyAddr               *Addr        `json:"CompanyAddr,omitempty"`
	LegalAddr                 *Addr        `json:"LegalAddr,omitempty"`
	CustomerCommunicationAddr *Addr        `json:"CustomerCommunicationAddr,omitempty"`
	Email                     *Email       `json:"Email,omitempty"`
	PrimaryPhone              *PhoneNumber `json:"PrimaryPhone,omitempty"`
	WebAddr                   *WebAddr     `json:"WebAddr,omitempty"`
}

func (*CompanyInfo) Kind() Kind { return KindCompanyInfo }
