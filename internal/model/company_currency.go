package model

// CompanyCurrency is a currency enabled for the company.
type CompanyCurrency struct {
	ObjectData

	Code        *string       `json:"Code,omitempty"`
	Name        *string       `json:"Name,omitempty"`
	Active      *bool         `json:"Active,omitempty"`
	CustomField []CustomField `json:"CustomField,omitempty"`
}

func (*CompanyCurrency) Kind() Kind { return KindCompanyCurrency }
