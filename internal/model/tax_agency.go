package model

// TaxAgency is a government body sales tax is paid to.
type TaxAgency struct {
	ObjectData

	DisplayName           *string `json:"DisplayName,omitempty"`
	TaxRegistrationNumber *string `json:"TaxRegistrationNumber,omitempty"`
	TaxTrackedOnSales     *bool   `json:"TaxTrackedOnSales,omitempty"`
	TaxTrackedOnPurchases *bool   `json:"TaxTrackedOnPurchases,omitempty"`
}

func (*TaxAgency) Kind() Kind { return KindTaxAgency }
