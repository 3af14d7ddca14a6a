package model

import "github.com/shopspring/decimal"

// Customer is a person or organization the company sells to.
type Customer struct {
	ObjectData
	PersonName

	CompanyName        *string `json:"CompanyName,omitempty"`
	FullyQualifiedName *string `json:"FullyQualifiedName,omitempty"`
	Notes              *string `json:"Notes,omitempty"`
	ResaleNum          *string `json:"ResaleNum,omitempty"`
	Level              *int    `json:"Level,omitempty"`

	PrimaryEmailAddr *Email       `json:"PrimaryEmailAddr,omitempty"`
	PrimaryPhone     *PhoneNumber `json:"PrimaryPhone,omitempty"`
	Mobile           *PhoneNumber `json:"Mobile,omitempty"`
	Fax              *PhoneNumber `json:"Fax,omitempty"`
	WebAddr          *WebAddr     `json:"WebAddr,omitempty"`
	BillAddr         *Addr        `json:"BillAddr,omitempty"`
	ShipAddr         *Addr        `json:"ShipAddr,omitempty"`

	ParentRef         *Reference `json:"ParentRef,omitempty"`
	SalesTermRef      *Reference `json:"SalesTermRef,omitempty"`
	PaymentMethodRef  *Reference `json:"PaymentMethodRef,omitempty"`
	CurrencyRef       *Reference `json:"CurrencyRef,omitempty"`
	DefaultTaxCodeRef *Reference `json:"DefaultTaxCodeRef,omitempty"`
	ARAccountRef      *Reference `json:"ARAccountRef,omitempty"`

	Job                  *bool            `json:"Job,omitempty"`
	BillWithParent       *bool            `json:"BillWithParent,omitempty"`
	Taxable              *bool            `json:"Taxable,omitempty"`
	Active               *bool            `json:"Active,omitempty"`
	IsProject            *bool            `json:"IsProject,omitempty"`
	TaxExemptionReasonID *TaxExemptStatus `json:"TaxExemptionReasonId,omitempty"`

	Balance         *decimal.Decimal `json:"Balance,omitempty"`
	BalanceWithJobs *decimal.Decimal `json:"BalanceWithJobs,omitempty"`
	OpenBalanceDate *Date            `json:"OpenBalanceDate,omitempty"`
}

// TaxExemptStatus is the reason a customer is exempt from sales tax. It is a
// numeric code on the wire.
type TaxExemptStatus int

const (
	TaxExemptOther TaxExemptStatus = iota
	TaxExemptFederalGovernment
	TaxExemptStateGovernment
	TaxExemptLocalGovernment
	TaxExemptTribalGovernment
	TaxExemptCharitableOrganization
	TaxExemptReligiousOrganization
	TaxExemptEducationalOrganization
	TaxExemptHospital
	TaxExemptResale
	TaxExemptDirectPayPermit
	TaxExemptMultiplePointsOfUse
	TaxExemptDirectMail
	TaxExemptAgriculturalProduction
	TaxExemptIndustrialProductionOrManufacturing
	TaxExemptForeignDiplomat
)

var taxExemptNames = [...]string{
	"Other",
	"FederalGovernment",
	"StateGovernment",
	"LocalGovernment",
	"TribalGovernment",
	"CharitableOrganization",
	"ReligiousOrganization",
	"EducationalOrganization",
	"Hospital",
	"Resale",
	"DirectPayPermit",
	"MultiplePointsOfUse",
	"DirectMail",
	"AgriculturalProduction",
	"IndustrialProductionOrManufacturing",
	"ForeignDiplomat",
}

// String returns the reason name. Codes the platform adds later read as "Other".
func (s TaxExemptStatus) String() string {
	if s < 0 || int(s) >= len(taxExemptNames) {
		return taxExemptNames[TaxExemptOther]
	}
	return taxExemptNames[s]
}

func (*Customer) Kind() Kind { return KindCustomer }
