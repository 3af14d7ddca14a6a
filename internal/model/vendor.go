package model

import "github.com/shopspring/decimal"

// Vendor is a person or organization the company buys from.
type Vendor struct {
	ObjectData
	PersonName

	CompanyName    *string `json:"CompanyName,omitempty"`
	AcctNum        *string `json:"AcctNum,omitempty"`
	TaxIdentifier  *string `json:"TaxIdentifier,omitempty"`
	BusinessNumber *string `json:"BusinessNumber,omitempty"`

	PrimaryEmailAddr *Email       `json:"PrimaryEmailAddr,omitempty"`
	PrimaryPhone     *PhoneNumber `json:"PrimaryPhone,omitempty"`
	Mobile           *PhoneNumber `json:"Mobile,omitempty"`
	Fax              *PhoneNumber `json:"Fax,omitempty"`
	WebAddr          *WebAddr     `json:"WebAddr,omitempty"`
	BillAddr         *Addr        `json:"BillAddr,omitempty"`

	APAccountRef *Reference `json:"APAccountRef,omitempty"`
	TermRef      *Reference `json:"TermRef,omitempty"`
	CurrencyRef  *Reference `json:"CurrencyRef,omitempty"`

	Active     *bool            `json:"Active,omitempty"`
	Vendor1099 *bool            `json:"Vendor1099,omitempty"`
	Balance    *decimal.Decimal `json:"Balance,omitempty"`
	BillRate   *decimal.Decimal `json:"BillRate,omitempty"`
	CostRate   *decimal.Decimal `json:"CostRate,omitempty"`
}

func (*Vendor) Kind() Kind { return KindVendor }
