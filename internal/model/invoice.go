package model

import "github.com/shopspring/decimal"

// Invoice is a sales document requesting payment from a customer.
type Invoice struct {
	ObjectData
	SalesTransaction

	DueDate     *Date   `json:"DueDate,omitempty"`
	ShipDate    *Date   `json:"ShipDate,omitempty"`
	TrackingNum *string `json:"TrackingNum,omitempty"`
	InvoiceLink *string `json:"InvoiceLink,omitempty"`

	DepositToAccountRef          *Reference       `json:"DepositToAccountRef,omitempty"`
	ShipMethodRef                *Reference       `json:"ShipMethodRef,omitempty"`
	Deposit                      *decimal.Decimal `json:"Deposit,omitempty"`
	HomeBalance                  *decimal.Decimal `json:"HomeBalance,omitempty"`
	AllowOnlineACHPayment        *bool            `json:"AllowOnlineACHPayment,omitempty"`
	AllowOnlineCreditCardPayment *bool            `json:"AllowOnlineCreditCardPayment,omitempty"`
}

func (*Invoice) Kind() Kind { return KindInvoice }
