package model

import "github.com/shopspring/decimal"

// Bill is a payable owed to a vendor.
type Bill struct {
	ObjectData

	DocNumber   *string `json:"DocNumber,omitempty"`
	TxnDate     *Date   `json:"TxnDate,omitempty"`
	DueDate     *Date   `json:"DueDate,omitempty"`
	PrivateNote *string `json:"PrivateNote,omitempty"`

	VendorRef     *Reference `json:"VendorRef,omitempty"`
	APAccountRef  *Reference `json:"APAccountRef,omitempty"`
	CurrencyRef   *Reference `json:"CurrencyRef,omitempty"`
	SalesTermRef  *Reference `json:"SalesTermRef,omitempty"`
	DepartmentRef *Reference `json:"DepartmentRef,omitempty"`

	Line      []LineItem  `json:"Line,omitempty"`
	LinkedTxn []LinkedTxn `json:"LinkedTxn,omitempty"`

	TotalAmt     *decimal.Decimal `json:"TotalAmt,omitempty"`
	Balance      *decimal.Decimal `json:"Balance,omitempty"`
	HomeBalance  *decimal.Decimal `json:"HomeBalance,omitempty"`
	ExchangeRate *decimal.Decimal `json:"ExchangeRate,omitempty"`
}

func (*Bill) Kind() Kind { return KindBill }
