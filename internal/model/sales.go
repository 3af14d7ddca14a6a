package model

import "github.com/shopspring/decimal"

// SalesTransaction holds the fields shared by customer-facing sales documents:
// invoices, estimates, sales receipts and credit memos.
type SalesTransaction struct {
	DocNumber    *string    `json:"DocNumber,omitempty"`
	TxnDate      *Date      `json:"TxnDate,omitempty"`
	PrivateNote  *string    `json:"PrivateNote,omitempty"`
	CustomerMemo *Reference `json:"CustomerMemo,omitempty"`

	CustomerRef   *Reference `json:"CustomerRef,omitempty"`
	CurrencyRef   *Reference `json:"CurrencyRef,omitempty"`
	ClassRef      *Reference `json:"ClassRef,omitempty"`
	DepartmentRef *Reference `json:"DepartmentRef,omitempty"`
	SalesTermRef  *Reference `json:"SalesTermRef,omitempty"`
	ProjectRef    *Reference `json:"ProjectRef,omitempty"`

	Line                  []LineItem            `json:"Line,omitempty"`
	TxnTaxDetail          *TxnTaxDetail         `json:"TxnTaxDetail,omitempty"`
	LinkedTxn             []LinkedTxn           `json:"LinkedTxn,omitempty"`
	CustomField           []CustomField         `json:"CustomField,omitempty"`
	ApplyTaxAfterDiscount *bool                 `json:"ApplyTaxAfterDiscount,omitempty"`
	GlobalTaxCalculation  *GlobalTaxCalculation `json:"GlobalTaxCalculation,omitempty"`

	BillEmail       *Email       `json:"BillEmail,omitempty"`
	BillEmailCc     *Email       `json:"BillEmailCc,omitempty"`
	BillEmailBcc    *Email       `json:"BillEmailBcc,omitempty"`
	EmailStatus     *EmailStatus `json:"EmailStatus,omitempty"`
	PrintStatus     *PrintStatus `json:"PrintStatus,omitempty"`
	BillAddr        *Addr        `json:"BillAddr,omitempty"`
	ShipAddr        *Addr        `json:"ShipAddr,omitempty"`
	FreeFormAddress *bool        `json:"FreeFormAddress,omitempty"`

	TotalAmt     *decimal.Decimal `json:"TotalAmt,omitempty"`
	HomeTotalAmt *decimal.Decimal `json:"HomeTotalAmt,omitempty"`
	Balance      *decimal.Decimal `json:"Balance,omitempty"`
	ExchangeRate *decimal.Decimal `json:"ExchangeRate,omitempty"`
}

// Sales returns the shared sales document fields.
func (s *SalesTransaction) Sales() *SalesTransaction {
	return s
}

// NeedsEmail reports whether the document is flagged to be emailed.
func (s *SalesTransaction) NeedsEmail() bool {
	return s.EmailStatus != nil && *s.EmailStatus == EmailStatusNeedToSend
}
