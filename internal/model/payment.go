package model

import "github.com/shopspring/decimal"

// Payment is money received from a customer, applied to invoices or held as credit.
type Payment struct {
	ObjectData

	TxnDate       *Date   `json:"TxnDate,omitempty"`
	PaymentRefNum *string `json:"PaymentRefNum,omitempty"`
	PrivateNote   *string `json:"PrivateNote,omitempty"`

	CustomerRef         *Reference `json:"CustomerRef,omitempty"`
	CurrencyRef         *Reference `json:"CurrencyRef,omitempty"`
	DepositToAccountRef *Reference `json:"DepositToAccountRef,omitempty"`
	PaymentMethodRef    *Reference `json:"PaymentMethodRef,omitempty"`
	ARAccountRef        *Reference `json:"ARAccountRef,omitempty"`

	Line         []PaymentLine    `json:"Line,omitempty"`
	TotalAmt     *decimal.Decimal `json:"TotalAmt,omitempty"`
	UnappliedAmt *decimal.Decimal `json:"UnappliedAmt,omitempty"`
	ExchangeRate *decimal.Decimal `json:"ExchangeRate,omitempty"`
}

// PaymentLine applies part of a payment to linked transactions. Unlike document
// lines it carries no detail payload.
type PaymentLine struct {
	Amount    *decimal.Decimal `json:"Amount,omitempty"`
	LinkedTxn []LinkedTxn      `json:"LinkedTxn,omitempty"`
}

func (*Payment) Kind() Kind { return KindPayment }
