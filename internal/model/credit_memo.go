package model

import "github.com/shopspring/decimal"

// CreditMemo is a refund or credit issued to a customer.
type CreditMemo struct {
	ObjectData
	SalesTransaction

	RemainingCredit  *decimal.Decimal `json:"RemainingCredit,omitempty"`
	PaymentMethodRef *Reference       `json:"PaymentMethodRef,omitempty"`
}

func (*CreditMemo) Kind() Kind { return KindCreditMemo }
