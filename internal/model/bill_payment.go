package model

import "github.com/shopspring/decimal"

// PayType is how a bill was paid.
type PayType string

const (
	PayTypeCheck      PayType = "Check"
	PayTypeCreditCard PayType = "CreditCard"
)

// BillPayment records paying one or more bills.
type BillPayment struct {
	ObjectData

	DocNumber   *string `json:"DocNumber,omitempty"`
	TxnDate     *Date   `json:"TxnDate,omitempty"`
	PrivateNote *string `json:"PrivateNote,omitempty"`

	VendorRef     *Reference `json:"VendorRef,omitempty"`
	CurrencyRef   *Reference `json:"CurrencyRef,omitempty"`
	DepartmentRef *Reference `json:"DepartmentRef,omitempty"`

	PayType           *PayType               `json:"PayType,omitempty"`
	CheckPayment      *CheckBillPayment      `json:"CheckPayment,omitempty"`
	CreditCardPayment *CreditCardBillPayment `json:"CreditCardPayment,omitempty"`
	Line              []PaymentLine          `json:"Line,omitempty"`
	TotalAmt          *decimal.Decimal       `json:"TotalAmt,omitempty"`
	ExchangeRate      *decimal.Decimal       `json:"ExchangeRate,omitempty"`
}

// CheckBillPayment is the bank side of a bill paid by check.
type CheckBillPayment struct {
	BankAccountRef *Reference   `json:"BankAccountRef,omitempty"`
	PrintStatus    *PrintStatus `json:"PrintStatus,omitempty"`
}

// CreditCardBillPayment is the card side of a bill paid by credit card.
type CreditCardBillPayment struct {
	CCAccountRef *Reference `json:"CCAccountRef,omitempty"`
}

// HasPaymentDetail reports whether the detail matching PayType is present.
func (b *BillPayment) HasPaymentDetail() bool {
	if b.PayType == nil {
		return false
	}
	switch *b.PayType {
	case PayTypeCheck:
		return b.CheckPayment != nil
	case PayTypeCreditCard:
		return b.CreditCardPayment != nil
	default:
		return false
	}
}

func (*BillPayment) Kind() Kind { return KindBillPayment }
