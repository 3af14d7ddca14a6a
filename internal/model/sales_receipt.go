package model

// SalesReceipt records a sale paid in full at the time of sale.
type SalesReceipt struct {
	ObjectData
	SalesTransaction

	PaymentRefNum       *string    `json:"PaymentRefNum,omitempty"`
	ShipDate            *Date      `json:"ShipDate,omitempty"`
	TrackingNum         *string    `json:"TrackingNum,omitempty"`
	PaymentMethodRef    *Reference `json:"PaymentMethodRef,omitempty"`
	DepositToAccountRef *Reference `json:"DepositToAccountRef,omitempty"`
	ShipMethodRef       *Reference `json:"ShipMethodRef,omitempty"`
}

func (*SalesReceipt) Kind() Kind { return KindSalesReceipt }
