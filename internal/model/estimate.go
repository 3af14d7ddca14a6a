package model

// Estimate is a proposal to a customer that may later become an invoice.
type Estimate struct {
	ObjectData
	SalesTransaction

	TxnStatus      *string    `json:"TxnStatus,omitempty"`
	AcceptedBy     *string    `json:"AcceptedBy,omitempty"`
	AcceptedDate   *Date      `json:"AcceptedDate,omitempty"`
	ExpirationDate *Date      `json:"ExpirationDate,omitempty"`
	DueDate        *Date      `json:"DueDate,omitempty"`
	ShipDate       *Date      `json:"ShipDate,omitempty"`
	ShipMethodRef  *Reference `json:"ShipMethodRef,omitempty"`
}

func (*Estimate) Kind() Kind { return KindEstimate }
