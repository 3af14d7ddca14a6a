package model

// PaymentMethod is a way a customer can pay, such as cash or a card brand.
type PaymentMethod struct {
	ObjectData

	Name   *string `json:"Name,omitempty"`
	Type   *string `json:"Type,omitempty"`
	Active *bool   `json:"Active,omitempty"`
}

func (*PaymentMethod) Kind() Kind { return KindPaymentMethod }
