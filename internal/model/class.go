package model

// Class is a tracking category for transactions.
type Class struct {
	ObjectData

	Name               *string    `json:"Name,omitempty"`
	FullyQualifiedName *string    `json:"FullyQualifiedName,omitempty"`
	SubClass           *bool      `json:"SubClass,omitempty"`
	ParentRef          *Reference `json:"ParentRef,omitempty"`
	Active             *bool      `json:"Active,omitempty"`
}

func (*Class) Kind() Kind { return KindClass }
