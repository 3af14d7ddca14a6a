package model

// Department is a location or business segment transactions are tracked by.
type Department struct {
	ObjectData

	Name               *string    `json:"Name,omitempty"`
	FullyQualifiedName *string    `json:"FullyQualifiedName,omitempty"`
	SubDepartment      *bool      `json:"SubDepartment,omitempty"`
	ParentRef          *Reference `json:"ParentRef,omitempty"`
	Active             *bool      `json:"Active,omitempty"`
}

func (*Department) Kind() Kind { return KindDepartment }
