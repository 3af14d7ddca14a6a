package model

import "github.com/shopspring/decimal"

// Employee is a person on the company's payroll.
type Employee struct {
	ObjectData
	PersonName

	EmployeeNumber *string `json:"EmployeeNumber,omitempty"`
	Gender         *string `json:"Gender,omitempty"`
	SSN            *string `json:"SSN,omitempty"`

	PrimaryAddr      *Addr        `json:"PrimaryAddr,omitempty"`
	PrimaryEmailAddr *Email       `json:"PrimaryEmailAddr,omitempty"`
	PrimaryPhone     *PhoneNumber `json:"PrimaryPhone,omitempty"`
	Mobile           *PhoneNumber `json:"Mobile,omitempty"`

	BillableTime *bool            `json:"BillableTime,omitempty"`
	Active       *bool            `json:"Active,omitempty"`
	BillRate     *decimal.Decimal `json:"BillRate,omitempty"`
	CostRate     *decimal.Decimal `json:"CostRate,omitempty"`
	HiredDate    *Date            `json:"HiredDate,omitempty"`
	ReleasedDate *Date            `json:"ReleasedDate,omitempty"`
	BirthDate    *Date            `json:"BirthDate,omitempty"`
}

func (*Employee) Kind() Kind { return KindEmployee }
