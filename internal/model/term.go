package model

import "github.com/shopspring/decimal"

// Term is a payment term such as Net 30.
type Term struct {
	ObjectData

	Name               *string          `json:"Name,omitempty"`
	Type               *string          `json:"Type,omitempty"`
	Active             *bool            `json:"Active,omitempty"`
	DueDays            *int             `json:"DueDays,omitempty"`
	DayOfMonthDue      *int             `json:"DayOfMonthDue,omitempty"`
	DueNextMonthDays   *int             `json:"DueNextMonthDays,omitempty"`
	DiscountDays       *int             `json:"DiscountDays,omitempty"`
	DiscountDayOfMonth *int             `json:"DiscountDayOfMonth,omitempty"`
	DiscountPercent    *decimal.Decimal `json:"DiscountPercent,omitempty"`
}

func (*Term) Kind() Kind { return KindTerm }
