package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ObjectData is the state every record shares: the platform-assigned id, the
// optimistic-concurrency sync token and read-only timestamps. Id and SyncToken
// are both set on a record read from the platform and both unset on a record
// that has not been created yet.
type ObjectData struct {
	ID        *string   `json:"Id,omitempty"`
	SyncToken *string   `json:"SyncToken,omitempty"`
	MetaData  *MetaData `json:"MetaData,omitempty"`
	Sparse    *bool     `json:"sparse,omitempty"`
}

// Object returns the shared object data. Kinds embed ObjectData, so this is
// promoted onto every record.
func (o *ObjectData) Object() *ObjectData {
	return o
}

// MetaData holds the platform's create/update timestamps.
type MetaData struct {
	CreateTime      time.Time `json:"CreateTime"`
	LastUpdatedTime time.Time `json:"LastUpdatedTime"`
}

// Email is an email address wrapper as the platform models it.
type Email struct {
	Address string `json:"Address,omitempty"`
}

// IsSet reports whether e carries a non-blank address.
func (e *Email) IsSet() bool {
	return e != nil && strings.TrimSpace(e.Address) != ""
}

// Addr is a postal address.
type Addr struct {
	ID                     string `json:"Id,omitempty"`
	Line1                  string `json:"Line1,omitempty"`
	Line2                  string `json:"Line2,omitempty"`
	Line3                  string `json:"Line3,omitempty"`
	Line4                  string `json:"Line4,omitempty"`
	Line5                  string `json:"Line5,omitempty"`
	City                   string `json:"City,omitempty"`
	Country                string `json:"Country,omitempty"`
	CountrySubDivisionCode string `json:"CountrySubDivisionCode,omitempty"`
	PostalCode             string `json:"PostalCode,omitempty"`
	Lat                    string `json:"Lat,omitempty"`
	Long                   string `json:"Long,omitempty"`
}

func (a Addr) String() string {
	return a.Line1 + ", " + a.City + ", " + a.CountrySubDivisionCode + ", " + a.Country + " " + a.PostalCode
}

// PhoneNumber is a free-form phone number.
type PhoneNumber struct {
	FreeFormNumber string `json:"FreeFormNumber,omitempty"`
}

// WebAddr is a website address.
type WebAddr struct {
	URI string `json:"URI,omitempty"`
}

// LinkedTxn links a line or record to another transaction by id and type.
type LinkedTxn struct {
	TxnID     string `json:"TxnId,omitempty"`
	TxnType   string `json:"TxnType,omitempty"`
	TxnLineID string `json:"TxnLineId,omitempty"`
}

// CustomField is a user-defined field on a transaction.
type CustomField struct {
	DefinitionID string  `json:"DefinitionId"`
	Name         string  `json:"Name,omitempty"`
	Type         string  `json:"Type"`
	StringValue  *string `json:"StringValue,omitempty"`
}

// EmailStatus tracks whether a document still has to be emailed.
type EmailStatus string

const (
	EmailStatusNotSet     EmailStatus = "NotSet"
	EmailStatusNeedToSend EmailStatus = "NeedToSend"
	EmailStatusEmailSent  EmailStatus = "EmailSent"
)

// PrintStatus tracks whether a document still has to be printed.
type PrintStatus string

const (
	PrintStatusNotSet        PrintStatus = "NotSet"
	PrintStatusNeedToPrint   PrintStatus = "NeedToPrint"
	PrintStatusPrintComplete PrintStatus = "PrintComplete"
)

// GlobalTaxCalculation selects how tax is applied to a document's lines.
type GlobalTaxCalculation string

const (
	TaxExcluded   GlobalTaxCalculation = "TaxExcluded"
	TaxInclusive  GlobalTaxCalculation = "TaxInclusive"
	NotApplicable GlobalTaxCalculation = "NotApplicable"
)

// TxnTaxDetail summarizes the tax on a transaction.
type TxnTaxDetail struct {
	TxnTaxCodeRef *Reference       `json:"TxnTaxCodeRef,omitempty"`
	TotalTax      *decimal.Decimal `json:"TotalTax,omitempty"`
	TaxLine       []LineItem       `json:"TaxLine,omitempty"`
}

// Ptr returns a pointer to v. Handy for populating optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// HasText reports whether s is set to something other than whitespace.
func HasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
