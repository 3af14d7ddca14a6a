package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies a resource kind by its canonical platform name.
type Kind string

const (
	KindAccount         Kind = "Account"
	KindAttachable      Kind = "Attachable"
	KindBill            Kind = "Bill"
	KindBillPayment     Kind = "BillPayment"
	KindClass           Kind = "Class"
	KindCompanyCurrency Kind = "CompanyCurrency"
	KindCompanyInfo     Kind = "CompanyInfo"
	KindCreditMemo      Kind = "CreditMemo"
	KindCustomer        Kind = "Customer"
	KindDepartment      Kind = "Department"
	KindEmployee        Kind = "Employee"
	KindEstimate        Kind = "Estimate"
	KindInvoice         Kind = "Invoice"
	KindItem            Kind = "Item"
	KindPayment         Kind = "Payment"
	KindPaymentMethod   Kind = "PaymentMethod"
	KindSalesReceipt    Kind = "SalesReceipt"
	KindTaxAgency       Kind = "TaxAgency"
	KindTerm            Kind = "Term"
	KindVendor          Kind = "Vendor"
)

// Kinds returns every kind in alphabetical order.
func Kinds() []Kind {
	return []Kind{
		KindAccount,
		KindAttachable,
		KindBill,
		KindBillPayment,
		KindClass,
		KindCompanyCurrency,
		KindCompanyInfo,
		KindCreditMemo,
		KindCustomer,
		KindDepartment,
		KindEmployee,
		KindEstimate,
		KindInvoice,
		KindItem,
		KindPayment,
		KindPaymentMethod,
		KindSalesReceipt,
		KindTaxAgency,
		KindTerm,
		KindVendor,
	}
}

// Name is the canonical name, e.g. "SalesReceipt".
func (k Kind) Name() string {
	return string(k)
}

// APIID is the lowercase identifier used in request paths, e.g. "salesreceipt".
func (k Kind) APIID() string {
	return strings.ToLower(string(k))
}

// ParseKind resolves a canonical name or API id, ignoring case.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown kind %q", s)
}

// Entity is a record of one resource kind.
type Entity interface {
	Kind() Kind
	Object() *ObjectData
}

// New returns an empty record of kind k.
func New(k Kind) (Entity, error) {
	switch k {
	case KindAccount:
		return &Account{}, nil
	case KindAttachable:
		return &Attachable{}, nil
	case KindBill:
		return &Bill{}, nil
	case KindBillPayment:
		return &BillPayment{}, nil
	case KindClass:
		return &Class{}, nil
	case KindCompanyCurrency:
		return &CompanyCurrency{}, nil
	case KindCompanyInfo:
		return &CompanyInfo{}, nil
	case KindCreditMemo:
		return &CreditMemo{}, nil
	case KindCustomer:
		return &Customer{}, nil
	case KindDepartment:
		return &Department{}, nil
	case KindEmployee:
		return &Employee{}, nil
	case KindEstimate:
		return &Estimate{}, nil
	case KindInvoice:
		return &Invoice{}, nil
	case KindItem:
		return &Item{}, nil
	case KindPayment:
		return &Payment{}, nil
	case KindPaymentMethod:
		return &PaymentMethod{}, nil
	case KindSalesReceipt:
		return &SalesReceipt{}, nil
	case KindTaxAgency:
		return &TaxAgency{}, nil
	case KindTerm:
		return &Term{}, nil
	case KindVendor:
		return &Vendor{}, nil
	default:
		return nil, fmt.Errorf("unknown kind %q", k)
	}
}

// Decode parses a single record of kind k.
func Decode(k Kind, data []byte) (Entity, error) {
	e, err := New(k)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, e); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", k, err)
	}
	return e, nil
}

// DecodeResponse parses a record of kind k that may be wrapped in the
// platform's response envelope, {"Invoice": {...}, "time": "..."}. A bare
// record is accepted too.
func DecodeResponse(k Kind, data []byte) (Entity, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", k, err)
	}
	if inner, ok := raw[k.Name()]; ok {
		return Decode(k, inner)
	}
	return Decode(k, data)
}
