package model

import "github.com/shopspring/decimal"

// TaxableCode is the tax code reference value that marks a sales line taxable.
const TaxableCode = "TAX"

// DetailType names a line detail variant. The name doubles as the wire key
// its payload is stored under and as the value of the DetailType field.
type DetailType string

const (
	DetailEmpty               DetailType = ""
	DetailSalesItem           DetailType = "SalesItemLineDetail"
	DetailGroup               DetailType = "GroupLineDetail"
	DetailDescription         DetailType = "DescriptionLineDetail"
	DetailDiscount            DetailType = "DiscountLineDetail"
	DetailSubTotal            DetailType = "SubTotalLineDetail"
	DetailItemBasedExpense    DetailType = "ItemBasedExpenseLineDetail"
	DetailAccountBasedExpense DetailType = "AccountBasedExpenseLineDetail"
	DetailTax                 DetailType = "TaxLineDetail"
)

// DetailTypes lists every concrete variant in wire order.
func DetailTypes() []DetailType {
	return []DetailType{
		DetailSalesItem,
		DetailGroup,
		DetailDescription,
		DetailDiscount,
		DetailSubTotal,
		DetailItemBasedExpense,
		DetailAccountBasedExpense,
		DetailTax,
	}
}

// LineDetail is the per-row payload of a line. Exactly one variant is set on a
// line that is ready to send; a nil LineDetail is the empty state of a line
// still under construction.
type LineDetail interface {
	DetailType() DetailType
	lineDetail()
}

// LineItem is one row of a multi-line document.
type LineItem struct {
	ID          *string
	LineNum     *int
	Amount      *decimal.Decimal
	Description *string
	LinkedTxn   []LinkedTxn
	Detail      LineDetail
}

// NewLine builds a line ready to send: it needs an amount and a detail.
func NewLine(amount *decimal.Decimal, detail LineDetail) (LineItem, error) {
	params := struct {
		Amount *decimal.Decimal `validate:"required"`
		Detail LineDetail       `validate:"required"`
	}{amount, detail}
	if err := Validate(params); err != nil {
		return LineItem{}, err
	}
	return LineItem{Amount: amount, Detail: detail}, nil
}

// DetailType returns the variant of the line's detail, or DetailEmpty.
func (l LineItem) DetailType() DetailType {
	if l.Detail == nil {
		return DetailEmpty
	}
	return l.Detail.DetailType()
}

// CanCreate reports whether the line can be sent in a create request: it
// carries an amount and a concrete detail.
func (l LineItem) CanCreate() bool {
	return l.Amount != nil && l.DetailType() != DetailEmpty
}

// LinesCreatable reports whether lines is non-empty and every line can be created.
func LinesCreatable(lines []LineItem) bool {
	if len(lines) == 0 {
		return false
	}
	for _, l := range lines {
		if !l.CanCreate() {
			return false
		}
	}
	return true
}

// SetTaxable marks the line taxable when it is a sales line. Group lines are
// walked recursively.
func (l *LineItem) SetTaxable() {
	switch d := l.Detail.(type) {
	case *SalesItemLineDetail:
		if d != nil {
			d.TaxCodeRef = Ref(TaxableCode)
		}
	case *GroupLineDetail:
		if d != nil {
			SetTaxable(d.Line)
		}
	}
}

// SetTaxable marks every sales line in lines taxable, in place.
func SetTaxable(lines []LineItem) {
	for i := range lines {
		lines[i].SetTaxable()
	}
}

// BillableStatus tracks whether an expense line can be billed to a customer.
type BillableStatus string

const (
	Billable      BillableStatus = "Billable"
	NotBillable   BillableStatus = "NotBillable"
	HasBeenBilled BillableStatus = "HasBeenBilled"
)

// SalesItemLineDetail is a line selling an item or service.
type SalesItemLineDetail struct {
	ItemRef              *Reference       `json:"ItemRef,omitempty"`
	ClassRef             *Reference       `json:"ClassRef,omitempty"`
	TaxCodeRef           *Reference       `json:"TaxCodeRef,omitempty"`
	TaxClassificationRef *Reference       `json:"TaxClassificationRef,omitempty"`
	ServiceDate          *Date            `json:"ServiceDate,omitempty"`
	Qty                  *decimal.Decimal `json:"Qty,omitempty"`
	UnitPrice            *decimal.Decimal `json:"UnitPrice,omitempty"`
	DiscountRate         *decimal.Decimal `json:"DiscountRate,omitempty"`
	DiscountAmt          *decimal.Decimal `json:"DiscountAmt,omitempty"`
	TaxInclusiveAmt      *decimal.Decimal `json:"TaxInclusiveAmt,omitempty"`
}

// GroupLineDetail is a bundle whose component rows are lines themselves.
type GroupLineDetail struct {
	GroupItemRef *Reference       `json:"GroupItemRef,omitempty"`
	Quantity     *decimal.Decimal `json:"Quantity,omitempty"`
	Line         []LineItem       `json:"Line,omitempty"`
}

// DescriptionLineDetail is a text-only row.
type DescriptionLineDetail struct {
	TaxCodeRef  *Reference `json:"TaxCodeRef,omitempty"`
	ServiceDate *Date      `json:"ServiceDate,omitempty"`
}

// DiscountLineDetail applies a discount to the document.
type DiscountLineDetail struct {
	ClassRef           *Reference       `json:"ClassRef,omitempty"`
	TaxCodeRef         *Reference       `json:"TaxCodeRef,omitempty"`
	DiscountAccountRef *Reference       `json:"DiscountAccountRef,omitempty"`
	PercentBased       *bool            `json:"PercentBased,omitempty"`
	DiscountPercent    *decimal.Decimal `json:"DiscountPercent,omitempty"`
}

// SubTotalLineDetail marks a subtotal of the rows above it.
type SubTotalLineDetail struct {
	ItemRef *Reference `json:"ItemRef,omitempty"`
}

// ItemBasedExpenseLineDetail is a purchase row for an item.
type ItemBasedExpenseLineDetail struct {
	ItemRef         *Reference       `json:"ItemRef,omitempty"`
	CustomerRef     *Reference       `json:"CustomerRef,omitempty"`
	PriceLevelRef   *Reference       `json:"PriceLevelRef,omitempty"`
	ClassRef        *Reference       `json:"ClassRef,omitempty"`
	TaxCodeRef      *Reference       `json:"TaxCodeRef,omitempty"`
	BillableStatus  *BillableStatus  `json:"BillableStatus,omitempty"`
	Qty             *decimal.Decimal `json:"Qty,omitempty"`
	UnitPrice       *decimal.Decimal `json:"UnitPrice,omitempty"`
	TaxInclusiveAmt *decimal.Decimal `json:"TaxInclusiveAmt,omitempty"`
}

// AccountBasedExpenseLineDetail is a purchase row booked straight to an account.
type AccountBasedExpenseLineDetail struct {
	AccountRef      *Reference       `json:"AccountRef,omitempty"`
	TaxCodeRef      *Reference       `json:"TaxCodeRef,omitempty"`
	ClassRef        *Reference       `json:"ClassRef,omitempty"`
	CustomerRef     *Reference       `json:"CustomerRef,omitempty"`
	BillableStatus  *BillableStatus  `json:"BillableStatus,omitempty"`
	TaxAmount       *decimal.Decimal `json:"TaxAmount,omitempty"`
	TaxInclusiveAmt *decimal.Decimal `json:"TaxInclusiveAmt,omitempty"`
}

// TaxLineDetail is one tax component of a transaction's tax summary.
type TaxLineDetail struct {
	TaxRateRef          *Reference       `json:"TaxRateRef,omitempty"`
	PercentBased        *bool            `json:"PercentBased,omitempty"`
	TaxPercent          *decimal.Decimal `json:"TaxPercent,omitempty"`
	NetAmountTaxable    *decimal.Decimal `json:"NetAmountTaxable,omitempty"`
	TaxInclusiveAmount  *decimal.Decimal `json:"TaxInclusiveAmount,omitempty"`
	OverrideDeltaAmount *decimal.Decimal `json:"OverrideDeltaAmount,omitempty"`
}

func (*SalesItemLineDetail) DetailType() DetailType           { return DetailSalesItem }
func (*GroupLineDetail) DetailType() DetailType               { return DetailGroup }
func (*DescriptionLineDetail) DetailType() DetailType         { return DetailDescription }
func (*DiscountLineDetail) DetailType() DetailType            { return DetailDiscount }
func (*SubTotalLineDetail) DetailType() DetailType            { return DetailSubTotal }
func (*ItemBasedExpenseLineDetail) DetailType() DetailType    { return DetailItemBasedExpense }
func (*AccountBasedExpenseLineDetail) DetailType() DetailType { return DetailAccountBasedExpense }
func (*TaxLineDetail) DetailType() DetailType                 { return DetailTax }

func (*SalesItemLineDetail) lineDetail()           {}
func (*GroupLineDetail) lineDetail()               {}
func (*DescriptionLineDetail) lineDetail()         {}
func (*DiscountLineDetail) lineDetail()            {}
func (*SubTotalLineDetail) lineDetail()            {}
func (*ItemBasedExpenseLineDetail) lineDetail()    {}
func (*AccountBasedExpenseLineDetail) lineDetail() {}
func (*TaxLineDetail) lineDetail()                 {}
