package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// lineEnvelope is the wire shape of a line: the common fields, the redundant
// DetailType tag and one pointer per variant payload.
type lineEnvelope struct {
	ID          *string          `json:"Id,omitempty"`
	LineNum     *int             `json:"LineNum,omitempty"`
	Description *string          `json:"Description,omitempty"`
	Amount      *decimal.Decimal `json:"Amount,omitempty"`
	LinkedTxn   []LinkedTxn      `json:"LinkedTxn,omitempty"`
	DetailType  DetailType       `json:"DetailType,omitempty"`

	SalesItemLineDetail           *SalesItemLineDetail           `json:"SalesItemLineDetail,omitempty"`
	GroupLineDetail               *GroupLineDetail               `json:"GroupLineDetail,omitempty"`
	DescriptionLineDetail         *DescriptionLineDetail         `json:"DescriptionLineDetail,omitempty"`
	DiscountLineDetail            *DiscountLineDetail            `json:"DiscountLineDetail,omitempty"`
	SubTotalLineDetail            *SubTotalLineDetail            `json:"SubTotalLineDetail,omitempty"`
	ItemBasedExpenseLineDetail    *ItemBasedExpenseLineDetail    `json:"ItemBasedExpenseLineDetail,omitempty"`
	AccountBasedExpenseLineDetail *AccountBasedExpenseLineDetail `json:"AccountBasedExpenseLineDetail,omitempty"`
	TaxLineDetail                 *TaxLineDetail                 `json:"TaxLineDetail,omitempty"`
}

// MarshalJSON writes the detail payload under its variant name and sets
// DetailType to the same name; the platform's write contract requires both.
// A line with no detail cannot be encoded.
func (l LineItem) MarshalJSON() ([]byte, error) {
	env := lineEnvelope{
		ID:          l.ID,
		LineNum:     l.LineNum,
		Description: l.Description,
		Amount:      l.Amount,
		LinkedTxn:   l.LinkedTxn,
	}

	switch d := l.Detail.(type) {
	case *SalesItemLineDetail:
		env.SalesItemLineDetail = d
	case *GroupLineDetail:
		env.GroupLineDetail = d
	case *DescriptionLineDetail:
		env.DescriptionLineDetail = d
	case *DiscountLineDetail:
		env.DiscountLineDetail = d
	case *SubTotalLineDetail:
		env.SubTotalLineDetail = d
	case *ItemBasedExpenseLineDetail:
		env.ItemBasedExpenseLineDetail = d
	case *AccountBasedExpenseLineDetail:
		env.AccountBasedExpenseLineDetail = d
	case *TaxLineDetail:
		env.TaxLineDetail = d
	default:
		return nil, ErrEmptyLineDetail
	}
	if env.variants() == nil {
		// typed nil pointer
		return nil, ErrEmptyLineDetail
	}
	env.DetailType = l.Detail.DetailType()

	return json.Marshal(env)
}

// UnmarshalJSON picks the variant from whichever payload key is present;
// DetailType is ignored. No payload key leaves the detail empty, which is how
// summary rows arrive. More than one payload key, or a detail key this
// package does not know, is a *DecodeError.
func (l *LineItem) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding line: %w", err)
	}
	if unknown := unknownDetailKeys(raw); len(unknown) > 0 {
		return &DecodeError{Reason: "unknown line detail", Keys: unknown}
	}

	var env lineEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decoding line: %w", err)
	}

	details := env.variants()
	if len(details) > 1 {
		keys := make([]string, len(details))
		for i, d := range details {
			keys[i] = string(d.DetailType())
		}
		return &DecodeError{Reason: "ambiguous line detail", Keys: keys}
	}

	*l = LineItem{
		ID:          env.ID,
		LineNum:     env.LineNum,
		Description: env.Description,
		Amount:      env.Amount,
		LinkedTxn:   env.LinkedTxn,
	}
	if len(details) == 1 {
		l.Detail = details[0]
	}
	return nil
}

// variants returns the non-nil payloads in wire order.
func (e *lineEnvelope) variants() []LineDetail {
	var out []LineDetail
	if e.SalesItemLineDetail != nil {
		out = append(out, e.SalesItemLineDetail)
	}
	if e.GroupLineDetail != nil {
		out = append(out, e.GroupLineDetail)
	}
	if e.DescriptionLineDetail != nil {
		out = append(out, e.DescriptionLineDetail)
	}
	if e.DiscountLineDetail != nil {
		out = append(out, e.DiscountLineDetail)
	}
	if e.SubTotalLineDetail != nil {
		out = append(out, e.SubTotalLineDetail)
	}
	if e.ItemBasedExpenseLineDetail != nil {
		out = append(out, e.ItemBasedExpenseLineDetail)
	}
	if e.AccountBasedExpenseLineDetail != nil {
		out = append(out, e.AccountBasedExpenseLineDetail)
	}
	if e.TaxLineDetail != nil {
		out = append(out, e.TaxLineDetail)
	}
	return out
}

func unknownDetailKeys(raw map[string]json.RawMessage) []string {
	var unknown []string
	for key := range raw {
		if !strings.HasSuffix(strings.ToLower(key), "linedetail") {
			continue
		}
		if !isKnownDetail(key) {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func isKnownDetail(key string) bool {
	for _, dt := range DetailTypes() {
		if strings.EqualFold(key, string(dt)) {
			return true
		}
	}
	return false
}
