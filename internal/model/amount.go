package model

import "github.com/shopspring/decimal"

func init() {
	// The platform rejects quoted numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Amount parses s into a decimal for an optional money field. It panics on a
// malformed literal, so use it for constants and tests only.
func Amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
