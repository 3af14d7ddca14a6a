package model

import "github.com/shopspring/decimal"

// Account is a ledger account in the chart of accounts.
type Account struct {
	ObjectData

	Name               *string `json:"Name,omitempty"`
	AcctNum            *string `json:"AcctNum,omitempty"`
	FullyQualifiedName *string `json:"FullyQualifiedName,omitempty"`
	Description        *string `json:"Description,omitempty"`
	AccountAlias       *string `json:"AccountAlias,omitempty"`
	Classification     *string `json:"Classification,omitempty"`
	AccountType        *string `json:"AccountType,omitempty"`
	AccountSubType     *string `json:"AccountSubType,omitempty"`
	TxnLocationType    *string `json:"TxnLocationType,omitempty"`
	Active             *bool   `json:"Active,omitempty"`
	SubAccount         *bool   `json:"SubAccount,omitempty"`

	ParentRef   *Reference `json:"ParentRef,omitempty"`
	CurrencyRef *Reference `json:"CurrencyRef,omitempty"`
	TaxCodeRef  *Reference `json:"TaxCodeRef,omitempty"`

	CurrentBalance                *decimal.Decimal `json:"CurrentBalance,omitempty"`
	CurrentBalanceWithSubAccounts *decimal.Decimal `json:"CurrentBalanceWithSubAccounts,omitempty"`
}

func (*Account) Kind() Kind { return KindAccount }
