package model

import "github.com/shopspring/decimal"

// ItemType selects which accounts and stock fields an item needs.
type ItemType string

const (
	ItemInventory    ItemType = "Inventory"
	ItemService      ItemType = "Service"
	ItemNonInventory ItemType = "NonInventory"
	ItemCategory     ItemType = "Category"
	ItemGroup        ItemType = "Group"
)

// Item is a product or service the company buys or sells.
type Item struct {
	ObjectData

	Name               *string   `json:"Name,omitempty"`
	Sku                *string   `json:"Sku,omitempty"`
	Description        *string   `json:"Description,omitempty"`
	PurchaseDesc       *string   `json:"PurchaseDesc,omitempty"`
	FullyQualifiedName *string   `json:"FullyQualifiedName,omitempty"`
	Type               *ItemType `json:"Type,omitempty"`
	Level              *int      `json:"Level,omitempty"`

	Active              *bool `json:"Active,omitempty"`
	Taxable             *bool `json:"Taxable,omitempty"`
	SubItem             *bool `json:"SubItem,omitempty"`
	TrackQtyOnHand      *bool `json:"TrackQtyOnHand,omitempty"`
	SalesTaxIncluded    *bool `json:"SalesTaxIncluded,omitempty"`
	PurchaseTaxIncluded *bool `json:"PurchaseTaxIncluded,omitempty"`

	UnitPrice    *decimal.Decimal `json:"UnitPrice,omitempty"`
	PurchaseCost *decimal.Decimal `json:"PurchaseCost,omitempty"`
	QtyOnHand    *decimal.Decimal `json:"QtyOnHand,omitempty"`
	ReorderPoint *decimal.Decimal `json:"ReorderPoint,omitempty"`
	InvStartDate *Date            `json:"InvStartDate,omitempty"`

	IncomeAccountRef   *Reference `json:"IncomeAccountRef,omitempty"`
	ExpenseAccountRef  *Reference `json:"ExpenseAccountRef,omitempty"`
	AssetAccountRef    *Reference `json:"AssetAccountRef,omitempty"`
	ParentRef          *Reference `json:"ParentRef,omitempty"`
	PrefVendorRef      *Reference `json:"PrefVendorRef,omitempty"`
	SalesTaxCodeRef    *Reference `json:"SalesTaxCodeRef,omitempty"`
	PurchaseTaxCodeRef *Reference `json:"PurchaseTaxCodeRef,omitempty"`
	ClassRef           *Reference `json:"ClassRef,omitempty"`
}

func (*Item) Kind() Kind { return KindItem }
