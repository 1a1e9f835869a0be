package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemKind distinguishes what a line item references in the catalog.
type ItemKind int16

const (
	ItemKindOption  ItemKind = 1
	ItemKindPackage ItemKind = 2
)

// OrderItem is a single priced line of an order.
type OrderItem struct {
	ID         string
	OrderID    string
	Kind       ItemKind
	CatalogRef string
	Quantity   int
	UnitPrice  decimal.Decimal
	LineTotal  decimal.Decimal
	CreatedAt  time.Time
}

// QuoteItem is a priced line produced by the pricing resolver before an
// order exists.
type QuoteItem struct {
	OptionID  string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Quote is the result of a pricing resolution: one currency, line items
// and their sum.
type Quote struct {
	Currency string
	Total    decimal.Decimal
	Items    []QuoteItem
}
