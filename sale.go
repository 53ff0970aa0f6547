package cardbox

import "github.com/etnz/cardbox/date"

// Sale is an immutable record of a completed sale. It is a snapshot of the
// item it was sold from: later edits or deletion of the item do not affect it.
type Sale struct {
	ID             int64
	Category       string
	Name           string
	Set            string
	Number         string
	Condition      string
	PurchasePrice  Money // per unit, copied from the item
	TotalSoldPrice Money // unit price * QuantitySold
	Profit         Money // (unit price - PurchasePrice) * QuantitySold, may be negative
	QuantitySold   int
	Date           date.Date // Date of the sale, zero for sales migrated without one.
}

// NewSale builds the sale of qty units of item at unitPrice each.
//
// TotalSoldPrice and Profit are always derived here, they are never set
// independently.
func NewSale(item Item, qty int, unitPrice Money, day date.Date) Sale {
	return Sale{
		Category:       item.Category,
		Name:           item.Name,
		Set:            item.Set,
		Number:         item.Number,
		Condition:      item.Condition,
		PurchasePrice:  item.PurchasePrice,
		TotalSoldPrice: unitPrice.Mul(qty),
		Profit:         unitPrice.Sub(item.PurchasePrice).Mul(qty),
		QuantitySold:   qty,
		Date:           day,
	}
}

// UnitPrice returns the per unit sale price.
func (s Sale) UnitPrice() Money {
	if s.QuantitySold == 0 {
		return Money{}
	}
	return s.TotalSoldPrice.Div(s.QuantitySold)
}

// CostBasis is the total purchase price of the units sold.
func (s Sale) CostBasis() Money { return s.PurchasePrice.Mul(s.QuantitySold) }
