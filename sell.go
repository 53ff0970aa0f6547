package cardbox

import (
	"context"
	"fmt"

	"github.com/etnz/cardbox/date"
	"github.com/etnz/cardbox/logger"
)

// SellOrder describes the sale of some units of an inventory item.
type SellOrder struct {
	ItemID    int64
	Quantity  int
	UnitPrice Money
	Date      date.Date // Date of the sale, today if zero.
}

// SellResult is the outcome of a Sell.
type SellResult struct {
	Sale      Sale // Sale is the recorded sale, with its id.
	Item      Item // Item is the state of the item after the sale.
	Remaining int
	Deleted   bool // Deleted is true when the item was sold out and removed.
}

// Sell records the sale and takes the sold units out of the inventory, or
// does neither.
//
// The quantity must be between 1 and the quantity held, the price must not be
// negative. An item sold out is deleted.
func (c *Collection) Sell(ctx context.Context, o SellOrder) (SellResult, error) {
	if o.Quantity <= 0 {
		return SellResult{}, invalid("quantity", "must be greater than 0, got %d", o.Quantity)
	}
	if o.UnitPrice.IsNegative() {
		return SellResult{}, invalid("price", "must not be negative, got %s", o.UnitPrice)
	}
	if o.Date.IsZero() {
		o.Date = date.Today()
	}

	var res SellResult
	err := c.store.Atomically(ctx, func(tx Store) error {
		item, err := tx.Item(ctx, o.ItemID)
		if err != nil {
			return err
		}
		if o.Quantity > item.Quantity {
			return invalid("quantity", "cannot sell %d, only %d in inventory", o.Quantity, item.Quantity)
		}

		sale, err := NewSales(tx).Record(ctx, item, o.Quantity, o.UnitPrice, o.Date)
		if err != nil {
			return fmt.Errorf("recording sale of item #%d: %w", item.ID, err)
		}

		remaining := item.Quantity - o.Quantity
		item.Quantity = remaining
		if remaining <= 0 {
			err = tx.DeleteItem(ctx, item.ID)
		} else {
			err = tx.UpdateItem(ctx, item)
		}
		if err != nil {
			return fmt.Errorf("updating item #%d: %w", item.ID, err)
		}
		res = SellResult{Sale: sale, Item: item, Remaining: remaining, Deleted: remaining <= 0}
		return nil
	})
	if err != nil {
		return SellResult{}, err
	}
	logger.LogInfo("Sold %d x %q (item #%d) for %s each: sale #%d, profit %s, %d left",
		o.Quantity, res.Sale.Name, o.ItemID, o.UnitPrice, res.Sale.ID, res.Sale.Profit, res.Remaining)
	return res, nil
}
