package cardbox

import (
	"context"
	"errors"
	"iter"

	"github.com/etnz/cardbox/logger"
)

// Collection exposes every operation a user interface needs on a card
// collection. Results are returned, nothing is printed.
type Collection struct {
	store Store
}

// New returns a Collection stored in s.
func New(s Store) *Collection { return &Collection{store: s} }

// AddOrMerge adds it to the inventory. If an item with the same key exists,
// its quantity is increased by it.Quantity instead and merged is true.
func (c *Collection) AddOrMerge(ctx context.Context, it Item) (stored Item, merged bool, err error) {
	if err := it.Validate(); err != nil {
		return Item{}, false, err
	}
	err = c.store.Atomically(ctx, func(tx Store) error {
		inv := NewInventory(tx)
		stored, err = inv.Add(ctx, it)
		var dup *DuplicateError
		if errors.As(err, &dup) {
			merged = true
			stored, err = inv.IncreaseQuantity(ctx, dup.ID, it.Quantity)
		}
		return err
	})
	if err != nil {
		return Item{}, false, err
	}
	if merged {
		logger.LogInfo("Merged %d x %q into item #%d, now %d", it.Quantity, it.Name, stored.ID, stored.Quantity)
	} else {
		logger.LogInfo("Added item #%d: %d x %q", stored.ID, stored.Quantity, stored.Name)
	}
	return stored, merged, nil
}

// EditField sets one field of the item id. See Inventory.SetField.
//
// Edits never merge the item with another one, even if its key becomes a duplicate.
func (c *Collection) EditField(ctx context.Context, id int64, f Field, value string) (it Item, deleted bool, err error) {
	err = c.store.Atomically(ctx, func(tx Store) error {
		it, deleted, err = NewInventory(tx).SetField(ctx, id, f, value)
		return err
	})
	if err != nil {
		return Item{}, false, err
	}
	if deleted {
		logger.LogInfo("Deleted item #%d: quantity set to 0", id)
	} else {
		logger.LogInfo("Edited item #%d: %s = %q", id, f, value)
	}
	return it, deleted, nil
}

// DeleteItem removes the item id from the inventory.
func (c *Collection) DeleteItem(ctx context.Context, id int64) error {
	if err := NewInventory(c.store).Remove(ctx, id); err != nil {
		return err
	}
	logger.LogInfo("Deleted item #%d", id)
	return nil
}

// QueryInventory returns the items matching q.
func (c *Collection) QueryInventory(ctx context.Context, q ItemQuery) iter.Seq2[Item, error] {
	return NewInventory(c.store).Query(ctx, q)
}

// QuerySales returns the sales matching q.
func (c *Collection) QuerySales(ctx context.Context, q SaleQuery) iter.Seq2[Sale, error] {
	return NewSales(c.store).Query(ctx, q)
}

// DeleteSale removes the sale id from the sales log. The inventory is not restored.
func (c *Collection) DeleteSale(ctx context.Context, id int64) error {
	if err := NewSales(c.store).Remove(ctx, id); err != nil {
		return err
	}
	logger.LogInfo("Deleted sale #%d", id)
	return nil
}
