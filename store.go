package cardbox

import (
	"context"
	"iter"
)

// ItemQuery selects and sorts inventory items.
type ItemQuery struct {
	Name  string // Name keeps items whose name contains it, if not empty.
	Set   string // Set keeps items whose set name contains it, if not empty.
	Order InventoryOrder
}

// SaleQuery selects and sorts sales.
type SaleQuery struct {
	Name  string // Name keeps sales whose card name contains it, if not empty.
	Order SalesOrder
}

// Store is the persistence boundary: two record sets, inventory items and
// sales, each with store assigned ids that are never reused.
//
// Implementations report missing ids with *NotFoundError and every other
// failure with *StorageError.
type Store interface {
	// Item returns the item with this id.
	Item(ctx context.Context, id int64) (Item, error)
	// FindItem returns the first item (lowest id) whose key is exactly k.
	FindItem(ctx context.Context, k Key) (Item, bool, error)
	// InsertItem inserts it, ignoring it.ID, and returns the new id.
	InsertItem(ctx context.Context, it Item) (int64, error)
	// UpdateItem overwrites every field of the item it.ID.
	UpdateItem(ctx context.Context, it Item) error
	// DeleteItem deletes the item with this id.
	DeleteItem(ctx context.Context, id int64) error
	// Items scans the inventory. The sequence is lazy and can only be iterated once.
	Items(ctx context.Context, q ItemQuery) iter.Seq2[Item, error]

	// Sale returns the sale with this id.
	Sale(ctx context.Context, id int64) (Sale, error)
	// InsertSale inserts s, ignoring s.ID, and returns the new id.
	InsertSale(ctx context.Context, s Sale) (int64, error)
	// DeleteSale deletes the sale with this id.
	DeleteSale(ctx context.Context, id int64) error
	// Sales scans the sales log. The sequence is lazy and can only be iterated once.
	Sales(ctx context.Context, q SaleQuery) iter.Seq2[Sale, error]

	// Atomically runs fn with a Store whose changes are all committed if fn
	// returns nil, and all discarded otherwise.
	Atomically(ctx context.Context, fn func(Store) error) error
}
