package cardbox

import (
	"context"
	"iter"
	"strconv"
	"strings"
)

// Inventory manages the items currently held.
//
// It is a thin layer over a Store: it owns the validation rules, the store
// owns persistence. Use it on the Store given by Store.Atomically to make a
// sequence of calls atomic.
type Inventory struct {
	store Store
}

// NewInventory returns an Inventory operating on s.
func NewInventory(s Store) *Inventory { return &Inventory{store: s} }

// FindMatch looks for an item whose key is exactly k.
func (inv *Inventory) FindMatch(ctx context.Context, k Key) (id int64, qty int, found bool, err error) {
	it, found, err := inv.store.FindItem(ctx, k)
	if err != nil || !found {
		return 0, 0, false, err
	}
	return it.ID, it.Quantity, true, nil
}

// Add inserts a new item and returns it with its id.
//
// If an item with the same key already exists Add fails with a *DuplicateError
// and the caller must use IncreaseQuantity instead.
func (inv *Inventory) Add(ctx context.Context, it Item) (Item, error) {
	if err := it.Validate(); err != nil {
		return Item{}, err
	}
	id, qty, found, err := inv.FindMatch(ctx, it.Key())
	if err != nil {
		return Item{}, err
	}
	if found {
		return Item{}, &DuplicateError{ID: id, Quantity: qty}
	}
	return inv.insert(ctx, it)
}

// insert adds it without looking for duplicates.
func (inv *Inventory) insert(ctx context.Context, it Item) (Item, error) {
	if err := it.Validate(); err != nil {
		return Item{}, err
	}
	id, err := inv.store.InsertItem(ctx, it)
	if err != nil {
		return Item{}, err
	}
	it.ID = id
	return it, nil
}

// IncreaseQuantity adds delta units to the item id.
func (inv *Inventory) IncreaseQuantity(ctx context.Context, id int64, delta int) (Item, error) {
	if delta <= 0 {
		return Item{}, invalid("quantity", "must be greater than 0, got %d", delta)
	}
	it, err := inv.store.Item(ctx, id)
	if err != nil {
		return Item{}, err
	}
	it.Quantity += delta
	if err := inv.store.UpdateItem(ctx, it); err != nil {
		return Item{}, err
	}
	return it, nil
}

// SetField sets one field of the item id from its text representation.
//
// Prices and quantity must not be negative. Setting the quantity to 0 removes
// the item, in which case deleted is true and the returned item is its last state.
func (inv *Inventory) SetField(ctx context.Context, id int64, f Field, value string) (it Item, deleted bool, err error) {
	it, err = inv.store.Item(ctx, id)
	if err != nil {
		return Item{}, false, err
	}

	switch f {
	case FieldCategory:
		it.Category = value
	case FieldName:
		it.Name = value
	case FieldSet:
		it.Set = value
	case FieldNumber:
		it.Number = value
	case FieldCondition:
		it.Condition = value
	case FieldPurchasePrice, FieldMarketValue:
		m, err := parseAmount(f.String(), value)
		if err != nil {
			return Item{}, false, err
		}
		if f == FieldPurchasePrice {
			it.PurchasePrice = m
		} else {
			it.MarketValue = m
		}
	case FieldQuantity:
		q, err := parseCount(value)
		if err != nil {
			return Item{}, false, err
		}
		if q == 0 {
			it.Quantity = 0
			return it, true, inv.store.DeleteItem(ctx, id)
		}
		it.Quantity = q
	default:
		return Item{}, false, invalid("field", "unknown field %d", f)
	}

	if err := inv.store.UpdateItem(ctx, it); err != nil {
		return Item{}, false, err
	}
	return it, false, nil
}

// Remove deletes the item id.
func (inv *Inventory) Remove(ctx context.Context, id int64) error {
	return inv.store.DeleteItem(ctx, id)
}

// Query returns the items matching q, in q.Order.
func (inv *Inventory) Query(ctx context.Context, q ItemQuery) iter.Seq2[Item, error] {
	return inv.store.Items(ctx, q)
}

// parseAmount parses a non negative amount for field.
func parseAmount(field, value string) (Money, error) {
	m, err := ParseMoney(value)
	if err != nil {
		return Money{}, invalid(field, "%v", err)
	}
	if m.IsNegative() {
		return Money{}, invalid(field, "must not be negative, got %s", m)
	}
	return m, nil
}

// parseCount parses a non negative quantity.
func parseCount(value string) (int, error) {
	q, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, invalid("quantity", "not an integer: %q", value)
	}
	if q < 0 {
		return 0, invalid("quantity", "must not be negative, got %d", q)
	}
	return q, nil
}
