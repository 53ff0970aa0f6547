package cardbox_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/etnz/cardbox"
	"github.com/etnz/cardbox/date"
	"github.com/etnz/cardbox/store"
)

// newCollection returns an empty collection in a temporary database.
func newCollection(t *testing.T) (*cardbox.Collection, *store.DB) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "cards.db"))
	if err != nil {
		t.Fatalf("store.Open() = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return cardbox.New(db), db
}

func mantle() cardbox.Item {
	return cardbox.Item{
		Category:      "Baseball",
		Name:          "Mantle",
		Set:           "1952 Topps",
		Number:        "311",
		Condition:     "NM",
		PurchasePrice: cardbox.M(100),
		MarketValue:   cardbox.M(5000),
		Quantity:      2,
	}
}

func items(t *testing.T, c *cardbox.Collection) []cardbox.Item {
	t.Helper()
	var list []cardbox.Item
	for it, err := range c.QueryInventory(context.Background(), cardbox.ItemQuery{Order: cardbox.ByNewest}) {
		if err != nil {
			t.Fatalf("QueryInventory() = %v", err)
		}
		list = append(list, it)
	}
	return list
}

func sales(t *testing.T, c *cardbox.Collection) []cardbox.Sale {
	t.Helper()
	var list []cardbox.Sale
	for s, err := range c.QuerySales(context.Background(), cardbox.SaleQuery{Order: cardbox.ByLatest}) {
		if err != nil {
			t.Fatalf("QuerySales() = %v", err)
		}
		list = append(list, s)
	}
	return list
}

func TestAddOrMerge(t *testing.T) {
	ctx := context.Background()
	c, _ := newCollection(t)

	first, merged, err := c.AddOrMerge(ctx, mantle())
	if err != nil || merged {
		t.Fatalf("AddOrMerge() = %v, merged %v", err, merged)
	}

	// same key, different card number: merged.
	again := mantle()
	again.Number = "312"
	again.Quantity = 3
	got, merged, err := c.AddOrMerge(ctx, again)
	if err != nil {
		t.Fatalf("AddOrMerge() = %v", err)
	}
	if !merged || got.ID != first.ID || got.Quantity != 5 {
		t.Errorf("AddOrMerge(same key) = #%d qty %d merged %v, want #%d qty 5 merged", got.ID, got.Quantity, merged, first.ID)
	}

	// each key field makes a new row.
	for _, edit := range []func(*cardbox.Item){
		func(it *cardbox.Item) { it.Category = "Basketball" },
		func(it *cardbox.Item) { it.Name = "Mays" },
		func(it *cardbox.Item) { it.Set = "1953 Topps" },
		func(it *cardbox.Item) { it.Condition = "EX" },
	} {
		it := mantle()
		edit(&it)
		if _, merged, err := c.AddOrMerge(ctx, it); err != nil || merged {
			t.Errorf("AddOrMerge(%v) = %v, merged %v, want a new item", it.Key(), err, merged)
		}
	}
	if n := len(items(t, c)); n != 5 {
		t.Errorf("inventory has %d items, want 5", n)
	}
}

func TestAddOrMergeRejectsInvalidItems(t *testing.T) {
	ctx := context.Background()
	c, _ := newCollection(t)

	it := mantle()
	it.Quantity = 0
	if _, _, err := c.AddOrMerge(ctx, it); !cardbox.IsValidation(err) {
		t.Errorf("AddOrMerge(qty 0) = %v, want a validation error", err)
	}
	it = mantle()
	it.PurchasePrice = cardbox.M(-1)
	if _, _, err := c.AddOrMerge(ctx, it); !cardbox.IsValidation(err) {
		t.Errorf("AddOrMerge(price -1) = %v, want a validation error", err)
	}
	if n := len(items(t, c)); n != 0 {
		t.Errorf("inventory has %d items, want 0", n)
	}
}

func TestInventoryAddDuplicate(t *testing.T) {
	ctx := context.Background()
	_, db := newCollection(t)
	inv := cardbox.NewInventory(db)

	first, err := inv.Add(ctx, mantle())
	if err != nil {
		t.Fatalf("Add() = %v", err)
	}
	_, err = inv.Add(ctx, mantle())
	var dup *cardbox.DuplicateError
	if !errors.As(err, &dup) || dup.ID != first.ID || dup.Quantity != 2 {
		t.Fatalf("Add(duplicate) = %v, want DuplicateError for #%d", err, first.ID)
	}
	if !cardbox.IsValidation(err) {
		t.Errorf("IsValidation(%v) = false, want true", err)
	}
	if _, err := inv.IncreaseQuantity(ctx, first.ID, 0); !cardbox.IsValidation(err) {
		t.Errorf("IncreaseQuantity(0) = %v, want a validation error", err)
	}
	id, qty, found, err := inv.FindMatch(ctx, mantle().Key())
	if err != nil || !found || id != first.ID || qty != 2 {
		t.Errorf("FindMatch() = %d, %d, %v, %v, want %d, 2, true, nil", id, qty, found, err, first.ID)
	}
}

func TestEditField(t *testing.T) {
	ctx := context.Background()
	c, _ := newCollection(t)
	it, _, err := c.AddOrMerge(ctx, mantle())
	if err != nil {
		t.Fatal(err)
	}

	got, deleted, err := c.EditField(ctx, it.ID, cardbox.FieldMarketValue, "5500.25")
	if err != nil || deleted {
		t.Fatalf("EditField(market-value) = %v, deleted %v", err, deleted)
	}
	if !got.MarketValue.Equal(cardbox.M(5500.25)) {
		t.Errorf("MarketValue = %v, want 5500.25", got.MarketValue)
	}

	got, _, err = c.EditField(ctx, it.ID, cardbox.FieldCondition, "EX")
	if err != nil || got.Condition != "EX" {
		t.Errorf("EditField(condition) = %q, %v, want EX", got.Condition, err)
	}

	for _, tt := range []struct {
		field cardbox.Field
		value string
	}{
		{cardbox.FieldPurchasePrice, "-1"},
		{cardbox.FieldMarketValue, "lots"},
		{cardbox.FieldQuantity, "-2"},
		{cardbox.FieldQuantity, "two"},
	} {
		if _, _, err := c.EditField(ctx, it.ID, tt.field, tt.value); !cardbox.IsValidation(err) {
			t.Errorf("EditField(%v, %q) = %v, want a validation error", tt.field, tt.value, err)
		}
	}

	// quantity 0 removes the item.
	_, deleted, err = c.EditField(ctx, it.ID, cardbox.FieldQuantity, "0")
	if err != nil || !deleted {
		t.Fatalf("EditField(quantity, 0) = %v, deleted %v, want deleted", err, deleted)
	}
	if n := len(items(t, c)); n != 0 {
		t.Errorf("inventory has %d items, want 0", n)
	}

	if _, _, err := c.EditField(ctx, it.ID, cardbox.FieldName, "x"); !cardbox.IsNotFound(err) {
		t.Errorf("EditField(missing) = %v, want NotFoundError", err)
	}
}

func TestEditNeverMerges(t *testing.T) {
	ctx := context.Background()
	c, _ := newCollection(t)
	a, _, _ := c.AddOrMerge(ctx, mantle())
	other := mantle()
	other.Condition = "EX"
	b, _, _ := c.AddOrMerge(ctx, other)

	if _, _, err := c.EditField(ctx, b.ID, cardbox.FieldCondition, a.Condition); err != nil {
		t.Fatalf("EditField() = %v", err)
	}
	if n := len(items(t, c)); n != 2 {
		t.Errorf("inventory has %d items, want 2", n)
	}
}

func TestDeleteMissing(t *testing.T) {
	ctx := context.Background()
	c, _ := newCollection(t)
	it, _, _ := c.AddOrMerge(ctx, mantle())

	if err := c.DeleteItem(ctx, it.ID+1); !cardbox.IsNotFound(err) {
		t.Errorf("DeleteItem(missing) = %v, want NotFoundError", err)
	}
	if err := c.DeleteSale(ctx, 7); !cardbox.IsNotFound(err) {
		t.Errorf("DeleteSale(missing) = %v, want NotFoundError", err)
	}
	if got := items(t, c); len(got) != 1 || got[0].Quantity != 2 {
		t.Errorf("inventory = %+v, want unchanged", got)
	}

	if err := c.DeleteItem(ctx, it.ID); err != nil {
		t.Errorf("DeleteItem() = %v", err)
	}
	if err := c.DeleteItem(ctx, it.ID); !cardbox.IsNotFound(err) {
		t.Errorf("DeleteItem(twice) = %v, want NotFoundError", err)
	}
}

func TestSalesRecord(t *testing.T) {
	ctx := context.Background()
	_, db := newCollection(t)
	s := cardbox.NewSales(db)

	if _, err := s.Record(ctx, mantle(), 0, cardbox.M(10), date.Today()); !cardbox.IsValidation(err) {
		t.Errorf("Record(qty 0) = %v, want a validation error", err)
	}
	if _, err := s.Record(ctx, mantle(), 1, cardbox.M(-10), date.Today()); !cardbox.IsValidation(err) {
		t.Errorf("Record(price -10) = %v, want a validation error", err)
	}
	sale, err := s.Record(ctx, mantle(), 1, cardbox.M(150), date.Today())
	if err != nil {
		t.Fatalf("Record() = %v", err)
	}
	if err := s.Remove(ctx, sale.ID); err != nil {
		t.Errorf("Remove() = %v", err)
	}
	if err := s.Remove(ctx, sale.ID); !cardbox.IsNotFound(err) {
		t.Errorf("Remove(twice) = %v, want NotFoundError", err)
	}
}
