package main

import (
	"context"
	"database/sql"
	"fmt"
	"iter"

	_ "modernc.org/sqlite"

	"github.com/etnz/cardbox"
)

// legacyDB reads the inventory.db file of the console application cardbox
// replaces. Amounts are stored there as REAL and card number and condition
// can be NULL.
type legacyDB struct {
	db *sql.DB
}

func openLegacy(path string) (*legacyDB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open legacy database %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to legacy database %q: %w", path, err)
	}
	return &legacyDB{db: db}, nil
}

func (l *legacyDB) Close() error { return l.db.Close() }

// legacyRows runs query and scans every row with scan.
func legacyRows[T any](ctx context.Context, db *sql.DB, query string, scan func(*sql.Rows) (T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		rows, err := db.QueryContext(ctx, query)
		if err != nil {
			yield(zero, err)
			return
		}
		defer rows.Close()
		for rows.Next() {
			v, err := scan(rows)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(zero, err)
		}
	}
}

// Items returns the inventory, oldest first, so that ids keep their order.
func (l *legacyDB) Items(ctx context.Context) iter.Seq2[cardbox.Item, error] {
	const query = `SELECT id, type, name, setName, COALESCE(cardNumber, ''), COALESCE(condition, ''),
		purchasePrice, ebayCompValue, quantity FROM inventory ORDER BY id`
	return legacyRows(ctx, l.db, query, func(rows *sql.Rows) (cardbox.Item, error) {
		var it cardbox.Item
		err := rows.Scan(&it.ID, &it.Category, &it.Name, &it.Set, &it.Number, &it.Condition,
			&it.PurchasePrice, &it.MarketValue, &it.Quantity)
		return it, err
	})
}

// Sales returns the sales log, oldest first. Totals are kept as recorded.
func (l *legacyDB) Sales(ctx context.Context) iter.Seq2[cardbox.Sale, error] {
	const query = `SELECT id, type, name, setName, COALESCE(cardNumber, ''), COALESCE(condition, ''),
		purchasePrice, finalSoldPrice, profitMade, quantitySold FROM sales ORDER BY id`
	return legacyRows(ctx, l.db, query, func(rows *sql.Rows) (cardbox.Sale, error) {
		var s cardbox.Sale
		err := rows.Scan(&s.ID, &s.Category, &s.Name, &s.Set, &s.Number, &s.Condition,
			&s.PurchasePrice, &s.TotalSoldPrice, &s.Profit, &s.QuantitySold)
		return s, err
	})
}

// migration reports what was copied.
type migration struct {
	Items, Sales int
	Skipped      []string // legacy rows that could not be copied, and why
}

// copyLegacy copies the legacy inventory and sales into dst, in a single transaction.
//
// Legacy items with a quantity below 1 are skipped, the console application
// did not always remove them.
func copyLegacy(ctx context.Context, src *legacyDB, dst cardbox.Store) (migration, error) {
	var m migration
	err := dst.Atomically(ctx, func(tx cardbox.Store) error {
		for it, err := range src.Items(ctx) {
			if err != nil {
				return fmt.Errorf("reading legacy inventory: %w", err)
			}
			if err := it.Validate(); err != nil {
				m.Skipped = append(m.Skipped, fmt.Sprintf("inventory #%d %q: %v", it.ID, it.Name, err))
				continue
			}
			if _, err := tx.InsertItem(ctx, it); err != nil {
				return err
			}
			m.Items++
		}
		for s, err := range src.Sales(ctx) {
			if err != nil {
				return fmt.Errorf("reading legacy sales: %w", err)
			}
			if s.QuantitySold <= 0 {
				m.Skipped = append(m.Skipped, fmt.Sprintf("sale #%d %q: quantity %d", s.ID, s.Name, s.QuantitySold))
				continue
			}
			if _, err := tx.InsertSale(ctx, s); err != nil {
				return err
			}
			m.Sales++
		}
		return nil
	})
	return m, err
}

// totals are compared to check a migration.
type totals struct {
	Inventory cardbox.InventoryAnalysis
	Sales     cardbox.SalesAnalysis
}

func (t totals) String() string {
	return fmt.Sprintf("%d items, %d cards worth %s; %d sales of %d cards for %s, profit %s",
		t.Inventory.Lines, t.Inventory.Quantity, t.Inventory.MarketValue.Format(""),
		t.Sales.Lines, t.Sales.UnitsSold, t.Sales.SaleValue.Format(""), t.Sales.Profit.Format(""))
}

// equal compares totals to the cent, legacy amounts being floats.
func (t totals) equal(u totals) bool {
	cents := func(m cardbox.Money) string { return m.Decimal().StringFixed(2) }
	return t.Inventory.Lines == u.Inventory.Lines &&
		t.Inventory.Quantity == u.Inventory.Quantity &&
		cents(t.Inventory.MarketValue) == cents(u.Inventory.MarketValue) &&
		cents(t.Inventory.CostBasis) == cents(u.Inventory.CostBasis) &&
		t.Sales.Lines == u.Sales.Lines &&
		t.Sales.UnitsSold == u.Sales.UnitsSold &&
		cents(t.Sales.SaleValue) == cents(u.Sales.SaleValue) &&
		cents(t.Sales.Profit) == cents(u.Sales.Profit)
}

// legacyTotals sums up the legacy rows that copyLegacy copies.
func legacyTotals(ctx context.Context, src *legacyDB) (t totals, err error) {
	items := filter(src.Items(ctx), func(it cardbox.Item) bool { return it.Validate() == nil })
	if t.Inventory, err = cardbox.SummarizeInventory(items); err != nil {
		return t, err
	}
	sales := filter(src.Sales(ctx), func(s cardbox.Sale) bool { return s.QuantitySold > 0 })
	t.Sales, err = cardbox.SummarizeSales(sales)
	return t, err
}

func filter[T any](seq iter.Seq2[T, error], keep func(T) bool) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v, err := range seq {
			if err == nil && !keep(v) {
				continue
			}
			if !yield(v, err) {
				return
			}
		}
	}
}

func collectionTotals(ctx context.Context, c *cardbox.Collection) (t totals, err error) {
	t.Inventory, err = c.AnalyzeInventory(ctx)
	if err != nil {
		return t, err
	}
	t.Sales, err = c.AnalyzeSales(ctx)
	return t, err
}
