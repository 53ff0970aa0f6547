package store

import (
	"context"
	"database/sql"
	"errors"
	"iter"
	"strings"
	"sync/atomic"

	"github.com/etnz/cardbox"
)

const itemColumns = `id, category, name, set_name, card_number, condition, purchase_price, market_value, quantity`

func scanItem(row scanner) (cardbox.Item, error) {
	var it cardbox.Item
	err := row.Scan(&it.ID, &it.Category, &it.Name, &it.Set, &it.Number, &it.Condition,
		&it.PurchasePrice, &it.MarketValue, &it.Quantity)
	return it, err
}

// Item implements cardbox.Store.
func (s *DB) Item(ctx context.Context, id int64) (cardbox.Item, error) {
	row := s.q.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM inventory WHERE id = ?`, id)
	it, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return cardbox.Item{}, &cardbox.NotFoundError{Kind: "item", ID: id}
	}
	if err != nil {
		return cardbox.Item{}, storageErr("read item", err)
	}
	return it, nil
}

// FindItem implements cardbox.Store. Matching is exact and case sensitive.
func (s *DB) FindItem(ctx context.Context, k cardbox.Key) (cardbox.Item, bool, error) {
	const stmt = `SELECT ` + itemColumns + ` FROM inventory
		WHERE category = ? AND name = ? AND set_name = ? AND condition = ?
		ORDER BY id LIMIT 1`
	it, err := scanItem(s.q.QueryRowContext(ctx, stmt, k.Category, k.Name, k.Set, k.Condition))
	if errors.Is(err, sql.ErrNoRows) {
		return cardbox.Item{}, false, nil
	}
	if err != nil {
		return cardbox.Item{}, false, storageErr("find item", err)
	}
	return it, true, nil
}

// InsertItem implements cardbox.Store.
func (s *DB) InsertItem(ctx context.Context, it cardbox.Item) (int64, error) {
	const stmt = `INSERT INTO inventory (category, name, set_name, card_number, condition, purchase_price, market_value, quantity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	return s.insert(ctx, "insert item", stmt,
		it.Category, it.Name, it.Set, it.Number, it.Condition, it.PurchasePrice, it.MarketValue, it.Quantity)
}

// UpdateItem implements cardbox.Store.
func (s *DB) UpdateItem(ctx context.Context, it cardbox.Item) error {
	const stmt = `UPDATE inventory SET category = ?, name = ?, set_name = ?, card_number = ?, condition = ?,
		purchase_price = ?, market_value = ?, quantity = ? WHERE id = ?`
	return s.execOne(ctx, "update item", "item", it.ID, stmt,
		it.Category, it.Name, it.Set, it.Number, it.Condition, it.PurchasePrice, it.MarketValue, it.Quantity, it.ID)
}

// DeleteItem implements cardbox.Store.
func (s *DB) DeleteItem(ctx context.Context, id int64) error {
	return s.execOne(ctx, "delete item", "item", id, `DELETE FROM inventory WHERE id = ?`, id)
}

// itemsQuery builds the SELECT statement for q.
func itemsQuery(q cardbox.ItemQuery) (string, []any) {
	var where []string
	var args []any
	if q.Name != "" {
		where = append(where, `name LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(q.Name))
	}
	if q.Set != "" {
		where = append(where, `set_name LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(q.Set))
	}

	var b strings.Builder
	b.WriteString(`SELECT ` + itemColumns + ` FROM inventory`)
	if len(where) > 0 {
		b.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	// amounts are stored as exact decimal text, they are compared as numbers.
	switch q.Order {
	case cardbox.ByMarketValue:
		b.WriteString(` ORDER BY CAST(market_value AS REAL) DESC, id`)
	case cardbox.ByPotentialProfit:
		b.WriteString(` ORDER BY (CAST(market_value AS REAL) - CAST(purchase_price AS REAL)) * quantity DESC, id`)
	case cardbox.ByNewest:
		b.WriteString(` ORDER BY id DESC`)
	case cardbox.ByCategory:
		b.WriteString(` ORDER BY category, name, id`)
	default:
		b.WriteString(` ORDER BY name, id`)
	}
	return b.String(), args
}

// Items implements cardbox.Store.
func (s *DB) Items(ctx context.Context, q cardbox.ItemQuery) iter.Seq2[cardbox.Item, error] {
	query, args := itemsQuery(q)
	var used atomic.Bool
	return func(yield func(cardbox.Item, error) bool) {
		if used.Swap(true) {
			yield(cardbox.Item{}, errConsumed)
			return
		}
		rows, err := s.q.QueryContext(ctx, query, args...)
		if err != nil {
			yield(cardbox.Item{}, storageErr("scan inventory", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			it, err := scanItem(rows)
			if err != nil {
				yield(cardbox.Item{}, storageErr("scan inventory", err))
				return
			}
			if !yield(it, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(cardbox.Item{}, storageErr("scan inventory", err))
		}
	}
}
