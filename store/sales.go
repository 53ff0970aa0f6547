package store

import (
	"context"
	"database/sql"
	"errors"
	"iter"
	"sync/atomic"

	"github.com/etnz/cardbox"
)

const saleColumns = `id, category, name, set_name, card_number, condition, purchase_price, total_sold_price, profit, quantity_sold, sold_on`

func scanSale(row scanner) (cardbox.Sale, error) {
	var s cardbox.Sale
	err := row.Scan(&s.ID, &s.Category, &s.Name, &s.Set, &s.Number, &s.Condition,
		&s.PurchasePrice, &s.TotalSoldPrice, &s.Profit, &s.QuantitySold, &s.Date)
	return s, err
}

// Sale implements cardbox.Store.
func (s *DB) Sale(ctx context.Context, id int64) (cardbox.Sale, error) {
	sale, err := scanSale(s.q.QueryRowContext(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return cardbox.Sale{}, &cardbox.NotFoundError{Kind: "sale", ID: id}
	}
	if err != nil {
		return cardbox.Sale{}, storageErr("read sale", err)
	}
	return sale, nil
}

// InsertSale implements cardbox.Store.
func (s *DB) InsertSale(ctx context.Context, sale cardbox.Sale) (int64, error) {
	const stmt = `INSERT INTO sales (category, name, set_name, card_number, condition, purchase_price,
		total_sold_price, profit, quantity_sold, sold_on) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	return s.insert(ctx, "insert sale", stmt,
		sale.Category, sale.Name, sale.Set, sale.Number, sale.Condition, sale.PurchasePrice,
		sale.TotalSoldPrice, sale.Profit, sale.QuantitySold, sale.Date)
}

// DeleteSale implements cardbox.Store.
func (s *DB) DeleteSale(ctx context.Context, id int64) error {
	return s.execOne(ctx, "delete sale", "sale", id, `DELETE FROM sales WHERE id = ?`, id)
}

func salesQuery(q cardbox.SaleQuery) (string, []any) {
	query := `SELECT ` + saleColumns + ` FROM sales`
	var args []any
	if q.Name != "" {
		query += ` WHERE name LIKE ? ESCAPE '\'`
		args = append(args, likePattern(q.Name))
	}
	switch q.Order {
	case cardbox.BySaleName:
		query += ` ORDER BY name, id`
	case cardbox.ByLatest:
		query += ` ORDER BY id DESC`
	default:
		query += ` ORDER BY CAST(profit AS REAL) DESC, id`
	}
	return query, args
}

// Sales implements cardbox.Store.
func (s *DB) Sales(ctx context.Context, q cardbox.SaleQuery) iter.Seq2[cardbox.Sale, error] {
	query, args := salesQuery(q)
	var used atomic.Bool
	return func(yield func(cardbox.Sale, error) bool) {
		if used.Swap(true) {
			yield(cardbox.Sale{}, errConsumed)
			return
		}
		rows, err := s.q.QueryContext(ctx, query, args...)
		if err != nil {
			yield(cardbox.Sale{}, storageErr("scan sales", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			sale, err := scanSale(rows)
			if err != nil {
				yield(cardbox.Sale{}, storageErr("scan sales", err))
				return
			}
			if !yield(sale, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(cardbox.Sale{}, storageErr("scan sales", err))
		}
	}
}
