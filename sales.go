package cardbox

import (
	"context"
	"iter"

	"github.com/etnz/cardbox/date"
)

// Sales manages the sales log.
type Sales struct {
	store Store
}

// NewSales returns a Sales operating on s.
func NewSales(s Store) *Sales { return &Sales{store: s} }

// Record appends the sale of qty units of item at unitPrice each.
//
// item is only used as a snapshot, the inventory is not touched.
func (s *Sales) Record(ctx context.Context, item Item, qty int, unitPrice Money, day date.Date) (Sale, error) {
	if qty <= 0 {
		return Sale{}, invalid("quantity", "must be greater than 0, got %d", qty)
	}
	if unitPrice.IsNegative() {
		return Sale{}, invalid("price", "must not be negative, got %s", unitPrice)
	}
	sale := NewSale(item, qty, unitPrice, day)
	id, err := s.store.InsertSale(ctx, sale)
	if err != nil {
		return Sale{}, err
	}
	sale.ID = id
	return sale, nil
}

// Remove deletes the sale id.
func (s *Sales) Remove(ctx context.Context, id int64) error {
	return s.store.DeleteSale(ctx, id)
}

// Query returns the sales matching q, in q.Order.
func (s *Sales) Query(ctx context.Context, q SaleQuery) iter.Seq2[Sale, error] {
	return s.store.Sales(ctx, q)
}
