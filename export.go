package cardbox

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"strconv"
)

// ExportItems writes items in the bulk import format, header included, so
// that the output can be imported back with ReadRows and ImportRows.
func ExportItems(w io.Writer, items iter.Seq2[Item, error]) (n int, err error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(ImportHeader); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}
	for it, err := range items {
		if err != nil {
			return n, err
		}
		record := []string{
			it.Category, it.Name, it.Set, it.Number, it.Condition,
			it.PurchasePrice.String(), it.MarketValue.String(), strconv.Itoa(it.Quantity),
		}
		if err := cw.Write(record); err != nil {
			return n, fmt.Errorf("writing item #%d: %w", it.ID, err)
		}
		n++
	}
	cw.Flush()
	return n, cw.Error()
}
