package cardbox

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"iter"
	"strings"

	"github.com/google/uuid"

	"github.com/etnz/cardbox/logger"
)

// ImportHeader is the header line of the bulk import format.
var ImportHeader = []string{"Category", "Name", "Set", "Card Number", "Condition", "Purchase Price", "Market Value", "Quantity"}

// RowFailure reports a row that could not be imported.
type RowFailure struct {
	Row int // Row is the 1-based position of the row, header excluded.
	Err error
}

// ImportSummary is the outcome of an import.
type ImportSummary struct {
	Batch     uuid.UUID // Batch identifies the import in the logs.
	Succeeded int
	Failed    int
	Failures  []RowFailure
}

// ParseRow parses one record of the bulk import format into an Item.
//
// Text fields are trimmed, amounts must be non negative decimals and the
// quantity a positive integer.
func ParseRow(fields []string) (Item, error) {
	if len(fields) != len(ImportHeader) {
		return Item{}, invalid("row", "expected %d fields, got %d", len(ImportHeader), len(fields))
	}
	f := make([]string, len(fields))
	for i, s := range fields {
		f[i] = strings.TrimSpace(s)
	}
	it := Item{
		Category:  f[0],
		Name:      f[1],
		Set:       f[2],
		Number:    f[3],
		Condition: f[4],
	}
	var err error
	if it.PurchasePrice, err = parseAmount(FieldPurchasePrice.String(), f[5]); err != nil {
		return Item{}, err
	}
	if it.MarketValue, err = parseAmount(FieldMarketValue.String(), f[6]); err != nil {
		return Item{}, err
	}
	if it.Quantity, err = parseCount(f[7]); err != nil {
		return Item{}, err
	}
	if err := it.Validate(); err != nil {
		return Item{}, err
	}
	return it, nil
}

// ReadRows reads CSV records from r, skipping the header line.
//
// Records can have any number of fields, ParseRow rejects the wrong ones.
// The sequence stops after the first read error.
func ReadRows(r io.Reader) iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		cr.LazyQuotes = true
		header := true
		for {
			record, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if header {
				header = false
				continue
			}
			if !yield(record, nil) {
				return
			}
		}
	}
}

// ImportRows adds every valid row as a new inventory item. Rows are never
// merged with existing items, even duplicates.
//
// Invalid rows are counted and reported in the summary, they do not stop the
// import. Only a failure to read rows is returned as an error, with the
// summary of the rows imported so far.
func (c *Collection) ImportRows(ctx context.Context, rows iter.Seq2[[]string, error]) (ImportSummary, error) {
	sum := ImportSummary{Batch: uuid.New()}
	inv := NewInventory(c.store)
	n := 0
	for fields, err := range rows {
		if err != nil {
			logger.LogError("Import %s aborted after %d rows: %v", sum.Batch, n, err)
			return sum, &StorageError{Op: "read import rows", Err: err}
		}
		n++
		it, err := ParseRow(fields)
		if err == nil {
			_, err = inv.insert(ctx, it)
		}
		if err != nil {
			logger.LogWarn("Import %s: row %d rejected: %v", sum.Batch, n, err)
			sum.Failed++
			sum.Failures = append(sum.Failures, RowFailure{Row: n, Err: err})
			continue
		}
		sum.Succeeded++
	}
	logger.LogInfo("Import %s: %d rows imported, %d failed", sum.Batch, sum.Succeeded, sum.Failed)
	return sum, nil
}
