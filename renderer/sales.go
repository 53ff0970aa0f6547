package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/cardbox"
)

// SalesMarkdown renders the sales log.
func SalesMarkdown(sales []cardbox.Sale, order cardbox.SalesOrder, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sales\n\n")
	if len(sales) == 0 {
		fmt.Fprintln(&b, "No sales recorded.")
		return b.String()
	}
	fmt.Fprintf(&b, "%d sales, sorted by %s.\n\n", len(sales), order)
	fmt.Fprintln(&b, "| ID | Date | Category | Card | Condition | Qty | Unit Price | Total | Profit |")
	fmt.Fprintln(&b, "|---:|:---|:---|:---|:---|---:|---:|---:|---:|")
	for _, s := range sales {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %d | %s | %s | %s |\n",
			s.ID,
			orDash(s.Date.String()),
			cell(s.Category),
			cell(saleCard(s)),
			cell(orDash(s.Condition)),
			s.QuantitySold,
			s.UnitPrice().Format(currency),
			s.TotalSoldPrice.Format(currency),
			s.Profit.SignedFormat(currency),
		)
	}
	return b.String()
}

// SellMarkdown renders the outcome of a sale.
func SellMarkdown(r cardbox.SellResult, currency string) string {
	var b strings.Builder
	s := r.Sale
	fmt.Fprintf(&b, "Sold %d x %s for %s (sale #%d).\n\n", s.QuantitySold, saleCard(s), s.TotalSoldPrice.Format(currency), s.ID)
	fmt.Fprintf(&b, "* Profit: %s\n", s.Profit.SignedFormat(currency))
	if r.Deleted {
		fmt.Fprintf(&b, "* Item #%d is sold out and was removed from the inventory.\n", r.Item.ID)
	} else {
		fmt.Fprintf(&b, "* Item #%d: %d left in inventory.\n", r.Item.ID, r.Remaining)
	}
	return b.String()
}
