package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/cardbox"
)

// InventoryMarkdown renders an inventory listing.
func InventoryMarkdown(items []cardbox.Item, order cardbox.InventoryOrder, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Inventory\n\n")
	if len(items) == 0 {
		fmt.Fprintln(&b, "No items in inventory.")
		return b.String()
	}
	fmt.Fprintf(&b, "%d items, sorted by %s.\n\n", len(items), order)
	fmt.Fprintln(&b, "| ID | Category | Card | Condition | Qty | Purchase | Market | Potential Profit |")
	fmt.Fprintln(&b, "|---:|:---|:---|:---|---:|---:|---:|---:|")
	for _, it := range items {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %d | %s | %s | %s |\n",
			it.ID,
			cell(it.Category),
			cell(itemCard(it)),
			cell(orDash(it.Condition)),
			it.Quantity,
			it.PurchasePrice.Format(currency),
			it.MarketValue.Format(currency),
			it.PotentialProfit().SignedFormat(currency),
		)
	}
	return b.String()
}

// ItemMarkdown renders the details of a single item.
func ItemMarkdown(it cardbox.Item, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## #%d %s\n\n", it.ID, itemCard(it))
	fmt.Fprintf(&b, "* Category: %s\n", it.Category)
	fmt.Fprintf(&b, "* Condition: %s\n", orDash(it.Condition))
	fmt.Fprintf(&b, "* Quantity: %d\n", it.Quantity)
	fmt.Fprintf(&b, "* Purchase price: %s (total %s)\n", it.PurchasePrice.Format(currency), it.CostBasis().Format(currency))
	fmt.Fprintf(&b, "* Market value: %s (total %s)\n", it.MarketValue.Format(currency), it.MarketTotal().Format(currency))
	fmt.Fprintf(&b, "* Potential profit: %s\n", it.PotentialProfit().SignedFormat(currency))
	return b.String()
}
