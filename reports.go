package cardbox

import (
	"context"
	"iter"
)

// InventoryAnalysis sums up the inventory.
type InventoryAnalysis struct {
	Lines           int // number of items
	Quantity        int // number of cards
	CostBasis       Money
	MarketValue     Money
	PotentialProfit Money
}

// Empty reports that there was nothing to analyze, as opposed to a zero result.
func (a InventoryAnalysis) Empty() bool { return a.Lines == 0 }

// SalesAnalysis sums up the sales log.
type SalesAnalysis struct {
	Lines     int // number of sales
	UnitsSold int
	CostBasis Money
	SaleValue Money
	Profit    Money
}

// Empty reports that there was nothing to analyze, as opposed to a zero result.
func (a SalesAnalysis) Empty() bool { return a.Lines == 0 }

// Dashboard is the overview of the whole collection.
type Dashboard struct {
	Inventory InventoryAnalysis
	Sales     SalesAnalysis
}

// SummarizeInventory adds up items.
func SummarizeInventory(items iter.Seq2[Item, error]) (InventoryAnalysis, error) {
	var a InventoryAnalysis
	for it, err := range items {
		if err != nil {
			return InventoryAnalysis{}, err
		}
		a.Lines++
		a.Quantity += it.Quantity
		a.CostBasis = a.CostBasis.Add(it.CostBasis())
		a.MarketValue = a.MarketValue.Add(it.MarketTotal())
		a.PotentialProfit = a.PotentialProfit.Add(it.PotentialProfit())
	}
	return a, nil
}

// SummarizeSales adds up sales.
func SummarizeSales(sales iter.Seq2[Sale, error]) (SalesAnalysis, error) {
	var a SalesAnalysis
	for s, err := range sales {
		if err != nil {
			return SalesAnalysis{}, err
		}
		a.Lines++
		a.UnitsSold += s.QuantitySold
		a.CostBasis = a.CostBasis.Add(s.CostBasis())
		a.SaleValue = a.SaleValue.Add(s.TotalSoldPrice)
		a.Profit = a.Profit.Add(s.Profit)
	}
	return a, nil
}

// AnalyzeInventory computes the inventory totals by a full scan.
func (c *Collection) AnalyzeInventory(ctx context.Context) (InventoryAnalysis, error) {
	return SummarizeInventory(c.store.Items(ctx, ItemQuery{}))
}

// AnalyzeSales computes the sales totals by a full scan.
func (c *Collection) AnalyzeSales(ctx context.Context) (SalesAnalysis, error) {
	return SummarizeSales(c.store.Sales(ctx, SaleQuery{}))
}

// Dashboard computes both analyses from the same state of the store.
func (c *Collection) Dashboard(ctx context.Context) (Dashboard, error) {
	var d Dashboard
	err := c.store.Atomically(ctx, func(tx Store) error {
		var err error
		if d.Inventory, err = SummarizeInventory(tx.Items(ctx, ItemQuery{})); err != nil {
			return err
		}
		d.Sales, err = SummarizeSales(tx.Sales(ctx, SaleQuery{}))
		return err
	})
	return d, err
}
