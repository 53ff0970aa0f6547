package cardbox_test

import (
	"context"
	"testing"

	"github.com/etnz/cardbox"
)

func TestAnalyzeEmpty(t *testing.T) {
	ctx := context.Background()
	c, _ := newCollection(t)

	inv, err := c.AnalyzeInventory(ctx)
	if err != nil || !inv.Empty() {
		t.Errorf("AnalyzeInventory() = %+v, %v, want empty", inv, err)
	}
	s, err := c.AnalyzeSales(ctx)
	if err != nil || !s.Empty() {
		t.Errorf("AnalyzeSales() = %+v, %v, want empty", s, err)
	}
}

func TestZeroIsNotEmpty(t *testing.T) {
	ctx := context.Background()
	c, _ := newCollection(t)
	free := mantle()
	free.PurchasePrice, free.MarketValue = cardbox.M(0), cardbox.M(0)
	c.AddOrMerge(ctx, free)

	inv, err := c.AnalyzeInventory(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if inv.Empty() || !inv.MarketValue.IsZero() {
		t.Errorf("AnalyzeInventory() = %+v, want a zero, non empty analysis", inv)
	}
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	c, _ := newCollection(t)

	stock := []cardbox.Item{
		mantle(), // 2 x 100 -> 5000
		{Category: "Football", Name: "Brady", Set: "2000 Playoff", Condition: "NM",
			PurchasePrice: cardbox.M(50), MarketValue: cardbox.M(2000), Quantity: 1},
		{Category: "Pokemon", Name: "Charizard", Set: "Base Set", Condition: "LP",
			PurchasePrice: cardbox.M(12.5), MarketValue: cardbox.M(10.25), Quantity: 4},
	}
	var ids []int64
	for _, it := range stock {
		stored, _, err := c.AddOrMerge(ctx, it)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, stored.ID)
	}
	if _, err := c.Sell(ctx, cardbox.SellOrder{ItemID: ids[0], Quantity: 1, UnitPrice: cardbox.M(4000)}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Sell(ctx, cardbox.SellOrder{ItemID: ids[2], Quantity: 2, UnitPrice: cardbox.M(5)}); err != nil {
		t.Fatal(err)
	}

	d, err := c.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard() = %v", err)
	}

	// remaining: 1 Mantle, 1 Brady, 2 Charizard.
	want := cardbox.M(5000).Add(cardbox.M(2000)).Add(cardbox.M(20.5))
	if d.Inventory.Quantity != 4 || !d.Inventory.MarketValue.Equal(want) {
		t.Errorf("Inventory = qty %d value %v, want 4 and %v", d.Inventory.Quantity, d.Inventory.MarketValue, want)
	}
	if got, want := d.Inventory.CostBasis, cardbox.M(175); !got.Equal(want) {
		t.Errorf("CostBasis = %v, want %v", got, want)
	}
	if got, want := d.Inventory.PotentialProfit, cardbox.M(6845.5); !got.Equal(want) {
		t.Errorf("PotentialProfit = %v, want %v", got, want)
	}

	// sold: 1 Mantle at 4000 (+3900), 2 Charizard at 5 (-15).
	if d.Sales.UnitsSold != 3 || d.Sales.Lines != 2 {
		t.Errorf("Sales = %d units in %d sales, want 3 in 2", d.Sales.UnitsSold, d.Sales.Lines)
	}
	if got, want := d.Sales.SaleValue, cardbox.M(4010); !got.Equal(want) {
		t.Errorf("SaleValue = %v, want %v", got, want)
	}
	if got, want := d.Sales.Profit, cardbox.M(3885); !got.Equal(want) {
		t.Errorf("Profit = %v, want %v", got, want)
	}
}
