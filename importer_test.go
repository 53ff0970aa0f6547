package cardbox_test

import (
	"context"
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/etnz/cardbox"
)

func rowsOf(rows ...[]string) iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		for _, r := range rows {
			if !yield(r, nil) {
				return
			}
		}
	}
}

func TestImportRows(t *testing.T) {
	ctx := context.Background()
	c, _ := newCollection(t)

	sum, err := c.ImportRows(ctx, rowsOf(
		[]string{"Football", "Brady", "2000 Playoff", "#1", "NM", "50", "2000", "1"},
		[]string{"bad", "row"},
	))
	if err != nil {
		t.Fatalf("ImportRows() = %v", err)
	}
	if sum.Succeeded != 1 || sum.Failed != 1 {
		t.Errorf("ImportRows() = %d succeeded, %d failed, want 1, 1", sum.Succeeded, sum.Failed)
	}
	if len(sum.Failures) != 1 || sum.Failures[0].Row != 2 || !cardbox.IsValidation(sum.Failures[0].Err) {
		t.Errorf("Failures = %+v, want row 2", sum.Failures)
	}
	if sum.Batch == uuid.Nil {
		t.Errorf("Batch is nil")
	}

	inv := items(t, c)
	if len(inv) != 1 || inv[0].Name != "Brady" || !inv[0].MarketValue.Equal(cardbox.M(2000)) {
		t.Errorf("inventory = %+v, want Brady", inv)
	}
}

func TestImportNeverMerges(t *testing.T) {
	ctx := context.Background()
	c, _ := newCollection(t)
	row := []string{"Football", "Brady", "2000 Playoff", "#1", "NM", "50", "2000", "1"}

	if _, err := c.ImportRows(ctx, rowsOf(row, row)); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ImportRows(ctx, rowsOf(row)); err != nil {
		t.Fatal(err)
	}
	if n := len(items(t, c)); n != 3 {
		t.Errorf("inventory has %d items, want 3", n)
	}
}

func TestImportReadError(t *testing.T) {
	ctx := context.Background()
	c, _ := newCollection(t)
	broken := errors.New("connection reset")

	rows := func(yield func([]string, error) bool) {
		if !yield([]string{"Football", "Brady", "2000 Playoff", "#1", "NM", "50", "2000", "1"}, nil) {
			return
		}
		yield(nil, broken)
	}
	sum, err := c.ImportRows(ctx, rows)
	if !cardbox.IsStorage(err) || !errors.Is(err, broken) {
		t.Errorf("ImportRows() = %v, want a storage error", err)
	}
	if sum.Succeeded != 1 {
		t.Errorf("Succeeded = %d, want 1", sum.Succeeded)
	}
}

func TestReadRows(t *testing.T) {
	ctx := context.Background()
	c, _ := newCollection(t)

	const file = `Category,Name,Set,Card Number,Condition,Purchase Price,Market Value,Quantity
Baseball, Mickey Mantle ,1952 Topps,311,PSA 8,100,5000,2
Pokemon,Charizard,Base Set,4,NM,12.50,350.75,1
not,enough,fields
Basketball,Jordan,1986 Fleer,57,NM,-1,100,1
`
	sum, err := c.ImportRows(ctx, cardbox.ReadRows(strings.NewReader(file)))
	if err != nil {
		t.Fatalf("ImportRows() = %v", err)
	}
	if sum.Succeeded != 2 || sum.Failed != 2 {
		t.Errorf("ImportRows() = %d succeeded, %d failed, want 2, 2", sum.Succeeded, sum.Failed)
	}

	var names []string
	for it, err := range c.QueryInventory(ctx, cardbox.ItemQuery{}) {
		if err != nil {
			t.Fatal(err)
		}
		names = append(names, it.Name)
	}
	if strings.Join(names, ",") != "Charizard,Mickey Mantle" {
		t.Errorf("imported %q, want Charizard and Mickey Mantle", names)
	}
}

func TestExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newCollection(t)
	c.AddOrMerge(ctx, mantle())
	charizard := cardbox.Item{Category: "Pokemon", Name: "Charizard, holo", Set: "Base Set", Number: "4",
		Condition: "NM", PurchasePrice: cardbox.M(12.5), MarketValue: cardbox.M(350.75), Quantity: 1}
	c.AddOrMerge(ctx, charizard)

	var b strings.Builder
	n, err := cardbox.ExportItems(&b, c.QueryInventory(ctx, cardbox.ItemQuery{}))
	if err != nil || n != 2 {
		t.Fatalf("ExportItems() = %d, %v, want 2", n, err)
	}

	other, _ := newCollection(t)
	sum, err := other.ImportRows(ctx, cardbox.ReadRows(strings.NewReader(b.String())))
	if err != nil || sum.Succeeded != 2 || sum.Failed != 0 {
		t.Fatalf("ImportRows(export) = %+v, %v", sum, err)
	}

	want, _ := c.AnalyzeInventory(ctx)
	got, _ := other.AnalyzeInventory(ctx)
	if got.Quantity != want.Quantity || !got.MarketValue.Equal(want.MarketValue) || !got.CostBasis.Equal(want.CostBasis) {
		t.Errorf("round trip analysis = %+v, want %+v", got, want)
	}
}
