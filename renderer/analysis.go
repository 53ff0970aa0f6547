package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/etnz/cardbox"
)

// DashboardMarkdown renders the collection overview.
func DashboardMarkdown(d cardbox.Dashboard, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Card Collection")
	doc.Table(md.TableSet{
		Header: []string{"", md.Bold("Total")},
		Rows: [][]string{
			{"Cards in inventory", strconv.Itoa(d.Inventory.Quantity)},
			{"Market value", d.Inventory.MarketValue.Format(currency)},
			{"Cards sold", strconv.Itoa(d.Sales.UnitsSold)},
			{"Sales", d.Sales.SaleValue.Format(currency)},
			{"Realized profit", d.Sales.Profit.SignedFormat(currency)},
		},
	})
	return doc.String()
}

// InventoryAnalysisMarkdown renders the inventory totals.
func InventoryAnalysisMarkdown(a cardbox.InventoryAnalysis, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory Analysis")
	if a.Empty() {
		doc.PlainText("No inventory to analyze.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("%d cards in %d items.", a.Quantity, a.Lines))
	doc.Table(md.TableSet{
		Header: []string{"", md.Bold("Total")},
		Rows: [][]string{
			{"Cost basis", a.CostBasis.Format(currency)},
			{"Market value", a.MarketValue.Format(currency)},
			{"Potential profit", a.PotentialProfit.SignedFormat(currency)},
		},
	})
	return doc.String()
}

// SalesAnalysisMarkdown renders the sales totals.
func SalesAnalysisMarkdown(a cardbox.SalesAnalysis, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales Analysis")
	if a.Empty() {
		doc.PlainText("No sales to analyze.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("%d cards sold in %d sales.", a.UnitsSold, a.Lines))
	doc.Table(md.TableSet{
		Header: []string{"", md.Bold("Total")},
		Rows: [][]string{
			{"Cost basis", a.CostBasis.Format(currency)},
			{"Sales", a.SaleValue.Format(currency)},
			{"Realized profit", a.Profit.SignedFormat(currency)},
		},
	})
	return doc.String()
}

// ImportMarkdown renders an import summary, with the reason of each rejected row.
func ImportMarkdown(s cardbox.ImportSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.PlainText(fmt.Sprintf("Imported %d rows, %d failed (batch %s).", s.Succeeded, s.Failed, s.Batch))
	if len(s.Failures) > 0 {
		var lines []string
		for _, f := range s.Failures {
			lines = append(lines, fmt.Sprintf("row %d: %v", f.Row, f.Err))
		}
		doc.H2("Rejected rows")
		doc.BulletList(lines...)
	}
	return doc.String()
}
