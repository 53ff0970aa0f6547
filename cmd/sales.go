package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/cardbox"
	"github.com/etnz/cardbox/renderer"
)

type salesCmd struct {
	sort string
	name string
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list the sales log" }
func (*salesCmd) Usage() string {
	return `cbx sales [-sort <order>] [-name <text>]

  Lists the recorded sales. See "cbx topic sort" for the sort orders.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", cardbox.ByProfit.String(), "Sort order: profit, name or newest.")
	f.StringVar(&c.name, "name", "", "Only list sales whose card name contains this text.")
}

func (c *salesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	order, err := cardbox.ParseSalesOrder(c.sort)
	if err != nil {
		return usageError("%v", err)
	}
	return withCollection(ctx, func(ctx context.Context, coll *cardbox.Collection) error {
		var sales []cardbox.Sale
		for s, err := range coll.QuerySales(ctx, cardbox.SaleQuery{Name: c.name, Order: order}) {
			if err != nil {
				return err
			}
			sales = append(sales, s)
		}
		printMarkdown(renderer.SalesMarkdown(sales, order, *currency))
		return nil
	})
}
