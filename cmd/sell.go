package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/cardbox"
	"github.com/etnz/cardbox/date"
	"github.com/etnz/cardbox/renderer"
)

type sellCmd struct {
	id    int64
	qty   int
	price string
	date  string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell cards from the inventory" }
func (*sellCmd) Usage() string {
	return `cbx sell -id <id> [-qty <n>] -price <price> [-d <date>]

  Records the sale of cards of an item at a unit price and takes them out of
  the inventory. An item sold out is removed.

Usage Examples:
$ cbx sell -id 1 -qty 1 -price 4000
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "ID of the item to sell from.")
	f.IntVar(&c.qty, "qty", 1, "Number of cards sold.")
	f.StringVar(&c.price, "price", "", "Sale price of one card.")
	f.StringVar(&c.date, "d", "", "Date of the sale (YYYY-MM-DD), today by default.")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		return usageError("-id is required")
	}
	price, err := cardbox.ParseMoney(c.price)
	if err != nil {
		return usageError("-price: %v", err)
	}
	var day date.Date
	if c.date != "" {
		if day, err = date.Parse(c.date); err != nil {
			return usageError("-d: %v", err)
		}
	}

	return withCollection(ctx, func(ctx context.Context, coll *cardbox.Collection) error {
		res, err := coll.Sell(ctx, cardbox.SellOrder{ItemID: c.id, Quantity: c.qty, UnitPrice: price, Date: day})
		if err != nil {
			return err
		}
		printMarkdown(renderer.SellMarkdown(res, *currency))
		return nil
	})
}
