package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/cardbox"
	"github.com/etnz/cardbox/renderer"
)

type lsCmd struct {
	sort string
	name string
	set  string
}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list the inventory" }
func (*lsCmd) Usage() string {
	return `cbx ls [-sort <order>] [-name <text>] [-set <text>]

  Lists the inventory items. See "cbx topic sort" for the sort orders.
`
}

func (c *lsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", cardbox.ByName.String(), "Sort order: name, value, profit, newest or category.")
	f.StringVar(&c.name, "name", "", "Only list cards whose name contains this text.")
	f.StringVar(&c.set, "set", "", "Only list cards whose set contains this text.")
}

func (c *lsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	order, err := cardbox.ParseInventoryOrder(c.sort)
	if err != nil {
		return usageError("%v", err)
	}
	return withCollection(ctx, func(ctx context.Context, coll *cardbox.Collection) error {
		var items []cardbox.Item
		for it, err := range coll.QueryInventory(ctx, cardbox.ItemQuery{Name: c.name, Set: c.set, Order: order}) {
			if err != nil {
				return err
			}
			items = append(items, it)
		}
		printMarkdown(renderer.InventoryMarkdown(items, order, *currency))
		return nil
	})
}
