package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/cardbox"
)

type rmSaleCmd struct {
	id int64
}

func (*rmSaleCmd) Name() string     { return "rm-sale" }
func (*rmSaleCmd) Synopsis() string { return "remove a sale from the sales log" }
func (*rmSaleCmd) Usage() string {
	return `cbx rm-sale -id <id>

  Removes a sale from the sales log. The cards are not put back in the inventory.
`
}

func (c *rmSaleCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "ID of the sale to remove.")
}

func (c *rmSaleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		return usageError("-id is required")
	}
	return withCollection(ctx, func(ctx context.Context, coll *cardbox.Collection) error {
		if err := coll.DeleteSale(ctx, c.id); err != nil {
			return err
		}
		success("Sale #%d removed", c.id)
		return nil
	})
}
