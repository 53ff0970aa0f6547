package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/cardbox"
)

type rmCmd struct {
	id int64
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove an item from the inventory" }
func (*rmCmd) Usage() string {
	return `cbx rm -id <id>

  Removes an item from the inventory, without recording a sale.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "ID of the item to remove.")
}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		return usageError("-id is required")
	}
	return withCollection(ctx, func(ctx context.Context, coll *cardbox.Collection) error {
		if err := coll.DeleteItem(ctx, c.id); err != nil {
			return err
		}
		success("Item #%d removed", c.id)
		return nil
	})
}
