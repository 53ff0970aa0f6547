package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/cardbox"
	"github.com/etnz/cardbox/renderer"
)

type editCmd struct {
	id    int64
	field string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit one field of an inventory item" }
func (*editCmd) Usage() string {
	return `cbx edit -id <id> -field <field> <value>

  Sets one field of an item. Fields are category, name, set, number,
  condition, purchase-price, market-value and quantity.
  Setting the quantity to 0 removes the item.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "ID of the item to edit.")
	f.StringVar(&c.field, "field", "", "Field to edit: "+fieldList()+".")
}

func fieldList() string {
	var names []string
	for _, f := range cardbox.Fields() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		return usageError("-id is required")
	}
	field, err := cardbox.ParseField(c.field)
	if err != nil {
		return usageError("%v", err)
	}
	if f.NArg() != 1 {
		return usageError("edit takes exactly one value, got %d", f.NArg())
	}
	value := strings.TrimSpace(f.Arg(0))

	return withCollection(ctx, func(ctx context.Context, coll *cardbox.Collection) error {
		it, deleted, err := coll.EditField(ctx, c.id, field, value)
		if err != nil {
			return err
		}
		if deleted {
			success("Item #%d removed, quantity set to 0", c.id)
			return nil
		}
		success("Item #%d: %s set to %q", c.id, field, value)
		printMarkdown(renderer.ItemMarkdown(it, *currency))
		return nil
	})
}
