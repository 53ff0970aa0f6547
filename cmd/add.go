package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/cardbox"
	"github.com/etnz/cardbox/renderer"
)

type addCmd struct {
	category  string
	name      string
	set       string
	number    string
	condition string
	price     string
	value     string
	qty       int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add cards to the inventory" }
func (*addCmd) Usage() string {
	return `cbx add -category <category> -name <name> -set <set> [-number <n>] [-condition <c>] -price <price> -value <value> [-qty <n>]

  Adds cards to the inventory. If an item with the same category, name, set
  and condition exists, its quantity is increased instead.

Usage Examples:
$ cbx add -category Baseball -name "Mickey Mantle" -set "1952 Topps" -condition "PSA 8" -price 100 -value 5000 -qty 2
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Sport or game of the card, e.g. Baseball or Pokemon.")
	f.StringVar(&c.name, "name", "", "Name of the card.")
	f.StringVar(&c.set, "set", "", "Set of the card.")
	f.StringVar(&c.number, "number", "", "Card number within the set.")
	f.StringVar(&c.condition, "condition", "", "Condition or grade of the card.")
	f.StringVar(&c.price, "price", "", "Purchase price of one card.")
	f.StringVar(&c.value, "value", "", "Market value of one card.")
	f.IntVar(&c.qty, "qty", 1, "Number of cards.")
}

// item builds the item from the flags.
func (c *addCmd) item() (cardbox.Item, error) {
	it := cardbox.Item{
		Category:  strings.TrimSpace(c.category),
		Name:      strings.TrimSpace(c.name),
		Set:       strings.TrimSpace(c.set),
		Number:    strings.TrimSpace(c.number),
		Condition: strings.TrimSpace(c.condition),
		Quantity:  c.qty,
	}
	var err error
	if it.PurchasePrice, err = cardbox.ParseMoney(c.price); err != nil {
		return it, &cardbox.ValidationError{Field: "price", Reason: err.Error()}
	}
	if it.MarketValue, err = cardbox.ParseMoney(c.value); err != nil {
		return it, &cardbox.ValidationError{Field: "value", Reason: err.Error()}
	}
	return it, nil
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.category == "" {
		return usageError("-category and -name are required")
	}
	it, err := c.item()
	if err != nil {
		return usageError("%v", err)
	}
	return withCollection(ctx, func(ctx context.Context, coll *cardbox.Collection) error {
		stored, merged, err := coll.AddOrMerge(ctx, it)
		if err != nil {
			return err
		}
		if merged {
			success("Added %d to existing item #%d, now %d", it.Quantity, stored.ID, stored.Quantity)
		} else {
			success("Added item #%d", stored.ID)
		}
		printMarkdown(renderer.ItemMarkdown(stored, *currency))
		return nil
	})
}
