package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/cardbox"
	"github.com/etnz/cardbox/renderer"
)

type analyzeCmd struct {
	inventory bool
	sales     bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze the inventory and the sales" }
func (*analyzeCmd) Usage() string {
	return `cbx analyze [-inventory] [-sales]

  Shows the cost basis, market value and potential profit of the inventory,
  and the sales and realized profit of the sales log. Both by default.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.inventory, "inventory", false, "Analyze the inventory only.")
	f.BoolVar(&c.sales, "sales", false, "Analyze the sales only.")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	both := !c.inventory && !c.sales
	return withCollection(ctx, func(ctx context.Context, coll *cardbox.Collection) error {
		var parts []string
		if both || c.inventory {
			a, err := coll.AnalyzeInventory(ctx)
			if err != nil {
				return err
			}
			parts = append(parts, renderer.InventoryAnalysisMarkdown(a, *currency))
		}
		if both || c.sales {
			a, err := coll.AnalyzeSales(ctx)
			if err != nil {
				return err
			}
			parts = append(parts, renderer.SalesAnalysisMarkdown(a, *currency))
		}
		printMarkdown(strings.Join(parts, "\n"))
		return nil
	})
}
