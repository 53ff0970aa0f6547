package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/cardbox"
	"github.com/etnz/cardbox/renderer"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the collection totals" }
func (*dashboardCmd) Usage() string {
	return `cbx dashboard

  Shows the number of cards and the market value of the inventory, and the
  cards sold, sales and realized profit of the sales log.
`
}

func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (*dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withCollection(ctx, func(ctx context.Context, c *cardbox.Collection) error {
		d, err := c.Dashboard(ctx)
		if err != nil {
			return err
		}
		printMarkdown(renderer.DashboardMarkdown(d, *currency))
		return nil
	})
}
