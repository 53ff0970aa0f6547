package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/cardbox"
)

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the inventory as CSV" }
func (*exportCmd) Usage() string {
	return `cbx export [-out <file.csv>]

  Writes the inventory in the import format, to stdout by default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "out", "-", "Output file, - for stdout.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withCollection(ctx, func(ctx context.Context, coll *cardbox.Collection) (err error) {
		var w io.Writer = stdout
		if c.out != "-" {
			file, ferr := os.Create(c.out)
			if ferr != nil {
				return fmt.Errorf("cannot create export file: %w", ferr)
			}
			defer func() {
				if cerr := file.Close(); err == nil {
					err = cerr
				}
			}()
			w = file
		}
		n, err := cardbox.ExportItems(w, coll.QueryInventory(ctx, cardbox.ItemQuery{Order: cardbox.ByCategory}))
		if err != nil {
			return err
		}
		if c.out != "-" {
			success("Exported %d items to %s", n, c.out)
		}
		return nil
	})
}
