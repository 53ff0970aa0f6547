package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/cardbox"
	"github.com/etnz/cardbox/renderer"
)

type importCmd struct {
	in string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import cards from a CSV file" }
func (*importCmd) Usage() string {
	return `cbx import [-in <file.csv>]

  Adds every row of a CSV file as a new inventory item. Invalid rows are
  reported and skipped. See "cbx topic import" for the format.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "CSV file to import, the configured import file by default.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := c.in
	if in == "" {
		in = settings.ImportFile
	}
	file, err := os.Open(in)
	if err != nil {
		return failure(fmt.Errorf("cannot open import file: %w", err))
	}
	defer file.Close()

	return withCollection(ctx, func(ctx context.Context, coll *cardbox.Collection) error {
		sum, err := coll.ImportRows(ctx, cardbox.ReadRows(file))
		if err != nil {
			return err
		}
		if sum.Failed > 0 {
			warn("%d rows of %s could not be imported", sum.Failed, in)
		}
		printMarkdown(renderer.ImportMarkdown(sum))
		return nil
	})
}
