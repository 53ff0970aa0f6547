package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/cardbox"
	"github.com/etnz/cardbox/config"
	"github.com/etnz/cardbox/store"
)

// migrate moves a collection kept by the legacy console application into a cardbox database.

func main() {
	// The migrate tool needs its own set of flags, independent of the main cbx tool.
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	commander := subcommands.NewCommander(flag.CommandLine, "migrate")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(&legacyCmd{}, "")
	commander.Register(&checkCmd{}, "")
	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// outDefault is the cardbox database used when -out is not given.
func outDefault() string {
	s, err := config.Load()
	if err != nil {
		return config.DefaultDB
	}
	return s.DB
}

// --- legacyCmd ---

type legacyCmd struct {
	in  string
	out string
}

func (*legacyCmd) Name() string     { return "legacy" }
func (*legacyCmd) Synopsis() string { return "copies a legacy inventory.db into a cardbox database" }
func (*legacyCmd) Usage() string {
	return `migrate legacy -in <legacy inventory.db> [-out <cardbox db>]

Copies the inventory and the sales of the legacy console application into a
new cardbox database. The destination must be a different, empty database.
`
}

func (c *legacyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "The path to the legacy inventory.db.")
	f.StringVar(&c.out, "out", "", "The path of the cardbox database to create. Defaults to the configured database.")
}

func (c *legacyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" {
		fmt.Fprintln(os.Stderr, "Error: -in flag is required.")
		return subcommands.ExitUsageError
	}
	if c.out == "" {
		c.out = outDefault()
	}
	if c.in == c.out {
		fmt.Fprintln(os.Stderr, "Error: -in and -out must be different databases.")
		return subcommands.ExitUsageError
	}

	src, err := openLegacy(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer src.Close()

	dst, err := store.Open(c.out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer dst.Close()

	existing, err := collectionTotals(ctx, cardbox.New(dst))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", c.out, err)
		return subcommands.ExitFailure
	}
	if !existing.Inventory.Empty() || !existing.Sales.Empty() {
		fmt.Fprintf(os.Stderr, "Error: %s is not empty (%s).\n", c.out, existing)
		return subcommands.ExitFailure
	}

	m, err := copyLegacy(ctx, src, dst)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error migrating: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, s := range m.Skipped {
		fmt.Fprintf(os.Stderr, "Warning: skipped %s\n", s)
	}
	fmt.Printf("Successfully copied %d items and %d sales to %s\n", m.Items, m.Sales, c.out)
	return subcommands.ExitSuccess
}

// --- checkCmd ---

type checkCmd struct {
	in  string
	out string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "compares a legacy inventory.db with a cardbox database" }
func (*checkCmd) Usage() string {
	return `migrate check -in <legacy inventory.db> [-out <cardbox db>]

Checks that the cardbox database holds the same number of items and sales,
and the same totals to the cent, as the legacy database.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "The path to the legacy inventory.db.")
	f.StringVar(&c.out, "out", "", "The path of the cardbox database. Defaults to the configured database.")
}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" {
		fmt.Fprintln(os.Stderr, "Error: -in flag is required.")
		return subcommands.ExitUsageError
	}
	if c.out == "" {
		c.out = outDefault()
	}

	src, err := openLegacy(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer src.Close()
	dst, err := store.Open(c.out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer dst.Close()

	want, err := legacyTotals(ctx, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", c.in, err)
		return subcommands.ExitFailure
	}
	got, err := collectionTotals(ctx, cardbox.New(dst))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", c.out, err)
		return subcommands.ExitFailure
	}
	if !got.equal(want) {
		fmt.Fprintf(os.Stderr, "Mismatch:\n  legacy:  %s\n  cardbox: %s\n", want, got)
		return subcommands.ExitFailure
	}
	fmt.Printf("OK: %s\n", got)
	return subcommands.ExitSuccess
}
