// Package cmd implements the cbx commands to manage a card collection.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/subcommands"

	"github.com/etnz/cardbox"
	"github.com/etnz/cardbox/config"
	"github.com/etnz/cardbox/logger"
	"github.com/etnz/cardbox/store"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "collection")
	c.Register(&analyzeCmd{}, "collection")
	c.Register(&topicCmd{}, "collection")

	c.Register(&addCmd{}, "inventory")
	c.Register(&editCmd{}, "inventory")
	c.Register(&rmCmd{}, "inventory")
	c.Register(&lsCmd{}, "inventory")
	c.Register(&importCmd{}, "inventory")
	c.Register(&exportCmd{}, "inventory")

	c.Register(&sellCmd{}, "sales")
	c.Register(&salesCmd{}, "sales")
	c.Register(&rmSaleCmd{}, "sales")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dbFile   = flag.String("db", config.DefaultDB, "Path to the collection database.")
	currency = flag.String("currency", config.DefaultCurrency, "Currency used to display amounts.")
	raw      = flag.Bool("raw", false, "Print markdown output without rendering it.")

	settings = config.Settings{DB: config.DefaultDB, Currency: config.DefaultCurrency, LogFile: config.DefaultLogFile, ImportFile: config.DefaultImportFile}

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Configure uses s as the defaults of the global flags. It must be called before flag.Parse.
func Configure(s config.Settings) {
	settings = s
	setDefault("db", s.DB)
	setDefault("currency", s.Currency)
}

func setDefault(name, value string) {
	f := flag.Lookup(name)
	if f == nil {
		return
	}
	f.DefValue = value
	_ = f.Value.Set(value)
}

// OpenCollection opens the collection database selected by the -db flag, and
// starts logging next to it. The returned function closes the database.
func OpenCollection() (*cardbox.Collection, func(), error) {
	if err := cardbox.ValidateCurrency(*currency); err != nil {
		return nil, nil, err
	}
	s := settings
	s.DB = *dbFile
	if !logger.IsInitialized() {
		if err := logger.Setup(logger.Config{File: s.LogPath()}); err != nil {
			// logging is not worth failing the command.
			fmt.Fprintf(stderr, "Warning: %v\n", err)
		}
	}
	db, err := store.Open(s.DB)
	if err != nil {
		return nil, nil, err
	}
	return cardbox.New(db), func() { db.Close() }, nil
}

// withCollection runs fn on the opened collection and turns its error into an exit status.
func withCollection(ctx context.Context, fn func(context.Context, *cardbox.Collection) error) subcommands.ExitStatus {
	c, closer, err := OpenCollection()
	if err != nil {
		return failure(err)
	}
	defer closer()
	if err := fn(ctx, c); err != nil {
		return failure(err)
	}
	return subcommands.ExitSuccess
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
)

// success prints a one line confirmation.
func success(format string, args ...any) {
	fmt.Fprintln(stdout, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// warn prints a one line warning on stderr.
func warn(format string, args ...any) {
	fmt.Fprintln(stderr, warnStyle.Render("Warning: "+fmt.Sprintf(format, args...)))
}

// failure prints err and returns the exit status for it.
func failure(err error) subcommands.ExitStatus {
	fmt.Fprintln(stderr, errorStyle.Render("Error: ")+err.Error())
	return subcommands.ExitFailure
}

// usageError prints a problem with the command line.
func usageError(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintln(stderr, errorStyle.Render("Error: ")+fmt.Sprintf(format, args...))
	return subcommands.ExitUsageError
}

// printMarkdown renders md for the terminal.
func printMarkdown(md string) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
