package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/cardbox"
	"github.com/etnz/cardbox/docs"
)

// flagPredictors predicts flag values by flag name, for every command.
var flagPredictors = map[string]complete.Predictor{
	"db":       predict.Files("*.db"),
	"in":       predict.Files("*.csv"),
	"out":      predict.Files("*.csv"),
	"currency": predict.Set{"USD", "EUR", "GBP", "CAD", "JPY"},
}

// sortOrders predicts the -sort flag of the listing commands.
var sortOrders = map[string]complete.Predictor{
	"ls":    predict.Set{"name", "value", "profit", "newest", "category"},
	"sales": predict.Set{"profit", "name", "newest"},
}

// Completion describes the commands registered in c and their flags for shell completion.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	c.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = predictFlag(f.Name)
	})

	var fields predict.Set
	for _, f := range cardbox.Fields() {
		fields = append(fields, f.String())
	}

	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predictFlag(f.Name)
		})
		switch cmd.Name() {
		case "ls", "sales":
			sub.Flags["sort"] = sortOrders[cmd.Name()]
		case "edit":
			sub.Flags["field"] = fields
		case "topic":
			if topics, err := docs.GetAllTopics(); err == nil {
				sub.Args = predict.Set(topics)
			}
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

func predictFlag(name string) complete.Predictor {
	if p, ok := flagPredictors[name]; ok {
		return p
	}
	return predict.Something
}
